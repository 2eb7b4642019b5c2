// Package special resolves what a monster's special abilities do to the
// player after the monster lands a melee hit.
package special

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/ecs"
	"dungeon-crawl/internal/message"
	"dungeon-crawl/internal/stats"
	"dungeon-crawl/pkg/logger"

	"github.com/sirupsen/logrus"
)

// confusedFailure is the probability that a confused monster's special
// attacks fizzle entirely.
const confusedFailure = 0.66

// Rand is the single randomness source every gate draws from.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Protections answers which degradations the player's rings negate.
type Protections interface {
	MaintainsArmor() bool
	SustainsStrength() bool
}

// Context is everything one resolution may read or change.
type Context struct {
	World    *ecs.World // holds the player and the active monsters
	Player   ecs.EntityID
	Depth    int // current floor, scales stolen gold
	Messages message.Sink
	Rand     Rand

	// Rings defaults to the rings worn by Player.
	Rings Protections
	// Recompute defaults to stats.Recompute.
	Recompute func(w *ecs.World, id ecs.EntityID)
	Logger    logrus.FieldLogger
}

func (ctx *Context) rings() Protections {
	if ctx.Rings != nil {
		return ctx.Rings
	}
	return stats.RingQuery{World: ctx.World, Player: ctx.Player}
}

func (ctx *Context) recompute() {
	if ctx.Recompute != nil {
		ctx.Recompute(ctx.World, ctx.Player)
		return
	}
	stats.Recompute(ctx.World, ctx.Player)
}

// Show sends a message to ctx.Messages; a nil sink drops it.
func (ctx *Context) Show(id message.ID, args ...any) {
	if ctx.Messages != nil {
		ctx.Messages.Show(id, args...)
	}
}

func (ctx *Context) logger() logrus.FieldLogger {
	if ctx.Logger != nil {
		return ctx.Logger
	}
	return logger.Discard()
}

// step binds one ability flag to its effect. A step is skipped when the
// monster also has the unless flag.
type step struct {
	name    string
	ability component.Ability
	unless  component.Ability
	apply   func(ctx *Context, monster ecs.EntityID)
}

// pipeline is evaluated top to bottom; later effects observe the changes
// made by earlier ones.
var pipeline = []step{
	{name: "rust", ability: component.Rusts, apply: rust},
	{name: "hold", ability: component.Holds, apply: hold},
	{name: "freeze", ability: component.Freezes, apply: freeze},
	{name: "sting", ability: component.Stings, apply: sting},
	{name: "drain_life", ability: component.DrainsLife, apply: drainLife},
	{name: "drop_level", ability: component.DropsLevel, apply: dropLevel},
	{name: "steal_gold", ability: component.StealsGold, apply: stealGold},
	{name: "steal_item", ability: component.StealsItem, unless: component.StealsGold, apply: stealItem},
}

// Resolve applies the special abilities of monster to the player. It is
// called once per successful monster hit and never fails; a monster with
// no abilities is a no-op.
func Resolve(ctx *Context, monster ecs.EntityID) {
	m, ok := ctx.World.Get(monster, component.CMonster).(component.Monster)
	if !ok || m.Abilities == 0 {
		return
	}
	log := ctx.logger().WithFields(logrus.Fields{"monster": m.Name, "abilities": m.Abilities.String()})

	if m.Abilities.Has(component.Confused) && ctx.Rand.Float64() < confusedFailure {
		log.Debug("confused monster fumbles its special attack")
		return
	}
	for _, s := range pipeline {
		if !m.Abilities.Has(s.ability) || m.Abilities.Has(s.unless) {
			continue
		}
		if !ctx.World.Alive(monster) {
			return
		}
		log.WithField("effect", s.name).Debug("special attack")
		s.apply(ctx, monster)
	}
}

// chance reports true with pct percent probability.
func chance(r Rand, pct int) bool { return r.Intn(100) < pct }

// between draws uniformly from [lo, hi].
func between(r Rand, lo, hi int) int { return lo + r.Intn(hi-lo+1) }

func monsterName(w *ecs.World, id ecs.EntityID) string {
	if m, ok := w.Get(id, component.CMonster).(component.Monster); ok {
		return m.Name
	}
	return "monster"
}
