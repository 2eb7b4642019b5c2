package special

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/ecs"
	"dungeon-crawl/internal/message"
	"dungeon-crawl/internal/stats"
)

func hold(ctx *Context, monster ecs.EntityID) {
	st, ok := ctx.World.Get(ctx.Player, component.CStatus).(component.Status)
	if !ok || st.Levitating || st.Held {
		return
	}
	st.Held = true
	ctx.World.Add(ctx.Player, st)
	ctx.Show(message.BeingHeld, monsterName(ctx.World, monster))
}

// freeze puts the player to sleep for 2-3 turns. An existing longer sleep
// is kept; durations never add up.
func freeze(ctx *Context, _ ecs.EntityID) {
	st, ok := ctx.World.Get(ctx.Player, component.CStatus).(component.Status)
	if !ok || chance(ctx.Rand, 12) {
		return
	}
	ctx.Show(message.Frozen)
	st.Frozen = true
	st.SleepTurns = max(st.SleepTurns, between(ctx.Rand, 2, 3))
	ctx.World.Add(ctx.Player, st)
}

func sting(ctx *Context, monster ecs.EntityID) {
	if ctx.rings().SustainsStrength() || !chance(ctx.Rand, 35) {
		return
	}
	ctx.Show(message.Stung, monsterName(ctx.World, monster))
	str, ok := ctx.World.Get(ctx.Player, component.CStrength).(component.Strength)
	if !ok || str.Current <= stats.MinStrength {
		return
	}
	str.Current--
	ctx.World.Add(ctx.Player, str)
	ctx.recompute()
}
