// Package arena runs a turn-driven encounter between the player and a
// few monsters drawn from the bestiary. Each Arena owns its own world,
// random source and message log.
package arena

import (
	"math/rand"

	"dungeon-crawl/internal/bestiary"
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/ecs"
	"dungeon-crawl/internal/factory"
	"dungeon-crawl/internal/message"
	"dungeon-crawl/internal/special"
	"dungeon-crawl/internal/stats"
	"dungeon-crawl/internal/system"
	"dungeon-crawl/pkg/logger"

	"github.com/sirupsen/logrus"
)

// State tracks the bout's state machine.
type State uint8

const (
	StatePlaying State = iota
	StateDead
	StateQuit
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateDead:
		return "dead"
	case StateQuit:
		return "quit"
	}
	return "unknown"
}

// MaxMonsters caps how many monsters share a floor.
const MaxMonsters = 5

// Options configures a new Arena. Zero values pick the defaults.
type Options struct {
	Seed     int64
	Depth    int
	Hero     factory.Hero
	Bestiary *bestiary.Bestiary
	Catalog  message.Catalog
	Bouts    *BoutLog // nil disables the bout log
	Logger   logrus.FieldLogger
}

// Arena is one bout.
type Arena struct {
	world    *ecs.World
	player   ecs.EntityID
	rng      *rand.Rand
	depth    int
	bestiary *bestiary.Bestiary
	log      *message.Log
	logger   logrus.FieldLogger
	bouts    *BoutLog
	state    State
	target   int
	record   Bout
}

// New creates an Arena with the player placed on the starting floor.
func New(opts Options) *Arena {
	if opts.Bestiary == nil {
		opts.Bestiary = bestiary.Default()
	}
	if opts.Catalog == nil {
		opts.Catalog = message.Default()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	hero := opts.Hero
	if hero == (factory.Hero{}) {
		hero = factory.StartingHero
	}
	depth := max(1, opts.Depth)

	a := &Arena{
		world:    ecs.NewWorld(),
		rng:      rand.New(rand.NewSource(opts.Seed)),
		depth:    depth,
		bestiary: opts.Bestiary,
		log:      message.NewLog(opts.Catalog, message.DefaultLimit),
		logger:   opts.Logger.WithField("seed", opts.Seed),
		bouts:    opts.Bouts,
		record: Bout{
			Seed:         opts.Seed,
			StartDepth:   depth,
			DepthReached: depth,
			Kills:        make(map[string]int),
		},
	}
	a.player = factory.NewPlayer(a.world, hero)
	a.log.Show(message.Welcome, depth)
	a.spawn()
	return a
}

// World exposes the arena's entity store.
func (a *Arena) World() *ecs.World { return a.world }

// Player is the player entity.
func (a *Arena) Player() ecs.EntityID { return a.player }

// Depth is the current floor.
func (a *Arena) Depth() int { return a.depth }

// State is the bout's current state.
func (a *Arena) State() State { return a.state }

// Messages is the bout's message history.
func (a *Arena) Messages() *message.Log { return a.log }

// Record returns the statistics gathered so far.
func (a *Arena) Record() Bout { return a.record }

// Monsters lists the monsters on the floor in spawn order.
func (a *Arena) Monsters() []ecs.EntityID {
	return a.world.Query(component.CTagMonster, component.CMonster)
}

// Target is the monster the player's attacks go to, or NilEntity.
func (a *Arena) Target() ecs.EntityID {
	ms := a.Monsters()
	if len(ms) == 0 {
		return ecs.NilEntity
	}
	if a.target < len(ms) {
		return ms[a.target]
	}
	return ms[0]
}

// keepTarget pulls the target index back onto the floor after monsters
// leave it, falling back to the first one.
func (a *Arena) keepTarget() {
	if a.target >= len(a.Monsters()) {
		a.target = 0
	}
}

func (a *Arena) context() *special.Context {
	return &special.Context{
		World:    a.world,
		Player:   a.player,
		Depth:    a.depth,
		Messages: a.log,
		Rand:     a.rng,
		Logger:   a.logger,
	}
}

// spawnCount is how many monsters a fresh floor at depth holds.
func spawnCount(depth int) int {
	return min(MaxMonsters, 2+depth/4)
}

func (a *Arena) spawn() {
	for range spawnCount(a.depth) {
		e := a.bestiary.Pick(a.rng.Intn, a.depth)
		factory.NewMonster(a.world, e)
		a.logger.WithFields(logrus.Fields{"monster": e.Name, "depth": a.depth}).Debug("spawned")
	}
	a.target = 0
	a.announceTarget()
}

func (a *Arena) announceTarget() {
	if id := a.Target(); id != ecs.NilEntity {
		m := a.world.Get(id, component.CMonster).(component.Monster)
		a.log.Show(message.Target, m.Name)
	}
}

// Act performs one player action and, when it used the turn, lets every
// monster attack and advances the player's conditions.
func (a *Arena) Act(action Action) {
	if a.state != StatePlaying || action == ActionNone {
		return
	}
	switch action {
	case ActionQuit:
		a.finish(StateQuit)
		return
	case ActionNextTarget:
		a.cycleTarget()
		return
	}

	if system.Asleep(a.world, a.player) {
		a.log.Show(message.StillFrozen)
		if system.LoseTurn(a.world, a.player) {
			a.log.Show(message.Thaw)
		}
		a.endTurn()
		return
	}

	turnUsed := false
	switch action {
	case ActionAttack:
		turnUsed = a.attack()
	case ActionWait:
		a.log.Show(message.Wait)
		turnUsed = true
	case ActionQuaff:
		turnUsed = a.quaff()
	case ActionRead:
		turnUsed = a.read()
	case ActionRing:
		turnUsed = a.toggleRing()
	case ActionDescend:
		a.descend()
	}
	if turnUsed {
		a.endTurn()
	}
}

func (a *Arena) cycleTarget() {
	n := len(a.Monsters())
	if n == 0 {
		a.log.Show(message.NoTarget)
		return
	}
	a.target = (a.target + 1) % n
	a.announceTarget()
}

func (a *Arena) attack() bool {
	id := a.Target()
	if id == ecs.NilEntity {
		a.log.Show(message.NoTarget)
		return false
	}
	// Capture the name before Attack, which may destroy the entity.
	m := a.world.Get(id, component.CMonster).(component.Monster)
	res := system.Attack(a.world, a.rng, a.player, id)
	a.record.DamageDealt += res.Damage
	if !res.Killed {
		a.log.Show(message.YouHit, m.Name, res.Damage)
		return true
	}

	a.record.Kills[m.Name]++
	a.log.Show(message.YouKill, m.Name)
	a.logger.WithField("monster", m.Name).Info("monster slain")
	a.gainExperience(res.Experience)
	a.dropGold(m.Name)
	a.keepTarget()
	if a.world.Count(component.CTagMonster) == 0 {
		a.log.Show(message.FloorCleared)
	} else {
		a.announceTarget()
	}
	return true
}

// gainExperience adds exp and raises the player's level, and max hp with
// it, when a threshold is crossed.
func (a *Arena) gainExperience(exp int) {
	prog, ok := a.world.Get(a.player, component.CProgression).(component.Progression)
	if !ok || exp <= 0 {
		return
	}
	prog.Experience += exp
	if lvl := stats.LevelFor(prog.Experience); lvl > prog.Level {
		if hp, ok := a.world.Get(a.player, component.CHealth).(component.Health); ok {
			gain := factory.MaxHPFor(lvl) - factory.MaxHPFor(prog.Level)
			hp.Max += gain
			hp.Current += gain
			a.world.Add(a.player, hp)
		}
		prog.Level = lvl
		a.log.Show(message.LevelUp, lvl)
	}
	a.world.Add(a.player, prog)
	stats.Recompute(a.world, a.player)
}

func (a *Arena) dropGold(name string) {
	e, ok := a.bestiary.Lookup(name)
	if !ok || e.Gold <= 0 {
		return
	}
	prog, ok := a.world.Get(a.player, component.CProgression).(component.Progression)
	if !ok {
		return
	}
	amount := 1 + a.rng.Intn(e.Gold)
	prog.Gold += amount
	a.world.Add(a.player, prog)
	a.log.Show(message.GoldFound, amount)
}

func (a *Arena) inventory() (component.Inventory, bool) {
	inv, ok := a.world.Get(a.player, component.CInventory).(component.Inventory)
	return inv, ok
}

// firstOf returns the first carried item of kind, optionally by name.
func firstOf(inv *component.Inventory, kind component.ItemKind, name string) *component.Item {
	for _, it := range inv.Items {
		if it.Kind == kind && (name == "" || it.Name == name) {
			return it
		}
	}
	return nil
}

func (a *Arena) quaff() bool {
	inv, ok := a.inventory()
	if !ok {
		a.log.Show(message.NoPotion)
		return false
	}
	potion := firstOf(&inv, component.KindPotion, "levitation")
	if potion == nil {
		a.log.Show(message.NoPotion)
		return false
	}
	inv.Remove(potion)
	a.world.Add(a.player, inv)

	st, _ := a.world.Get(a.player, component.CStatus).(component.Status)
	st.Levitating = true
	st.LevitateTurns = 10 + a.rng.Intn(20)
	a.world.Add(a.player, st)
	a.record.ItemsUsed++
	a.log.Show(message.Levitate)
	return true
}

func (a *Arena) read() bool {
	inv, ok := a.inventory()
	if !ok {
		a.log.Show(message.NoScroll)
		return false
	}
	scroll := firstOf(&inv, component.KindScroll, "")
	if scroll == nil {
		a.log.Show(message.NoScroll)
		return false
	}
	inv.Remove(scroll)
	a.world.Add(a.player, inv)
	a.record.ItemsUsed++
	a.log.Show(message.ReadScroll, scroll.Name)

	switch scroll.Name {
	case "protect armor":
		if inv.Armor != nil {
			inv.Armor.Protected = true
			a.log.Show(message.ArmorShielded)
		}
	case "monster confusion":
		for _, id := range a.Monsters() {
			m := a.world.Get(id, component.CMonster).(component.Monster)
			m.Abilities = m.Abilities.With(component.Confused)
			a.world.Add(id, m)
		}
		a.log.Show(message.HandsGlow)
	}
	return true
}

// toggleRing takes off the first carried ring if it is worn, otherwise
// puts it on a free hand.
func (a *Arena) toggleRing() bool {
	inv, ok := a.inventory()
	if !ok {
		a.log.Show(message.NoRing)
		return false
	}
	ring := firstOf(&inv, component.KindRing, "")
	if ring == nil {
		a.log.Show(message.NoRing)
		return false
	}
	switch {
	case inv.LeftRing == ring:
		inv.LeftRing = nil
		a.log.Show(message.RingOff, ring.Name)
	case inv.RightRing == ring:
		inv.RightRing = nil
		a.log.Show(message.RingOff, ring.Name)
	case inv.LeftRing == nil:
		inv.LeftRing = ring
		a.log.Show(message.RingOn, ring.Name)
	case inv.RightRing == nil:
		inv.RightRing = ring
		a.log.Show(message.RingOn, ring.Name)
	default:
		a.log.Show(message.NoRing)
		return false
	}
	a.world.Add(a.player, inv)
	stats.Recompute(a.world, a.player)
	return true
}

// descend moves to the next floor. A held player cannot leave; the
// monsters on the current floor stay behind.
func (a *Arena) descend() {
	st, _ := a.world.Get(a.player, component.CStatus).(component.Status)
	if st.Held {
		a.log.Show(message.StillHeld)
		return
	}
	for _, id := range a.Monsters() {
		a.world.DestroyEntity(id)
	}
	a.depth++
	a.record.DepthReached = max(a.record.DepthReached, a.depth)
	a.log.Show(message.Descend, a.depth)
	a.logger.WithField("depth", a.depth).Info("descended")
	a.spawn()
}

// endTurn runs the monsters' half of the turn.
func (a *Arena) endTurn() {
	a.record.Turns++
	ctx := a.context()
	for _, h := range system.ProcessMonsters(ctx) {
		if h.Hit {
			a.record.DamageTaken += h.Damage
			a.record.KilledBy = h.Name
		}
	}
	a.keepTarget()
	if system.PlayerDead(ctx) {
		a.log.Show(message.YouDie)
		a.finish(StateDead)
		return
	}

	ch := system.TickStatus(a.world, a.player)
	if ch.Thawed {
		a.log.Show(message.Thaw)
	}
	if ch.Landed {
		a.log.Show(message.LevitateEnds)
	}
	if ch.Released {
		a.log.Show(message.Released)
	}
}

func (a *Arena) finish(s State) {
	a.state = s
	a.record.Outcome = s.String()
	if s != StateDead {
		a.record.KilledBy = ""
	}
	if prog, ok := a.world.Get(a.player, component.CProgression).(component.Progression); ok {
		a.record.Level = prog.Level
		a.record.Gold = prog.Gold
	}
	a.log.Show(message.BoutOver, a.record.Turns)
	a.logger.WithFields(logrus.Fields{
		"outcome": a.record.Outcome,
		"turns":   a.record.Turns,
		"depth":   a.record.DepthReached,
	}).Info("bout finished")
	if a.bouts != nil {
		a.bouts.Append(a.record)
	}
}
