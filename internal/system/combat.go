package system

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/ecs"
	"dungeon-crawl/internal/message"
	"dungeon-crawl/internal/special"
)

// AttackResult holds the outcome of the player's attack on a monster.
type AttackResult struct {
	Damage     int
	Killed     bool
	Experience int // awarded for a kill
}

// Attack resolves one player attack against a monster.
// Damage formula: max(1, atk-def) + rand.Intn(3).
// A monster brought to 0 hp or below is removed from the encounter.
func Attack(w *ecs.World, r special.Rand, attackerID, defenderID ecs.EntityID) AttackResult {
	atk, ok := w.Get(attackerID, component.CCombat).(component.Combat)
	if !ok {
		return AttackResult{}
	}
	def, ok := w.Get(defenderID, component.CCombat).(component.Combat)
	if !ok {
		return AttackResult{}
	}
	hp, ok := w.Get(defenderID, component.CHealth).(component.Health)
	if !ok {
		return AttackResult{}
	}

	base := atk.Attack - def.Defense
	if base < 1 {
		base = 1
	}
	dmg := base + r.Intn(3)
	hp.Current -= dmg
	w.Add(defenderID, hp)

	result := AttackResult{Damage: dmg}
	if hp.Current <= 0 {
		result.Killed = true
		if m, ok := w.Get(defenderID, component.CMonster).(component.Monster); ok {
			result.Experience = m.Experience
		}
		w.DestroyEntity(defenderID)
	}
	return result
}

// HitResult is one monster's melee attempt against the player.
type HitResult struct {
	MonsterID ecs.EntityID
	Name      string
	Hit       bool
	Damage    int
}

// hitChance is the percent chance a monster of level lands a blow on a
// player with the given defense.
func hitChance(level, defense int) int {
	return min(95, max(10, 60+3*level-3*defense))
}

// MonsterAttack rolls one monster's melee attack on ctx.Player. A frozen
// player is always hit. On a hit that leaves the player standing the
// monster's special abilities are resolved.
func MonsterAttack(ctx *special.Context, monster ecs.EntityID) HitResult {
	w := ctx.World
	m, ok := w.Get(monster, component.CMonster).(component.Monster)
	if !ok {
		return HitResult{}
	}
	mc, _ := w.Get(monster, component.CCombat).(component.Combat)
	pc, _ := w.Get(ctx.Player, component.CCombat).(component.Combat)
	st, _ := w.Get(ctx.Player, component.CStatus).(component.Status)
	res := HitResult{MonsterID: monster, Name: m.Name}

	if !st.Frozen && ctx.Rand.Intn(100) >= hitChance(mc.Level, pc.Defense) {
		ctx.Show(message.MonsterMisses, m.Name)
		return res
	}
	res.Hit = true
	res.Damage = 1 + ctx.Rand.Intn(max(1, mc.Attack))

	hp, ok := w.Get(ctx.Player, component.CHealth).(component.Health)
	if !ok {
		return res
	}
	hp.Current -= res.Damage
	w.Add(ctx.Player, hp)
	ctx.Show(message.MonsterHits, m.Name, res.Damage)

	if hp.Current > 0 {
		special.Resolve(ctx, monster)
	}
	return res
}
