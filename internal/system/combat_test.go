package system

import (
	"math/rand"
	"testing"

	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/ecs"
	"dungeon-crawl/internal/message"
	"dungeon-crawl/internal/special"
)

// fixedRand returns the same draw every time, clamped into range.
type fixedRand struct{ v int }

func (r fixedRand) Float64() float64 { return 0.99 }
func (r fixedRand) Intn(n int) int   { return min(r.v, n-1) }

func makeCombatants(atkVal, defVal, defHP int) (*ecs.World, ecs.EntityID, ecs.EntityID) {
	w := ecs.NewWorld()
	attacker := w.CreateEntity()
	w.Add(attacker, component.Combat{Attack: atkVal})

	defender := w.CreateEntity()
	w.Add(defender, component.Combat{Defense: defVal})
	w.Add(defender, component.Health{Current: defHP, Max: defHP})
	w.Add(defender, component.Monster{Name: "kobold", Experience: 4})
	w.Add(defender, component.TagMonster{})
	return w, attacker, defender
}

// newEncounter builds a player with hp and defense plus the given monsters.
func newEncounter(hp, defense int, st component.Status) (*ecs.World, ecs.EntityID, *message.Log) {
	w := ecs.NewWorld()
	p := w.CreateEntity()
	w.Add(p, component.TagPlayer{})
	w.Add(p, component.Health{Current: hp, Max: hp})
	w.Add(p, component.Combat{Attack: 3, Defense: defense})
	w.Add(p, component.Progression{Level: 1, Gold: 40})
	w.Add(p, st)
	w.Add(p, component.Inventory{})
	return w, p, message.NewLog(message.Default(), 100)
}

func addMonster(w *ecs.World, name string, attack, level int, abilities component.Ability) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.TagMonster{})
	w.Add(id, component.Monster{Name: name, Abilities: abilities})
	w.Add(id, component.Combat{Attack: attack, Level: level})
	w.Add(id, component.Health{Current: 10, Max: 10})
	return id
}

func TestAttackDamageRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		w, attacker, defender := makeCombatants(5, 2, 1000)
		res := Attack(w, rng, attacker, defender)
		// Damage = max(1, 5-2) + rand.Intn(3) = 3 + [0,2] → [3,5]
		if res.Damage < 3 || res.Damage > 5 {
			t.Errorf("iteration %d: damage %d out of expected range [3,5]", i, res.Damage)
		}
		hp := w.Get(defender, component.CHealth).(component.Health)
		if hp.Current != 1000-res.Damage {
			t.Errorf("HP not reduced correctly: after=%d damage=%d", hp.Current, res.Damage)
		}
	}
}

func TestAttackKillsMonster(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	w, attacker, defender := makeCombatants(10, 0, 1)

	res := Attack(w, rng, attacker, defender)
	if !res.Killed {
		t.Fatal("expected Killed=true when defender HP reaches 0")
	}
	if res.Experience != 4 {
		t.Errorf("Experience = %d; want 4", res.Experience)
	}
	if w.Alive(defender) {
		t.Fatal("expected defender to be removed after the kill")
	}
}

func TestAttackMissingComponents(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	w := ecs.NewWorld()
	attacker := w.CreateEntity() // no CCombat
	defender := w.CreateEntity()
	w.Add(defender, component.Combat{Attack: 3, Defense: 1})
	w.Add(defender, component.Health{Current: 10, Max: 10})

	res := Attack(w, rng, attacker, defender)
	if res.Damage != 0 || res.Killed {
		t.Errorf("expected zero-value result for missing attacker component; got %+v", res)
	}
	if hp := w.Get(defender, component.CHealth).(component.Health); hp.Current != 10 {
		t.Errorf("defender HP should be unchanged; got %d", hp.Current)
	}
}

func TestAttackMinDamageIsOne(t *testing.T) {
	// When atk ≤ def, base is clamped to 1: damage = 1 + rand.Intn(3) → [1,3].
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		w, attacker, defender := makeCombatants(2, 10, 1000)
		res := Attack(w, rng, attacker, defender)
		if res.Damage < 1 || res.Damage > 3 {
			t.Errorf("iteration %d: damage %d out of range [1,3] when atk<def", i, res.Damage)
		}
	}
}

func TestHitChanceBounds(t *testing.T) {
	cases := []struct{ level, defense, want int }{
		{1, 5, 48},
		{0, 100, 10},
		{50, 0, 95},
	}
	for _, tc := range cases {
		if got := hitChance(tc.level, tc.defense); got != tc.want {
			t.Errorf("hitChance(%d, %d) = %d; want %d", tc.level, tc.defense, got, tc.want)
		}
	}
}

func TestMonsterAttackMiss(t *testing.T) {
	w, p, log := newEncounter(20, 5, component.Status{})
	m := addMonster(w, "venus flytrap", 4, 1, component.Holds)
	ctx := &special.Context{World: w, Player: p, Depth: 1, Messages: log, Rand: fixedRand{v: 99}}

	res := MonsterAttack(ctx, m)
	if res.Hit {
		t.Fatal("a 99 roll should miss")
	}
	if hp := w.Get(p, component.CHealth).(component.Health); hp.Current != 20 {
		t.Errorf("hp = %d; a miss deals no damage", hp.Current)
	}
	if st := w.Get(p, component.CStatus).(component.Status); st.Held {
		t.Error("special abilities only follow a hit")
	}
	if ids := log.IDs(); len(ids) != 1 || ids[0] != message.MonsterMisses {
		t.Errorf("messages = %v; want [MonsterMisses]", ids)
	}
}

func TestMonsterAttackHitResolvesSpecial(t *testing.T) {
	w, p, log := newEncounter(20, 5, component.Status{})
	m := addMonster(w, "venus flytrap", 4, 1, component.Holds)
	ctx := &special.Context{World: w, Player: p, Depth: 1, Messages: log, Rand: fixedRand{v: 0}}

	res := MonsterAttack(ctx, m)
	if !res.Hit || res.Damage != 1 {
		t.Fatalf("result = %+v; want a 1 damage hit", res)
	}
	if st := w.Get(p, component.CStatus).(component.Status); !st.Held {
		t.Error("a landed hit should resolve the hold")
	}
	ids := log.IDs()
	if len(ids) != 2 || ids[0] != message.MonsterHits || ids[1] != message.BeingHeld {
		t.Errorf("messages = %v; want [MonsterHits BeingHeld]", ids)
	}
}

func TestMonsterAttackAlwaysHitsFrozenPlayer(t *testing.T) {
	w, p, log := newEncounter(1000, 100, component.Status{Frozen: true, SleepTurns: 3})
	m := addMonster(w, "ice monster", 2, 1, 0)
	ctx := &special.Context{World: w, Player: p, Depth: 1, Messages: log, Rand: fixedRand{v: 99}}
	for range 5 {
		if !MonsterAttack(ctx, m).Hit {
			t.Fatal("a frozen player must always be hit")
		}
	}
}

func TestMonsterAttackLethalHitSkipsSpecial(t *testing.T) {
	w, p, log := newEncounter(1, 0, component.Status{})
	m := addMonster(w, "leprechaun", 1, 1, component.StealsGold)
	ctx := &special.Context{World: w, Player: p, Depth: 1, Messages: log, Rand: fixedRand{v: 0}}

	MonsterAttack(ctx, m)
	if !PlayerDead(ctx) {
		t.Fatal("player should be dead")
	}
	if !w.Alive(m) {
		t.Error("no theft after a killing blow")
	}
	if g := w.Get(p, component.CProgression).(component.Progression).Gold; g != 40 {
		t.Errorf("gold = %d; want untouched 40", g)
	}
}

func TestMonsterAttackWithoutSink(t *testing.T) {
	w, p, _ := newEncounter(20, 5, component.Status{})
	m := addMonster(w, "venus flytrap", 4, 1, component.Holds)

	miss := &special.Context{World: w, Player: p, Depth: 1, Rand: fixedRand{v: 99}}
	if MonsterAttack(miss, m).Hit {
		t.Fatal("a 99 roll should miss")
	}
	hit := &special.Context{World: w, Player: p, Depth: 1, Rand: fixedRand{v: 0}}
	if !MonsterAttack(hit, m).Hit {
		t.Fatal("a 0 roll should hit")
	}
	if st := w.Get(p, component.CStatus).(component.Status); !st.Held {
		t.Error("effects still apply when messages are dropped")
	}
}
