package special

import (
	"testing"

	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/ecs"
	"dungeon-crawl/internal/message"
)

// scriptRand replays fixed draws and fails the test on any unplanned one.
type scriptRand struct {
	t      *testing.T
	floats []float64
	ints   []int
}

func (r *scriptRand) Float64() float64 {
	r.t.Helper()
	if len(r.floats) == 0 {
		r.t.Fatal("unexpected Float64 draw")
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptRand) Intn(n int) int {
	r.t.Helper()
	if len(r.ints) == 0 {
		r.t.Fatalf("unexpected Intn(%d) draw", n)
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v < 0 || v >= n {
		r.t.Fatalf("scripted draw %d out of range for Intn(%d)", v, n)
	}
	return v
}

func (r *scriptRand) assertDrained() {
	r.t.Helper()
	if len(r.floats) != 0 || len(r.ints) != 0 {
		r.t.Errorf("unused scripted draws: floats=%v ints=%v", r.floats, r.ints)
	}
}

// recorder is a message.Sink that keeps what it was shown.
type recorder struct {
	ids  []message.ID
	args [][]any
}

func (r *recorder) Show(id message.ID, args ...any) {
	r.ids = append(r.ids, id)
	r.args = append(r.args, args)
}

func (r *recorder) count(id message.ID) int {
	n := 0
	for _, x := range r.ids {
		if x == id {
			n++
		}
	}
	return n
}

type fixture struct {
	w          *ecs.World
	player     ecs.EntityID
	monster    ecs.EntityID
	msgs       *recorder
	recomputes int
	weapon     *component.Item
	armor      *component.Item
	potion     *component.Item
}

// newFixture builds a level 7 player with 40/40 hp, 16 strength, 100 gold,
// a wielded mace, worn ring mail (AC 4) and a potion, facing one monster.
func newFixture(abilities component.Ability) *fixture {
	f := &fixture{w: ecs.NewWorld(), msgs: &recorder{}}
	f.weapon = &component.Item{Name: "mace", Kind: component.KindWeapon, Value: 4}
	f.armor = &component.Item{Name: "ring mail", Kind: component.KindArmor, Value: 4, Material: component.MaterialRingMail}
	f.potion = &component.Item{Name: "levitation", Kind: component.KindPotion}

	f.player = f.w.CreateEntity()
	f.w.Add(f.player, component.TagPlayer{})
	f.w.Add(f.player, component.Health{Current: 40, Max: 40})
	f.w.Add(f.player, component.Strength{Current: 16, Max: 16})
	f.w.Add(f.player, component.Progression{Level: 7, Experience: 700, Gold: 100})
	f.w.Add(f.player, component.Status{})
	f.w.Add(f.player, component.Inventory{
		Items:  []*component.Item{f.weapon, f.armor, f.potion},
		Weapon: f.weapon,
		Armor:  f.armor,
	})

	f.monster = f.addMonster("test monster", abilities)
	return f
}

func (f *fixture) addMonster(name string, abilities component.Ability) ecs.EntityID {
	id := f.w.CreateEntity()
	f.w.Add(id, component.TagMonster{})
	f.w.Add(id, component.Monster{Name: name, Abilities: abilities})
	return id
}

func (f *fixture) ctx(r Rand) *Context {
	return &Context{
		World:    f.w,
		Player:   f.player,
		Depth:    1,
		Messages: f.msgs,
		Rand:     r,
		Recompute: func(*ecs.World, ecs.EntityID) {
			f.recomputes++
		},
	}
}

func (f *fixture) setInventory(inv component.Inventory) { f.w.Add(f.player, inv) }

func (f *fixture) wearRing(kind component.RingKind) {
	inv := f.inventory()
	ring := &component.Item{Name: "ring", Kind: component.KindRing, Ring: kind}
	inv.Items = append(inv.Items, ring)
	inv.LeftRing = ring
	f.setInventory(inv)
}

func (f *fixture) health() component.Health {
	return f.w.Get(f.player, component.CHealth).(component.Health)
}

func (f *fixture) strength() component.Strength {
	return f.w.Get(f.player, component.CStrength).(component.Strength)
}

func (f *fixture) progression() component.Progression {
	return f.w.Get(f.player, component.CProgression).(component.Progression)
}

func (f *fixture) status() component.Status {
	return f.w.Get(f.player, component.CStatus).(component.Status)
}

func (f *fixture) inventory() component.Inventory {
	return f.w.Get(f.player, component.CInventory).(component.Inventory)
}

func (f *fixture) monsterState() component.Monster {
	return f.w.Get(f.monster, component.CMonster).(component.Monster)
}
