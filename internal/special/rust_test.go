package special

import (
	"testing"

	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/message"
)

func TestRustWeakensMetalArmor(t *testing.T) {
	f := newFixture(component.Rusts)
	*f.armor = component.Item{Name: "chain mail", Kind: component.KindArmor, Value: 3, Material: component.MaterialChain}

	Resolve(f.ctx(&scriptRand{t: t}), f.monster)

	if f.armor.Bonus != -1 {
		t.Errorf("Bonus = %d; want -1", f.armor.Bonus)
	}
	if n := f.msgs.count(message.ArmorWeakened); n != 1 || len(f.msgs.ids) != 1 {
		t.Errorf("expected exactly one ArmorWeakened message; got %v", f.msgs.ids)
	}
	if f.recomputes != 1 {
		t.Errorf("recomputes = %d; want 1", f.recomputes)
	}
}

func TestRustStopsAtArmorClassOne(t *testing.T) {
	cases := []struct {
		name         string
		value, bonus int
	}{
		{"base one", 1, 0},
		{"already rusted", 3, -2},
		{"below zero", 2, -4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(component.Rusts)
			f.armor.Value, f.armor.Bonus = tc.value, tc.bonus
			for range 5 {
				Resolve(f.ctx(&scriptRand{t: t}), f.monster)
			}
			if f.armor.Bonus != tc.bonus {
				t.Errorf("Bonus = %d; want unchanged %d", f.armor.Bonus, tc.bonus)
			}
			if len(f.msgs.ids) != 0 {
				t.Errorf("expected no messages, got %v", f.msgs.ids)
			}
		})
	}
}

func TestRustWearsDownToFloor(t *testing.T) {
	f := newFixture(component.Rusts)
	for range 10 {
		Resolve(f.ctx(&scriptRand{t: t}), f.monster)
	}
	if got := f.armor.ArmorClass(); got != 1 {
		t.Errorf("ArmorClass = %d; want 1 after repeated rust", got)
	}
	if n := f.msgs.count(message.ArmorWeakened); n != 3 {
		t.Errorf("ArmorWeakened fired %d times; want 3", n)
	}
}

func TestRustIgnoresLeather(t *testing.T) {
	f := newFixture(component.Rusts)
	f.armor.Material = component.MaterialLeather
	Resolve(f.ctx(&scriptRand{t: t}), f.monster)
	if f.armor.Bonus != 0 || len(f.msgs.ids) != 0 {
		t.Error("leather armor must not rust")
	}
}

func TestRustWithoutArmor(t *testing.T) {
	f := newFixture(component.Rusts)
	inv := f.inventory()
	inv.Armor = nil
	f.setInventory(inv)
	Resolve(f.ctx(&scriptRand{t: t}), f.monster)
	if len(f.msgs.ids) != 0 || f.recomputes != 0 {
		t.Error("rust with no armor worn must be a no-op")
	}
}

func TestRustBlockedByMaintainArmorNotifiesOnce(t *testing.T) {
	f := newFixture(component.Rusts)
	f.wearRing(component.RingMaintainArmor)

	for range 3 {
		Resolve(f.ctx(&scriptRand{t: t}), f.monster)
	}
	if f.armor.Bonus != 0 {
		t.Errorf("Bonus = %d; maintain armor should block rust", f.armor.Bonus)
	}
	if n := f.msgs.count(message.ArmorFlashed); n != 1 || len(f.msgs.ids) != 1 {
		t.Errorf("expected a single ArmorFlashed; got %v", f.msgs.ids)
	}
	if !f.monsterState().RustNotified {
		t.Error("monster should remember it has been notified")
	}
	if f.recomputes != 0 {
		t.Error("a blocked rust must not recompute stats")
	}
}

func TestRustBlockedByProtectedArmor(t *testing.T) {
	f := newFixture(component.Rusts)
	f.armor.Protected = true

	Resolve(f.ctx(&scriptRand{t: t}), f.monster)
	Resolve(f.ctx(&scriptRand{t: t}), f.monster)
	if f.armor.Bonus != 0 {
		t.Error("protected armor must not rust")
	}
	if !f.armor.Protected {
		t.Error("protection is not consumed")
	}
	if n := f.msgs.count(message.ArmorFlashed); n != 1 {
		t.Errorf("ArmorFlashed fired %d times; want 1", n)
	}

	// A different monster gets its own notification.
	other := f.addMonster("second rust monster", component.Rusts)
	Resolve(f.ctx(&scriptRand{t: t}), other)
	if n := f.msgs.count(message.ArmorFlashed); n != 2 {
		t.Errorf("ArmorFlashed fired %d times; want 2 after a second monster", n)
	}
}

func TestRustProtectionQueryOverride(t *testing.T) {
	f := newFixture(component.Rusts)
	ctx := f.ctx(&scriptRand{t: t})
	ctx.Rings = stubRings{maintain: true}
	Resolve(ctx, f.monster)
	if f.armor.Bonus != 0 {
		t.Error("injected protection query should be honoured")
	}
}

type stubRings struct{ maintain, sustain bool }

func (s stubRings) MaintainsArmor() bool   { return s.maintain }
func (s stubRings) SustainsStrength() bool { return s.sustain }
