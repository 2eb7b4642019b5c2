// Package stats derives the player's combat numbers from strength and
// equipment, answers ring-protection queries and holds the experience table.
package stats

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/ecs"
)

// MinStrength is the floor below which strength loss never goes.
const MinStrength = 3

// strengthBonus is the melee damage adjustment for a strength score.
func strengthBonus(str int) int {
	switch {
	case str <= 6:
		return -1
	case str <= 15:
		return 0
	case str <= 17:
		return 1
	}
	return 2
}

// Recompute rebuilds the player's Combat component from strength, level,
// wielded weapon and worn armor.
func Recompute(w *ecs.World, id ecs.EntityID) {
	c := component.Combat{Attack: 1}
	if s, ok := w.Get(id, component.CStrength).(component.Strength); ok {
		c.Attack += strengthBonus(s.Current)
	}
	if p, ok := w.Get(id, component.CProgression).(component.Progression); ok {
		c.Level = p.Level
	}
	if inv, ok := w.Get(id, component.CInventory).(component.Inventory); ok {
		if inv.Weapon != nil {
			c.Attack += inv.Weapon.Value + inv.Weapon.Bonus
		}
		if inv.Armor != nil {
			c.Defense = inv.Armor.ArmorClass()
		}
	}
	if c.Attack < 1 {
		c.Attack = 1
	}
	if c.Defense < 0 {
		c.Defense = 0
	}
	w.Add(id, c)
}

// Protection reports which degradation effects the player's rings negate.
type Protection struct {
	MaintainArmor   bool
	SustainStrength bool
}

func (p Protection) MaintainsArmor() bool   { return p.MaintainArmor }
func (p Protection) SustainsStrength() bool { return p.SustainStrength }

// RingsOf inspects the rings the player is wearing.
func RingsOf(w *ecs.World, id ecs.EntityID) Protection {
	var p Protection
	inv, ok := w.Get(id, component.CInventory).(component.Inventory)
	if !ok {
		return p
	}
	for _, r := range inv.Worn() {
		switch r.Ring {
		case component.RingMaintainArmor:
			p.MaintainArmor = true
		case component.RingSustainStrength:
			p.SustainStrength = true
		}
	}
	return p
}

// RingQuery answers protection questions against the live inventory, so
// a ring stolen mid-resolution stops protecting immediately.
type RingQuery struct {
	World  *ecs.World
	Player ecs.EntityID
}

func (q RingQuery) MaintainsArmor() bool   { return RingsOf(q.World, q.Player).MaintainArmor }
func (q RingQuery) SustainsStrength() bool { return RingsOf(q.World, q.Player).SustainStrength }
