package component

import (
	"fmt"

	"dungeon-crawl/internal/ecs"
)

// ItemKind categorises carried items.
type ItemKind uint8

const (
	KindWeapon ItemKind = iota
	KindArmor
	KindRing
	KindPotion
	KindScroll
	KindFood
)

// Material is the armor material category.
type Material uint8

const (
	MaterialLeather Material = iota
	MaterialRingMail
	MaterialScale
	MaterialChain
	MaterialBanded
	MaterialSplint
	MaterialPlate
)

// Rusts reports whether armor of this material can be degraded by rust.
func (m Material) Rusts() bool { return m != MaterialLeather }

// RingKind names the effect of a ring.
type RingKind uint8

const (
	RingNone RingKind = iota
	RingMaintainArmor
	RingSustainStrength
	RingRegeneration
)

// Item is one carried object. Items are referenced by pointer; two items
// with identical fields are still distinct.
type Item struct {
	Name      string
	Kind      ItemKind
	Value     int // base armor class, or weapon damage
	Bonus     int // enchantment; rust lowers it and it may go negative
	Material  Material
	Protected bool // armor shielded from rust by an outside effect
	Ring      RingKind
}

// ArmorClass is the armor's effective protection, Value + Bonus.
func (it *Item) ArmorClass() int { return it.Value + it.Bonus }

// DisplayName renders the item the way the message log refers to it.
func (it *Item) DisplayName() string {
	switch it.Kind {
	case KindArmor:
		return fmt.Sprintf("%+d %s [%d]", it.Bonus, it.Name, it.ArmorClass())
	case KindWeapon:
		return fmt.Sprintf("%+d %s", it.Bonus, it.Name)
	case KindRing:
		return "ring of " + it.Name
	case KindPotion:
		return "potion of " + it.Name
	case KindScroll:
		return "scroll of " + it.Name
	}
	return it.Name
}

// Inventory is the player's pack. Equipped items are also members of Items.
type Inventory struct {
	Items     []*Item
	Capacity  int
	Armor     *Item
	Weapon    *Item
	LeftRing  *Item
	RightRing *Item
}

func (Inventory) Type() ecs.ComponentType { return CInventory }

// Contains reports whether it is carried, by identity.
func (inv *Inventory) Contains(it *Item) bool {
	for _, x := range inv.Items {
		if x == it {
			return true
		}
	}
	return false
}

// Remove drops it from the pack by identity, unequipping it if needed.
// It reports whether the item was carried.
func (inv *Inventory) Remove(it *Item) bool {
	for i, x := range inv.Items {
		if x != it {
			continue
		}
		inv.Items = append(inv.Items[:i:i], inv.Items[i+1:]...)
		switch it {
		case inv.Armor:
			inv.Armor = nil
		case inv.Weapon:
			inv.Weapon = nil
		case inv.LeftRing:
			inv.LeftRing = nil
		case inv.RightRing:
			inv.RightRing = nil
		}
		return true
	}
	return false
}

// Removable returns the carried items other than the wielded weapon and
// the worn armor.
func (inv *Inventory) Removable() []*Item {
	var out []*Item
	for _, it := range inv.Items {
		if it == inv.Weapon || it == inv.Armor {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Worn returns the rings currently on the player's hands.
func (inv *Inventory) Worn() []*Item {
	var out []*Item
	for _, r := range []*Item{inv.LeftRing, inv.RightRing} {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}
