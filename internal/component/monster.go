package component

import (
	"fmt"
	"strings"

	"dungeon-crawl/internal/ecs"
)

// Ability is a set of monster special-ability flags.
type Ability uint16

const (
	Confused Ability = 1 << iota
	Rusts
	Holds
	Freezes
	Stings
	DrainsLife
	DropsLevel
	StealsGold
	StealsItem
)

// abilityNames lists every flag in canonical order.
var abilityNames = []struct {
	flag Ability
	name string
}{
	{Confused, "confused"},
	{Rusts, "rusts"},
	{Holds, "holds"},
	{Freezes, "freezes"},
	{Stings, "stings"},
	{DrainsLife, "drains_life"},
	{DropsLevel, "drops_level"},
	{StealsGold, "steals_gold"},
	{StealsItem, "steals_item"},
}

// Has reports whether every flag in f is set.
func (a Ability) Has(f Ability) bool { return f != 0 && a&f == f }

// With returns a with f added.
func (a Ability) With(f Ability) Ability { return a | f }

// Without returns a with f cleared.
func (a Ability) Without(f Ability) Ability { return a &^ f }

func (a Ability) String() string {
	if a == 0 {
		return "none"
	}
	var parts []string
	for _, n := range abilityNames {
		if a.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseAbility maps a single flag name (case-insensitive, '-' or '_') to its flag.
func ParseAbility(name string) (Ability, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for _, n := range abilityNames {
		if n.name == key {
			return n.flag, nil
		}
	}
	return 0, fmt.Errorf("unknown ability %q", name)
}

// ParseAbilities combines a list of flag names into one set.
func ParseAbilities(names []string) (Ability, error) {
	var set Ability
	for _, name := range names {
		f, err := ParseAbility(name)
		if err != nil {
			return 0, err
		}
		set |= f
	}
	return set, nil
}

// Monster identifies a monster and carries its special abilities.
type Monster struct {
	Name       string
	Glyph      string
	Abilities  Ability
	Experience int // awarded to the player on a kill
	// RustNotified is set the first time this monster's rust is
	// neutralised and is never cleared for the monster's lifetime.
	RustNotified bool
}

func (Monster) Type() ecs.ComponentType { return CMonster }
