package component

import "dungeon-crawl/internal/ecs"

type Health struct {
	Current, Max int
}

func (Health) Type() ecs.ComponentType { return CHealth }

// Strength holds the player's current and maximum strength.
type Strength struct {
	Current, Max int
}

func (Strength) Type() ecs.ComponentType { return CStrength }

// Progression tracks experience level, experience points and carried gold.
type Progression struct {
	Level      int
	Experience int
	Gold       int
}

func (Progression) Type() ecs.ComponentType { return CProgression }
