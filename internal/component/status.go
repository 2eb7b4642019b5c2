package component

import "dungeon-crawl/internal/ecs"

// Status is the player's condition block.
type Status struct {
	Held          bool // constricted by a monster; cannot leave the floor
	Levitating    bool
	Frozen        bool
	SleepTurns    int // turns the player still loses while frozen
	LevitateTurns int
}

func (Status) Type() ecs.ComponentType { return CStatus }
