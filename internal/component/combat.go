package component

import "dungeon-crawl/internal/ecs"

// Combat holds the numbers melee resolution works with. For the player it
// is derived from strength and equipment by stats.Recompute.
type Combat struct {
	Attack  int
	Defense int
	Level   int // monster level, used for to-hit rolls
}

func (Combat) Type() ecs.ComponentType { return CCombat }
