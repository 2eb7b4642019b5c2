package component

import "dungeon-crawl/internal/ecs"

// Component type keys. Values only need to be unique within a World.
const (
	CHealth ecs.ComponentType = iota + 1
	CStrength
	CProgression
	CStatus
	CInventory
	CCombat
	CMonster
	CTagPlayer
	CTagMonster
)
