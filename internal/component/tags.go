package component

import "dungeon-crawl/internal/ecs"

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }

// TagMonster marks a monster taking part in the current encounter.
type TagMonster struct{}

func (TagMonster) Type() ecs.ComponentType { return CTagMonster }
