package ecs

// EntityID identifies a player, monster or other actor in a World.
// IDs are minted in increasing order, so sorting by ID gives spawn order.
type EntityID uint64

// NilEntity is never handed out by CreateEntity.
const NilEntity EntityID = 0

// ComponentType keys one component store inside a World.
type ComponentType uint8

// Component is implemented by every data struct stored in the world.
type Component interface {
	Type() ComponentType
}
