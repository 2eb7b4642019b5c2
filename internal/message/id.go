package message

// ID is a numeric key into the message catalog.
type ID uint16

// Special attacks.
const (
	ArmorWeakened ID = 100 + iota
	ArmorFlashed
	BeingHeld
	Frozen
	Stung
	FeelWeaker
	LevelDown
	PurseLighter
	ItemStolen
	MonsterVanished
)

// Melee and progression.
const (
	MonsterHits ID = 200 + iota
	MonsterMisses
	YouHit
	YouKill
	GoldFound
	LevelUp
	YouDie
)

// Arena flow.
const (
	Welcome ID = 300 + iota
	Descend
	StillHeld
	StillFrozen
	NoPotion
	Levitate
	LevitateEnds
	Thaw
	Released
	FloorCleared
	Wait
	NoTarget
	Target
	NoScroll
	ReadScroll
	ArmorShielded
	HandsGlow
	NoRing
	RingOn
	RingOff
	BoutOver
)
