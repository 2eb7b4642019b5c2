package stats

// MaxLevel is the highest experience level.
const MaxLevel = 21

// levelPoints[i] is the experience needed to reach level i+2.
var levelPoints = [MaxLevel - 1]int{
	10, 20, 40, 80, 160, 320, 640, 1300, 2600, 5200,
	10000, 20000, 40000, 80000, 160000, 320000, 1000000,
	3333333, 6666666, 10000000,
}

// MinExperience returns the experience a player needs to be at level.
func MinExperience(level int) int {
	if level <= 1 {
		return 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return levelPoints[level-2]
}

// LevelFor returns the level reached with exp experience points.
func LevelFor(exp int) int {
	level := 1
	for level < MaxLevel && exp >= levelPoints[level-1] {
		level++
	}
	return level
}
