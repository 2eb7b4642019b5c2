package factory

import (
	"dungeon-crawl/internal/bestiary"
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/ecs"
	"dungeon-crawl/internal/stats"
)

// Hero describes the player a run starts with.
type Hero struct {
	Level    int
	Strength int
	Gold     int
}

// StartingHero is a fresh level-1 adventurer.
var StartingHero = Hero{Level: 1, Strength: 16}

// baseHP is the max hp of a level-1 hero; each further level adds hpPerLevel.
const (
	baseHP     = 12
	hpPerLevel = 7
)

// MaxHPFor returns the max hp a hero of level starts with.
func MaxHPFor(level int) int {
	return baseHP + max(0, level-1)*hpPerLevel
}

// Kit returns the starting pack: a wielded mace, worn ring mail and some
// consumables. The returned inventory owns fresh items.
func Kit() component.Inventory {
	mace := &component.Item{Name: "mace", Kind: component.KindWeapon, Value: 4, Bonus: 1}
	mail := &component.Item{Name: "ring mail", Kind: component.KindArmor, Value: 4, Bonus: 1, Material: component.MaterialRingMail}
	return component.Inventory{
		Items: []*component.Item{
			mace,
			mail,
			{Name: "levitation", Kind: component.KindPotion},
			{Name: "levitation", Kind: component.KindPotion},
			{Name: "protect armor", Kind: component.KindScroll},
			{Name: "monster confusion", Kind: component.KindScroll},
			{Name: "sustain strength", Kind: component.KindRing, Ring: component.RingSustainStrength},
			{Name: "slime-mold", Kind: component.KindFood},
		},
		Capacity: 26,
		Weapon:   mace,
		Armor:    mail,
	}
}

// NewPlayer creates the player entity.
func NewPlayer(w *ecs.World, hero Hero) ecs.EntityID {
	level := max(1, hero.Level)
	hp := MaxHPFor(level)

	id := w.CreateEntity()
	w.Add(id, component.Health{Current: hp, Max: hp})
	w.Add(id, component.Strength{Current: hero.Strength, Max: hero.Strength})
	w.Add(id, component.Progression{Level: level, Experience: stats.MinExperience(level), Gold: hero.Gold})
	w.Add(id, component.Status{})
	w.Add(id, Kit())
	w.Add(id, component.TagPlayer{})
	stats.Recompute(w, id)
	return id
}

// NewMonster creates a monster entity from a bestiary entry.
func NewMonster(w *ecs.World, e bestiary.Entry) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Health{Current: e.HP, Max: e.HP})
	w.Add(id, component.Combat{Attack: e.Attack, Defense: e.Defense, Level: e.Level})
	w.Add(id, component.Monster{
		Name:       e.Name,
		Glyph:      e.Glyph,
		Abilities:  e.Abilities,
		Experience: e.Experience,
	})
	w.Add(id, component.TagMonster{})
	return id
}
