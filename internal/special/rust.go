package special

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/ecs"
	"dungeon-crawl/internal/message"
)

// rust lowers the enchantment of the player's worn armor by one.
// Armor at AC 1 or below, and leather, are unaffected. A maintain-armor
// ring or protected armor blocks the rust; the monster announces the block
// only the first time.
func rust(ctx *Context, monster ecs.EntityID) {
	inv, ok := ctx.World.Get(ctx.Player, component.CInventory).(component.Inventory)
	if !ok || inv.Armor == nil {
		return
	}
	armor := inv.Armor
	if armor.ArmorClass() <= 1 || !armor.Material.Rusts() {
		return
	}
	if ctx.rings().MaintainsArmor() || armor.Protected {
		m, ok := ctx.World.Get(monster, component.CMonster).(component.Monster)
		if ok && !m.RustNotified {
			m.RustNotified = true
			ctx.World.Add(monster, m)
			ctx.Show(message.ArmorFlashed)
		}
		return
	}
	armor.Bonus--
	ctx.Show(message.ArmorWeakened)
	ctx.recompute()
}
