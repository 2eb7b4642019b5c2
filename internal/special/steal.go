package special

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/ecs"
	"dungeon-crawl/internal/message"
)

// stealGold takes between 10 and 30 gold per floor of depth, capped at what
// the player carries, then the thief vanishes.
func stealGold(ctx *Context, monster ecs.EntityID) {
	prog, ok := ctx.World.Get(ctx.Player, component.CProgression).(component.Progression)
	if !ok || prog.Gold <= 0 || chance(ctx.Rand, 10) {
		return
	}
	depth := max(1, ctx.Depth)
	amount := min(prog.Gold, between(ctx.Rand, depth*10, depth*30))
	prog.Gold -= amount
	ctx.World.Add(ctx.Player, prog)
	ctx.Show(message.PurseLighter)
	Disappear(ctx, monster)
}

// stealItem takes one carried item that is neither the wielded weapon nor
// the worn armor. A thief that finds nothing it can take still flees.
func stealItem(ctx *Context, monster ecs.EntityID) {
	if chance(ctx.Rand, 15) {
		return
	}
	inv, ok := ctx.World.Get(ctx.Player, component.CInventory).(component.Inventory)
	if !ok || len(inv.Items) == 0 {
		Disappear(ctx, monster)
		return
	}
	candidates := inv.Removable()
	if len(candidates) == 0 {
		Disappear(ctx, monster)
		return
	}
	it := candidates[ctx.Rand.Intn(len(candidates))]
	inv.Remove(it)
	ctx.World.Add(ctx.Player, inv)
	ctx.Show(message.ItemStolen, it.DisplayName())
	if it.Kind == component.KindRing {
		ctx.recompute()
	}
	Disappear(ctx, monster)
}

// Disappear removes monster from the encounter and announces it. It
// reports whether the monster was present; later calls do nothing.
func Disappear(ctx *Context, monster ecs.EntityID) bool {
	name := monsterName(ctx.World, monster)
	if !ctx.World.DestroyEntity(monster) {
		return false
	}
	ctx.Show(message.MonsterVanished, name)
	return true
}
