package special

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/ecs"
	"dungeon-crawl/internal/message"
	"dungeon-crawl/internal/stats"
)

// drainLife saps hit points, strength, or both. Players with 30 or fewer
// max hp, or fewer than 10 hp, are not drained.
func drainLife(ctx *Context, _ ecs.EntityID) {
	if chance(ctx.Rand, 60) {
		return
	}
	hp, ok := ctx.World.Get(ctx.Player, component.CHealth).(component.Health)
	if !ok || hp.Max <= 30 || hp.Current < 10 {
		return
	}

	n := between(ctx.Rand, 1, 3)
	announced := false
	if n != 2 {
		hp.Current = max(1, hp.Current-1)
		hp.Max = max(1, hp.Max-1)
		ctx.World.Add(ctx.Player, hp)
		ctx.Show(message.FeelWeaker)
		announced = true
	}
	if n != 1 && !ctx.rings().SustainsStrength() {
		if str, ok := ctx.World.Get(ctx.Player, component.CStrength).(component.Strength); ok && str.Current > stats.MinStrength {
			str.Current--
			if chance(ctx.Rand, 50) {
				str.Max--
			}
			ctx.World.Add(ctx.Player, str)
		}
		ctx.recompute()
		if !announced {
			ctx.Show(message.FeelWeaker)
		}
	}
}

// dropLevel takes away one experience level above level 5, resetting
// experience to just under the new level's threshold and costing max hp.
func dropLevel(ctx *Context, _ ecs.EntityID) {
	if chance(ctx.Rand, 80) {
		return
	}
	prog, ok := ctx.World.Get(ctx.Player, component.CProgression).(component.Progression)
	if !ok || prog.Level <= 5 {
		return
	}
	hp, ok := ctx.World.Get(ctx.Player, component.CHealth).(component.Health)
	if !ok {
		return
	}

	target := prog.Level - 1
	prog.Experience = max(0, stats.MinExperience(target)-between(ctx.Rand, 9, 29))
	prog.Level = target
	ctx.World.Add(ctx.Player, prog)

	loss := between(ctx.Rand, 3, 10)
	hp.Max = max(1, hp.Max-loss)
	hp.Current -= loss
	if hp.Current < 1 {
		hp.Current = 1
	}
	// hp never exceeds max hp after the drop.
	if hp.Current > hp.Max {
		hp.Current = hp.Max
	}
	ctx.World.Add(ctx.Player, hp)

	ctx.Show(message.FeelWeaker)
	ctx.Show(message.LevelDown, target)
	ctx.recompute()
}
