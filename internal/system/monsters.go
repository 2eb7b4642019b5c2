package system

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/special"
)

// ProcessMonsters gives every monster in the encounter one attack on the
// player, in spawn order, and returns the results. Monsters that vanish
// mid-turn are skipped and the turn stops once the player falls.
func ProcessMonsters(ctx *special.Context) []HitResult {
	var hits []HitResult
	for _, id := range ctx.World.Query(component.CTagMonster, component.CMonster) {
		if !ctx.World.Alive(id) {
			continue
		}
		if PlayerDead(ctx) {
			break
		}
		hits = append(hits, MonsterAttack(ctx, id))
	}
	return hits
}

// PlayerDead reports whether the player has no hit points left.
func PlayerDead(ctx *special.Context) bool {
	hp, ok := ctx.World.Get(ctx.Player, component.CHealth).(component.Health)
	return !ok || hp.Current <= 0
}
