package system

import (
	"dungeon-crawl/internal/component"
	"dungeon-crawl/internal/ecs"
)

// StatusChange reports which conditions ended during a tick.
type StatusChange struct {
	Thawed   bool
	Landed   bool
	Released bool
}

// TickStatus advances the player's timed conditions at the end of a turn.
// Sleep is not counted here; see LoseTurn. A hold ends once no monster
// able to hold remains in the encounter.
func TickStatus(w *ecs.World, player ecs.EntityID) StatusChange {
	var ch StatusChange
	st, ok := w.Get(player, component.CStatus).(component.Status)
	if !ok {
		return ch
	}
	if st.Frozen && st.SleepTurns == 0 {
		st.Frozen = false
		ch.Thawed = true
	}
	if st.LevitateTurns > 0 {
		st.LevitateTurns--
		if st.LevitateTurns == 0 && st.Levitating {
			st.Levitating = false
			ch.Landed = true
		}
	}
	if st.Held && !holderPresent(w) {
		st.Held = false
		ch.Released = true
	}
	w.Add(player, st)
	return ch
}

// LoseTurn spends one of a frozen player's sleep turns and reports whether
// the player thawed. Call it only for a turn the player actually lost.
func LoseTurn(w *ecs.World, player ecs.EntityID) bool {
	st, ok := w.Get(player, component.CStatus).(component.Status)
	if !ok || !st.Frozen {
		return false
	}
	if st.SleepTurns > 0 {
		st.SleepTurns--
	}
	thawed := st.SleepTurns == 0
	if thawed {
		st.Frozen = false
	}
	w.Add(player, st)
	return thawed
}

// Asleep reports whether the player loses this turn.
func Asleep(w *ecs.World, player ecs.EntityID) bool {
	st, _ := w.Get(player, component.CStatus).(component.Status)
	return st.Frozen && st.SleepTurns > 0
}

func holderPresent(w *ecs.World) bool {
	for _, id := range w.Query(component.CTagMonster, component.CMonster) {
		if w.Get(id, component.CMonster).(component.Monster).Abilities.Has(component.Holds) {
			return true
		}
	}
	return false
}
