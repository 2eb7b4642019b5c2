package arena

import "github.com/gdamore/tcell/v2"

// Action is a player-requested arena action.
type Action uint8

const (
	ActionNone Action = iota
	ActionAttack
	ActionNextTarget
	ActionWait
	ActionQuaff
	ActionRead
	ActionRing
	ActionDescend
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:       "none",
	ActionAttack:     "attack",
	ActionNextTarget: "next-target",
	ActionWait:       "wait",
	ActionQuaff:      "quaff",
	ActionRead:       "read",
	ActionRing:       "ring",
	ActionDescend:    "descend",
	ActionQuit:       "quit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// keyToAction maps a tcell key event to an arena action.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEnter:
		return ActionAttack
	case tcell.KeyTab:
		return ActionNextTarget
	case tcell.KeyEscape:
		return ActionQuit
	}

	switch ev.Rune() {
	case 'a', 'f', ' ':
		return ActionAttack
	case 't':
		return ActionNextTarget
	case '.', 's':
		return ActionWait
	case 'q':
		return ActionQuaff
	case 'r':
		return ActionRead
	case 'P', 'R':
		return ActionRing
	case '>':
		return ActionDescend
	case 'Q':
		return ActionQuit
	}
	return ActionNone
}
