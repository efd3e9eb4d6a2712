package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Action is a semantic key binding
type Action uint8

const (
	ActionNone Action = iota

	// Held movement actions
	ActionForward
	ActionBack
	ActionLeft
	ActionRight
	ActionTurnLeft
	ActionTurnRight

	// One-shot actions
	ActionQuit
	ActionToggleView
	ActionCyclePolicy
	ActionToggleClip
	ActionToggleMute

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:        "none",
	ActionForward:     "forward",
	ActionBack:        "back",
	ActionLeft:        "left",
	ActionRight:       "right",
	ActionTurnLeft:    "turn-left",
	ActionTurnRight:   "turn-right",
	ActionQuit:        "quit",
	ActionToggleView:  "toggle-view",
	ActionCyclePolicy: "cycle-policy",
	ActionToggleClip:  "toggle-clip",
	ActionToggleMute:  "toggle-mute",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}

// Held reports whether a is a movement action tracked across frames
func (a Action) Held() bool {
	return a >= ActionForward && a <= ActionTurnRight
}

// opposite returns the action on the same axis, pressing one releases the other
func (a Action) opposite() Action {
	switch a {
	case ActionForward:
		return ActionBack
	case ActionBack:
		return ActionForward
	case ActionLeft:
		return ActionRight
	case ActionRight:
		return ActionLeft
	case ActionTurnLeft:
		return ActionTurnRight
	case ActionTurnRight:
		return ActionTurnLeft
	}
	return ActionNone
}

// specialKeys maps non-rune keys
var specialKeys = map[tcell.Key]Action{
	tcell.KeyEscape: ActionQuit,
	tcell.KeyCtrlC:  ActionQuit,
	tcell.KeyCtrlQ:  ActionQuit,
	tcell.KeyUp:     ActionForward,
	tcell.KeyDown:   ActionBack,
	tcell.KeyLeft:   ActionTurnLeft,
	tcell.KeyRight:  ActionTurnRight,
}

// runeKeys maps lower-cased runes: WASD moves and strafes, arrows turn
var runeKeys = map[rune]Action{
	'w': ActionForward,
	's': ActionBack,
	'a': ActionLeft,
	'd': ActionRight,
	'q': ActionTurnLeft,
	'e': ActionTurnRight,
	'm': ActionToggleView,
	'p': ActionCyclePolicy,
	'c': ActionToggleClip,
	'x': ActionToggleMute,
}

// Lookup resolves a key and rune pair from a tcell key event
func Lookup(key tcell.Key, r rune) Action {
	if key == tcell.KeyRune {
		return runeKeys[unicode.ToLower(r)]
	}
	return specialKeys[key]
}

// FromEvent resolves a tcell key event
func FromEvent(ev *tcell.EventKey) Action {
	return Lookup(ev.Key(), ev.Rune())
}
