package input

import (
	"time"

	"github.com/lixenwraith/wallwalk/player"
)

// Tracker turns discrete key events into held signals
//
// Terminals report presses and auto-repeats but never releases, so an action
// counts as held until a deadline. The first press gets a longer window to
// bridge the terminal's initial repeat delay; repeats extend by the short one.
type Tracker struct {
	initial  time.Duration
	repeat   time.Duration
	deadline [actionCount]time.Time
}

// NewTracker creates a tracker with the given first-press and repeat windows
func NewTracker(initial, repeat time.Duration) *Tracker {
	return &Tracker{initial: initial, repeat: repeat}
}

// Press records a key event for a at now; one-shot actions are ignored
func (t *Tracker) Press(a Action, now time.Time) {
	if !a.Held() {
		return
	}
	window := t.initial
	if t.Held(a, now) {
		window = t.repeat
	}
	t.deadline[a] = now.Add(window)
	t.deadline[a.opposite()] = time.Time{}
}

// Release clears a immediately
func (t *Tracker) Release(a Action) {
	if a < actionCount {
		t.deadline[a] = time.Time{}
	}
}

// Reset clears every held action
func (t *Tracker) Reset() {
	t.deadline = [actionCount]time.Time{}
}

// Held reports whether a is held at now
func (t *Tracker) Held(a Action, now time.Time) bool {
	if a >= actionCount {
		return false
	}
	d := t.deadline[a]
	return !d.IsZero() && now.Before(d)
}

// Snapshot builds the step input at now with frame delta dt
func (t *Tracker) Snapshot(now time.Time, dt time.Duration) player.Input {
	return player.Input{
		Forward:   t.Held(ActionForward, now),
		Back:      t.Held(ActionBack, now),
		Left:      t.Held(ActionLeft, now),
		Right:     t.Held(ActionRight, now),
		TurnLeft:  t.Held(ActionTurnLeft, now),
		TurnRight: t.Held(ActionTurnRight, now),
		DT:        dt.Seconds(),
	}
}
