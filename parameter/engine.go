package parameter

import "time"

// Game loop timing
const (
	// DefaultFPS is the target frame rate
	DefaultFPS = 60

	// MaxFrameDelta caps dt after a stall; at default speed a capped step
	// stays shorter than the agent's diameter
	MaxFrameDelta = 50 * time.Millisecond

	// EventQueueSize is the buffered capacity between the event pump and the loop
	EventQueueSize = 100

	// KeyInitialHold is how long a first key press counts as held; it must
	// outlast the terminal's auto-repeat delay since no key-up events arrive
	KeyInitialHold = 350 * time.Millisecond

	// KeyRepeatHold extends a held key on each auto-repeat event
	KeyRepeatHold = 120 * time.Millisecond
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "wallwalk.log"
)
