package parameter

import "time"

// Audio settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// BumpFrequency is the base pitch of the wall contact cue
	BumpFrequency = 90.0

	// BumpDuration is the length of the wall contact cue
	BumpDuration = 120 * time.Millisecond

	// BumpVolume is the peak amplitude of the cue
	BumpVolume = 0.35
)
