// Package audio plays the collision cue through beep's speaker. Every call is
// safe without a working audio device: the manager stays uninitialized and
// playback becomes a no-op.
package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/wallwalk/parameter"
)

// maxVoices caps overlapping cues in the mixer
const maxVoices = 4

// SoundManager owns the mixer feeding the speaker
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	master      *effects.Volume
	initialized bool
	muted       bool
}

// NewSoundManager creates a manager, optionally starting muted
func NewSoundManager(muted bool) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		mixer:  mixer,
		master: newVolume(mixer, 1),
		muted:  muted,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	sm.master.Silent = sm.muted
	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup drops pending cues and stops feeding the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	sm.mixer.Clear()
	sm.initialized = false
}

// PlayBump queues one wall contact cue
func (sm *SoundManager) PlayBump() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	bump, err := NewBump(sm.rate, parameter.BumpFrequency, parameter.BumpDuration, parameter.BumpVolume)
	if err != nil {
		return
	}

	speaker.Lock()
	if sm.mixer.Len() < maxVoices {
		sm.mixer.Add(bump)
	}
	speaker.Unlock()
}

// SetMuted silences output without tearing the device down
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.master.Silent = muted
	if muted {
		sm.mixer.Clear()
	}
	speaker.Unlock()
}

// ToggleMute flips the mute state and returns the new one
func (sm *SoundManager) ToggleMute() bool {
	muted := !sm.Muted()
	sm.SetMuted(muted)
	return muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}
