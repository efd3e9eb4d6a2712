package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// decay fades a streamer out exponentially, reaching about -60dB at total
type decay struct {
	streamer beep.Streamer
	position int
	total    int
	rate     float64
}

func newDecay(s beep.Streamer, total int) *decay {
	rate := 0.0
	if total > 0 {
		rate = math.Log(1000) / float64(total)
	}
	return &decay{streamer: s, total: total, rate: rate}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	if d.position >= d.total {
		return 0, false
	}
	if rem := d.total - d.position; len(samples) > rem {
		samples = samples[:rem]
	}
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := math.Exp(-d.rate * float64(d.position))
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume scales linearly; zero or less is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// NewBump builds the wall contact cue: a decaying low sine with a fifth above
func NewBump(rate beep.SampleRate, freq float64, length time.Duration, vol float64) (beep.Streamer, error) {
	root, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("audio: bump tone: %w", err)
	}
	fifth, err := generators.SineTone(rate, freq*1.5)
	if err != nil {
		return nil, fmt.Errorf("audio: bump tone: %w", err)
	}

	n := rate.N(length)
	body := beep.Mix(root, newVolume(fifth, 0.4))
	return newVolume(beep.Take(n, newDecay(body, n)), vol), nil
}
