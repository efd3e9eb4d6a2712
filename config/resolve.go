package config

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/wallwalk/collision"
	"github.com/lixenwraith/wallwalk/geom"
	"github.com/lixenwraith/wallwalk/player"
	"github.com/lixenwraith/wallwalk/view"
	"github.com/lixenwraith/wallwalk/world"
)

// Settings is a validated Config with names parsed into typed values
type Settings struct {
	Agent      player.Agent
	Collision  collision.Config
	ClipPolicy view.ClipPolicy
	Mode       view.Mode
	WallHeight float64
	MapScale   float64
	Rotation   geom.RotationMode
	Walls      []geom.Segment
	Audio      bool
	Debug      bool
	FPS        int
}

// Resolve validates every section and reports all failures together
func (c Config) Resolve() (Settings, error) {
	var errs []error
	s := Settings{
		Agent: player.Agent{
			Radius:    c.Agent.Radius,
			Speed:     c.Agent.Speed,
			ClipDepth: c.Agent.ClipDepth,
			TurnRate:  c.Agent.TurnRate,
		},
		WallHeight: c.View.WallHeight,
		MapScale:   c.View.MapScale,
		Audio:      c.Audio.Enabled,
		Debug:      c.Debug,
		FPS:        c.FPS,
	}

	if _, err := player.NewAgent(s.Agent); err != nil {
		errs = append(errs, err)
	}

	policy, err := collision.ParsePolicy(c.Collision.Policy)
	if err != nil {
		errs = append(errs, err)
	}
	s.Collision = collision.Config{
		Tolerance:  c.Collision.Tolerance,
		Damping:    c.Collision.Damping,
		Policy:     policy,
		Iterations: c.Collision.Iterations,
	}
	if err := s.Collision.Validate(); err != nil {
		errs = append(errs, err)
	}

	if s.ClipPolicy, err = view.ParseClipPolicy(c.View.ClipPolicy); err != nil {
		errs = append(errs, err)
	}
	if s.Mode, err = view.ParseMode(c.View.Mode); err != nil {
		errs = append(errs, err)
	}
	if !(s.WallHeight > 0) {
		errs = append(errs, fmt.Errorf("wall height %v must be > 0", s.WallHeight))
	}
	if !(s.MapScale > 0) {
		errs = append(errs, fmt.Errorf("map scale %v must be > 0", s.MapScale))
	}
	if s.FPS < 1 || s.FPS > 240 {
		errs = append(errs, fmt.Errorf("fps %d must be in [1, 240]", s.FPS))
	}

	if s.Rotation, err = geom.ParseRotationMode(c.World.Rotation); err != nil {
		errs = append(errs, err)
	}
	if len(c.World.Walls) > 0 {
		s.Walls = make([]geom.Segment, len(c.World.Walls))
		for i, w := range c.World.Walls {
			s.Walls[i] = geom.Seg(w[0], w[1], w[2], w[3])
		}
		if _, err := world.New(s.Walls); err != nil {
			errs = append(errs, err)
		}
	} else {
		s.Walls = world.DefaultLayout()
	}

	if len(errs) > 0 {
		return s, fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return s, nil
}
