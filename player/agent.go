// Package player holds the agent tunables and the per-step movement pipeline
package player

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/wallwalk/collision"
	"github.com/lixenwraith/wallwalk/geom"
	"github.com/lixenwraith/wallwalk/parameter"
	"github.com/lixenwraith/wallwalk/world"
)

// ErrInvalidAgent is wrapped by every NewAgent validation failure
var ErrInvalidAgent = errors.New("player: invalid agent")

// Agent is the player's collision circle and movement tuning
// Its position is always the origin of the world frame
type Agent struct {
	Radius    float64 // collision circle radius, world units
	Speed     float64 // world units per second
	ClipDepth float64 // near-plane forward distance, world units
	TurnRate  float64 // radians per second
}

// DefaultAgent returns the compiled-in tuning
func DefaultAgent() Agent {
	return Agent{
		Radius:    parameter.AgentRadius,
		Speed:     parameter.AgentSpeed,
		ClipDepth: parameter.AgentClipDepth,
		TurnRate:  parameter.AgentTurnRate,
	}
}

// NewAgent validates a and returns a copy
func NewAgent(a Agent) (*Agent, error) {
	switch {
	case !(a.Radius > 0) || math.IsInf(a.Radius, 0):
		return nil, fmt.Errorf("%w: radius %v must be > 0", ErrInvalidAgent, a.Radius)
	case !(a.ClipDepth > 0) || math.IsInf(a.ClipDepth, 0):
		return nil, fmt.Errorf("%w: clip depth %v must be > 0", ErrInvalidAgent, a.ClipDepth)
	case !(a.Speed >= 0) || math.IsInf(a.Speed, 0):
		return nil, fmt.Errorf("%w: speed %v must be >= 0", ErrInvalidAgent, a.Speed)
	case !(a.TurnRate >= 0) || math.IsInf(a.TurnRate, 0):
		return nil, fmt.Errorf("%w: turn rate %v must be >= 0", ErrInvalidAgent, a.TurnRate)
	}
	return &a, nil
}

// Velocity maps held directions to the world translation for this step
// Later keys override earlier ones on the same axis: Right over Left,
// Back over Forward. Negative or non-finite dt yields no motion.
func (a *Agent) Velocity(in Input) geom.Point {
	dt := in.dt()
	var v geom.Point
	if in.Left {
		v.X = a.Speed
	}
	if in.Right {
		v.X = -a.Speed
	}
	if in.Forward {
		v.Y = a.Speed
	}
	if in.Back {
		v.Y = -a.Speed
	}
	return v.Scale(dt)
}

// Turn returns the turn angle for this step, negative for TurnLeft
// World.Rotate applies the opposite rotation to the walls
func (a *Agent) Turn(in Input) float64 {
	var dir float64
	if in.TurnLeft {
		dir = -1
	}
	if in.TurnRight {
		dir = 1
	}
	return dir * a.TurnRate * in.dt()
}

// StepResult reports what one Step did
type StepResult struct {
	// Proposed is the pre-collision world velocity
	Proposed geom.Point
	// Velocity is the post-collision world velocity that was applied
	Velocity geom.Point
	// Turn is the angle passed to World.Rotate
	Turn     float64
	Blocked  bool
	Contacts int
}

// Step runs one simulation step in fixed order: input to velocity, collision
// against pre-transform walls, then translate and rotate the world
func (a *Agent) Step(in Input, w *world.World, r *collision.Resolver) StepResult {
	proposed := a.Velocity(in)
	turn := a.Turn(in)

	res := r.Resolve(a.Radius, proposed, w.Segments())

	w.Translate(res.Velocity.X, res.Velocity.Y)
	if turn != 0 {
		w.Rotate(turn)
	}

	return StepResult{
		Proposed: proposed,
		Velocity: res.Velocity,
		Turn:     turn,
		Blocked:  res.Blocked,
		Contacts: len(res.Contacts),
	}
}
