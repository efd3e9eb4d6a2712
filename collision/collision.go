// Package collision resolves a circular agent at the origin against wall
// segments. All positions are in the world frame, where the agent's proposed
// position after a step is the negated world velocity.
package collision

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/wallwalk/geom"
	"github.com/lixenwraith/wallwalk/parameter"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure
var ErrInvalidConfig = errors.New("collision: invalid config")

// Config tunes contact detection and resolution
type Config struct {
	// Tolerance is passed to geom.PointOnSegment to bound contacts to the segment
	Tolerance float64
	// Damping divides offsets under PolicyLastWins and PolicySum
	Damping float64
	Policy  Policy
	// Iterations bounds PolicyIterative passes
	Iterations int
}

// DefaultConfig returns the compiled-in tuning
func DefaultConfig() Config {
	return Config{
		Tolerance:  parameter.CollisionTolerance,
		Damping:    parameter.CollisionDamping,
		Policy:     PolicyLastWins,
		Iterations: parameter.CollisionIterations,
	}
}

// Validate checks ranges
func (c Config) Validate() error {
	switch {
	case math.IsNaN(c.Tolerance) || c.Tolerance < 0:
		return fmt.Errorf("%w: tolerance %v must be >= 0", ErrInvalidConfig, c.Tolerance)
	case math.IsNaN(c.Damping) || c.Damping <= 0:
		return fmt.Errorf("%w: damping %v must be > 0", ErrInvalidConfig, c.Damping)
	case int(c.Policy) >= len(policyNames):
		return fmt.Errorf("%w: policy %v", ErrInvalidConfig, c.Policy)
	case c.Policy == PolicyIterative && c.Iterations < 1:
		return fmt.Errorf("%w: iterations %d must be >= 1", ErrInvalidConfig, c.Iterations)
	}
	return nil
}

// Contact describes one wall overlapping the agent's proposed position
type Contact struct {
	// Index of the segment in the slice passed to Resolve, -1 from Check
	Index   int
	Segment geom.Segment
	// Closest is the nearest point on the segment's line to the proposed position
	Closest geom.Point
	// Offset is Closest minus the proposed position, not normalised
	Offset geom.Point
	// Distance is |Offset|, always < radius for a reported contact
	Distance float64
}

// PushOut returns the minimal displacement moving the proposed position to
// exactly radius from Closest, pointing away from the wall. A position lying
// on the wall is pushed along the segment's left normal.
func (c Contact) PushOut(radius float64) geom.Point {
	if c.Distance == 0 {
		return c.Segment.Normal().Scale(radius)
	}
	away := c.Offset.Neg()
	return away.Scale((radius - c.Distance) / c.Distance)
}

// Check tests a circle of radius at proj against s
//
// The closest point is taken on the infinite line and then bounded with
// geom.PointOnSegment rather than by clamping t, so contacts within
// tolerance of an endpoint may be missed or accepted. Corners are therefore
// not rounded: a circle touching only an endpoint reports no contact.
func Check(radius float64, proj geom.Point, s geom.Segment, tolerance float64) (Contact, bool) {
	length := s.Length()
	if length == 0 {
		return Contact{}, false
	}

	_, closest, ok := s.Project(proj)
	if !ok || !geom.PointOnSegment(s, closest, tolerance) {
		return Contact{}, false
	}

	dist := geom.Distance(closest, proj)
	if !(dist < radius) {
		return Contact{}, false
	}

	return Contact{
		Index:    -1,
		Segment:  s,
		Closest:  closest,
		Offset:   closest.Sub(proj),
		Distance: dist,
	}, true
}
