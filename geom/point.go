// Package geom holds the float64 plane primitives shared by the world,
// collision and view stages. Coordinates are world-relative: the player is
// always at the origin.
package geom

import (
	"errors"
	"math"
)

var (
	// ErrDegenerateSegment is returned for a segment whose endpoints coincide
	ErrDegenerateSegment = errors.New("geom: degenerate segment")
	// ErrNonFinite is returned for a coordinate that is NaN or infinite
	ErrNonFinite = errors.New("geom: non-finite coordinate")
)

// Point is a position or a displacement in the world frame
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p+q
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p*s
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Neg returns -p
func (p Point) Neg() Point { return Point{-p.X, -p.Y} }

// Dot returns the dot product of p and q
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Len returns the Euclidean length of p as a vector
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Finite reports whether both coordinates are finite
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Near reports whether p and q are within eps on both axes
func (p Point) Near(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// Translate shifts p in place
func (p *Point) Translate(dx, dy float64) {
	p.X += dx
	p.Y += dy
}

// Rotate rotates p in place about the origin, counter-clockwise for positive
// angle in a y-up frame. Both outputs are computed from the pre-rotation pair.
func (p *Point) Rotate(angle float64) {
	sin, cos := math.Sincos(angle)
	x, y := p.X, p.Y
	p.X = x*cos - y*sin
	p.Y = x*sin + y*cos
}

// RotateSequential reproduces the legacy rotation that computes the new y
// from the already-rotated x. It is not an isometry (area shrinks by cos² per
// call); kept selectable for compatibility runs.
func (p *Point) RotateSequential(angle float64) {
	sin, cos := math.Sincos(angle)
	p.X = p.X*cos - p.Y*sin
	p.Y = p.X*sin + p.Y*cos
}

// RotateWith rotates p using the given mode
func (p *Point) RotateWith(angle float64, mode RotationMode) {
	if mode == RotateSequential {
		p.RotateSequential(angle)
		return
	}
	p.Rotate(angle)
}

// Distance returns the Euclidean distance between a and b
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Lerp returns a + (b-a)*t
func Lerp(a, b Point, t float64) Point {
	return Point{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}
