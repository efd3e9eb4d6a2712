package geom

import "math"

// DefaultTolerance absorbs float error in PointOnSegment, in world units
const DefaultTolerance = 0.5

// Segment is an undirected wall edge between two distinct points
type Segment struct {
	P1, P2 Point
}

// Seg is shorthand for an unchecked Segment
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{P1: Point{x1, y1}, P2: Point{x2, y2}}
}

// NewSegment returns a validated segment
func NewSegment(p1, p2 Point) (Segment, error) {
	s := Segment{P1: p1, P2: p2}
	if err := s.Validate(); err != nil {
		return Segment{}, err
	}
	return s, nil
}

// Validate rejects non-finite coordinates and coincident endpoints
func (s Segment) Validate() error {
	if !s.P1.Finite() || !s.P2.Finite() {
		return ErrNonFinite
	}
	if s.P1 == s.P2 {
		return ErrDegenerateSegment
	}
	return nil
}

// Length returns the distance between the endpoints
func (s Segment) Length() float64 {
	return Distance(s.P1, s.P2)
}

// At returns the point at parameter t along P1→P2
func (s Segment) At(t float64) Point {
	return Lerp(s.P1, s.P2, t)
}

// Project returns the scalar projection t of p onto the infinite line through
// the segment and the corresponding point. ok is false for a zero-length segment.
func (s Segment) Project(p Point) (t float64, closest Point, ok bool) {
	d := s.P2.Sub(s.P1)
	lenSq := d.Dot(d)
	if lenSq == 0 {
		return 0, Point{}, false
	}
	t = p.Sub(s.P1).Dot(d) / lenSq
	return t, s.P1.Add(d.Scale(t)), true
}

// Normal returns the unit left normal of P1→P2, zero for a degenerate segment
func (s Segment) Normal() Point {
	d := s.P2.Sub(s.P1)
	l := d.Len()
	if l == 0 {
		return Point{}
	}
	return Point{-d.Y / l, d.X / l}
}

// DistanceTo returns the distance from p to the nearest point of the segment
func (s Segment) DistanceTo(p Point) float64 {
	t, _, ok := s.Project(p)
	if !ok {
		return Distance(s.P1, p)
	}
	t = math.Max(0, math.Min(1, t))
	return Distance(s.At(t), p)
}

// Translate shifts both endpoints in place
func (s *Segment) Translate(dx, dy float64) {
	s.P1.Translate(dx, dy)
	s.P2.Translate(dx, dy)
}

// Rotate rotates both endpoints about the origin
func (s *Segment) Rotate(angle float64) {
	s.P1.Rotate(angle)
	s.P2.Rotate(angle)
}

// RotateWith rotates both endpoints about the origin using mode
func (s *Segment) RotateWith(angle float64, mode RotationMode) {
	s.P1.RotateWith(angle, mode)
	s.P2.RotateWith(angle, mode)
}

// PointOnSegment reports whether p lies on s within tolerance, using the
// triangle inequality: |d(P1,p) + d(p,P2) - d(P1,P2)| <= tolerance.
// Points off the ends of the segment fail even when colinear.
func PointOnSegment(s Segment, p Point, tolerance float64) bool {
	d1 := Distance(s.P1, p)
	d2 := Distance(p, s.P2)
	return math.Abs(d1+d2-s.Length()) <= tolerance
}
