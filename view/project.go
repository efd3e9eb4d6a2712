package view

import (
	"math"

	"github.com/lixenwraith/wallwalk/geom"
)

// Column is one projected wall edge: a vertical from Top to Bottom at X
type Column struct {
	X, Top, Bottom float64
}

// Slab is a projected wall face bounded by two columns
type Slab struct {
	A, B Column
}

// Lines returns the slab outline: both verticals, then top and bottom edges
func (s Slab) Lines(c Color, width float64) [4]Line {
	return [4]Line{
		{A: Point{s.A.X, s.A.Top}, B: Point{s.A.X, s.A.Bottom}, Color: c, Width: width},
		{A: Point{s.B.X, s.B.Top}, B: Point{s.B.X, s.B.Bottom}, Color: c, Width: width},
		{A: Point{s.A.X, s.A.Top}, B: Point{s.B.X, s.B.Top}, Color: c, Width: width},
		{A: Point{s.A.X, s.A.Bottom}, B: Point{s.B.X, s.B.Bottom}, Color: c, Width: width},
	}
}

// Projector maps world points to a perspective viewport
type Projector struct {
	Width, Height float64
	// WallHeight is scaled like x to give offsets above and below the horizon
	WallHeight float64
}

// ProjectPoint divides by depth: scale = Height/depth. Points at or behind
// the camera plane, or non-finite results, are rejected.
func (p Projector) ProjectPoint(pt geom.Point) (Column, bool) {
	depth := Depth(pt)
	if !(depth > 0) {
		return Column{}, false
	}
	scale := p.Height / depth
	x := pt.X*scale + p.Width/2
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return Column{}, false
	}
	cy := p.Height / 2
	h := p.WallHeight * scale
	return Column{X: x, Top: cy - h, Bottom: cy + h}, true
}

// ProjectSegment projects both endpoints into a slab
func (p Projector) ProjectSegment(s geom.Segment) (Slab, bool) {
	a, ok := p.ProjectPoint(s.P1)
	if !ok {
		return Slab{}, false
	}
	b, ok := p.ProjectPoint(s.P2)
	if !ok {
		return Slab{}, false
	}
	return Slab{A: a, B: b}, true
}

// Horizon returns the line across the viewport centre
func (p Projector) Horizon(c Color, width float64) Line {
	return Line{A: Point{0, p.Height / 2}, B: Point{p.Width, p.Height / 2}, Color: c, Width: width}
}

// Overhead is the top-down map projection centred on the player
type Overhead struct {
	Width, Height float64
	// Scale converts world units to screen units
	Scale float64
}

// Map returns the screen position of pt
func (o Overhead) Map(pt geom.Point) Point {
	return Point{X: pt.X*o.Scale + o.Width/2, Y: pt.Y*o.Scale + o.Height/2}
}

// MapSegment returns the overhead stroke for s
func (o Overhead) MapSegment(s geom.Segment, c Color, width float64) Line {
	return Line{A: o.Map(s.P1), B: o.Map(s.P2), Color: c, Width: width}
}
