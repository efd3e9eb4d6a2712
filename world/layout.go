package world

import "github.com/lixenwraith/wallwalk/geom"

// DefaultLayout returns the starting walls: a triangle and a square
func DefaultLayout() []geom.Segment {
	return []geom.Segment{
		// triangle
		geom.Seg(15, 15, 10, 480),
		geom.Seg(10, 480, 740, 890),
		geom.Seg(740, 890, 15, 15),

		// square
		geom.Seg(1000, 1100, 1000, 1500),
		geom.Seg(1000, 1500, 600, 1500),
		geom.Seg(600, 1500, 600, 1100),
		geom.Seg(600, 1100, 1000, 1100),
	}
}

// Polygon closes the given vertices into a loop of segments
func Polygon(vertices ...geom.Point) []geom.Segment {
	switch len(vertices) {
	case 0, 1:
		return nil
	case 2:
		return []geom.Segment{{P1: vertices[0], P2: vertices[1]}}
	}
	out := make([]geom.Segment, 0, len(vertices))
	for i := range vertices {
		out = append(out, geom.Segment{P1: vertices[i], P2: vertices[(i+1)%len(vertices)]})
	}
	return out
}
