package render

import (
	"math"

	"github.com/lixenwraith/wallwalk/view"
)

// Glyphs by stroke direction, light and heavy
const (
	glyphHorizontal      = '─'
	glyphVertical        = '│'
	glyphHorizontalHeavy = '━'
	glyphVerticalHeavy   = '┃'
	glyphFalling         = '\\'
	glyphRising          = '/'
	glyphDot             = '·'
)

// glyphFor picks a rune from the stroke's direction in cell space
func glyphFor(dx, dy float64, heavy bool) rune {
	adx, ady := math.Abs(dx), math.Abs(dy)
	switch {
	case adx == 0 && ady == 0:
		return glyphDot
	case adx > 2*ady:
		if heavy {
			return glyphHorizontalHeavy
		}
		return glyphHorizontal
	case ady > 2*adx:
		if heavy {
			return glyphVerticalHeavy
		}
		return glyphVertical
	case (dx > 0) == (dy > 0):
		return glyphFalling
	default:
		return glyphRising
	}
}

// clipRect clips a-b to [0,w)x[0,h) using Liang-Barsky
// ok is false when the line misses the rectangle
func clipRect(a, b view.Point, w, h float64) (view.Point, view.Point, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	t0, t1 := 0.0, 1.0
	maxX, maxY := w-1e-9, h-1e-9

	edges := [4][2]float64{
		{-dx, a.X},
		{dx, maxX - a.X},
		{-dy, a.Y},
		{dy, maxY - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return a, b, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return a, b, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return view.Point{X: a.X + t0*dx, Y: a.Y + t0*dy},
		view.Point{X: a.X + t1*dx, Y: a.Y + t1*dy}, true
}

// rasterize walks a-b on the integer grid and calls plot for each pixel
func rasterize(a, b view.Point, plot func(x, y int)) {
	x0, y0 := int(math.Floor(a.X)), int(math.Floor(a.Y))
	x1, y1 := int(math.Floor(b.X)), int(math.Floor(b.Y))

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
