package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wallwalk/parameter"
	"github.com/lixenwraith/wallwalk/view"
)

// ColorToTcell converts a view color to a 24-bit tcell color
func ColorToTcell(c view.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// TcellToColor converts a tcell color back to a view color
// ColorDefault maps to the background gray
func TcellToColor(c tcell.Color) view.Color {
	if c == tcell.ColorDefault {
		return view.Hex(parameter.ColorBackground)
	}
	r, g, b := c.RGB()
	return view.Color{R: uint8(r), G: uint8(g), B: uint8(b)}
}
