package render

import "github.com/gdamore/tcell/v2"

// Surface is the subset of tcell.Screen the renderer draws on
// tcell.Screen and tcell.SimulationScreen satisfy it
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Fill(r rune, style tcell.Style)
	Size() (width, height int)
	Show()
}

var _ Surface = (tcell.Screen)(nil)
