// Package render is the tcell drawing collaborator: it rasterises the
// view package's screen-space lines onto terminal cells.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wallwalk/parameter"
	"github.com/lixenwraith/wallwalk/view"
)

// HUD is the status line content
type HUD struct {
	Mode    string
	Policy  string
	Clip    string
	Blocked bool
	Muted   bool
	FPS     float64
	Walls   int
	Visible int
}

func (h HUD) String() string {
	blocked := "clear"
	if h.Blocked {
		blocked = "BLOCKED"
	}
	sound := "on"
	if h.Muted {
		sound = "off"
	}
	return fmt.Sprintf(" %s | collide:%s | clip:%s | %s | walls %d/%d | sound %s | %3.0f fps | wasd move, ←→ turn, m map, p/c policy, x mute, esc quit",
		h.Mode, h.Policy, h.Clip, blocked, h.Visible, h.Walls, sound, h.FPS)
}

// Renderer draws lines in a projected space of cols x rows*aspect units,
// so a unit square covers roughly a square area of the terminal
type Renderer struct {
	surface    Surface
	aspect     int
	hudRows    int
	background tcell.Color
	hudStyle   tcell.Style
	blocked    tcell.Style
}

// NewRenderer wraps a surface with the compiled-in colors
func NewRenderer(s Surface) *Renderer {
	bg := ColorToTcell(view.Hex(parameter.ColorBackground))
	return &Renderer{
		surface:    s,
		aspect:     parameter.CellAspect,
		hudRows:    parameter.HUDRows,
		background: bg,
		hudStyle:   tcell.StyleDefault.Foreground(ColorToTcell(view.Hex(parameter.ColorHUD))).Background(tcell.ColorBlack),
		blocked:    tcell.StyleDefault.Foreground(ColorToTcell(view.Hex(parameter.ColorBlocked))).Background(tcell.ColorBlack).Bold(true),
	}
}

// Viewport returns the projected-space size available for the scene
func (r *Renderer) Viewport() (width, height float64) {
	w, h := r.surface.Size()
	rows := h - r.hudRows
	if rows < 0 {
		rows = 0
	}
	return float64(w), float64(rows * r.aspect)
}

// Draw clears the surface, strokes every line and the HUD, then shows it
func (r *Renderer) Draw(lines []view.Line, hud HUD) {
	r.surface.Fill(' ', tcell.StyleDefault.Background(r.background))

	vw, vh := r.Viewport()
	for _, l := range lines {
		r.stroke(l, vw, vh)
	}
	r.drawHUD(hud)
	r.surface.Show()
}

func (r *Renderer) stroke(l view.Line, vw, vh float64) {
	a, b, ok := clipRect(l.A, l.B, vw, vh)
	if !ok {
		return
	}

	aspect := float64(r.aspect)
	glyph := glyphFor(b.X-a.X, (b.Y-a.Y)/aspect, l.Width >= parameter.LineHeavyWidth)
	style := tcell.StyleDefault.Foreground(ColorToTcell(l.Color)).Background(r.background)

	rasterize(a, b, func(x, y int) {
		r.surface.SetContent(x, y/r.aspect, glyph, nil, style)
	})
}

func (r *Renderer) drawHUD(h HUD) {
	if r.hudRows == 0 {
		return
	}
	w, sh := r.surface.Size()
	row := sh - 1
	if row < 0 {
		return
	}
	style := r.hudStyle
	if h.Blocked {
		style = r.blocked
	}
	x := 0
	for _, ch := range h.String() {
		if x >= w {
			break
		}
		r.surface.SetContent(x, row, ch, nil, style)
		x++
	}
	for ; x < w; x++ {
		r.surface.SetContent(x, row, ' ', nil, r.hudStyle)
	}
}
