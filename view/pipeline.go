package view

import (
	"fmt"
	"math"
	"strings"

	"github.com/lixenwraith/wallwalk/geom"
	"github.com/lixenwraith/wallwalk/parameter"
)

// Mode selects the projection used by Pipeline.Build
type Mode uint8

const (
	ModePerspective Mode = iota
	ModeOverhead
)

func (m Mode) String() string {
	switch m {
	case ModePerspective:
		return "perspective"
	case ModeOverhead:
		return "overhead"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode maps a config name to a Mode, empty means perspective
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "perspective", "3d":
		return ModePerspective, nil
	case "overhead", "map", "2d":
		return ModeOverhead, nil
	default:
		return ModePerspective, fmt.Errorf("view: unknown mode %q", s)
	}
}

// playerMarkerSides is the polygon resolution of the overhead player circle
const playerMarkerSides = 12

// Pipeline culls against the near plane and projects what survives
// Not safe for concurrent use
type Pipeline struct {
	ClipDepth float64
	Policy    ClipPolicy
	Mode      Mode

	Projector Projector
	Overhead  Overhead

	// PlayerRadius sizes the overhead player marker
	PlayerRadius float64

	WallColor    Color
	HorizonColor Color
	PlayerColor  Color
	WallWidth    float64
	HorizonWidth float64

	culled []geom.Segment
}

// NewPipeline returns a pipeline with the compiled-in colors and widths
func NewPipeline(clipDepth float64, policy ClipPolicy, wallHeight float64) *Pipeline {
	return &Pipeline{
		ClipDepth:    clipDepth,
		Policy:       policy,
		Projector:    Projector{WallHeight: wallHeight},
		Overhead:     Overhead{Scale: 1},
		PlayerRadius: parameter.AgentRadius,
		WallColor:    Hex(parameter.ColorWall),
		HorizonColor: Hex(parameter.ColorHorizon),
		PlayerColor:  Hex(parameter.ColorPlayer),
		WallWidth:    parameter.WallLineWidth,
		HorizonWidth: parameter.HorizonLineWidth,
	}
}

// SetViewport resizes both projections
func (p *Pipeline) SetViewport(width, height float64) {
	p.Projector.Width, p.Projector.Height = width, height
	p.Overhead.Width, p.Overhead.Height = width, height
}

// Visible returns the culled segments from the last Build
// Backed by a scratch buffer: valid until the next Build
func (p *Pipeline) Visible() []geom.Segment {
	return p.culled
}

// Build appends the frame's lines to dst. Visible is refreshed in both modes.
func (p *Pipeline) Build(dst []Line, segments []geom.Segment) []Line {
	p.culled = Cull(p.culled[:0], segments, p.ClipDepth, p.Policy)

	// The map shows every wall; only the perspective view needs the near plane
	if p.Mode == ModeOverhead {
		for _, s := range segments {
			dst = append(dst, p.Overhead.MapSegment(s, p.WallColor, p.WallWidth))
		}
		return p.appendPlayer(dst)
	}

	dst = append(dst, p.Projector.Horizon(p.HorizonColor, p.HorizonWidth))
	for _, s := range p.culled {
		slab, ok := p.Projector.ProjectSegment(s)
		if !ok {
			continue
		}
		lines := slab.Lines(p.WallColor, p.WallWidth)
		dst = append(dst, lines[:]...)
	}
	return dst
}

// appendPlayer draws the overhead marker: a circle of the collision radius and
// a heading tick pointing forward
func (p *Pipeline) appendPlayer(dst []Line) []Line {
	center := p.Overhead.Map(geom.Point{})
	r := p.PlayerRadius * p.Overhead.Scale
	prev := Point{center.X + r, center.Y}
	for i := 1; i <= playerMarkerSides; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / playerMarkerSides)
		next := Point{center.X + r*cos, center.Y + r*sin}
		dst = append(dst, Line{A: prev, B: next, Color: p.PlayerColor, Width: 1})
		prev = next
	}
	tip := p.Overhead.Map(geom.Point{Y: -parameter.PlayerHeadingLength})
	return append(dst, Line{A: center, B: tip, Color: p.PlayerColor, Width: 5})
}
