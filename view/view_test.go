package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/wallwalk/geom"
)

const clip = 10.0

var (
	inFront  = geom.Seg(-20, -30, 20, -50)
	behind   = geom.Seg(-20, 5, 20, -9)
	straddle = geom.Seg(0, -5, 20, -25)
)

func TestClassify(t *testing.T) {
	assert.Equal(t, ClassFront, Classify(inFront, clip))
	assert.Equal(t, ClassBehind, Classify(behind, clip))
	assert.Equal(t, ClassStraddle, Classify(straddle, clip))

	// Exactly on the plane counts as in front
	assert.Equal(t, ClassFront, Classify(geom.Seg(0, -10, 5, -10), clip))
	assert.Equal(t, "straddle", ClassStraddle.String())
}

func TestClip_OneEndpointOnPlane(t *testing.T) {
	c, ok := Clip(straddle, clip)
	require.True(t, ok)

	// Far endpoint untouched, near endpoint moved onto depth == clip
	assert.Equal(t, straddle.P2, c.P2)
	assert.InDelta(t, clip, Depth(c.P1), 1e-12)
	assert.InDelta(t, 5, c.P1.X, 1e-9)

	// New endpoint lies on the original segment
	assert.True(t, geom.PointOnSegment(straddle, c.P1, 1e-9))
}

func TestClip_EitherOrientation(t *testing.T) {
	rev := geom.Segment{P1: straddle.P2, P2: straddle.P1}
	c, ok := Clip(rev, clip)
	require.True(t, ok)
	assert.Equal(t, rev.P1, c.P1)
	assert.InDelta(t, clip, Depth(c.P2), 1e-12)
}

func TestClip_NonStraddling(t *testing.T) {
	_, ok := Clip(inFront, clip)
	assert.False(t, ok)
	_, ok = Clip(behind, clip)
	assert.False(t, ok)
}

func TestClip_CollapsedRemainder(t *testing.T) {
	// Far endpoint sits exactly on the plane: nothing is left after trimming
	_, ok := Clip(geom.Seg(4, -10, 8, 0), clip)
	assert.False(t, ok)
}

func TestCull(t *testing.T) {
	segs := []geom.Segment{inFront, behind, straddle}

	trimmed := Cull(nil, segs, clip, ClipTrim)
	require.Len(t, trimmed, 2)
	assert.Equal(t, inFront, trimmed[0], "front segments pass unchanged")
	assert.InDelta(t, clip, Depth(trimmed[1].P1), 1e-12)

	dropped := Cull(nil, segs, clip, ClipDiscard)
	require.Len(t, dropped, 1)
	assert.Equal(t, inFront, dropped[0])

	for _, s := range trimmed {
		assert.NotEqual(t, ClassBehind, Classify(s, clip))
	}
}

func TestParsers(t *testing.T) {
	p, err := ParseClipPolicy("Discard")
	require.NoError(t, err)
	assert.Equal(t, ClipDiscard, p)
	p, err = ParseClipPolicy("")
	require.NoError(t, err)
	assert.Equal(t, ClipTrim, p)
	_, err = ParseClipPolicy("maybe")
	assert.Error(t, err)

	m, err := ParseMode("map")
	require.NoError(t, err)
	assert.Equal(t, ModeOverhead, m)
	_, err = ParseMode("iso")
	assert.Error(t, err)
	assert.Equal(t, "overhead", ModeOverhead.String())
}

func TestProjectPoint(t *testing.T) {
	p := Projector{Width: 100, Height: 80, WallHeight: 24}

	col, ok := p.ProjectPoint(geom.Pt(10, -40))
	require.True(t, ok)
	// scale = 80/40 = 2
	assert.InDelta(t, 70, col.X, 1e-12)
	assert.InDelta(t, -8, col.Top, 1e-12)
	assert.InDelta(t, 88, col.Bottom, 1e-12)

	// Farther points converge on the horizon
	far, ok := p.ProjectPoint(geom.Pt(10, -4000))
	require.True(t, ok)
	assert.Less(t, far.Bottom-far.Top, col.Bottom-col.Top)
	assert.InDelta(t, 50, far.X, 1)

	_, ok = p.ProjectPoint(geom.Pt(3, 0))
	assert.False(t, ok, "camera plane")
	_, ok = p.ProjectPoint(geom.Pt(3, 5))
	assert.False(t, ok, "behind camera")
}

func TestProjectSegment(t *testing.T) {
	p := Projector{Width: 100, Height: 80, WallHeight: 24}
	slab, ok := p.ProjectSegment(geom.Seg(-10, -40, 10, -40))
	require.True(t, ok)
	assert.InDelta(t, 30, slab.A.X, 1e-12)
	assert.InDelta(t, 70, slab.B.X, 1e-12)

	lines := slab.Lines(Hex(0xFFFFFF), 3)
	assert.Equal(t, lines[0].A.X, lines[0].B.X, "left vertical")
	assert.Equal(t, lines[1].A.X, lines[1].B.X, "right vertical")
	assert.Equal(t, lines[2].A.Y, slab.A.Top)
	assert.Equal(t, lines[3].B.Y, slab.B.Bottom)

	_, ok = p.ProjectSegment(geom.Seg(-10, 5, 10, -40))
	assert.False(t, ok)
}

func TestPipelineBuild_Perspective(t *testing.T) {
	p := NewPipeline(clip, ClipTrim, 24)
	p.SetViewport(100, 80)
	segs := []geom.Segment{inFront, behind, straddle}

	lines := p.Build(nil, segs)
	// horizon + two slabs
	require.Len(t, lines, 9)
	assert.Equal(t, p.HorizonColor, lines[0].Color)
	assert.InDelta(t, 40, lines[0].A.Y, 1e-12)
	assert.Len(t, p.Visible(), 2)

	p.Policy = ClipDiscard
	lines = p.Build(lines[:0], segs)
	assert.Len(t, lines, 5)
}

func TestPipelineBuild_Overhead(t *testing.T) {
	p := NewPipeline(clip, ClipTrim, 24)
	p.SetViewport(100, 80)
	p.Mode = ModeOverhead
	p.Overhead.Scale = 0.5

	lines := p.Build(nil, []geom.Segment{inFront, behind, straddle})
	// every wall + player circle + heading tick
	require.Len(t, lines, 3+playerMarkerSides+1)
	assert.Len(t, p.Visible(), 2)
	assert.Equal(t, Point{X: 40, Y: 25}, lines[0].A)

	tick := lines[len(lines)-1]
	assert.Equal(t, Point{X: 50, Y: 40}, tick.A)
	assert.Less(t, tick.B.Y, tick.A.Y, "heading points up the screen")
}

func TestHex(t *testing.T) {
	assert.Equal(t, Color{R: 0x54, G: 0x54, B: 0x54}, Hex(0x545454))
	assert.Equal(t, Color{R: 0x12, G: 0x34, B: 0x56}, Hex(0x123456))
}
