package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/wallwalk/geom"
)

func newResolver(t *testing.T, p Policy) *Resolver {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Policy = p
	r, err := NewResolver(cfg)
	require.NoError(t, err)
	return r
}

// corner is a concave corner: a wall 14 ahead and a wall 14 to the right,
// both already inside the 15 radius
func corner() []geom.Segment {
	return []geom.Segment{
		geom.Seg(-50, -14, 50, -14),
		geom.Seg(14, -50, 14, 50),
	}
}

func translated(segs []geom.Segment, v geom.Point) []geom.Segment {
	out := make([]geom.Segment, len(segs))
	for i, s := range segs {
		s.Translate(v.X, v.Y)
		out[i] = s
	}
	return out
}

func TestResolve_ClearPathKeepsVelocity(t *testing.T) {
	r := newResolver(t, PolicyLastWins)
	v := geom.Pt(0, 4.8)
	res := r.Resolve(radius, v, []geom.Segment{geom.Seg(-50, -100, 50, -100)})
	assert.False(t, res.Blocked)
	assert.Empty(t, res.Contacts)
	assert.Equal(t, v, res.Velocity)
}

func TestResolve_LastWinsReplacesVelocity(t *testing.T) {
	r := newResolver(t, PolicyLastWins)
	// Player proposes to move to (0,-4.8); the wall at y=-18 is then 13.2 away
	wall := geom.Seg(-50, -18, 50, -18)
	res := r.Resolve(radius, geom.Pt(0, 4.8), []geom.Segment{wall})

	require.True(t, res.Blocked)
	require.Len(t, res.Contacts, 1)
	assert.Equal(t, 0, res.Contacts[0].Index)
	assert.InDelta(t, 13.2, res.Contacts[0].Distance, 1e-9)
	// Offset (0,-13.2) damped by 16
	assert.InDelta(t, 0, res.Velocity.X, 1e-9)
	assert.InDelta(t, -13.2/16, res.Velocity.Y, 1e-9)
}

func TestResolve_ConcaveCorner_LastWins(t *testing.T) {
	r := newResolver(t, PolicyLastWins)
	segs := corner()
	res := r.Resolve(radius, geom.Point{}, segs)

	require.True(t, res.Blocked)
	require.Len(t, res.Contacts, 2)
	assert.Equal(t, []int{0, 1}, []int{res.Contacts[0].Index, res.Contacts[1].Index})

	// Only the right wall's offset is used
	assert.InDelta(t, 14.0/16, res.Velocity.X, 1e-9)
	assert.InDelta(t, 0, res.Velocity.Y, 1e-9)

	// Known failure mode: the front wall is left overlapping
	after := translated(segs, res.Velocity)
	assert.Less(t, after[0].DistanceTo(geom.Point{}), radius)
	assert.Greater(t, after[1].DistanceTo(geom.Point{}), segs[1].DistanceTo(geom.Point{}))
}

func TestResolve_ConcaveCorner_Sum(t *testing.T) {
	r := newResolver(t, PolicySum)
	segs := corner()
	res := r.Resolve(radius, geom.Point{}, segs)

	require.True(t, res.Blocked)
	assert.InDelta(t, 14.0/16, res.Velocity.X, 1e-9)
	assert.InDelta(t, -14.0/16, res.Velocity.Y, 1e-9)

	after := translated(segs, res.Velocity)
	for i := range segs {
		assert.Greater(t, after[i].DistanceTo(geom.Point{}), segs[i].DistanceTo(geom.Point{}), "wall %d", i)
	}
}

func TestResolve_ConcaveCorner_Iterative(t *testing.T) {
	r := newResolver(t, PolicyIterative)
	segs := corner()
	res := r.Resolve(radius, geom.Point{}, segs)

	require.True(t, res.Blocked)
	assert.InDelta(t, 1, res.Velocity.X, 1e-9)
	assert.InDelta(t, -1, res.Velocity.Y, 1e-9)

	after := translated(segs, res.Velocity)
	for i := range after {
		assert.InDelta(t, radius, after[i].DistanceTo(geom.Point{}), 1e-9, "wall %d", i)
	}
}

func TestResolve_IterativeStopsAtIterationBudget(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Policy = PolicyIterative
	cfg.Iterations = 1
	r, err := NewResolver(cfg)
	require.NoError(t, err)

	res := r.Resolve(radius, geom.Pt(0, 4.8), []geom.Segment{geom.Seg(-50, -18, 50, -18)})
	require.True(t, res.Blocked)
	// proj (0,-4.8) → pushed to 15 from the wall → (0,-3)
	assert.InDelta(t, 3, res.Velocity.Y, 1e-9)
}

func TestResolve_ContactsReuseScratch(t *testing.T) {
	r := newResolver(t, PolicyLastWins)
	first := r.Resolve(radius, geom.Point{}, corner())
	require.Len(t, first.Contacts, 2)

	second := r.Resolve(radius, geom.Point{}, nil)
	assert.False(t, second.Blocked)
	assert.Empty(t, second.Contacts)
}

func TestSetPolicy(t *testing.T) {
	r := newResolver(t, PolicyLastWins)
	r.SetPolicy(PolicySum)
	assert.Equal(t, PolicySum, r.Config().Policy)
	r.SetPolicy(Policy(42))
	assert.Equal(t, PolicySum, r.Config().Policy)
}
