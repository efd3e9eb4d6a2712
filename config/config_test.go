package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/wallwalk/collision"
	"github.com/lixenwraith/wallwalk/geom"
	"github.com/lixenwraith/wallwalk/player"
	"github.com/lixenwraith/wallwalk/view"
	"github.com/lixenwraith/wallwalk/world"
)

func TestDefaultResolves(t *testing.T) {
	s, err := Default().Resolve()
	require.NoError(t, err)
	assert.Equal(t, player.DefaultAgent(), s.Agent)
	assert.Equal(t, collision.DefaultConfig(), s.Collision)
	assert.Equal(t, view.ClipTrim, s.ClipPolicy)
	assert.Equal(t, view.ModePerspective, s.Mode)
	assert.Equal(t, geom.RotateSnapshot, s.Rotation)
	assert.Equal(t, world.DefaultLayout(), s.Walls)
	assert.True(t, s.Audio)
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_OverridesOnlyGivenFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallwalk.yaml")
	yml := `
agent:
  speed: 150
collision:
  policy: iterative
  damping: 8
view:
  clip_policy: discard
  mode: overhead
world:
  rotation: sequential
  walls:
    - [0, -50, 100, -50]
    - [100, -50, 100, 50]
audio:
  enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	s, err := cfg.Resolve()
	require.NoError(t, err)

	assert.Equal(t, 150.0, s.Agent.Speed)
	assert.Equal(t, 15.0, s.Agent.Radius, "unset fields keep defaults")
	assert.Equal(t, collision.PolicyIterative, s.Collision.Policy)
	assert.Equal(t, 8.0, s.Collision.Damping)
	assert.Equal(t, view.ClipDiscard, s.ClipPolicy)
	assert.Equal(t, view.ModeOverhead, s.Mode)
	assert.Equal(t, geom.RotateSequential, s.Rotation)
	assert.Equal(t, []geom.Segment{geom.Seg(0, -50, 100, -50), geom.Seg(100, -50, 100, 50)}, s.Walls)
	assert.False(t, s.Audio)
}

func TestParse_CollectsAllErrors(t *testing.T) {
	yml := `
agent:
  radius: -2
collision:
  policy: bounce
view:
  mode: iso
world:
  walls:
    - [1, 1, 1, 1]
`
	_, err := Parse([]byte(yml))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorIs(t, err, player.ErrInvalidAgent)
	assert.ErrorIs(t, err, geom.ErrDegenerateSegment)
	assert.Contains(t, err.Error(), "bounce")
	assert.Contains(t, err.Error(), "iso")
}

func TestParse_BadYAML(t *testing.T) {
	_, err := Parse([]byte("agent: [unterminated"))
	assert.Error(t, err)
}

func TestMarshal_UsesNames(t *testing.T) {
	data, err := Default().Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "policy: last-wins")
	assert.Contains(t, string(data), "clip_policy: trim")
	assert.NotContains(t, string(data), "walls")
}
