package injector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/wallwalk/config"
	"github.com/lixenwraith/wallwalk/geom"
	"github.com/lixenwraith/wallwalk/world"
)

func TestProvideWorld(t *testing.T) {
	s, err := config.Default().Resolve()
	require.NoError(t, err)
	s.Rotation = geom.RotateSequential

	w, err := ProvideWorld(s)
	require.NoError(t, err)
	assert.Equal(t, len(world.DefaultLayout()), w.Len())
	assert.Equal(t, geom.RotateSequential, w.RotationMode())
}

func TestProvideWorldRejectsDegenerate(t *testing.T) {
	s, err := config.Default().Resolve()
	require.NoError(t, err)
	s.Walls = []geom.Segment{geom.Seg(1, 1, 1, 1)}

	_, err = ProvideWorld(s)
	assert.ErrorIs(t, err, geom.ErrDegenerateSegment)
}

func TestProvideClock(t *testing.T) {
	assert.False(t, ProvideClock().Now().IsZero())
}
