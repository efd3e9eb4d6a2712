// Package injector assembles a Game from resolved settings with google/wire.
// providers.go holds the provider set, injector.go the wire template and
// wire_gen.go the generated assembly.
package injector

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/lixenwraith/wallwalk/audio"
	"github.com/lixenwraith/wallwalk/config"
	"github.com/lixenwraith/wallwalk/game"
	"github.com/lixenwraith/wallwalk/world"
)

// ProviderSet wires everything a Game needs besides screen, logger and settings
var ProviderSet = wire.NewSet(
	ProvideWorld,
	ProvideClock,
	ProvideSound,
	wire.Bind(new(game.Sound), new(*audio.SoundManager)),
	game.New,
)

// ProvideWorld builds the configured layout with its rotation mode
func ProvideWorld(s config.Settings) (*world.World, error) {
	w, err := world.New(s.Walls)
	if err != nil {
		return nil, err
	}
	w.SetRotationMode(s.Rotation)
	return w, nil
}

// ProvideClock returns the wall clock
func ProvideClock() game.Clock {
	return game.SystemClock{}
}

// ProvideSound opens the speaker; a missing device only disables the cue
func ProvideSound(s config.Settings, logger *zap.Logger) (*audio.SoundManager, func()) {
	sm := audio.NewSoundManager(!s.Audio)
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable", zap.Error(err))
	}
	return sm, sm.Cleanup
}
