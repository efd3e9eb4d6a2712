//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/lixenwraith/wallwalk/config"
	"github.com/lixenwraith/wallwalk/game"
)

func InitializeGame(screen tcell.Screen, logger *zap.Logger, settings config.Settings) (*game.Game, func(), error) {
	wire.Build(ProviderSet)
	return nil, nil, nil
}
