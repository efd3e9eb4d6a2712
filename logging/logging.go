// Package logging builds the zap logger. The terminal is in raw mode while the
// game runs, so logs go to a file in debug mode and nowhere otherwise.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Setup returns a logger and its cleanup. With debug off the logger is a no-op
// and no file is created. Every entry carries a per-run session id.
func Setup(debug bool, dir, name string) (*zap.Logger, func(), error) {
	if !debug {
		return zap.NewNop(), func() {}, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: create %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.DebugLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{path},
		DisableCaller:    true,
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("logging: build: %w", err)
	}
	logger = logger.With(zap.String("session", uuid.NewString()))

	return logger, func() { _ = logger.Sync() }, nil
}
