package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/wallwalk/config"
	"github.com/lixenwraith/wallwalk/injector"
	"github.com/lixenwraith/wallwalk/logging"
	"github.com/lixenwraith/wallwalk/parameter"
)

var (
	configFlag      = flag.String("config", "", "YAML config file (defaults when empty)")
	debugFlag       = flag.Bool("debug", false, "Write a JSON debug log under "+parameter.LogDir)
	muteFlag        = flag.Bool("mute", false, "Start with sound off")
	fpsFlag         = flag.Int("fps", 0, "Frame rate override")
	printConfigFlag = flag.Bool("print-config", false, "Print the effective config and exit")
)

func main() {
	var screen tcell.Screen

	// Panic Recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mWALLWALK CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fail(err)
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if *fpsFlag != 0 {
		cfg.FPS = *fpsFlag
	}

	if *printConfigFlag {
		out, err := cfg.Marshal()
		if err != nil {
			fail(err)
		}
		os.Stdout.Write(out)
		return
	}

	settings, err := cfg.Resolve()
	if err != nil {
		fail(err)
	}

	logger, syncLog, err := logging.Setup(settings.Debug, parameter.LogDir, parameter.LogFileName)
	if err != nil {
		fail(err)
	}
	defer syncLog()

	screen, err = tcell.NewScreen()
	if err != nil {
		fail(fmt.Errorf("screen: %w", err))
	}
	if err := screen.Init(); err != nil {
		fail(fmt.Errorf("screen init: %w", err))
	}
	defer screen.Fini()

	g, cleanup, err := injector.InitializeGame(screen, logger, settings)
	if err != nil {
		screen.Fini()
		fail(err)
	}
	defer cleanup()

	logger.Info("start",
		zap.Stringer("policy", settings.Collision.Policy),
		zap.Stringer("clip", settings.ClipPolicy),
		zap.Stringer("rotation", settings.Rotation),
		zap.Int("walls", g.World().Len()),
		zap.Uint64("world", g.World().Fingerprint()),
		zap.Int("fps", settings.FPS),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := g.Run(ctx); err != nil {
		logger.Error("run", zap.Error(err))
		screen.Fini()
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "wallwalk: %v\n", err)
	os.Exit(1)
}
