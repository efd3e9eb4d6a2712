// Package game glues the geometry core to the terminal: one Tick runs input,
// collision, world transform, clip-and-project and draw in that order.
package game

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/wallwalk/collision"
	"github.com/lixenwraith/wallwalk/config"
	"github.com/lixenwraith/wallwalk/input"
	"github.com/lixenwraith/wallwalk/parameter"
	"github.com/lixenwraith/wallwalk/player"
	"github.com/lixenwraith/wallwalk/render"
	"github.com/lixenwraith/wallwalk/view"
	"github.com/lixenwraith/wallwalk/world"
)

// Sound is the cue sink; audio.SoundManager satisfies it
type Sound interface {
	PlayBump()
	ToggleMute() bool
	Muted() bool
}

// fpsSmoothing is the weight of the newest frame in the fps average
const fpsSmoothing = 0.1

// Game owns the per-frame state. All methods except Run must be called from
// the loop goroutine.
type Game struct {
	screen   tcell.Screen
	clock    Clock
	log      *zap.Logger
	world    *world.World
	agent    *player.Agent
	resolver *collision.Resolver
	pipeline *view.Pipeline
	renderer *render.Renderer
	tracker  *input.Tracker
	sound    Sound
	fps      int

	lines   []view.Line
	last    time.Time
	blocked bool
	rate    float64
	quit    bool
}

// New assembles a game from resolved settings over an initialised screen
func New(screen tcell.Screen, clock Clock, logger *zap.Logger, w *world.World, s config.Settings, sound Sound) (*Game, error) {
	agent, err := player.NewAgent(s.Agent)
	if err != nil {
		return nil, err
	}
	resolver, err := collision.NewResolver(s.Collision)
	if err != nil {
		return nil, err
	}

	pipeline := view.NewPipeline(s.Agent.ClipDepth, s.ClipPolicy, s.WallHeight)
	pipeline.Mode = s.Mode
	pipeline.Overhead.Scale = s.MapScale
	pipeline.PlayerRadius = s.Agent.Radius

	g := &Game{
		screen:   screen,
		clock:    clock,
		log:      logger,
		world:    w,
		agent:    agent,
		resolver: resolver,
		pipeline: pipeline,
		renderer: render.NewRenderer(screen),
		tracker:  input.NewTracker(parameter.KeyInitialHold, parameter.KeyRepeatHold),
		sound:    sound,
		fps:      s.FPS,
		last:     clock.Now(),
	}
	if g.fps <= 0 {
		g.fps = parameter.DefaultFPS
	}
	g.resize()
	return g, nil
}

// World exposes the simulated world
func (g *Game) World() *world.World { return g.world }

// Pipeline exposes the view pipeline
func (g *Game) Pipeline() *view.Pipeline { return g.pipeline }

// Resolver exposes the collision resolver
func (g *Game) Resolver() *collision.Resolver { return g.resolver }

// Quit reports whether a quit action was seen
func (g *Game) Quit() bool { return g.quit }

func (g *Game) resize() {
	w, h := g.renderer.Viewport()
	g.pipeline.SetViewport(w, h)
}

// HandleEvent consumes one terminal event
func (g *Game) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.Press(input.FromEvent(ev))
	case *tcell.EventResize:
		g.screen.Sync()
		g.resize()
		w, h := g.screen.Size()
		g.log.Debug("resize", zap.Int("cols", w), zap.Int("rows", h))
	}
}

// Press routes an action: held ones go to the tracker, the rest apply now
func (g *Game) Press(a input.Action) {
	if a.Held() {
		g.tracker.Press(a, g.clock.Now())
		return
	}
	g.HandleAction(a)
}

// HandleAction applies a one-shot action
func (g *Game) HandleAction(a input.Action) {
	switch a {
	case input.ActionQuit:
		g.quit = true
	case input.ActionToggleView:
		if g.pipeline.Mode == view.ModePerspective {
			g.pipeline.Mode = view.ModeOverhead
		} else {
			g.pipeline.Mode = view.ModePerspective
		}
		g.log.Debug("view mode", zap.Stringer("mode", g.pipeline.Mode))
	case input.ActionCyclePolicy:
		p := g.resolver.Config().Policy.Next()
		g.resolver.SetPolicy(p)
		g.log.Debug("collision policy", zap.Stringer("policy", p))
	case input.ActionToggleClip:
		if g.pipeline.Policy == view.ClipTrim {
			g.pipeline.Policy = view.ClipDiscard
		} else {
			g.pipeline.Policy = view.ClipTrim
		}
		g.log.Debug("clip policy", zap.Stringer("policy", g.pipeline.Policy))
	case input.ActionToggleMute:
		muted := g.sound.ToggleMute()
		g.log.Debug("mute", zap.Bool("muted", muted))
	}
}

// Tick runs one frame at the clock's current time
func (g *Game) Tick() player.StepResult {
	now := g.clock.Now()
	dt := now.Sub(g.last)
	g.last = now
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}
	if dt > 0 {
		inst := 1 / dt.Seconds()
		if g.rate == 0 {
			g.rate = inst
		} else {
			g.rate += fpsSmoothing * (inst - g.rate)
		}
	}

	res := g.agent.Step(g.tracker.Snapshot(now, dt), g.world, g.resolver)
	switch {
	case res.Blocked && !g.blocked:
		g.sound.PlayBump()
		g.log.Debug("collision onset",
			zap.Int("contacts", res.Contacts),
			zap.Float64("proposed_x", res.Proposed.X),
			zap.Float64("proposed_y", res.Proposed.Y),
			zap.Float64("velocity_x", res.Velocity.X),
			zap.Float64("velocity_y", res.Velocity.Y),
		)
	case !res.Blocked && g.blocked:
		g.log.Debug("collision cleared")
	}
	g.blocked = res.Blocked

	g.lines = g.pipeline.Build(g.lines[:0], g.world.Segments())
	g.renderer.Draw(g.lines, g.hud())
	return res
}

func (g *Game) hud() render.HUD {
	return render.HUD{
		Mode:    g.pipeline.Mode.String(),
		Policy:  g.resolver.Config().Policy.String(),
		Clip:    g.pipeline.Policy.String(),
		Blocked: g.blocked,
		Muted:   g.sound.Muted(),
		FPS:     g.rate,
		Walls:   g.world.Len(),
		Visible: len(g.pipeline.Visible()),
	}
}

// errQuit ends the loop goroutine and cancels the pump
var errQuit = errors.New("game: quit")

// Run drives the frame loop until quit or ctx is done. It owns the screen's
// event pump; the caller still owns Fini.
func (g *Game) Run(ctx context.Context) error {
	events := make(chan tcell.Event, parameter.EventQueueSize)
	grp, ctx := errgroup.WithContext(ctx)

	grp.Go(func() error {
		return g.pump(ctx, events)
	})
	grp.Go(func() error {
		err := g.loop(ctx, events)
		// Unblock PollEvent so the pump can observe cancellation
		_ = g.screen.PostEvent(tcell.NewEventInterrupt(nil))
		return err
	})

	if err := grp.Wait(); err != nil && !errors.Is(err, errQuit) && !errors.Is(err, context.Canceled) {
		return err
	}
	g.log.Info("shutdown", zap.Uint64("world", g.world.Fingerprint()))
	return nil
}

func (g *Game) pump(ctx context.Context, events chan<- tcell.Event) error {
	for ctx.Err() == nil {
		ev := g.screen.PollEvent()
		if ev == nil {
			// Screen finalised
			return nil
		}
		select {
		case events <- ev:
		case <-ctx.Done():
		}
	}
	return nil
}

func (g *Game) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.fps))
	defer ticker.Stop()

	g.last = g.clock.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			g.HandleEvent(ev)
		case <-ticker.C:
			g.Tick()
		}
		if g.quit {
			return errQuit
		}
	}
}
