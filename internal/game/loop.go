package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappydive/internal/config"
	"github.com/vovakirdan/flappydive/internal/core"
	"github.com/vovakirdan/flappydive/internal/theme"
)

// Status is returned by Tick.
type Status int

const (
	StatusRunning Status = iota
	StatusQuit
)

// Game is the state machine driving one FlappyDive session. It is not safe
// for concurrent use; frontends call Tick from a single goroutine.
type Game struct {
	cfg      config.Config
	renderer core.Renderer
	input    core.InputSource

	state  State
	actors *Actors

	logger    *log.Logger
	recorder  RunRecorder
	seed      int64
	seeded    bool
	themeName string
	now       func() time.Time

	overTicks  int
	endReason  EndReason
	runStarted time.Time
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithSeed makes the world generation deterministic.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.seed = seed
		g.seeded = true
	}
}

// WithRunRecorder reports every finished run to rec.
func WithRunRecorder(rec RunRecorder) Option {
	return func(g *Game) { g.recorder = rec }
}

// WithTheme starts on the named palette instead of the first one.
func WithTheme(name string) Option {
	return func(g *Game) { g.themeName = name }
}

// WithClock replaces time.Now for run durations.
func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

// New creates a game in the pregame phase.
func New(cfg config.Config, renderer core.Renderer, input core.InputSource, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g := &Game{
		cfg:      cfg,
		renderer: renderer,
		input:    input,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if !g.seeded {
		g.seed = time.Now().UnixNano()
	}

	switcher, err := theme.NewSwitcher(cfg.AllThemes())
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if g.themeName != "" {
		if err := switcher.Select(g.themeName); err != nil {
			return nil, fmt.Errorf("game: %w", err)
		}
	}

	w, h := renderer.OutputSize()
	if w <= 0 || h <= 0 {
		w, h = cfg.Window.Width, cfg.Window.Height
	}

	g.state = State{
		XSpeed:       cfg.World.XSpeed,
		WindowWidth:  w,
		WindowHeight: h,
		Theme:        switcher,
	}
	rng := rand.New(rand.NewSource(g.seed))
	g.actors = NewActors(cfg, rng, w, h, switcher.Current())

	g.logger.Debug("game created", "seed", g.seed, "theme", switcher.Current().Name, "size", fmt.Sprintf("%dx%d", w, h))
	return g, nil
}

// Tick runs one frame: input, update, collision, render.
func (g *Game) Tick() Status {
	events := g.input.PollEvents()
	for _, ev := range events {
		if ev.Kind == core.EventQuit {
			g.logger.Info("quit requested", "runs", g.state.RunCount, "high_score", g.state.HighScore)
			return StatusQuit
		}
	}

	if w, h := g.renderer.OutputSize(); w > 0 && h > 0 {
		g.state.WindowWidth, g.state.WindowHeight = w, h
	}

	switch g.state.Phase() {
	case PhasePregame:
		g.stepPregame(events)
	case PhasePlaying:
		g.stepPlaying(events)
	case PhaseGameOver:
		g.stepGameOver()
	}

	g.render()
	return StatusRunning
}

func (g *Game) stepPregame(events []core.Event) {
	start := false
	for _, ev := range events {
		switch ev.Key {
		case core.KeySpace:
			start = true
		case core.KeyTheme:
			g.switchTheme()
		}
	}

	g.actors.Update(&g.state)

	if start {
		g.state.GameStarted = true
		g.runStarted = g.now()
		g.logger.Debug("run started", "run", g.state.RunCount+1)
	}
}

func (g *Game) stepPlaying(events []core.Event) {
	g.state.FC++

	for _, ev := range events {
		switch ev.Key {
		case core.KeySpace:
			g.actors.Sub.Jump()
		case core.KeyTheme:
			g.switchTheme()
		case core.KeyConcede:
			g.state.GameOver = true
			g.state.GameStarted = false
			g.endReason = EndConceded
		}
	}

	g.actors.Update(&g.state)

	if !g.state.GameOver && g.collides() {
		g.state.GameOver = true
		g.endReason = EndCollision
	}

	if g.state.GameOver {
		g.overTicks = 0
		g.logger.Debug("sub sunk", "score", g.state.FC, "reason", g.endReason)
		if g.cfg.World.GameOverTicks == 0 {
			g.endRun()
		}
	}
}

func (g *Game) stepGameOver() {
	g.actors.Update(&g.state)
	g.overTicks++
	if g.overTicks >= g.cfg.World.GameOverTicks {
		g.endRun()
	}
}

// collides checks the sub against the pipes and the top and bottom of the
// screen.
func (g *Game) collides() bool {
	box := g.actors.Sub.BoundingBox()
	h := g.state.WindowHeight
	if box.Y < 0 || box.Bottom() > h {
		return true
	}
	return g.actors.Pipes.Collides(box, h)
}

func (g *Game) endRun() {
	st := &g.state
	score := st.FC
	if score > st.HighScore {
		st.HighScore = score
	}
	st.LastScore = score
	st.RunCount++

	result := RunResult{
		Run:       st.RunCount,
		Score:     score,
		HighScore: st.HighScore,
		Reason:    g.endReason,
		Theme:     st.Palette().Name,
		Duration:  g.now().Sub(g.runStarted),
		EndedAt:   g.now(),
	}

	st.FC = 0
	st.GameStarted = false
	st.GameOver = false
	g.overTicks = 0
	g.actors.Reset()

	g.logger.Info("run finished",
		"run", result.Run,
		"score", result.Score,
		"high_score", result.HighScore,
		"reason", result.Reason,
		"duration", result.Duration.Round(time.Millisecond),
	)

	if g.recorder != nil {
		if err := g.recorder.RecordRun(result); err != nil {
			g.logger.Warn("failed to record run", "run", result.Run, "err", err)
		}
	}
}

func (g *Game) switchTheme() {
	g.state.Theme.Next()
	t := g.state.Theme.Current()
	g.actors.SwitchTheme(t)
	g.logger.Debug("theme switched", "theme", t.Name)
}

func (g *Game) render() {
	for _, actor := range g.actors.RenderOrder() {
		if err := actor.Render(&g.state, g.renderer); err != nil {
			g.logger.Warn("render failed", "actor", actor.Name(), "err", err)
		}
	}
	if err := g.renderer.Present(); err != nil {
		g.logger.Warn("present failed", "err", err)
	}
}

// State returns a copy of the current game state. The theme switcher is
// shared, not copied.
func (g *Game) State() State {
	return g.state
}

// Phase returns the current loop phase.
func (g *Game) Phase() Phase {
	return g.state.Phase()
}

// Seed returns the seed the world was generated from.
func (g *Game) Seed() int64 {
	return g.seed
}
