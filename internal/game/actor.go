package game

import (
	"math/rand"

	"github.com/vovakirdan/flappydive/internal/config"
	"github.com/vovakirdan/flappydive/internal/core"
	"github.com/vovakirdan/flappydive/internal/theme"
)

// Actor is one participant of the frame. Update and Render receive the shared
// state; SwitchTheme must only change colors, never positions.
type Actor interface {
	Name() string
	Update(st *State)
	Render(st *State, r core.Renderer) error
	SwitchTheme(t theme.Theme)
	Reset()
}

// Actors is the fixed cast of a game.
type Actors struct {
	Background *Background
	Sub        *Sub
	Bubbles    *Bubbles
	Pipes      *Pipes
	Score      *Score
}

// NewActors builds every actor for a world of w×h pixels using the shared rng.
func NewActors(cfg config.Config, rng *rand.Rand, w, h int, t theme.Theme) *Actors {
	return &Actors{
		Background: NewBackground(cfg.Background, rng, w, h, t),
		Sub:        NewSub(cfg.Sub, t),
		Bubbles:    NewBubbles(cfg.Bubbles, rng, w, h, t),
		Pipes:      NewPipes(cfg.Pipes, rng, t),
		Score:      NewScore(),
	}
}

// UpdateOrder lists the actors in the order they advance each frame.
func (a *Actors) UpdateOrder() []Actor {
	return []Actor{a.Background, a.Sub, a.Bubbles, a.Pipes, a.Score}
}

// RenderOrder lists the actors back to front.
func (a *Actors) RenderOrder() []Actor {
	return []Actor{a.Background, a.Pipes, a.Sub, a.Bubbles, a.Score}
}

// Update advances every actor by one frame.
func (a *Actors) Update(st *State) {
	for _, actor := range a.UpdateOrder() {
		actor.Update(st)
	}
}

// SwitchTheme re-tints every actor.
func (a *Actors) SwitchTheme(t theme.Theme) {
	for _, actor := range a.UpdateOrder() {
		actor.SwitchTheme(t)
	}
}

// Reset prepares every actor for a new run.
func (a *Actors) Reset() {
	for _, actor := range a.UpdateOrder() {
		actor.Reset()
	}
}

// randRange returns a value in [lo, hi), or lo when the range is empty.
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo)
}
