// Package game implements FlappyDive: a submarine dodging scrolling pipes
// while the sea floor, its creatures and a stream of bubbles drift past.
//
// The package owns the per-frame actor model and the pregame / playing /
// game-over state machine. Drawing and input are injected through
// core.Renderer and core.InputSource, so the same Game runs in a terminal, a
// window or a test.
package game

import (
	"github.com/vovakirdan/flappydive/internal/theme"
)

// Phase is the externally visible state of the game loop.
type Phase int

const (
	PhasePregame Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePregame:
		return "pregame"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// State is the shared per-frame context handed to every actor.
type State struct {
	GameStarted bool
	GameOver    bool

	FC        int64 // Frames since the current run began; doubles as the score
	HighScore int64 // Best FC of any finished run in this process
	LastScore int64 // Score of the most recently finished run

	XSpeed       int // Scroll speed in pixels per frame
	WindowWidth  int
	WindowHeight int

	Theme    *theme.Switcher
	RunCount int // Finished runs
}

// Phase derives the loop phase from the two flags.
func (s State) Phase() Phase {
	switch {
	case s.GameOver:
		return PhaseGameOver
	case s.GameStarted:
		return PhasePlaying
	default:
		return PhasePregame
	}
}

// Palette returns the active theme.
func (s State) Palette() theme.Theme {
	return s.Theme.Current()
}

// SandTop returns the y where the sand band starts.
func (s State) SandTop() int {
	return sandTop(s.WindowHeight)
}

func sandTop(h int) int {
	return h - h/3
}
