package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/flappydive/internal/config"
	"github.com/vovakirdan/flappydive/internal/core"
	"github.com/vovakirdan/flappydive/internal/theme"
)

func playingState() *State {
	return &State{GameStarted: true, XSpeed: 3, WindowWidth: 800, WindowHeight: 600}
}

func TestSubFallsWithFloatAccumulation(t *testing.T) {
	s := NewSub(config.DefaultConfig().Sub, theme.Coral)
	st := playingState()

	for range 10 {
		s.Update(st)
	}

	assert.InDelta(t, 2.0, s.Velocity(), 1e-9)
	assert.InDelta(t, 111.0, s.Y(), 1e-9)
	assert.Equal(t, 0.0, s.Angle())
}

func TestSubVelocityClamped(t *testing.T) {
	cfg := config.DefaultConfig().Sub
	s := NewSub(cfg, theme.Coral)
	st := playingState()
	st.WindowHeight = 100000

	for range 200 {
		s.Update(st)
		assert.LessOrEqual(t, s.Velocity(), cfg.MaxVelocity)
		assert.GreaterOrEqual(t, s.Velocity(), -cfg.MaxVelocity)
	}
	assert.Equal(t, cfg.MaxVelocity, s.Velocity())
}

func TestSubFloorIsSoftStop(t *testing.T) {
	s := NewSub(config.DefaultConfig().Sub, theme.Coral)
	st := playingState()
	st.WindowHeight = 150

	for range 100 {
		s.Update(st)
	}

	assert.Equal(t, 150.0, s.Y())
	assert.Equal(t, 0.0, s.Velocity())
}

func TestSubJumpKeepsGravityThisTick(t *testing.T) {
	s := NewSub(config.DefaultConfig().Sub, theme.Coral)
	st := playingState()

	s.Update(st)
	s.Jump()
	assert.Equal(t, -5.0, s.Velocity())

	s.Update(st)
	assert.InDelta(t, -4.8, s.Velocity(), 1e-9)
	assert.InDelta(t, 100.2-4.8, s.Y(), 1e-9)
}

func TestSubPregameBob(t *testing.T) {
	cfg := config.DefaultConfig().Sub
	s := NewSub(cfg, theme.Coral)
	st := &State{WindowWidth: 800, WindowHeight: 600}

	for range 1000 {
		s.Update(st)
		assert.GreaterOrEqual(t, s.Angle(), 0.0)
		assert.Less(t, s.Angle(), 2*math.Pi)
		_, y := s.Position()
		assert.InDelta(t, cfg.Y, y, cfg.BobAmplitude+1)
	}
	// Bobbing never moves the physical position.
	assert.Equal(t, float64(cfg.Y), s.Y())
	assert.Equal(t, 0.0, s.Velocity())
}

func TestSubGameOverPose(t *testing.T) {
	s := NewSub(config.DefaultConfig().Sub, theme.Coral)
	st := &State{GameOver: true, WindowHeight: 600}
	s.Update(st)
	assert.Equal(t, math.Pi, s.Angle())

	r := newFakeRenderer(800, 600)
	assert.NoError(t, s.Render(st, r))
	if assert.Len(t, r.imageOps, 1) {
		assert.True(t, r.imageOps[0].FlipV)
	}
}

func TestSubSinksDuringGameOver(t *testing.T) {
	cfg := config.DefaultConfig().Sub
	s := NewSub(cfg, theme.Coral)
	st := &State{GameOver: true, WindowHeight: 600}

	y := s.Y()
	for range 10 {
		s.Update(st)
	}
	assert.InDelta(t, 2.0, s.Velocity(), 1e-9)
	assert.InDelta(t, y+11, s.Y(), 1e-9)

	// The floor still stops it.
	for range 200 {
		s.Update(st)
	}
	assert.Equal(t, 600.0, s.Y())
	assert.Equal(t, 0.0, s.Velocity())
}

func TestSubResetIdempotent(t *testing.T) {
	cfg := config.DefaultConfig().Sub
	s := NewSub(cfg, theme.Coral)
	st := playingState()
	for range 25 {
		s.Update(st)
	}
	s.Jump()

	for range 2 {
		s.Reset()
		assert.Equal(t, float64(cfg.X), s.X())
		assert.Equal(t, float64(cfg.Y), s.Y())
		assert.Equal(t, 0.0, s.Velocity())
		assert.Equal(t, 0.0, s.Angle())
	}
}

func TestSubBoundingBox(t *testing.T) {
	s := NewSub(config.DefaultConfig().Sub, theme.Coral)
	assert.Equal(t, core.NewRect(100, 100, 50, 45), s.BoundingBox())
}

func TestSubSwitchThemeKeepsPosition(t *testing.T) {
	s := NewSub(config.DefaultConfig().Sub, theme.Coral)
	st := playingState()
	for range 5 {
		s.Update(st)
	}
	y, v := s.Y(), s.Velocity()

	s.SwitchTheme(theme.Reef)
	s.SwitchTheme(theme.Reef)

	assert.Equal(t, y, s.Y())
	assert.Equal(t, v, s.Velocity())
	assert.Equal(t, theme.Reef.Sub, s.tint)
}
