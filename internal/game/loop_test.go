package game

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flappydive/internal/config"
	"github.com/vovakirdan/flappydive/internal/core"
	"github.com/vovakirdan/flappydive/internal/theme"
)

func immediateGameOver(cfg *config.Config) {
	cfg.World.GameOverTicks = 0
}

func TestNewStartsInPregame(t *testing.T) {
	tg := newTestGame(t, nil)

	st := tg.State()
	assert.Equal(t, PhasePregame, tg.Phase())
	assert.Equal(t, int64(0), st.FC)
	assert.Equal(t, 800, st.WindowWidth)
	assert.Equal(t, 600, st.WindowHeight)
	assert.Equal(t, 3, st.XSpeed)
	assert.Equal(t, "coral", st.Palette().Name)
	assert.Equal(t, int64(42), tg.Seed())
}

func TestNewWithTheme(t *testing.T) {
	tg := newTestGame(t, nil, WithTheme("Reef"))
	assert.Equal(t, "reef", tg.State().Palette().Name)
	assert.Equal(t, theme.Reef.Sub, tg.actors.Sub.tint)
}

func TestStateCopyQueries(t *testing.T) {
	tg := newTestGame(t, nil)
	assert.Equal(t, PhasePregame, tg.State().Phase())
	assert.Equal(t, 400, tg.State().SandTop())

	tg.start()
	assert.Equal(t, PhasePlaying, tg.State().Phase())
	tg.press(core.KeyTheme)
	assert.Equal(t, "grayscale", tg.State().Palette().Name)
}

func TestNewErrors(t *testing.T) {
	r := newFakeRenderer(800, 600)
	q := core.NewEventQueue()

	_, err := New(config.DefaultConfig(), r, q, WithTheme("abyss"))
	assert.Error(t, err)

	bad := config.DefaultConfig()
	bad.Pipes.MaxHole = bad.Pipes.MinHole
	_, err = New(bad, r, q)
	assert.Error(t, err)
}

func TestNewFallsBackToConfiguredSize(t *testing.T) {
	cfg := config.DefaultConfig()
	g, err := New(cfg, newFakeRenderer(0, 0), core.NewEventQueue(), WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 800, g.State().WindowWidth)
	assert.Equal(t, 600, g.State().WindowHeight)
}

func TestQuitBeforeAnyMutation(t *testing.T) {
	tg := newTestGame(t, nil)
	tg.q.Push(core.KeyDown(core.KeySpace))
	tg.q.Push(core.KeyDown(core.KeyTheme))
	tg.q.Push(core.Quit())

	assert.Equal(t, StatusQuit, tg.Tick())
	assert.Equal(t, PhasePregame, tg.Phase())
	assert.Equal(t, 0, tg.State().Theme.Index())
	assert.Equal(t, 0, tg.r.presents)
}

func TestPregameDoesNotScore(t *testing.T) {
	tg := newTestGame(t, nil)
	tg.ticks(120)

	assert.Equal(t, PhasePregame, tg.Phase())
	assert.Equal(t, int64(0), tg.State().FC)
	assert.Equal(t, 0, tg.actors.Pipes.Len())
	assert.Equal(t, 100.0, tg.actors.Sub.Y())
	assert.NotZero(t, tg.actors.Sub.Angle())
}

func TestSpaceStartsRunNextTick(t *testing.T) {
	tg := newTestGame(t, nil)

	assert.Equal(t, StatusRunning, tg.press(core.KeySpace))
	assert.Equal(t, PhasePlaying, tg.Phase())
	assert.Equal(t, int64(0), tg.State().FC)

	for i := int64(1); i <= 30; i++ {
		tg.Tick()
		require.Equal(t, i, tg.State().FC)
	}
}

func TestSubScenarioThroughLoop(t *testing.T) {
	tg := newTestGame(t, nil)
	tg.start()
	tg.ticks(10)

	assert.InDelta(t, 2.0, tg.actors.Sub.Velocity(), 1e-9)
	assert.InDelta(t, 111.0, tg.actors.Sub.Y(), 1e-9)
}

func TestJumpKey(t *testing.T) {
	tg := newTestGame(t, nil)
	tg.start()
	tg.ticks(20)

	tg.press(core.KeySpace)
	assert.InDelta(t, -4.8, tg.actors.Sub.Velocity(), 1e-9)
	assert.Equal(t, PhasePlaying, tg.Phase())
}

func TestFloorCollisionEndsRun(t *testing.T) {
	tg := newTestGame(t, immediateGameOver)
	tg.start()

	var last int64
	for range 200 {
		tg.Tick()
		if tg.State().RunCount == 1 {
			break
		}
		last = tg.State().FC
	}

	st := tg.State()
	require.Equal(t, 1, st.RunCount)
	assert.Equal(t, last+1, st.LastScore)
	assert.Equal(t, st.LastScore, st.HighScore)
	assert.Equal(t, int64(0), st.FC)
	assert.Equal(t, PhasePregame, tg.Phase())
	assert.Equal(t, 0, tg.actors.Pipes.Len())
	assert.Equal(t, 100.0, tg.actors.Sub.Y())
	assert.Equal(t, 0.0, tg.actors.Sub.Velocity())
}

func TestPipeCollisionEndsRun(t *testing.T) {
	tg := newTestGame(t, immediateGameOver)
	tg.start()
	tg.actors.Pipes.pipes = append(tg.actors.Pipes.pipes, Pipe{X: 110, TopOffset: 300, BottomOffset: 480})
	tg.actors.Pipes.nextPipeAt = 1 << 40

	tg.Tick()

	assert.Equal(t, 1, tg.State().RunCount)
	assert.Equal(t, int64(1), tg.State().LastScore)
}

func TestHighScoreNeverDecreases(t *testing.T) {
	tg := newTestGame(t, immediateGameOver)

	var best int64
	for _, n := range []int{30, 10, 50, 5, 50} {
		tg.start()
		tg.ticks(n)
		tg.press(core.KeyConcede)

		st := tg.State()
		score := int64(n + 1)
		best = max(best, score)
		assert.Equal(t, score, st.LastScore)
		assert.Equal(t, best, st.HighScore)
		assert.Equal(t, PhasePregame, tg.Phase())
	}
	assert.Equal(t, 5, tg.State().RunCount)
}

func TestGameOverHold(t *testing.T) {
	tg := newTestGame(t, nil)
	tg.start()
	tg.ticks(5)
	tg.sink()

	tg.Tick()
	require.Equal(t, PhaseGameOver, tg.Phase())
	assert.Equal(t, int64(6), tg.State().FC)

	for range 44 {
		// Only quit is honored while sunk.
		tg.press(core.KeySpace)
		require.Equal(t, PhaseGameOver, tg.Phase())
		assert.Equal(t, math.Pi, tg.actors.Sub.Angle())
		assert.Equal(t, int64(6), tg.State().FC)
	}

	tg.Tick()
	assert.Equal(t, PhasePregame, tg.Phase())
	assert.Equal(t, int64(6), tg.State().LastScore)
	assert.Equal(t, 1, tg.State().RunCount)
}

func TestQuitDuringGameOver(t *testing.T) {
	tg := newTestGame(t, nil)
	tg.start()
	tg.sink()
	tg.Tick()
	require.Equal(t, PhaseGameOver, tg.Phase())

	tg.q.Push(core.Quit())
	assert.Equal(t, StatusQuit, tg.Tick())
}

func TestConcedeReported(t *testing.T) {
	rec := &fakeRecorder{}
	tg := newTestGame(t, immediateGameOver, WithRunRecorder(rec))
	tg.start()
	tg.ticks(9)
	tg.press(core.KeyConcede)

	require.Len(t, rec.runs, 1)
	run := rec.runs[0]
	assert.Equal(t, 1, run.Run)
	assert.Equal(t, int64(10), run.Score)
	assert.Equal(t, int64(10), run.HighScore)
	assert.Equal(t, EndConceded, run.Reason)
	assert.Equal(t, "coral", run.Theme)
	assert.Positive(t, run.Duration)
}

func TestCollisionReported(t *testing.T) {
	rec := &fakeRecorder{}
	tg := newTestGame(t, immediateGameOver, WithRunRecorder(rec))
	tg.start()
	tg.sink()
	tg.Tick()

	require.Len(t, rec.runs, 1)
	assert.Equal(t, EndCollision, rec.runs[0].Reason)
	assert.Equal(t, int64(1), rec.runs[0].Score)
}

func TestRecorderErrorIsNotFatal(t *testing.T) {
	rec := &fakeRecorder{err: errRecorder}
	tg := newTestGame(t, immediateGameOver, WithRunRecorder(rec))

	for range 3 {
		tg.start()
		tg.sink()
		assert.Equal(t, StatusRunning, tg.Tick())
	}
	assert.Len(t, rec.runs, 3)
	assert.Equal(t, 3, tg.State().RunCount)
}

func TestThemeKeyCycles(t *testing.T) {
	tg := newTestGame(t, nil)
	builtin := theme.Builtin()

	tg.press(core.KeyTheme)
	assert.Equal(t, 1, tg.State().Theme.Index())
	assert.Equal(t, builtin[1].Sub, tg.actors.Sub.tint)

	tg.start()
	tg.ticks(3)
	tg.press(core.KeyTheme)
	assert.Equal(t, 2, tg.State().Theme.Index())
	assert.Equal(t, builtin[2].Pipes, tg.actors.Pipes.tint)
	assert.Equal(t, builtin[2].Bubbles, tg.actors.Bubbles.tint)
	assert.Equal(t, int64(4), tg.State().FC)

	for range len(builtin) - 2 {
		tg.press(core.KeyTheme)
	}
	assert.Equal(t, 0, tg.State().Theme.Index())
}

func TestThemeSwitchLeavesWorldUntouched(t *testing.T) {
	plain := newTestGame(t, nil)
	themed := newTestGame(t, nil)

	plain.start()
	themed.start()
	// One jump every 50 frames keeps the sub clear of the surface and the floor.
	for i := range 150 {
		if i%50 == 0 {
			plain.press(core.KeySpace)
			themed.q.Push(core.KeyDown(core.KeyTheme))
			themed.press(core.KeySpace)
			continue
		}
		plain.Tick()
		themed.Tick()
	}

	assert.Equal(t, plain.State().FC, themed.State().FC)
	assert.Equal(t, plain.actors.Sub.Y(), themed.actors.Sub.Y())
	assert.Equal(t, plain.actors.Pipes.Pipes(), themed.actors.Pipes.Pipes())
	assert.Equal(t, plain.actors.Bubbles.Bubbles(), themed.actors.Bubbles.Bubbles())
	assert.Equal(t, plain.actors.Background.Objects(), themed.actors.Background.Objects())
	assert.Equal(t, PhasePlaying, themed.Phase())
	assert.Equal(t, 0, plain.State().Theme.Index())
	assert.Equal(t, 3, themed.State().Theme.Index())
}

func TestSameSeedSameWorld(t *testing.T) {
	a := newTestGame(t, nil)
	b := newTestGame(t, nil)
	for _, tg := range []testGame{a, b} {
		tg.start()
		for i := range 200 {
			if i%12 == 0 {
				tg.press(core.KeySpace)
				continue
			}
			tg.Tick()
		}
	}

	assert.Equal(t, a.State(), b.State())
	assert.Equal(t, a.actors.Pipes.Pipes(), b.actors.Pipes.Pipes())
	assert.Equal(t, a.actors.Bubbles.Bubbles(), b.actors.Bubbles.Bubbles())
}

func TestWindowSizeRefreshedEachTick(t *testing.T) {
	tg := newTestGame(t, nil)
	tg.r.w, tg.r.h = 1024, 768
	tg.Tick()

	assert.Equal(t, 1024, tg.State().WindowWidth)
	assert.Equal(t, 768, tg.State().WindowHeight)

	// A zero size from the renderer keeps the last known one.
	tg.r.w, tg.r.h = 0, 0
	tg.Tick()
	assert.Equal(t, 1024, tg.State().WindowWidth)
}

func TestRenderErrorsAreLoggedNotFatal(t *testing.T) {
	tg := newTestGame(t, nil)
	tg.r.drawErr = errors.New("gpu lost")

	assert.Equal(t, StatusRunning, tg.Tick())
	assert.Equal(t, 1, tg.r.presents)
	assert.Equal(t, 1, tg.r.clears)
}

func TestFrameRendering(t *testing.T) {
	tg := newTestGame(t, immediateGameOver)

	tg.Tick()
	assert.Equal(t, "Press <space> to begin", tg.r.lastText())
	assert.Equal(t, 1, tg.r.images[core.AssetSub])
	assert.Equal(t, 1, tg.r.presents)

	tg.start()
	tg.ticks(4)
	assert.Equal(t, ScoreLine(4, 0), tg.r.lastText())

	tg.press(core.KeyConcede)
	tg.Tick()
	assert.Equal(t, "You sunk! Score: 5. Press <space> to dive again", tg.r.lastText())
}

func TestScoreLine(t *testing.T) {
	assert.Equal(t, "Score: 000042   Hi-Score: 001337", ScoreLine(42, 1337))
}
