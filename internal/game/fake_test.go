package game

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flappydive/internal/config"
	"github.com/vovakirdan/flappydive/internal/core"
)

// fakeRenderer records draw calls instead of drawing.
type fakeRenderer struct {
	w, h int

	clears   int
	fills    int
	images   map[core.AssetID]int
	imageOps []core.ImageOptions
	texts    []string
	presents int

	drawErr error
}

func newFakeRenderer(w, h int) *fakeRenderer {
	return &fakeRenderer{w: w, h: h, images: make(map[core.AssetID]int)}
}

func (r *fakeRenderer) Clear(core.RGB) error {
	r.clears++
	return nil
}

func (r *fakeRenderer) FillRect(core.RGB, core.Rect) error {
	r.fills++
	return nil
}

func (r *fakeRenderer) DrawImage(id core.AssetID, _ core.Rect, opts core.ImageOptions) error {
	r.images[id]++
	r.imageOps = append(r.imageOps, opts)
	return r.drawErr
}

func (r *fakeRenderer) DrawText(text string, _ core.RGB, _ core.Rect) error {
	r.texts = append(r.texts, text)
	return nil
}

func (r *fakeRenderer) Present() error {
	r.presents++
	return nil
}

func (r *fakeRenderer) OutputSize() (int, int) {
	return r.w, r.h
}

// lastText returns the most recent text drawn.
func (r *fakeRenderer) lastText() string {
	if len(r.texts) == 0 {
		return ""
	}
	return r.texts[len(r.texts)-1]
}

// fakeRecorder collects runs and can be told to fail.
type fakeRecorder struct {
	runs []RunResult
	err  error
}

func (f *fakeRecorder) RecordRun(r RunResult) error {
	f.runs = append(f.runs, r)
	return f.err
}

var errRecorder = errors.New("disk full")

type testGame struct {
	*Game
	r *fakeRenderer
	q *core.EventQueue
}

func newTestGame(t *testing.T, mutate func(*config.Config), opts ...Option) testGame {
	t.Helper()
	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	r := newFakeRenderer(cfg.Window.Width, cfg.Window.Height)
	q := core.NewEventQueue()
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	opts = append([]Option{
		WithSeed(42),
		WithClock(func() time.Time {
			clock = clock.Add(time.Second / 60)
			return clock
		}),
	}, opts...)
	g, err := New(cfg, r, q, opts...)
	require.NoError(t, err)
	return testGame{Game: g, r: r, q: q}
}

// press queues a key and runs one tick.
func (tg testGame) press(k core.Key) Status {
	tg.q.Push(core.KeyDown(k))
	return tg.Tick()
}

// ticks runs n ticks without input.
func (tg testGame) ticks(n int) {
	for range n {
		tg.Tick()
	}
}

// start leaves pregame; the next tick is the first playing frame.
func (tg testGame) start() {
	tg.press(core.KeySpace)
}

// sink forces a screen-bounds collision on the next playing tick.
func (tg testGame) sink() {
	tg.actors.Sub.y = -100
	tg.actors.Sub.velocity = 0
}
