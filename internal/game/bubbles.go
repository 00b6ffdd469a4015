package game

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/flappydive/internal/config"
	"github.com/vovakirdan/flappydive/internal/core"
	"github.com/vovakirdan/flappydive/internal/theme"
)

// Bubble rises from the sea floor until it pops at MaxY.
type Bubble struct {
	X         int
	Y         float64
	MaxY      int
	VelocityY float64 // Negative, pixels per frame
	Asset     core.AssetID
}

// Finished reports whether the bubble popped or left the screen.
func (b Bubble) Finished() bool {
	return b.Y < float64(b.MaxY) || b.X < 0
}

// Bubbles is a bounded pool of rising bubbles. It keeps flowing across runs.
type Bubbles struct {
	cfg     config.BubblesConfig
	rng     *rand.Rand
	bubbles []Bubble
	tint    core.RGB
}

// NewBubbles creates a full pool for a w×h world.
func NewBubbles(cfg config.BubblesConfig, rng *rand.Rand, w, h int, t theme.Theme) *Bubbles {
	b := &Bubbles{
		cfg:     cfg,
		rng:     rng,
		bubbles: make([]Bubble, 0, cfg.Max),
		tint:    t.Bubbles,
	}
	for len(b.bubbles) < cfg.Max {
		b.spawn(w, h)
	}
	return b
}

func (b *Bubbles) Name() string { return "bubbles" }

func (b *Bubbles) spawn(w, h int) {
	maxY := max(randRange(b.rng, -200, h/2), b.cfg.PopFloor)
	vy := b.cfg.MinVelocity + b.rng.Float64()*(b.cfg.MaxVelocity-b.cfg.MinVelocity)
	b.bubbles = append(b.bubbles, Bubble{
		X:         randRange(b.rng, 0, w+b.cfg.SpawnOverscan),
		Y:         float64(h),
		MaxY:      maxY,
		VelocityY: vy,
		Asset:     core.BubbleAssets[b.rng.Intn(len(core.BubbleAssets))],
	})
}

// Update tops the pool up by one, moves every bubble and drops finished ones.
func (b *Bubbles) Update(st *State) {
	if len(b.bubbles) < b.cfg.Max {
		b.spawn(st.WindowWidth, st.WindowHeight)
	}

	kept := b.bubbles[:0]
	for _, bubble := range b.bubbles {
		bubble.X -= st.XSpeed
		bubble.Y += bubble.VelocityY
		if !bubble.Finished() {
			kept = append(kept, bubble)
		}
	}
	b.bubbles = kept
}

func (b *Bubbles) Render(_ *State, r core.Renderer) error {
	opts := core.ImageOptions{Tint: b.tint}
	var errs []error
	for _, bubble := range b.bubbles {
		info := bubble.Asset.Info()
		errs = append(errs, r.DrawImage(bubble.Asset, core.NewRect(bubble.X, int(bubble.Y), info.W, info.H), opts))
	}
	return errors.Join(errs...)
}

func (b *Bubbles) SwitchTheme(t theme.Theme) {
	b.tint = t.Bubbles
}

// Reset is a no-op: bubbles are ambience and ignore run boundaries.
func (b *Bubbles) Reset() {}

// Bubbles returns the live bubbles.
func (b *Bubbles) Bubbles() []Bubble {
	return b.bubbles
}

// Len returns the pool occupancy.
func (b *Bubbles) Len() int {
	return len(b.bubbles)
}
