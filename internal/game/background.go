package game

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/flappydive/internal/config"
	"github.com/vovakirdan/flappydive/internal/core"
	"github.com/vovakirdan/flappydive/internal/theme"
)

// BackgroundObject is a creature drifting over the sand.
type BackgroundObject struct {
	X, Y  int
	Asset core.AssetID
	Color int // Index into the theme's fauna colors
}

type speckle struct {
	x, y int
}

// Background draws the water, the sand band with its speckles, and spawns
// creatures on its own frame clock so the scenery never restarts with a run.
type Background struct {
	cfg  config.BackgroundConfig
	rng  *rand.Rand
	w, h int

	speckles []speckle
	objects  []BackgroundObject

	frame       int64
	nextSpawnAt int64

	fauna [4]core.RGB
}

// NewBackground scatters the sand speckles over a w×h world.
func NewBackground(cfg config.BackgroundConfig, rng *rand.Rand, w, h int, t theme.Theme) *Background {
	b := &Background{
		cfg:      cfg,
		rng:      rng,
		w:        w,
		h:        h,
		speckles: make([]speckle, cfg.Highlights),
		fauna:    t.Fauna(),
	}
	for i := range b.speckles {
		b.speckles[i] = speckle{x: randRange(rng, 0, w), y: b.sandY()}
	}
	b.nextSpawnAt = int64(randRange(rng, 0, cfg.InitialDelay))
	return b
}

func (b *Background) Name() string { return "background" }

func (b *Background) sandY() int {
	return randRange(b.rng, sandTop(b.h), b.h)
}

// Update scrolls speckles and creatures and spawns a creature when due.
func (b *Background) Update(st *State) {
	b.w, b.h = st.WindowWidth, st.WindowHeight
	b.frame++

	if b.frame >= b.nextSpawnAt {
		top := sandTop(b.h)
		b.objects = append(b.objects, BackgroundObject{
			X:     b.w,
			Y:     randRange(b.rng, top+50, b.h-50),
			Asset: core.FaunaAssets[b.rng.Intn(len(core.FaunaAssets))],
			Color: b.rng.Intn(len(b.fauna)),
		})
		b.nextSpawnAt = b.frame + int64(randRange(b.rng, b.cfg.MinInterval, b.cfg.MaxInterval))
	}

	kept := b.objects[:0]
	for _, obj := range b.objects {
		obj.X -= st.XSpeed
		if obj.X >= b.cfg.RemoveAt {
			kept = append(kept, obj)
		}
	}
	b.objects = kept

	for i := range b.speckles {
		b.speckles[i].x -= st.XSpeed
		if b.speckles[i].x < 0 {
			b.speckles[i] = speckle{x: b.w, y: b.sandY()}
		}
	}
}

// Render fills the frame; it must run first.
func (b *Background) Render(st *State, r core.Renderer) error {
	pal := st.Palette()
	w, h := st.WindowWidth, st.WindowHeight
	top := sandTop(h)
	size := b.cfg.HighlightSize

	errs := []error{
		r.Clear(pal.Water),
		r.FillRect(pal.Sand, core.NewRect(0, top, w, h-top)),
	}
	for _, s := range b.speckles {
		errs = append(errs, r.FillRect(pal.SandHighlight, core.NewRect(s.x, s.y, size, size)))
	}
	for _, obj := range b.objects {
		info := obj.Asset.Info()
		errs = append(errs, r.DrawImage(obj.Asset, core.NewRect(obj.X, obj.Y, info.W, info.H), core.ImageOptions{Tint: b.fauna[obj.Color]}))
	}
	return errors.Join(errs...)
}

func (b *Background) SwitchTheme(t theme.Theme) {
	b.fauna = t.Fauna()
}

// Reset is a no-op: the scenery is continuous across runs.
func (b *Background) Reset() {}

// Objects returns the live creatures.
func (b *Background) Objects() []BackgroundObject {
	return b.objects
}

// Speckles returns the number of sand highlights.
func (b *Background) Speckles() int {
	return len(b.speckles)
}
