package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flappydive/internal/config"
	"github.com/vovakirdan/flappydive/internal/core"
	"github.com/vovakirdan/flappydive/internal/theme"
)

func newTestBackground(seed int64) *Background {
	return NewBackground(config.DefaultConfig().Background, rand.New(rand.NewSource(seed)), 800, 600, theme.Coral)
}

func TestBackgroundSpecklesStayInSand(t *testing.T) {
	b := newTestBackground(1)
	st := playingState()

	for range 1000 {
		b.Update(st)
		require.Equal(t, 100, b.Speckles())
		for _, s := range b.speckles {
			assert.GreaterOrEqual(t, s.y, 400)
			assert.Less(t, s.y, 600)
			assert.GreaterOrEqual(t, s.x, 0)
			assert.LessOrEqual(t, s.x, 800)
		}
	}
}

func TestBackgroundSpecklesWrap(t *testing.T) {
	b := newTestBackground(2)
	b.speckles = []speckle{{x: 1, y: 450}}
	st := playingState()

	b.Update(st)
	assert.Equal(t, 800, b.speckles[0].x)
}

func TestBackgroundSpawnsCreatures(t *testing.T) {
	b := newTestBackground(3)
	st := playingState()

	spawned := 0
	for range 2000 {
		before := len(b.Objects())
		b.Update(st)
		if len(b.Objects()) > before {
			spawned++
			obj := b.Objects()[len(b.Objects())-1]
			assert.GreaterOrEqual(t, obj.Y, 450)
			assert.Less(t, obj.Y, 550)
			assert.Contains(t, core.FaunaAssets, obj.Asset)
		}
		for _, obj := range b.Objects() {
			assert.GreaterOrEqual(t, obj.X, -100)
		}
	}
	// One creature every 50..300 frames.
	assert.GreaterOrEqual(t, spawned, 2000/300)
	assert.LessOrEqual(t, spawned, 2000/50+1)
}

func TestBackgroundFirstSpawnWithinInitialDelay(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		b := newTestBackground(seed)
		st := playingState()
		for range 100 {
			b.Update(st)
		}
		assert.NotEmpty(t, b.Objects(), "seed %d", seed)
	}
}

func TestBackgroundContinuesAcrossReset(t *testing.T) {
	b := newTestBackground(4)
	st := playingState()
	for range 500 {
		b.Update(st)
	}
	frame := b.frame
	objects := append([]BackgroundObject(nil), b.Objects()...)

	b.Reset()

	assert.Equal(t, frame, b.frame)
	assert.Equal(t, objects, b.Objects())
}

func TestBackgroundRenderFillsFrame(t *testing.T) {
	b := newTestBackground(5)
	b.objects = []BackgroundObject{{X: 300, Y: 480, Asset: core.AssetAxolotl, Color: 2}}
	st := playingState()
	st.Theme = mustSwitcher(t)
	r := newFakeRenderer(800, 600)

	require.NoError(t, b.Render(st, r))
	assert.Equal(t, 1, r.clears)
	assert.Equal(t, 1+100, r.fills)
	assert.Equal(t, 1, r.images[core.AssetAxolotl])

	b.SwitchTheme(theme.Reef)
	r = newFakeRenderer(800, 600)
	require.NoError(t, b.Render(st, r))
	assert.Equal(t, theme.Reef.FaunaColor3, r.imageOps[0].Tint)
}

func mustSwitcher(t *testing.T) *theme.Switcher {
	t.Helper()
	s, err := theme.NewSwitcher(theme.Builtin())
	require.NoError(t, err)
	return s
}
