package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flappydive/internal/config"
	"github.com/vovakirdan/flappydive/internal/theme"
)

func newTestBubbles(seed int64) *Bubbles {
	return NewBubbles(config.DefaultConfig().Bubbles, rand.New(rand.NewSource(seed)), 800, 600, theme.Coral)
}

func TestBubblesFilledAtConstruction(t *testing.T) {
	b := newTestBubbles(1)
	assert.Equal(t, 15, b.Len())

	for _, bubble := range b.Bubbles() {
		assert.Equal(t, 600.0, bubble.Y)
		assert.GreaterOrEqual(t, bubble.X, 0)
		assert.Less(t, bubble.X, 800+300)
		assert.GreaterOrEqual(t, bubble.MaxY, -20)
		assert.Less(t, bubble.MaxY, 300)
		assert.GreaterOrEqual(t, bubble.VelocityY, -3.0)
		assert.Less(t, bubble.VelocityY, -0.5)
	}
}

func TestBubblesNeverExceedPool(t *testing.T) {
	b := newTestBubbles(2)
	st := playingState()

	for range 2000 {
		before := b.Len()
		b.Update(st)
		assert.LessOrEqual(t, b.Len(), 15)
		// At most one bubble is added per update.
		assert.LessOrEqual(t, b.Len(), before+1)
	}
}

func TestBubblesRefillByOne(t *testing.T) {
	b := newTestBubbles(3)
	b.bubbles = b.bubbles[:5]
	// Park the survivors far away from popping.
	for i := range b.bubbles {
		b.bubbles[i].X = 10000
		b.bubbles[i].MaxY = -1000
	}
	st := playingState()
	st.XSpeed = 0

	b.Update(st)
	assert.Equal(t, 6, b.Len())
}

func TestBubbleFinished(t *testing.T) {
	assert.True(t, Bubble{X: 10, Y: -5, MaxY: 0}.Finished())
	assert.True(t, Bubble{X: -1, Y: 100, MaxY: 0}.Finished())
	assert.False(t, Bubble{X: 0, Y: 0, MaxY: 0}.Finished())
}

func TestBubblesDropFinished(t *testing.T) {
	b := newTestBubbles(4)
	b.bubbles = []Bubble{
		{X: 100, Y: 10, MaxY: 9, VelocityY: -2},
		{X: 500, Y: 500, MaxY: 0, VelocityY: -1},
	}
	b.cfg.Max = 2
	st := playingState()

	b.Update(st)
	require.Equal(t, 1, b.Len())
	assert.Equal(t, 497, b.Bubbles()[0].X)
	assert.Equal(t, 499.0, b.Bubbles()[0].Y)
}

func TestBubblesSurviveReset(t *testing.T) {
	b := newTestBubbles(5)
	before := append([]Bubble(nil), b.Bubbles()...)
	b.Reset()
	assert.Equal(t, before, b.Bubbles())
}
