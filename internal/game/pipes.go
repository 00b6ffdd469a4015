package game

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/flappydive/internal/config"
	"github.com/vovakirdan/flappydive/internal/core"
	"github.com/vovakirdan/flappydive/internal/theme"
)

// Pipe is an obstacle pair. TopOffset is where the upper pipe ends and
// BottomOffset where the lower one begins.
type Pipe struct {
	X            int
	TopOffset    int
	BottomOffset int
}

// Gap returns the height of the passable hole.
func (p Pipe) Gap() int {
	return p.BottomOffset - p.TopOffset
}

// Pipes spawns obstacle pairs at random frame intervals and scrolls them.
type Pipes struct {
	cfg        config.PipesConfig
	rng        *rand.Rand
	pipes      []Pipe
	nextPipeAt int64
	tint       core.RGB
}

// NewPipes creates an empty pipe queue.
func NewPipes(cfg config.PipesConfig, rng *rand.Rand, t theme.Theme) *Pipes {
	return &Pipes{
		cfg:   cfg,
		rng:   rng,
		pipes: make([]Pipe, 0, 8),
		tint:  t.Pipes,
	}
}

func (p *Pipes) Name() string { return "pipes" }

// Update spawns a pipe when one is due, then scrolls and culls.
func (p *Pipes) Update(st *State) {
	if st.FC > p.nextPipeAt {
		p.spawn(st.WindowWidth, st.WindowHeight)
		p.nextPipeAt = st.FC + int64(randRange(p.rng, p.cfg.MinInterval, p.cfg.MaxInterval))
	}

	kept := p.pipes[:0]
	for _, pipe := range p.pipes {
		pipe.X -= st.XSpeed
		if pipe.X >= p.cfg.RemoveAt {
			kept = append(kept, pipe)
		}
	}
	p.pipes = kept
}

func (p *Pipes) spawn(w, h int) {
	hole := randRange(p.rng, p.cfg.MinHole, p.cfg.MaxHole)
	top := randRange(p.rng, p.cfg.Margin, h-hole-p.cfg.Margin)
	p.pipes = append(p.pipes, Pipe{
		X:            w,
		TopOffset:    top,
		BottomOffset: top + hole,
	})
}

// BoundingBoxes returns two hitboxes per pipe for a world h pixels tall.
// Hitboxes are padded horizontally so they cover the caps.
func (p *Pipes) BoundingBoxes(h int) []core.Rect {
	pad := max(p.cfg.HitboxPadding, (p.cfg.CapWidth-p.cfg.Width)/2)
	w := p.cfg.Width + 2*pad
	boxes := make([]core.Rect, 0, 2*len(p.pipes))
	for _, pipe := range p.pipes {
		boxes = append(boxes,
			core.NewRect(pipe.X-pad, 0, w, pipe.TopOffset),
			core.NewRect(pipe.X-pad, pipe.BottomOffset, w, h-pipe.BottomOffset),
		)
	}
	return boxes
}

// Collides reports whether box overlaps any pipe.
func (p *Pipes) Collides(box core.Rect, h int) bool {
	for _, b := range p.BoundingBoxes(h) {
		if box.Intersects(b) {
			return true
		}
	}
	return false
}

// Render draws each pipe body with a cap against the gap.
func (p *Pipes) Render(st *State, r core.Renderer) error {
	h := st.WindowHeight
	capW, capH := p.cfg.CapWidth, p.cfg.CapHeight
	inset := (capW - p.cfg.Width) / 2
	opts := core.ImageOptions{Tint: p.tint}
	flipped := core.ImageOptions{Tint: p.tint, FlipV: true}

	var errs []error
	for _, pipe := range p.pipes {
		errs = append(errs,
			r.DrawImage(core.AssetPipeBody, core.NewRect(pipe.X, 0, p.cfg.Width, pipe.TopOffset), flipped),
			r.DrawImage(core.AssetPipeCap, core.NewRect(pipe.X-inset, pipe.TopOffset-capH, capW, capH), flipped),
			r.DrawImage(core.AssetPipeBody, core.NewRect(pipe.X, pipe.BottomOffset, p.cfg.Width, h-pipe.BottomOffset), opts),
			r.DrawImage(core.AssetPipeCap, core.NewRect(pipe.X-inset, pipe.BottomOffset, capW, capH), opts),
		)
	}
	return errors.Join(errs...)
}

func (p *Pipes) SwitchTheme(t theme.Theme) {
	p.tint = t.Pipes
}

// Reset drops every pipe; the next one spawns on the run's first frame.
func (p *Pipes) Reset() {
	p.pipes = p.pipes[:0]
	p.nextPipeAt = 0
}

// Pipes returns the active pipes, oldest first.
func (p *Pipes) Pipes() []Pipe {
	return p.pipes
}

// Len returns the number of active pipes.
func (p *Pipes) Len() int {
	return len(p.pipes)
}
