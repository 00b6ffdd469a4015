package window

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/flappydive/internal/core"
)

var face = text.NewGoXFace(basicfont.Face7x13)

// Renderer implements core.Renderer on an offscreen image the size of the
// world. The window scales that image when it is presented.
type Renderer struct {
	canvas *ebiten.Image
	assets *Assets
	w, h   int
}

// NewRenderer creates a renderer for a w×h world.
func NewRenderer(w, h int, assets *Assets) *Renderer {
	return &Renderer{
		canvas: ebiten.NewImage(w, h),
		assets: assets,
		w:      w,
		h:      h,
	}
}

// Canvas returns the image holding the last frame.
func (r *Renderer) Canvas() *ebiten.Image {
	return r.canvas
}

func (r *Renderer) Clear(c core.RGB) error {
	r.canvas.Fill(c.RGBA())
	return nil
}

func (r *Renderer) FillRect(c core.RGB, rect core.Rect) error {
	if rect.Empty() {
		return nil
	}
	vector.DrawFilledRect(r.canvas, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), c.RGBA(), false)
	return nil
}

// DrawImage scales the sprite into dst, then flips and rotates it about the
// center of dst.
func (r *Renderer) DrawImage(id core.AssetID, dst core.Rect, opts core.ImageOptions) error {
	if dst.Empty() {
		return nil
	}
	img := r.assets.Image(id)
	if img == nil {
		return fmt.Errorf("window: unknown asset %d", id)
	}
	b := img.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	sx := float64(dst.W) / float64(b.Dx())
	sy := float64(dst.H) / float64(b.Dy())
	if opts.FlipH {
		sx = -sx
	}
	if opts.FlipV {
		sy = -sy
	}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Rotate(opts.Rotation * math.Pi / 180)
	cx, cy := dst.Center()
	op.GeoM.Translate(float64(cx), float64(cy))
	op.ColorScale.ScaleWithColor(opts.Tint.RGBA())
	op.Filter = ebiten.FilterLinear

	r.canvas.DrawImage(img, op)
	return nil
}

// DrawText draws text from the left edge of dst, centered vertically.
func (r *Renderer) DrawText(s string, c core.RGB, dst core.Rect) error {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(dst.X), float64(dst.Y)+float64(dst.H)/2)
	op.PrimaryAlign = text.AlignStart
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(c.RGBA())
	text.Draw(r.canvas, s, face, op)
	return nil
}

// Present is a no-op; the window shows the canvas on its next draw.
func (r *Renderer) Present() error {
	return nil
}

func (r *Renderer) OutputSize() (int, int) {
	return r.w, r.h
}
