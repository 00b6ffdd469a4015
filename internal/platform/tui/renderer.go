package tui

import (
	"math"

	"github.com/vovakirdan/flappydive/internal/core"
)

// Renderer implements core.Renderer on a half-block canvas. The game keeps
// drawing in world pixels; the renderer scales them to whatever the terminal
// offers, so the world is stretched rather than cropped on odd sizes.
type Renderer struct {
	canvas         *core.Canvas
	worldW, worldH int
	frames         int
}

// NewRenderer creates a renderer for a cols×rows terminal area showing a
// worldW×worldH world.
func NewRenderer(cols, rows, worldW, worldH int) *Renderer {
	return &Renderer{
		canvas: core.NewCanvas(cols, rows),
		worldW: worldW,
		worldH: worldH,
	}
}

// Resize changes the terminal area. The world size stays the same.
func (r *Renderer) Resize(cols, rows int) {
	r.canvas.Resize(cols, rows)
}

// Canvas returns the canvas holding the last frame.
func (r *Renderer) Canvas() *core.Canvas {
	return r.canvas
}

// Frames returns the number of presented frames.
func (r *Renderer) Frames() int {
	return r.frames
}

func (r *Renderer) scale() (float64, float64) {
	return float64(r.canvas.Width()) / float64(r.worldW),
		float64(r.canvas.PixelHeight()) / float64(r.worldH)
}

// span maps a world interval onto canvas pixels, never shrinking a
// non-empty interval to nothing.
func span(from, length int, s float64) (int, int) {
	lo := int(math.Round(float64(from) * s))
	hi := int(math.Round(float64(from+length) * s))
	if length > 0 && hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

func (r *Renderer) toCanvas(rect core.Rect) core.Rect {
	sx, sy := r.scale()
	x0, x1 := span(rect.X, rect.W, sx)
	y0, y1 := span(rect.Y, rect.H, sy)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func (r *Renderer) Clear(c core.RGB) error {
	r.canvas.Clear(c)
	return nil
}

func (r *Renderer) FillRect(c core.RGB, rect core.Rect) error {
	if rect.Empty() {
		return nil
	}
	r.canvas.FillPixels(r.toCanvas(rect), c)
	return nil
}

// DrawImage samples the sprite once per covered canvas pixel.
func (r *Renderer) DrawImage(id core.AssetID, dst core.Rect, opts core.ImageOptions) error {
	if dst.Empty() {
		return nil
	}
	sx, sy := r.scale()
	area := r.toCanvas(dst)
	for py := area.Y; py < area.Bottom(); py++ {
		wy := (float64(py) + 0.5) / sy
		for px := area.X; px < area.Right(); px++ {
			wx := (float64(px) + 0.5) / sx
			if c, ok := core.SpriteAt(id, dst, wx, wy, opts); ok {
				r.canvas.SetPixel(px, py, c)
			}
		}
	}
	return nil
}

// DrawText writes text at the left edge of dst, on the cell row through its
// middle.
func (r *Renderer) DrawText(text string, c core.RGB, dst core.Rect) error {
	sx, sy := r.scale()
	col := int(math.Round(float64(dst.X) * sx))
	mid := float64(dst.Y) + float64(dst.H)/2
	r.canvas.SetText(col, int(mid*sy)/2, text, c)
	return nil
}

func (r *Renderer) Present() error {
	r.frames++
	return nil
}

// OutputSize reports the fixed world size.
func (r *Renderer) OutputSize() (int, int) {
	return r.worldW, r.worldH
}
