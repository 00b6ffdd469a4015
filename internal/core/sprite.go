package core

import (
	"image"
	"image/color"
	"math"
)

// Sample returns the shade of the sprite at normalized coordinates (u, v),
// both in [0, 1) from the top-left corner. ok is false for transparent
// points. Sprites are white silhouettes; the shade darkens the tint.
func (id AssetID) Sample(u, v float64) (shade float64, ok bool) {
	if u < 0 || u >= 1 || v < 0 || v >= 1 {
		return 0, false
	}
	switch id {
	case AssetSub:
		return sampleSub(u, v)
	case AssetPipeBody:
		return pipeShade(u), true
	case AssetPipeCap:
		if v < 0.12 || v > 0.88 {
			return 0.6, true
		}
		return pipeShade(u), true
	case AssetBubbleSmall, AssetBubbleMedium, AssetBubbleLarge:
		return sampleBubble(u, v)
	case AssetAxolotl:
		return sampleAxolotl(u, v)
	}
	return 0, false
}

func inEllipse(u, v, cu, cv, ru, rv float64) bool {
	du, dv := (u-cu)/ru, (v-cv)/rv
	return du*du+dv*dv <= 1
}

func sampleSub(u, v float64) (float64, bool) {
	switch {
	case inEllipse(u, v, 0.62, 0.58, 0.07, 0.08):
		return 0.45, true // Porthole
	case inEllipse(u, v, 0.45, 0.62, 0.42, 0.26):
		return 1, true // Hull
	case u >= 0.32 && u < 0.56 && v >= 0.24 && v < 0.42:
		return 0.85, true // Tower
	case u >= 0.44 && u < 0.49 && v >= 0.06 && v < 0.24:
		return 0.7, true // Periscope
	case u >= 0.44 && u < 0.6 && v >= 0.06 && v < 0.12:
		return 0.7, true
	case u >= 0.88 && u < 0.98 && v >= 0.46 && v < 0.78:
		return 0.6, true // Propeller
	}
	return 0, false
}

func pipeShade(u float64) float64 {
	switch {
	case u < 0.08 || u > 0.92:
		return 0.6
	case u >= 0.15 && u < 0.3:
		return 1
	default:
		return 0.85
	}
}

func sampleBubble(u, v float64) (float64, bool) {
	d := math.Hypot(u-0.5, v-0.5)
	switch {
	case d > 0.5:
		return 0, false
	case math.Hypot(u-0.35, v-0.35) < 0.12:
		return 1, true // Glint
	case d > 0.38:
		return 0.9, true
	default:
		return 0.7, true
	}
}

func sampleAxolotl(u, v float64) (float64, bool) {
	switch {
	case inEllipse(u, v, 0.8, 0.42, 0.025, 0.06):
		return 0.15, true // Eye
	case inEllipse(u, v, 0.76, 0.5, 0.16, 0.3):
		return 1, true // Head
	case inEllipse(u, v, 0.45, 0.56, 0.3, 0.24):
		return 0.95, true // Body
	case u >= 0.04 && u < 0.2 && math.Abs(v-0.55) < (u-0.02)*1.2:
		return 0.8, true // Tail
	case u >= 0.64 && u < 0.72 && v >= 0.08 && v < 0.3:
		return 0.75, true // Gills
	case (u >= 0.3 && u < 0.36 || u >= 0.56 && u < 0.62) && v >= 0.72 && v < 0.95:
		return 0.85, true // Legs
	}
	return 0, false
}

// SpriteAt samples the sprite drawn into dst with opts at world point (x, y).
// Rotation turns the sprite about the center of dst.
func SpriteAt(id AssetID, dst Rect, x, y float64, opts ImageOptions) (RGB, bool) {
	if dst.Empty() {
		return RGB{}, false
	}
	cx := float64(dst.X) + float64(dst.W)/2
	cy := float64(dst.Y) + float64(dst.H)/2
	dx, dy := x-cx, y-cy
	if opts.Rotation != 0 {
		rad := -opts.Rotation * math.Pi / 180
		sin, cos := math.Sincos(rad)
		dx, dy = dx*cos-dy*sin, dx*sin+dy*cos
	}
	u := dx/float64(dst.W) + 0.5
	v := dy/float64(dst.H) + 0.5
	if opts.FlipH {
		u = 1 - u
	}
	if opts.FlipV {
		v = 1 - v
	}
	shade, ok := id.Sample(u, v)
	if !ok {
		return RGB{}, false
	}
	return opts.Tint.Scale(shade), true
}

// Rasterize renders the untinted sprite into a w×h image. Transparent points
// stay zero so frontends can blend the result over the scene.
func Rasterize(id AssetID, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		v := (float64(y) + 0.5) / float64(h)
		for x := 0; x < w; x++ {
			shade, ok := id.Sample((float64(x)+0.5)/float64(w), v)
			if !ok {
				continue
			}
			g := uint8(math.Round(ClampF(shade, 0, 1) * 255))
			img.SetRGBA(x, y, color.RGBA{R: g, G: g, B: g, A: 0xff})
		}
	}
	return img
}
