package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/flappydive/internal/core"
)

// assetScale is the supersampling factor sprites are rasterized at, so
// rotated sprites keep clean edges.
const assetScale = 2

// Assets is the image arena for every sprite. It lives until the process
// exits.
type Assets struct {
	images map[core.AssetID]*ebiten.Image
}

// NewAssets rasterizes every sprite once.
func NewAssets() *Assets {
	a := &Assets{images: make(map[core.AssetID]*ebiten.Image)}
	for _, id := range core.AllAssets() {
		info := id.Info()
		a.images[id] = ebiten.NewImageFromImage(core.Rasterize(id, info.W*assetScale, info.H*assetScale))
	}
	return a
}

// Image returns the white sprite for id, or nil for unknown ids.
func (a *Assets) Image(id core.AssetID) *ebiten.Image {
	return a.images[id]
}
