package core

// AssetID identifies a sprite in the frontend's asset arena. Actors only keep
// ids; the frontend owns the loaded images for the whole process lifetime.
type AssetID int

const (
	AssetSub AssetID = iota
	AssetPipeBody
	AssetPipeCap
	AssetBubbleSmall
	AssetBubbleMedium
	AssetBubbleLarge
	AssetAxolotl

	assetCount
)

// AssetInfo describes a sprite's stable name and nominal size in pixels.
type AssetInfo struct {
	Name string
	W, H int
}

var assets = [assetCount]AssetInfo{
	AssetSub:          {Name: "sub", W: 50, H: 45},
	AssetPipeBody:     {Name: "pipe", W: 50, H: 400},
	AssetPipeCap:      {Name: "pipe-end", W: 64, H: 20},
	AssetBubbleSmall:  {Name: "bubble-sm", W: 8, H: 8},
	AssetBubbleMedium: {Name: "bubble-md", W: 12, H: 12},
	AssetBubbleLarge:  {Name: "bubble-lg", W: 18, H: 18},
	AssetAxolotl:      {Name: "axolotl", W: 64, H: 32},
}

// Info returns the asset's metadata. Unknown ids return a zero AssetInfo.
func (id AssetID) Info() AssetInfo {
	if id < 0 || id >= assetCount {
		return AssetInfo{}
	}
	return assets[id]
}

// String returns the asset's name.
func (id AssetID) String() string {
	if info := id.Info(); info.Name != "" {
		return info.Name
	}
	return "unknown"
}

// AllAssets lists every asset id in order.
func AllAssets() []AssetID {
	ids := make([]AssetID, 0, assetCount)
	for id := AssetID(0); id < assetCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// BubbleAssets are the interchangeable bubble sizes.
var BubbleAssets = []AssetID{AssetBubbleSmall, AssetBubbleMedium, AssetBubbleLarge}

// FaunaAssets are the decorative creatures the background can spawn.
var FaunaAssets = []AssetID{AssetAxolotl}

// ImageOptions modifies how a sprite is drawn.
type ImageOptions struct {
	Rotation float64 // Degrees, clockwise, around the destination center
	FlipH    bool
	FlipV    bool
	Tint     RGB // Multiplied into the sprite; sprites are authored white
}

// Renderer is the drawing capability the game consumes. Every call reports
// failures as an error; the game logs them and keeps going.
type Renderer interface {
	// Clear fills the whole canvas.
	Clear(c RGB) error
	// FillRect fills a rectangle in world pixels.
	FillRect(c RGB, r Rect) error
	// DrawImage draws a sprite scaled into dst.
	DrawImage(id AssetID, dst Rect, opts ImageOptions) error
	// DrawText draws a single line of text fitted into dst.
	DrawText(text string, c RGB, dst Rect) error
	// Present finishes the frame.
	Present() error
	// OutputSize returns the current viewport in world pixels.
	OutputSize() (w, h int)
}
