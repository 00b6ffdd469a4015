package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flappydive/internal/core"
)

// keyBindings maps physical keys to game keys.
var keyBindings = []struct {
	key  ebiten.Key
	game core.Key
}{
	{ebiten.KeySpace, core.KeySpace},
	{ebiten.KeyArrowUp, core.KeySpace},
	{ebiten.KeyW, core.KeySpace},
	{ebiten.KeyT, core.KeyTheme},
	{ebiten.KeyEscape, core.KeyConcede},
}

// Input polls ebiten's keyboard state. It must be polled from Update.
type Input struct{}

// PollEvents returns the keys pressed since the previous frame, preceded by
// a quit request when the window is closing or Q was pressed.
func (Input) PollEvents() []core.Event {
	var events []core.Event
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		events = append(events, core.Quit())
	}
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			events = append(events, core.KeyDown(b.game))
		}
	}
	// A mouse click dives too.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, core.KeyDown(core.KeySpace))
	}
	return events
}
