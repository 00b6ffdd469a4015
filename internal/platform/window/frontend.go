// Package window runs the game in a desktop window using ebiten.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/flappydive/internal/game"
	"github.com/vovakirdan/flappydive/internal/registry"
)

// ID is the registry id of the window frontend.
const ID = "window"

// Frontend runs the game in a desktop window.
type Frontend struct{}

func (Frontend) ID() string { return ID }
func (Frontend) Title() string { return "Desktop window (ebiten)" }

// Run opens the window and blocks until it is closed.
func (Frontend) Run(s registry.Session) error {
	w, h := s.Config.Window.Width, s.Config.Window.Height
	renderer := NewRenderer(w, h, NewAssets())

	opts := append([]game.Option{game.WithLogger(s.Logger)}, s.Options...)
	g, err := game.New(s.Config, renderer, Input{}, opts...)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(s.Config.WindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(s.Config.TickRate)

	err = ebiten.RunGame(&runner{game: g, renderer: renderer})
	if err == ebiten.Termination {
		return nil
	}
	return err
}

// runner adapts a game to ebiten.Game. Each ebiten update is one game tick.
type runner struct {
	game     *game.Game
	renderer *Renderer
}

func (r *runner) Update() error {
	if r.game.Tick() == game.StatusQuit {
		return ebiten.Termination
	}
	return nil
}

func (r *runner) Draw(screen *ebiten.Image) {
	screen.DrawImage(r.renderer.Canvas(), nil)
}

func (r *runner) Layout(_, _ int) (int, int) {
	return r.renderer.OutputSize()
}

func init() {
	registry.Register(ID, func() registry.Frontend { return Frontend{} })
}
