package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/flappydive/internal/core"
	"github.com/vovakirdan/flappydive/internal/game"
	"github.com/vovakirdan/flappydive/internal/registry"
)

// ID is the registry id of the terminal frontend.
const ID = "terminal"

// Frontend runs the game in the terminal.
type Frontend struct{}

func (Frontend) ID() string { return ID }
func (Frontend) Title() string { return "Terminal (half-block true color)" }

// Run blocks until the player quits.
func (Frontend) Run(s registry.Session) error {
	cols, rows := terminalSize()
	renderer := NewRenderer(cols, rows-1, s.Config.Window.Width, s.Config.Window.Height)
	queue := core.NewEventQueue()

	opts := append([]game.Option{game.WithLogger(s.Logger)}, s.Options...)
	g, err := game.New(s.Config, renderer, queue, opts...)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewModel(g, queue, renderer, s.Config.TickRate, s.Logger),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 1 {
		return 80, 24
	}
	return w, h
}

func init() {
	registry.Register(ID, func() registry.Frontend { return Frontend{} })
}
