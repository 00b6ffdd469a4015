package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappydive/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Dive       key.Binding
	Theme      key.Binding
	Concede    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dive, k.Theme, k.Concede, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Dive, k.Theme, k.Concede},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Dive: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "dive/jump"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Concede: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "give up"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Event translates a key message into a game event.
// Keys the game does not know about return false.
func (k KeyMap) Event(msg tea.KeyMsg) (core.Event, bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.Quit(), true
	case key.Matches(msg, k.Dive):
		return core.KeyDown(core.KeySpace), true
	case key.Matches(msg, k.Theme):
		return core.KeyDown(core.KeyTheme), true
	case key.Matches(msg, k.Concede):
		return core.KeyDown(core.KeyConcede), true
	}
	return core.Event{}, false
}
