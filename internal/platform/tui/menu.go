package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LaunchOptions are the choices made in the launcher menu.
type LaunchOptions struct {
	Frontend   string
	Difficulty string
	Theme      string
}

// MenuKeyMap defines the key bindings for the launcher.
type MenuKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Prev    key.Binding
	Next    key.Binding
	Dive    key.Binding
	History key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Dive, k.History, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Prev, k.Next}, {k.Dive, k.History, k.Quit}}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "change"),
		),
		Dive: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "dive"),
		),
		History: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "history"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// menuRow is one setting the launcher cycles through.
type menuRow struct {
	label  string
	values []string
	index  int
}

func (r menuRow) value() string {
	if len(r.values) == 0 {
		return ""
	}
	return r.values[r.index]
}

func newMenuRow(label string, values []string, current string) menuRow {
	return menuRow{label: label, values: values, index: max(slices.Index(values, current), 0)}
}

const (
	rowFrontend = iota
	rowDifficulty
	rowTheme
)

// MenuModel is the Bubble Tea model for the launcher.
type MenuModel struct {
	rows     []menuRow
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	help     help.Model
	quitting bool
	launched bool
	history  bool
}

// NewMenuModel creates a launcher offering the given choices, preselecting
// the values in initial.
func NewMenuModel(frontends, difficulties, themes []string, initial LaunchOptions, width, height int) MenuModel {
	return MenuModel{
		rows: []menuRow{
			rowFrontend:   newMenuRow("Frontend", frontends, initial.Frontend),
			rowDifficulty: newMenuRow("Difficulty", difficulties, initial.Difficulty),
			rowTheme:      newMenuRow("Theme", themes, initial.Theme),
		},
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Next):
		m.cycle(1)

	case key.Matches(msg, m.keys.Prev):
		m.cycle(-1)

	case key.Matches(msg, m.keys.Dive):
		m.launched = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.History):
		m.history = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *MenuModel) cycle(step int) {
	row := &m.rows[m.cursor]
	if n := len(row.values); n > 0 {
		row.index = ((row.index+step)%n + n) % n
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("F L A P P Y D I V E"), m.width))
	b.WriteString("\n\n")

	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	for i, row := range m.rows {
		cursor := "  "
		line := fmt.Sprintf("%-10s < %s >", row.label, row.value())
		if i == m.cursor {
			cursor = "> "
			line = activeStyle.Render(line)
		}
		b.WriteString(centerText(cursor+line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Options returns the current selection.
func (m MenuModel) Options() LaunchOptions {
	return LaunchOptions{
		Frontend:   m.rows[rowFrontend].value(),
		Difficulty: m.rows[rowDifficulty].value(),
		Theme:      m.rows[rowTheme].value(),
	}
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Options      LaunchOptions
	WantsHistory bool
	Quit         bool
}

// Result interprets the final model.
func (m MenuModel) Result() MenuResult {
	return MenuResult{
		Options:      m.Options(),
		WantsHistory: m.history,
		Quit:         m.quitting || (!m.launched && !m.history),
	}
}

// RunMenu runs the launcher and returns the selection.
func RunMenu(frontends, difficulties, themes []string, initial LaunchOptions, width, height int) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(frontends, difficulties, themes, initial, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Options: initial}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Options: initial, Quit: true}, nil
	}
	return m.Result(), nil
}
