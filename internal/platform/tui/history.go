package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappydive/internal/storage"
)

// History layout constants
const (
	historyLimit  = 100 // Max runs to load per view
	tableMinWidth = 50
)

// HistoryView selects which runs the browser lists.
type HistoryView int

const (
	ViewRecent HistoryView = iota
	ViewTop
)

func (v HistoryView) String() string {
	if v == ViewTop {
		return "Best runs"
	}
	return "Recent runs"
}

// HistoryKeyMap defines the key bindings for the journal browser.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Switch, k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "recent/best"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunSource is the part of the journal the browser reads.
type RunSource interface {
	RecentRuns(limit int) ([]storage.RunEntry, error)
	TopRuns(limit int) ([]storage.RunEntry, error)
	Stats() (storage.Stats, error)
}

// HistoryModel is the Bubble Tea model for browsing the run journal.
type HistoryModel struct {
	source   RunSource
	view     HistoryView
	runs     []storage.RunEntry
	stats    storage.Stats
	err      error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a browser over source.
func NewHistoryModel(source RunSource, width, height int) HistoryModel {
	m := HistoryModel{
		source: source,
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.stats, m.err = source.Stats()
	m.loadRuns()
	return m
}

// createTable creates a new table sized for the current window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Reason", Width: 10},
		{Title: "Theme", Width: 10},
		{Title: "Time", Width: 8},
		{Title: "Ended", Width: 12},
	}

	// Give the date column what is left.
	if spare := m.width - 4 - tableMinWidth - 3; spare > 0 {
		columns[5].Width += min(spare, 8)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Leave room for header, stats and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns reloads the active view.
func (m *HistoryModel) loadRuns() {
	var runs []storage.RunEntry
	var err error
	if m.view == ViewTop {
		runs, err = m.source.TopRuns(historyLimit)
	} else {
		runs, err = m.source.RecentRuns(historyLimit)
	}
	if err != nil {
		m.err = err
		runs = nil
	}
	m.runs = runs
	m.table.SetRows(HistoryRows(runs))
	m.table.GotoTop()
}

// HistoryRows formats runs as table rows.
func HistoryRows(runs []storage.RunEntry) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.Run),
			fmt.Sprintf("%d", r.Score),
			r.Reason,
			r.Theme,
			r.Duration.Round(100 * time.Millisecond).String(),
			r.EndedAt.Local().Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			if m.view == ViewRecent {
				m.view = ViewTop
			} else {
				m.view = ViewRecent
			}
			m.loadRuns()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(HistoryRows(m.runs))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("FLAPPYDIVE - " + strings.ToUpper(m.view.String())))
	b.WriteString("\n")

	statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	b.WriteString(statsStyle.Render(StatsLine(m.stats)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	switch {
	case m.err != nil:
		b.WriteString(boxStyle.Render("Cannot read the journal: " + m.err.Error()))
	case len(m.runs) == 0:
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		b.WriteString(boxStyle.Render(emptyStyle.Render("No runs journaled yet.\nPlay with --journal to record some!")))
	default:
		b.WriteString(boxStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// StatsLine summarizes the journal in one line.
func StatsLine(s storage.Stats) string {
	return fmt.Sprintf("%d runs over %d sessions, best %d, average %.1f", s.Runs, s.Sessions, s.Best, s.Average)
}

// RunHistory runs the journal browser until the user quits.
func RunHistory(source RunSource, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(source, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
