package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappydive/internal/config"
	"github.com/vovakirdan/flappydive/internal/core"
	"github.com/vovakirdan/flappydive/internal/game"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model running one game.
// Key presses are queued and consumed by the game on the next tick, so the
// game itself is only ever touched from Update.
type Model struct {
	game     *game.Game
	queue    *core.EventQueue
	renderer *Renderer
	painter  *Painter
	keys     KeyMap
	help     help.Model
	logger   *log.Logger

	tickRate      int
	width, height int
	quitting      bool
}

// NewModel creates a model for a game that draws to renderer and reads queue.
func NewModel(g *game.Game, queue *core.EventQueue, renderer *Renderer, tickRate int, logger *log.Logger) Model {
	return Model{
		game:     g,
		queue:    queue,
		renderer: renderer,
		painter:  NewPainter(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logger,
		tickRate: tickRate,
		width:    renderer.Canvas().Width(),
		height:   renderer.Canvas().Height() + 1,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	if ev, ok := m.keys.Event(msg); ok {
		m.queue.Push(ev)
	}
	return m, nil
}

// handleTick advances the game one frame and re-arms the timer.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.game.Tick() == game.StatusQuit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.tickRate)
}

// layout gives the canvas everything above the help line.
func (m *Model) layout() {
	rows := m.height - lipgloss.Height(m.helpView())
	m.renderer.Resize(m.width, max(rows, 1))
}

func (m Model) helpView() string {
	return helpStyle.Render(m.help.View(m.keys))
}

// saveScreenshot writes the current canvas as plain text.
func (m Model) saveScreenshot() {
	dir := filepath.Join(config.UserDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "dir", dir, "err", err)
		return
	}

	name := fmt.Sprintf("flappydive_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.renderer.Canvas().String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View paints the last frame and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.painter.Paint(m.renderer.Canvas()) + "\n" + m.helpView()
}

// Quitting reports whether the game asked to stop.
func (m Model) Quitting() bool {
	return m.quitting
}
