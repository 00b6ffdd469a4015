package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappydive/internal/core"
)

type cellStyle struct {
	fg, bg core.RGB
}

// Painter converts canvases to styled strings. It caches one lipgloss style
// per color pair, which stays small because palettes are small.
type Painter struct {
	styles map[cellStyle]lipgloss.Style
}

// NewPainter creates a painter with an empty style cache.
func NewPainter() *Painter {
	return &Painter{styles: make(map[cellStyle]lipgloss.Style)}
}

func (p *Painter) style(cs cellStyle) lipgloss.Style {
	if st, ok := p.styles[cs]; ok {
		return st
	}
	st := lipgloss.NewStyle().
		Foreground(lipgloss.Color(cs.fg.Hex())).
		Background(lipgloss.Color(cs.bg.Hex()))
	p.styles[cs] = st
	return st
}

func styleOf(c core.Cell) (cellStyle, rune) {
	if c.Rune != 0 {
		return cellStyle{fg: c.FG, bg: c.Top}, c.Rune
	}
	return cellStyle{fg: c.Top, bg: c.Bottom}, core.HalfBlock
}

// Paint renders the canvas. Adjacent cells with the same colors share one
// styled run to keep the escape sequences down.
func (p *Painter) Paint(c *core.Canvas) string {
	var sb strings.Builder
	sb.Grow(c.Width()*c.Height()*4 + c.Height())

	for y := range c.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < c.Width() {
			start, _ := styleOf(c.Cell(x, y))

			var run strings.Builder
			for x < c.Width() {
				cs, r := styleOf(c.Cell(x, y))
				if cs != start {
					break
				}
				run.WriteRune(r)
				x++
			}

			sb.WriteString(p.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
