package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappydive/internal/core"
	"github.com/vovakirdan/flappydive/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Show the color themes",
	Long: `Lists the built-in palettes and any declared in the config, with a
swatch of each color. Press T in game to cycle through them.`,
	Args: cobra.NoArgs,
	RunE: runThemes,
}

func runThemes(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	nameStyle := lipgloss.NewStyle().Bold(true).Width(12)
	for _, t := range cfg.AllThemes() {
		fmt.Printf("  %s %s\n", nameStyle.Render(t.Name), swatches(t))
	}
	fmt.Println()
	fmt.Println("Run 'flappydive play --theme <name>' to start on a theme.")
	return nil
}

// swatches renders the palette as a row of colored blocks.
func swatches(t theme.Theme) string {
	colors := []core.RGB{t.Water, t.Sand, t.SandHighlight, t.Pipes, t.Bubbles, t.Sub, t.Text}
	for _, c := range t.Fauna() {
		colors = append(colors, c)
	}

	var b strings.Builder
	for _, c := range colors {
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("  "))
	}
	return b.String()
}
