package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappydive/internal/config"
	"github.com/vovakirdan/flappydive/internal/platform/tui"
	"github.com/vovakirdan/flappydive/internal/registry"
	"github.com/vovakirdan/flappydive/internal/storage"
)

// runMenu shows the launcher, dives with the chosen settings and comes back
// to the launcher when the session ends.
func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := openJournal()
	if store != nil {
		defer store.Close()
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	frontends := make([]string, 0, 2)
	for _, f := range registry.List() {
		frontends = append(frontends, f.ID)
	}
	difficulties := make([]string, 0, 3)
	for _, p := range config.Presets() {
		difficulties = append(difficulties, string(p))
	}
	themes := make([]string, 0, len(cfg.AllThemes()))
	for _, t := range cfg.AllThemes() {
		themes = append(themes, t.Name)
	}

	selection := tui.LaunchOptions{
		Frontend:   tui.ID,
		Difficulty: string(config.DifficultyNormal),
	}

	// Menu loop
	for {
		result, err := tui.RunMenu(frontends, difficulties, themes, selection, width, height)
		if err != nil {
			return err
		}
		if result.Quit {
			return nil
		}
		selection = result.Options

		if result.WantsHistory {
			if err := browseHistory(store, width, height); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			continue
		}

		if err := dive(cfg, selection, store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
}

// browseHistory shows the open journal, or the default one when the game
// is not journaling.
func browseHistory(store *storage.Store, width, height int) error {
	if store != nil {
		return tui.RunHistory(store, width, height)
	}
	s, err := storage.Open(storage.DefaultPath())
	if err != nil {
		return err
	}
	defer s.Close()
	return tui.RunHistory(s, width, height)
}
