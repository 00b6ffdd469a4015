package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappydive/internal/config"
	"github.com/vovakirdan/flappydive/internal/game"
	"github.com/vovakirdan/flappydive/internal/platform/tui"
	"github.com/vovakirdan/flappydive/internal/registry"
	"github.com/vovakirdan/flappydive/internal/storage"
)

var (
	flagFrontend   string
	flagDifficulty string
	flagTheme      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Dive straight in",
	Long: `Start a game on the chosen frontend.

Controls:
  Space/Up/W - Start a run / rise
  T          - Next color theme
  Esc        - Give up the current run
  Q          - Quit

Difficulty options:
  easy   - Slower scroll, wider gaps
  normal - The configured defaults
  hard   - Faster scroll, pipes closer together

Examples:
  flappydive play
  flappydive play --frontend window
  flappydive play --difficulty easy --theme lagoon
  flappydive play --config ./my-dive.yaml --journal`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", tui.ID, "Frontend: terminal or window")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Starting color theme")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := openJournal()
	if store != nil {
		defer store.Close()
	}

	return dive(cfg, tui.LaunchOptions{
		Frontend:   flagFrontend,
		Difficulty: flagDifficulty,
		Theme:      flagTheme,
	}, store)
}

// dive runs one session on the selected frontend and blocks until the
// player quits.
func dive(cfg config.Config, opts tui.LaunchOptions, store *storage.Store) error {
	if !registry.Exists(opts.Frontend) {
		return fmt.Errorf("unknown frontend %q (run 'flappydive list' to see frontends)", opts.Frontend)
	}
	frontend, err := registry.Create(opts.Frontend)
	if err != nil {
		return err
	}

	preset, err := config.ParseDifficulty(opts.Difficulty)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)

	logger, closer, err := newLogger(opts.Frontend == tui.ID)
	if err != nil {
		return err
	}
	defer closer.Close()

	session := registry.Session{Config: cfg, Logger: logger}
	if flagSeed != 0 {
		session.Options = append(session.Options, game.WithSeed(flagSeed))
	}
	if opts.Theme != "" {
		session.Options = append(session.Options, game.WithTheme(opts.Theme))
	}
	if store != nil {
		session.Options = append(session.Options, game.WithRunRecorder(store))
		logger.Info("journal open", "session", store.Session())
	}

	logger.Info("dive", "frontend", frontend.ID(), "difficulty", preset, "speed", cfg.World.XSpeed)
	if err := frontend.Run(session); err != nil {
		return fmt.Errorf("running %s frontend: %w", frontend.ID(), err)
	}
	return nil
}
