// flappydive is a side-scrolling submarine game for the terminal and the
// desktop.
//
// Usage:
//
//	flappydive               - Open the launcher menu
//	flappydive play          - Dive straight in
//	flappydive list          - List available frontends
//	flappydive themes        - Show the color themes
//	flappydive history       - Browse the run journal
//
// Global flags:
//
//	--config <path>     - Use a custom YAML config
//	--fps <rate>        - Set tick rate (default: from config)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--journal[=path]    - Record finished runs (default: ~/.flappydive/journal.db)
//	--log-file <path>   - Log destination (default: ~/.flappydive/flappydive.log)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappydive/internal/config"
	"github.com/vovakirdan/flappydive/internal/storage"

	// Import frontends to register them
	_ "github.com/vovakirdan/flappydive/internal/platform/tui"
	_ "github.com/vovakirdan/flappydive/internal/platform/window"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagJournal  string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappydive",
	Short: "FlappyDive - steer a submarine through an endless reef",
	Long: `FlappyDive is a side-scrolling submarine game. Tap to rise, let
gravity pull you down, and slip through the gaps between the pipes.

Available commands:
  play     - Dive straight in
  list     - Show the available frontends
  themes   - Show the color themes
  history  - Browse the run journal

Run without a command to open the launcher menu.

Examples:
  flappydive
  flappydive play --frontend window
  flappydive play --difficulty hard --theme reef
  flappydive --journal history`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagJournal, "journal", "", "Record runs to a SQLite journal")
	pf.Lookup("journal").NoOptDefVal = storage.DefaultPath()
	pf.StringVar(&flagLogFile, "log-file", filepath.Join("~", ".flappydive", "flappydive.log"), "Log file path")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(historyCmd)
}

// loadConfig loads the config selected by --config and applies --fps.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg, nil
}

// newLogger builds the process logger. When toFile is set the log goes to
// --log-file so it does not tear the terminal frontend's screen.
func newLogger(toFile bool) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)
	if toFile {
		path := expandHome(flagLogFile)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappydive",
		Level:           level,
	})
	return logger, closer, nil
}

// openJournal opens the run journal when --journal is set. A journal that
// cannot be opened is reported and the game runs without it.
func openJournal() *storage.Store {
	if flagJournal == "" {
		return nil
	}
	store, err := storage.Open(flagJournal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
		return nil
	}
	return store
}

func expandHome(path string) string {
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	return path
}
