package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappydive/internal/platform/tui"
	"github.com/vovakirdan/flappydive/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse the run journal",
	Long: `Shows the runs recorded with --journal.

On a terminal this opens an interactive browser; otherwise the best runs
are printed as a table.

Examples:
  flappydive history
  flappydive history --journal=./dives.db
  flappydive history --limit 5 | cat
  flappydive history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print when not on a terminal")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
}

func runHistory(_ *cobra.Command, _ []string) error {
	path := flagJournal
	if path == "" {
		path = storage.DefaultPath()
	}
	store, err := storage.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run journal cleared.")
		return nil
	}

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return tui.RunHistory(store, w, h)
	}
	return printHistory(store, flagLimit)
}

// printHistory writes the best runs and a summary to stdout.
func printHistory(store *storage.Store, limit int) error {
	runs, err := store.TopRuns(limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet. Play with --journal to record some.")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Score", "Reason", "Theme", "Duration", "Ended")
	for i, r := range runs {
		t.Row(
			strconv.Itoa(i+1),
			strconv.FormatInt(r.Score, 10),
			r.Reason,
			r.Theme,
			r.Duration.Round(100*time.Millisecond).String(),
			r.EndedAt.Format("2006-01-02 15:04"),
		)
	}
	fmt.Println(t)

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(tui.StatsLine(stats))
	return nil
}
