package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pathsnake/internal/games/snake"
	"github.com/vovakirdan/pathsnake/internal/platform/tui"
	"github.com/vovakirdan/pathsnake/internal/storage"
)

var (
	flagRunsMode   string
	flagRunsLimit  int
	flagRunsDBPath string
	flagRunsPlain  bool
	flagRunsClear  bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse recorded bench runs",
	Long: `Show runs recorded by 'pathsnake bench'.

By default an interactive browser opens with one tab per mode. With --plain
the newest runs are printed as a table, across all modes unless --mode is set.

Examples:
  pathsnake runs
  pathsnake runs --mode random
  pathsnake runs --plain --limit 50
  pathsnake runs --mode maze --clear`,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&flagRunsMode, "mode", "", "Mode to show: maze or random")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Rows to print with --plain")
	runsCmd.Flags().StringVar(&flagRunsDBPath, "db", "~/.pathsnake/runs.db", "Path to runs database")
	runsCmd.Flags().BoolVar(&flagRunsPlain, "plain", false, "Print a table instead of the interactive browser")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete recorded runs for --mode")
}

func runRuns(_ *cobra.Command, _ []string) error {
	mode := snake.ModeMaze
	if flagRunsMode != "" {
		m, ok := snake.ParseMode(flagRunsMode)
		if !ok {
			return fmt.Errorf("unknown mode %q", flagRunsMode)
		}
		mode = m
	}

	store, err := storage.Open(flagRunsDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagRunsClear {
		if flagRunsMode == "" {
			return fmt.Errorf("--clear needs --mode")
		}
		if err := store.ClearRuns(string(mode)); err != nil {
			return err
		}
		logger.Info("runs cleared", "mode", mode)
		return nil
	}

	if flagRunsPlain {
		return printRuns(store, flagRunsMode)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	return tui.RunRunsBrowser(store, mode, width, height)
}

// printRuns writes the newest runs for mode ("" for every mode) as a table.
func printRuns(store *storage.Store, mode string) error {
	runs, err := store.RecentRuns(mode, flagRunsLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet. Try 'pathsnake bench'.")
		return nil
	}
	fmt.Println(renderRuns(runs))
	return nil
}

func renderRuns(runs []storage.Run) string {
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			r.Mode,
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Steps),
			strconv.Itoa(r.Expanded),
			r.EndReason,
			r.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	return newTable().
		Headers("Mode", "Seed", "Score", "Steps", "Expanded", "End", "Date").
		Rows(rows...).
		String()
}
