package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pathsnake/internal/bench"
	"github.com/vovakirdan/pathsnake/internal/games/snake"
	"github.com/vovakirdan/pathsnake/internal/storage"
)

var (
	flagBenchMode    string
	flagBenchRuns    int
	flagBenchMax     int
	flagBenchWorkers int
	flagDBPath       string
	flagNoSave       bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run headless autopilot sessions",
	Long: `Play a batch of sessions with the autopilot in control and no
rendering. Run i uses seed --seed+i, so a batch is reproducible. Each run is
recorded in the runs database unless --no-save is given.

Examples:
  pathsnake bench
  pathsnake bench --mode random --runs 100 --workers 8
  pathsnake bench --seed 1 --max-steps 20000 --no-save`,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().StringVar(&flagBenchMode, "mode", "maze", "Game mode: maze or random")
	benchCmd.Flags().IntVar(&flagBenchRuns, "runs", 20, "Number of sessions")
	benchCmd.Flags().IntVar(&flagBenchMax, "max-steps", 5000, "Step cap per session")
	benchCmd.Flags().IntVar(&flagBenchWorkers, "workers", runtime.NumCPU(), "Sessions run in parallel")
	benchCmd.Flags().StringVar(&flagDBPath, "db", "~/.pathsnake/runs.db", "Path to runs database")
	benchCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record runs")
}

func runBench(cmd *cobra.Command, _ []string) error {
	mode, ok := snake.ParseMode(flagBenchMode)
	if !ok {
		return fmt.Errorf("unknown mode %q", flagBenchMode)
	}
	if flagBenchRuns < 1 {
		return fmt.Errorf("--runs must be at least 1")
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := bench.Options{
		Mode:     mode,
		Runs:     flagBenchRuns,
		Seed:     seed,
		MaxSteps: flagBenchMax,
		Workers:  flagBenchWorkers,
		Config:   snakeCfg,
	}
	batch := bench.NewBatchID()

	var store *storage.Store
	if !flagNoSave {
		s, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer s.Close()
		store = s
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	logger.Info("bench started",
		"batch", batch,
		"mode", mode,
		"runs", opts.Runs,
		"seed", seed,
		"workers", opts.Workers)

	start := time.Now()
	results, err := bench.Run(ctx, opts, func(r bench.Result) {
		logger.Debug("run finished",
			"seed", r.Seed,
			"score", r.Score,
			"steps", r.Steps,
			"end", r.EndReason,
			"expanded", r.Stats.Expanded)
		if store == nil {
			return
		}
		if _, err := store.SaveRun(r.Record(batch, opts)); err != nil {
			logger.Warn("could not record run", "seed", r.Seed, "error", err)
		}
	})
	if err != nil {
		if ctx.Err() != nil {
			logger.Warn("bench interrupted")
			return nil
		}
		return err
	}

	logger.Info("bench finished", "elapsed", time.Since(start).Round(time.Millisecond))
	fmt.Println(renderSummary(bench.Summarize(results)))
	return nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// renderSummary formats a batch summary as a two-column table.
func renderSummary(s bench.Summary) string {
	rows := [][]string{
		{"Runs", strconv.Itoa(s.Runs)},
		{"Best score", strconv.Itoa(s.BestScore)},
		{"Avg score", fmt.Sprintf("%.1f", s.AvgScore)},
		{"Avg steps", fmt.Sprintf("%.0f", s.AvgSteps)},
		{"Expanded", strconv.Itoa(s.Expanded)},
	}
	for _, name := range s.ReasonNames() {
		rows = append(rows, []string{"End: " + name, strconv.Itoa(s.Reasons[name])})
	}

	return newTable().
		Headers("Metric", "Value").
		Rows(rows...).
		String()
}

func newTable() *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}
