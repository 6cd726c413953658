// Package bench drives headless autopilot sessions to completion and
// collects per-run statistics.
package bench

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/pathsnake/internal/astar"
	"github.com/vovakirdan/pathsnake/internal/config"
	"github.com/vovakirdan/pathsnake/internal/core"
	"github.com/vovakirdan/pathsnake/internal/games/snake"
	"github.com/vovakirdan/pathsnake/internal/storage"
)

// ReasonMaxSteps marks a run that was still alive when the step cap hit.
const ReasonMaxSteps = "max_steps"

// Options configures a batch of runs.
type Options struct {
	Mode     snake.Mode
	Runs     int
	Seed     int64 // run i uses Seed+i
	MaxSteps int
	Workers  int // parallel sessions; <= 0 means one
	Config   config.SnakeConfig
}

// Result is the outcome of one run.
type Result struct {
	Seed      int64
	Score     int
	Steps     int
	EndReason string
	Stats     astar.Stats
	Duration  time.Duration
}

// Summary aggregates a batch.
type Summary struct {
	Runs      int
	BestScore int
	AvgScore  float64
	AvgSteps  float64
	Expanded  int
	Reasons   map[string]int
}

// NewBatchID returns a fresh identifier grouping the runs of one invocation.
func NewBatchID() string {
	return uuid.NewString()
}

// sessionConfig makes every Tick a logical step with the autopilot on.
func sessionConfig(cfg config.SnakeConfig) config.SnakeConfig {
	cfg.Timing.UpdateInterval = 1
	cfg.Autopilot.Enabled = true
	cfg.Difficulty.Enabled = false
	return cfg
}

// RunOne plays a single seeded session until it ends or maxSteps is reached.
func RunOne(ctx context.Context, mode snake.Mode, cfg config.SnakeConfig, seed int64, maxSteps int) (Result, error) {
	start := time.Now()
	g := snake.New(mode, sessionConfig(cfg))
	g.Reset(core.RuntimeConfig{Seed: seed})

	for g.Alive() && (maxSteps <= 0 || g.Steps() < maxSteps) {
		if g.Steps()%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		g.Tick()
	}

	reason := string(g.Reason())
	if g.Alive() {
		reason = ReasonMaxSteps
	}
	return Result{
		Seed:      seed,
		Score:     g.Score(),
		Steps:     g.Steps(),
		EndReason: reason,
		Stats:     g.SearchStats(),
		Duration:  time.Since(start),
	}, nil
}

// Run plays opts.Runs sessions, up to opts.Workers at a time. onResult, if
// set, is called once per finished run; calls are serialized. Results are
// returned in seed order.
func Run(ctx context.Context, opts Options, onResult func(Result)) ([]Result, error) {
	workers := max(1, opts.Workers)
	results := make([]Result, opts.Runs)

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range opts.Runs {
		g.Go(func() error {
			r, err := RunOne(ctx, opts.Mode, opts.Config, opts.Seed+int64(i), opts.MaxSteps)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			results[i] = r
			if onResult != nil {
				onResult(r)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summarize aggregates results.
func Summarize(results []Result) Summary {
	s := Summary{Runs: len(results), Reasons: make(map[string]int)}
	if len(results) == 0 {
		return s
	}

	var score, steps int
	for _, r := range results {
		score += r.Score
		steps += r.Steps
		s.Expanded += r.Stats.Expanded
		s.BestScore = max(s.BestScore, r.Score)
		s.Reasons[r.EndReason]++
	}
	s.AvgScore = float64(score) / float64(len(results))
	s.AvgSteps = float64(steps) / float64(len(results))
	return s
}

// ReasonNames returns the summary's end reasons, sorted.
func (s Summary) ReasonNames() []string {
	names := make([]string, 0, len(s.Reasons))
	for name := range s.Reasons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Record converts a result into a storage row.
func (r Result) Record(batch string, opts Options) storage.Run {
	return storage.Run{
		Batch:     batch,
		Mode:      string(opts.Mode),
		Seed:      r.Seed,
		Heuristic: opts.Config.Pathfinding.Heuristic,
		Width:     opts.Config.Grid.Width,
		Height:    opts.Config.Grid.Height,
		Score:     r.Score,
		Steps:     r.Steps,
		Searches:  r.Stats.Searches,
		Expanded:  r.Stats.Expanded,
		EndReason: r.EndReason,
		Duration:  r.Duration,
	}
}
