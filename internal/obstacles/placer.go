// Package obstacles scatters random obstacles over the grid.
package obstacles

import (
	"math/rand"

	"github.com/vovakirdan/pathsnake/internal/grid"
)

// Options tunes incremental obstacle growth.
type Options struct {
	AddMin   int // fewest obstacles attempted per AddRandom
	AddMax   int // most obstacles attempted per AddRandom
	Attempts int // samples per AddSingleRandom before giving up
}

// DefaultOptions returns 10-20 obstacles per batch, 10 tries each.
func DefaultOptions() Options {
	return Options{AddMin: 10, AddMax: 20, Attempts: 10}
}

// Placer adds obstacles to a grid's obstacle set.
type Placer struct {
	grid *grid.Grid
	rng  *rand.Rand
	opts Options
}

// NewPlacer creates a placer that writes into g.Obstacles.
func NewPlacer(g *grid.Grid, rng *rand.Rand, opts Options) *Placer {
	if opts.AddMax < opts.AddMin {
		opts.AddMax = opts.AddMin
	}
	return &Placer{grid: g, rng: rng, opts: opts}
}

// GenerateRandom samples count uniformly random cells and adds them without
// any rejection. Repeated samples collapse into one obstacle.
func (p *Placer) GenerateRandom(count int) {
	for range count {
		p.grid.Obstacles.Add(p.grid.RandomCell(p.rng))
	}
}

// AddRandom attempts a random number of obstacles in [AddMin, AddMax], each
// placed by AddSingleRandom. It returns how many were actually added.
func (p *Placer) AddRandom(occupants grid.Context) int {
	count := p.opts.AddMin + p.rng.Intn(p.opts.AddMax-p.opts.AddMin+1)
	added := 0
	for range count {
		if p.AddSingleRandom(occupants) {
			added++
		}
	}
	return added
}

// AddSingleRandom tries up to Attempts random cells and keeps the first one
// that is not next to the snake's head, not already an obstacle, not on the
// snake and not the food. It reports whether an obstacle was added; running
// out of attempts is not an error.
func (p *Placer) AddSingleRandom(occupants grid.Context) bool {
	occupants.Layers = grid.ObstaclePlacement
	for range p.opts.Attempts {
		c := p.grid.RandomCell(p.rng)
		if len(occupants.Snake) > 0 && c.Chebyshev(occupants.Snake[0]) <= 1 {
			continue
		}
		if p.grid.IsBlocked(c, occupants) {
			continue
		}
		p.grid.Obstacles.Add(c)
		return true
	}
	return false
}
