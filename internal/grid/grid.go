// Package grid models the bounded rectangular board. The board is never
// materialised as an array: whether a cell is blocked is computed on demand
// from the bounds, the snake and the obstacle set.
package grid

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/pathsnake/internal/core"
)

// Layer selects which occupants a blocked-cell query takes into account.
type Layer uint8

const (
	LayerBounds    Layer = 1 << iota // outside the grid
	LayerHead                        // the snake's current head cell
	LayerBody                        // every snake segment except the head
	LayerObstacles                   // the obstacle set
	LayerFood                        // the food cell
)

// Common layer combinations.
const (
	// Movement is what a candidate head position may not enter. The head is
	// excluded because it moves off its current cell.
	Movement = LayerBounds | LayerBody | LayerObstacles
	// FoodPlacement is where food may not spawn.
	FoodPlacement = Movement | LayerHead
	// ObstaclePlacement is where a new obstacle may not be dropped.
	ObstaclePlacement = FoodPlacement | LayerFood
)

// Context carries the dynamic occupants for a blocked-cell query.
type Context struct {
	Layers  Layer
	Snake   []core.Cell // head first
	Food    core.Cell
	HasFood bool
}

// Grid is a width x height board plus its obstacle set.
type Grid struct {
	Width     int
	Height    int
	Obstacles *CellSet
}

// New creates an empty grid.
func New(width, height int) *Grid {
	return &Grid{
		Width:     width,
		Height:    height,
		Obstacles: NewCellSet(),
	}
}

// InBounds reports whether c lies on the grid.
func (g *Grid) InBounds(c core.Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Center returns the spawn cell.
func (g *Grid) Center() core.Cell {
	return core.C(g.Width/2, g.Height/2)
}

// IsBlocked reports whether c is unusable given the layers selected in ctx.
func (g *Grid) IsBlocked(c core.Cell, ctx Context) bool {
	if ctx.Layers&LayerBounds != 0 && !g.InBounds(c) {
		return true
	}
	if ctx.Layers&LayerObstacles != 0 && g.Obstacles.Has(c) {
		return true
	}
	if ctx.Layers&LayerFood != 0 && ctx.HasFood && ctx.Food == c {
		return true
	}
	if len(ctx.Snake) > 0 {
		if ctx.Layers&LayerHead != 0 && ctx.Snake[0] == c {
			return true
		}
		if ctx.Layers&LayerBody != 0 && slices.Contains(ctx.Snake[1:], c) {
			return true
		}
	}
	return false
}

// Blocker binds ctx into a predicate suitable for the pathfinder.
func (g *Grid) Blocker(ctx Context) func(core.Cell) bool {
	return func(c core.Cell) bool {
		return g.IsBlocked(c, ctx)
	}
}

// FreeCells lists every on-grid cell not blocked under ctx, row by row.
func (g *Grid) FreeCells(ctx Context) []core.Cell {
	var free []core.Cell
	for y := range g.Height {
		for x := range g.Width {
			c := core.C(x, y)
			if !g.IsBlocked(c, ctx) {
				free = append(free, c)
			}
		}
	}
	return free
}

// RandomCell samples a uniformly random on-grid cell.
func (g *Grid) RandomCell(rng *rand.Rand) core.Cell {
	return core.C(rng.Intn(g.Width), rng.Intn(g.Height))
}
