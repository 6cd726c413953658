// Package maze carves perfect mazes with a randomized depth-first search.
package maze

import (
	"math/rand"

	"github.com/vovakirdan/pathsnake/internal/core"
	"github.com/vovakirdan/pathsnake/internal/grid"
)

// carveSteps are the stride-2 moves between passage cells.
var carveSteps = [4]core.Direction{
	{DX: 0, DY: -2},
	{DX: 2, DY: 0},
	{DX: 0, DY: 2},
	{DX: -2, DY: 0},
}

// frame is one level of the carving walk: a passage cell, its shuffled
// neighbour order and how many of them have been tried.
type frame struct {
	cell  core.Cell
	steps [4]core.Direction
	next  int
}

// Generate returns the wall cells of a perfect maze on a width x height grid.
//
// Carving starts at the grid center and only opens cells strictly inside the
// border. The center and its four neighbours are always left open so the
// snake has somewhere to spawn. Odd dimensions give the most regular layout;
// even ones still terminate.
func Generate(width, height int, rng *rand.Rand) *grid.CellSet {
	open := make([][]bool, height)
	for y := range open {
		open[y] = make([]bool, width)
	}
	inside := func(c core.Cell) bool {
		return c.X > 0 && c.X < width-1 && c.Y > 0 && c.Y < height-1
	}

	center := core.C(width/2, height/2)
	if width > 0 && height > 0 {
		open[center.Y][center.X] = true
		stack := []*frame{newFrame(center, rng)}

		// Explicit stack instead of recursion: a w x h grid can be up to
		// w*h/4 cells deep.
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.next == len(top.steps) {
				stack = stack[:len(stack)-1]
				continue
			}
			step := top.steps[top.next]
			top.next++

			nextCell := core.C(top.cell.X+step.DX, top.cell.Y+step.DY)
			if !inside(nextCell) || open[nextCell.Y][nextCell.X] {
				continue
			}
			between := core.C(top.cell.X+step.DX/2, top.cell.Y+step.DY/2)
			open[between.Y][between.X] = true
			open[nextCell.Y][nextCell.X] = true
			stack = append(stack, newFrame(nextCell, rng))
		}
	}

	spawn := SpawnArea(center)
	walls := grid.NewCellSet()
	for y := range height {
		for x := range width {
			c := core.C(x, y)
			if !open[y][x] && !spawn.Has(c) {
				walls.Add(c)
			}
		}
	}
	return walls
}

// SpawnArea is the plus shape kept clear around the spawn cell.
func SpawnArea(center core.Cell) *grid.CellSet {
	area := grid.NewCellSet(center)
	for _, d := range core.Directions {
		area.Add(center.Add(d))
	}
	return area
}

func newFrame(c core.Cell, rng *rand.Rand) *frame {
	f := &frame{cell: c, steps: carveSteps}
	rng.Shuffle(len(f.steps), func(i, j int) {
		f.steps[i], f.steps[j] = f.steps[j], f.steps[i]
	})
	return f
}

// Farthest returns the open cell with the greatest 4-connected step distance
// from start, and that distance. Ties go to the cell reached first in
// up, right, down, left order. ok is false if start itself is a wall or off
// the grid.
func Farthest(width, height int, walls *grid.CellSet, start core.Cell) (far core.Cell, dist int, ok bool) {
	open := func(c core.Cell) bool {
		return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height && !walls.Has(c)
	}
	if !open(start) {
		return core.Cell{}, 0, false
	}

	distance := map[core.Cell]int{start: 0}
	queue := []core.Cell{start}
	far = start
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if distance[c] > dist {
			far, dist = c, distance[c]
		}
		for _, d := range core.Directions {
			n := c.Add(d)
			if _, seen := distance[n]; seen || !open(n) {
				continue
			}
			distance[n] = distance[c] + 1
			queue = append(queue, n)
		}
	}
	return far, dist, true
}
