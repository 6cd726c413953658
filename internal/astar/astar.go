// Package astar finds 4-connected paths on the snake grid.
package astar

import (
	"fmt"

	"github.com/vovakirdan/pathsnake/internal/core"
)

// Heuristic estimates the remaining cost from a cell to the goal.
type Heuristic int

const (
	// SquaredEuclidean is dx²+dy². It overestimates grid distance away from
	// the axes, so returned paths are not guaranteed shortest, but the search
	// heads straight for the goal on open boards.
	SquaredEuclidean Heuristic = iota
	// Manhattan is |dx|+|dy|, admissible on a 4-connected grid.
	Manhattan
)

// ParseHeuristic maps a config name to a Heuristic.
func ParseHeuristic(name string) (Heuristic, error) {
	switch name {
	case "", "squared_euclidean":
		return SquaredEuclidean, nil
	case "manhattan":
		return Manhattan, nil
	default:
		return 0, fmt.Errorf("astar: unknown heuristic %q", name)
	}
}

func (h Heuristic) String() string {
	switch h {
	case SquaredEuclidean:
		return "squared_euclidean"
	case Manhattan:
		return "manhattan"
	default:
		return "unknown"
	}
}

func (h Heuristic) estimate(from, to core.Cell) int {
	dx, dy := from.X-to.X, from.Y-to.Y
	if h == Manhattan {
		return core.Abs(dx) + core.Abs(dy)
	}
	return dx*dx + dy*dy
}

// Stats accumulates work done by a Finder across searches.
type Stats struct {
	Searches int // FindPath calls
	Found    int // searches that reached the goal
	Expanded int // nodes moved to the closed set
}

// Finder runs A* searches and keeps running statistics.
// A Finder is not safe for concurrent use.
type Finder struct {
	Heuristic Heuristic
	Stats     Stats
}

// New creates a Finder using the given heuristic.
func New(h Heuristic) *Finder {
	return &Finder{Heuristic: h}
}

// FindPath searches from start to goal, never entering a cell for which
// blocked returns true. The start cell itself is not tested. The returned
// path runs start→goal inclusive; ok is false when the goal is unreachable.
func (f *Finder) FindPath(start, goal core.Cell, blocked func(core.Cell) bool) (path []core.Cell, ok bool) {
	f.Stats.Searches++

	var open openQueue
	seq := 0
	push := func(n *node) {
		n.seq = seq
		seq++
		open.push(n)
	}

	// bestOpen holds the lowest g among open nodes for a cell. A cheaper
	// node is pushed alongside the stale one; the stale one is skipped once
	// its cell is closed.
	bestOpen := map[core.Cell]int{start: 0}
	closed := make(map[core.Cell]bool)

	h := f.Heuristic.estimate(start, goal)
	push(&node{cell: start, h: h, f: h})

	for open.Len() > 0 {
		current := open.pop()
		if closed[current.cell] {
			continue
		}
		closed[current.cell] = true
		delete(bestOpen, current.cell)
		f.Stats.Expanded++

		if current.cell == goal {
			f.Stats.Found++
			return reconstruct(current), true
		}

		for _, d := range core.Directions {
			next := current.cell.Add(d)
			if closed[next] || blocked(next) {
				continue
			}

			g := current.g + 1
			if prev, seen := bestOpen[next]; seen && prev <= g {
				continue
			}
			bestOpen[next] = g

			h := f.Heuristic.estimate(next, goal)
			push(&node{cell: next, parent: current, g: g, h: h, f: g + h})
		}
	}

	return nil, false
}

// reconstruct walks parent links from the goal node and reverses them.
func reconstruct(n *node) []core.Cell {
	var path []core.Cell
	for ; n != nil; n = n.parent {
		path = append(path, n.cell)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// FindPath runs a one-off search with the squared-Euclidean heuristic.
func FindPath(start, goal core.Cell, blocked func(core.Cell) bool) ([]core.Cell, bool) {
	return New(SquaredEuclidean).FindPath(start, goal, blocked)
}
