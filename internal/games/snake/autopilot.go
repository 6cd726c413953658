package snake

import (
	"slices"

	"github.com/vovakirdan/pathsnake/internal/astar"
	"github.com/vovakirdan/pathsnake/internal/core"
	"github.com/vovakirdan/pathsnake/internal/grid"
)

// Autopilot steers the snake along an A* path to the food. The path is
// cached between moves and recomputed once it is used up or no longer starts
// at the head.
type Autopilot struct {
	finder *astar.Finder
	path   []core.Cell
}

// NewAutopilot creates an autopilot searching with heuristic h.
func NewAutopilot(h astar.Heuristic) *Autopilot {
	return &Autopilot{finder: astar.New(h)}
}

// Clear drops the cached path.
func (a *Autopilot) Clear() {
	a.path = nil
}

// Path returns the remaining cached path, head first.
func (a *Autopilot) Path() []core.Cell {
	return slices.Clone(a.path)
}

// Stats returns the accumulated search statistics.
func (a *Autopilot) Stats() astar.Stats {
	return a.finder.Stats
}

// Reachable reports whether the food can currently be reached from the head.
func (a *Autopilot) Reachable(board *grid.Grid, s *Snake, food core.Cell) bool {
	_, ok := a.finder.FindPath(s.Head(), food, board.Blocker(movementContext(s)))
	return ok
}

// Next returns the direction of the next move. ok is false when no route to
// the food exists, which the session treats as terminal.
func (a *Autopilot) Next(board *grid.Grid, s *Snake, food core.Cell) (dir core.Direction, ok bool) {
	head := s.Head()
	if len(a.path) <= 1 || a.path[0] != head {
		a.path, ok = a.plan(board, s, food)
		if !ok || len(a.path) < 2 {
			a.path = nil
			return core.Direction{}, false
		}
	}

	next := a.path[1]
	a.path = a.path[1:]
	return next.Sub(head), true
}

// plan searches head→food. When the first step would reverse the snake it
// searches again from every other free neighbour, with the head cell blocked
// so the route cannot double back through it, and keeps the shortest.
func (a *Autopilot) plan(board *grid.Grid, s *Snake, food core.Cell) ([]core.Cell, bool) {
	head := s.Head()
	blocked := board.Blocker(movementContext(s))

	path, ok := a.finder.FindPath(head, food, blocked)
	if !ok {
		return nil, false
	}
	back := head.Add(s.heading.Opposite())
	if len(path) < 2 || path[1] != back {
		return path, true
	}

	aroundHead := func(c core.Cell) bool {
		return c == head || blocked(c)
	}
	var best []core.Cell
	for _, d := range core.Directions {
		start := head.Add(d)
		if start == back || blocked(start) {
			continue
		}
		sub, found := a.finder.FindPath(start, food, aroundHead)
		if found && (best == nil || len(sub) < len(best)) {
			best = sub
		}
	}
	if best == nil {
		return nil, false
	}
	return append([]core.Cell{head}, best...), true
}

func movementContext(s *Snake) grid.Context {
	return grid.Context{Layers: grid.Movement, Snake: s.cells}
}
