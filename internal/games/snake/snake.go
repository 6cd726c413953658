package snake

import (
	"slices"

	"github.com/vovakirdan/pathsnake/internal/core"
)

// Snake is the head-first list of occupied cells plus the target length.
// The cell list trails the target by one step after eating: the tail is
// simply not dropped on the next advance.
type Snake struct {
	cells   []core.Cell
	length  int
	heading core.Direction // direction of the last applied move
	pending core.Direction // direction the next move will take
}

// NewSnake creates a one-cell snake at head moving in dir.
func NewSnake(head core.Cell, dir core.Direction) *Snake {
	return &Snake{
		cells:   []core.Cell{head},
		length:  1,
		heading: dir,
		pending: dir,
	}
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell {
	return s.cells[0]
}

// Cells returns a copy of the occupied cells, head first.
func (s *Snake) Cells() []core.Cell {
	return slices.Clone(s.cells)
}

// Length returns the target length.
func (s *Snake) Length() int {
	return s.length
}

// Direction returns the direction the next advance will use.
func (s *Snake) Direction() core.Direction {
	return s.pending
}

// SetDirection queues d for the next advance. Non-unit vectors and exact
// reversals of the current heading are ignored; the result reports whether
// d was accepted.
func (s *Snake) SetDirection(d core.Direction) bool {
	if !d.IsUnit() || d == s.heading.Opposite() {
		return false
	}
	s.pending = d
	return true
}

// Next returns the cell the head will move into.
func (s *Snake) Next() core.Cell {
	return s.Head().Add(s.pending)
}

// Advance moves the head one cell and drops the tail once the cell list is
// longer than the target length. Collision checks are the caller's job.
func (s *Snake) Advance() {
	s.heading = s.pending
	s.cells = slices.Insert(s.cells, 0, s.Next())
	if len(s.cells) > s.length {
		s.cells = s.cells[:len(s.cells)-1]
	}
}

// Grow raises the target length by one.
func (s *Snake) Grow() {
	s.length++
}

// Occupies reports whether c is any snake cell, head included.
func (s *Snake) Occupies(c core.Cell) bool {
	return slices.Contains(s.cells, c)
}
