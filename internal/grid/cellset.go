package grid

import "github.com/vovakirdan/pathsnake/internal/core"

// CellSet is a set of cells that remembers insertion order, so iteration
// (rendering, snapshots) is deterministic for a given seed.
type CellSet struct {
	order []core.Cell
	index map[core.Cell]int
}

// NewCellSet creates a set holding the given cells. Duplicates collapse.
func NewCellSet(cells ...core.Cell) *CellSet {
	s := &CellSet{index: make(map[core.Cell]int, len(cells))}
	for _, c := range cells {
		s.Add(c)
	}
	return s
}

// Add inserts c and reports whether it was not already present.
func (s *CellSet) Add(c core.Cell) bool {
	if s.index == nil {
		s.index = make(map[core.Cell]int)
	}
	if _, ok := s.index[c]; ok {
		return false
	}
	s.index[c] = len(s.order)
	s.order = append(s.order, c)
	return true
}

// Has reports whether c is in the set. A nil set is empty.
func (s *CellSet) Has(c core.Cell) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[c]
	return ok
}

// Remove deletes c, keeping the order of the remaining cells.
func (s *CellSet) Remove(c core.Cell) bool {
	i, ok := s.index[c]
	if !ok {
		return false
	}
	s.order = append(s.order[:i], s.order[i+1:]...)
	delete(s.index, c)
	for j := i; j < len(s.order); j++ {
		s.index[s.order[j]] = j
	}
	return true
}

// Len returns the number of cells in the set.
func (s *CellSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Cells returns a copy of the cells in insertion order.
func (s *CellSet) Cells() []core.Cell {
	if s == nil {
		return nil
	}
	out := make([]core.Cell, len(s.order))
	copy(out, s.order)
	return out
}

// Clone returns an independent copy of the set.
func (s *CellSet) Clone() *CellSet {
	return NewCellSet(s.Cells()...)
}
