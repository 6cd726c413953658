package grid

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/pathsnake/internal/core"
)

func TestIsBlocked(t *testing.T) {
	g := New(10, 10)
	g.Obstacles.Add(core.C(3, 3))

	snake := []core.Cell{core.C(5, 5), core.C(4, 5), core.C(3, 5)}
	food := core.C(7, 7)

	tests := []struct {
		name     string
		cell     core.Cell
		layers   Layer
		expected bool
	}{
		{"free cell", core.C(1, 1), ObstaclePlacement, false},
		{"left of grid", core.C(-1, 0), Movement, true},
		{"below grid", core.C(0, 10), Movement, true},
		{"obstacle", core.C(3, 3), Movement, true},
		{"body segment", core.C(4, 5), Movement, true},
		{"tail segment", core.C(3, 5), Movement, true},
		{"head ignored for movement", core.C(5, 5), Movement, false},
		{"head counted for placement", core.C(5, 5), FoodPlacement, true},
		{"food ignored for movement", food, Movement, false},
		{"food counted for obstacles", food, ObstaclePlacement, true},
		{"bounds layer off", core.C(-1, -1), LayerObstacles, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := Context{Layers: tc.layers, Snake: snake, Food: food, HasFood: true}
			if got := g.IsBlocked(tc.cell, ctx); got != tc.expected {
				t.Errorf("IsBlocked(%v) = %v, expected %v", tc.cell, got, tc.expected)
			}
		})
	}
}

func TestFreeCells(t *testing.T) {
	g := New(3, 3)
	g.Obstacles.Add(core.C(0, 0))
	g.Obstacles.Add(core.C(2, 2))

	free := g.FreeCells(Context{Layers: FoodPlacement, Snake: []core.Cell{core.C(1, 1)}})
	if len(free) != 6 {
		t.Fatalf("expected 6 free cells, got %d: %v", len(free), free)
	}
	for _, c := range free {
		if c == core.C(1, 1) || g.Obstacles.Has(c) {
			t.Errorf("FreeCells returned occupied cell %v", c)
		}
	}
}

func TestCenterAndRandomCell(t *testing.T) {
	g := New(21, 11)
	if c := g.Center(); c != core.C(10, 5) {
		t.Errorf("Center() = %v, expected (10,5)", c)
	}

	rng := rand.New(rand.NewSource(1))
	for range 500 {
		if c := g.RandomCell(rng); !g.InBounds(c) {
			t.Fatalf("RandomCell() returned off-grid %v", c)
		}
	}
}

func TestCellSet(t *testing.T) {
	s := NewCellSet(core.C(1, 1), core.C(2, 2), core.C(1, 1))
	if s.Len() != 2 {
		t.Fatalf("duplicates should collapse, Len() = %d", s.Len())
	}
	if s.Add(core.C(2, 2)) {
		t.Error("Add of existing cell should report false")
	}
	s.Add(core.C(3, 3))

	if !s.Remove(core.C(1, 1)) {
		t.Fatal("Remove of present cell should report true")
	}
	if s.Remove(core.C(1, 1)) {
		t.Error("second Remove should report false")
	}

	cells := s.Cells()
	if len(cells) != 2 || cells[0] != core.C(2, 2) || cells[1] != core.C(3, 3) {
		t.Errorf("order not preserved after Remove: %v", cells)
	}
	if !s.Has(core.C(3, 3)) || s.Has(core.C(1, 1)) {
		t.Error("membership wrong after Remove")
	}

	clone := s.Clone()
	clone.Add(core.C(9, 9))
	if s.Has(core.C(9, 9)) {
		t.Error("Clone should be independent")
	}

	var nilSet *CellSet
	if nilSet.Has(core.C(0, 0)) || nilSet.Len() != 0 {
		t.Error("nil set should behave as empty")
	}
}
