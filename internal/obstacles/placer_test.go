package obstacles

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/pathsnake/internal/core"
	"github.com/vovakirdan/pathsnake/internal/grid"
)

func TestGenerateRandom(t *testing.T) {
	g := grid.New(10, 10)
	p := NewPlacer(g, rand.New(rand.NewSource(1)), DefaultOptions())

	p.GenerateRandom(60)

	if g.Obstacles.Len() == 0 || g.Obstacles.Len() > 60 {
		t.Fatalf("expected between 1 and 60 obstacles, got %d", g.Obstacles.Len())
	}
	for _, c := range g.Obstacles.Cells() {
		if !g.InBounds(c) {
			t.Errorf("obstacle %v is off the grid", c)
		}
	}
}

func TestAddSingleRandomRespectsOccupants(t *testing.T) {
	g := grid.New(8, 8)
	snake := []core.Cell{core.C(4, 4), core.C(3, 4), core.C(2, 4), core.C(1, 4)}
	food := core.C(6, 1)
	occupants := grid.Context{Snake: snake, Food: food, HasFood: true}

	p := NewPlacer(g, rand.New(rand.NewSource(99)), Options{AddMin: 1, AddMax: 1, Attempts: 10})
	for range 400 {
		p.AddSingleRandom(occupants)
	}

	for _, c := range g.Obstacles.Cells() {
		if c.Chebyshev(snake[0]) <= 1 {
			t.Errorf("obstacle %v placed next to the head", c)
		}
		for _, s := range snake {
			if c == s {
				t.Errorf("obstacle %v placed on the snake", c)
			}
		}
		if c == food {
			t.Errorf("obstacle placed on the food")
		}
	}

	eligible := 0
	for y := range g.Height {
		for x := range g.Width {
			c := core.C(x, y)
			if c.Chebyshev(snake[0]) > 1 && c != food && !slices.Contains(snake, c) {
				eligible++
			}
		}
	}
	if g.Obstacles.Len() > eligible {
		t.Errorf("placed %d obstacles, only %d cells are eligible", g.Obstacles.Len(), eligible)
	}
}

func TestAddSingleRandomGivesUp(t *testing.T) {
	// 3x3 grid with the head in the middle: every cell is within one block.
	g := grid.New(3, 3)
	p := NewPlacer(g, rand.New(rand.NewSource(5)), DefaultOptions())

	if p.AddSingleRandom(grid.Context{Snake: []core.Cell{core.C(1, 1)}}) {
		t.Error("expected no room for an obstacle")
	}
	if g.Obstacles.Len() != 0 {
		t.Errorf("expected no obstacles, got %d", g.Obstacles.Len())
	}
}

func TestAddRandomBatchSize(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g := grid.New(40, 40)
		p := NewPlacer(g, rand.New(rand.NewSource(seed)), DefaultOptions())

		added := p.AddRandom(grid.Context{Snake: []core.Cell{core.C(20, 20)}})
		if added < 10 || added > 20 {
			t.Errorf("seed %d: AddRandom added %d, expected 10-20 on a nearly empty board", seed, added)
		}
		if g.Obstacles.Len() != added {
			t.Errorf("seed %d: reported %d but set has %d", seed, added, g.Obstacles.Len())
		}
	}
}

func TestNewPlacerFixesInvertedRange(t *testing.T) {
	g := grid.New(20, 20)
	p := NewPlacer(g, rand.New(rand.NewSource(1)), Options{AddMin: 5, AddMax: 2, Attempts: 10})
	if added := p.AddRandom(grid.Context{}); added > 5 {
		t.Errorf("AddRandom added %d, expected at most 5", added)
	}
}
