package snake

import (
	"testing"

	"github.com/vovakirdan/pathsnake/internal/core"
)

func TestSnakeRejectsReversal(t *testing.T) {
	s := NewSnake(core.C(5, 5), core.Right)

	if s.SetDirection(core.Left) {
		t.Error("reversal should be rejected")
	}
	if s.Direction() != core.Right {
		t.Errorf("direction = %v, expected right", s.Direction())
	}

	if s.SetDirection(core.Direction{DX: 1, DY: 1}) {
		t.Error("diagonal should be rejected")
	}

	// Turns are checked against the applied heading, so right, up, left
	// within a single step is still a reversal.
	if !s.SetDirection(core.Up) {
		t.Fatal("turning up should be accepted")
	}
	if s.SetDirection(core.Left) {
		t.Error("left is still a reversal of the applied heading")
	}
	s.Advance()
	if !s.SetDirection(core.Left) {
		t.Error("left should be accepted after moving up")
	}
}

func TestSnakeGrowth(t *testing.T) {
	s := NewSnake(core.C(2, 2), core.Right)
	s.Advance()
	if got := len(s.Cells()); got != 1 {
		t.Fatalf("cells = %d, expected 1", got)
	}

	s.Grow()
	before := len(s.Cells())
	s.Advance()
	if s.Length() != 2 {
		t.Errorf("length = %d, expected 2", s.Length())
	}
	if got := len(s.Cells()); got != before+1 {
		t.Errorf("cells = %d, expected %d after growing", got, before+1)
	}
	if s.Head() != core.C(4, 2) {
		t.Errorf("head = %v, expected (4,2)", s.Head())
	}

	s.Advance()
	if got := len(s.Cells()); got != 2 {
		t.Errorf("cells = %d, expected steady length 2", got)
	}
	if s.Occupies(core.C(3, 2)) || !s.Occupies(core.C(5, 2)) {
		t.Errorf("unexpected cells %v", s.Cells())
	}
}

func TestSnakeCellsIsCopy(t *testing.T) {
	s := NewSnake(core.C(1, 1), core.Down)
	cells := s.Cells()
	cells[0] = core.C(9, 9)
	if s.Head() != core.C(1, 1) {
		t.Error("Cells() must not alias internal state")
	}
}
