package core

import "testing"

func TestCellDistances(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Cell
		chebyshev int
		manhattan int
	}{
		{"same cell", C(3, 3), C(3, 3), 0, 0},
		{"horizontal neighbour", C(3, 3), C(4, 3), 1, 1},
		{"diagonal neighbour", C(3, 3), C(2, 2), 1, 2},
		{"knight move", C(0, 0), C(1, 2), 2, 3},
		{"far corner", C(0, 0), C(9, 9), 9, 18},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Chebyshev(tc.b); got != tc.chebyshev {
				t.Errorf("Chebyshev() = %d, expected %d", got, tc.chebyshev)
			}
			if got := tc.a.Manhattan(tc.b); got != tc.manhattan {
				t.Errorf("Manhattan() = %d, expected %d", got, tc.manhattan)
			}
			if got := tc.b.Manhattan(tc.a); got != tc.manhattan {
				t.Errorf("Manhattan() (reversed) = %d, expected %d", got, tc.manhattan)
			}
		})
	}
}

func TestCellStep(t *testing.T) {
	start := C(5, 5)
	for _, d := range Directions {
		next := start.Add(d)
		if !start.Adjacent(next) {
			t.Errorf("%v + %v = %v is not adjacent", start, d, next)
		}
		if got := next.Sub(start); got != d {
			t.Errorf("Sub() = %v, expected %v", got, d)
		}
		if back := next.Add(d.Opposite()); back != start {
			t.Errorf("stepping back along %v gave %v", d, back)
		}
	}
}

func TestDirectionIsUnit(t *testing.T) {
	tests := []struct {
		d        Direction
		expected bool
	}{
		{Up, true},
		{Left, true},
		{Direction{}, false},
		{Direction{DX: 1, DY: 1}, false},
		{Direction{DX: 2, DY: 0}, false},
	}

	for _, tc := range tests {
		if got := tc.d.IsUnit(); got != tc.expected {
			t.Errorf("%v.IsUnit() = %v, expected %v", tc.d, got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if result := Clamp(tc.val, tc.lo, tc.hi); result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 || Abs(-5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned a wrong value")
	}
}
