// Package core provides fundamental types shared by the grid, the games and
// the platform layer. It has no external dependencies (especially no Bubble
// Tea) so that game logic stays pure and testable.
package core

import "fmt"

// Cell is one grid-addressable unit: a column and a row.
type Cell struct {
	X, Y int
}

// C is shorthand for Cell{X: x, Y: y}.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// Add returns the cell one step away in direction d.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Sub returns the offset from o to c.
func (c Cell) Sub(o Cell) Direction {
	return Direction{DX: c.X - o.X, DY: c.Y - o.Y}
}

// Chebyshev returns the king-move distance between two cells.
func (c Cell) Chebyshev(o Cell) int {
	return max(Abs(c.X-o.X), Abs(c.Y-o.Y))
}

// Manhattan returns the 4-connected grid distance between two cells.
func (c Cell) Manhattan(o Cell) int {
	return Abs(c.X-o.X) + Abs(c.Y-o.Y)
}

// Adjacent reports whether o is one axis-aligned step from c.
func (c Cell) Adjacent(o Cell) bool {
	return c.Manhattan(o) == 1
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a unit step on the grid.
type Direction struct {
	DX, DY int
}

// The four legal movement directions.
var (
	Up    = Direction{DX: 0, DY: -1}
	Right = Direction{DX: 1, DY: 0}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
)

// Directions lists the 4-connected moves in search order: up, right, down, left.
var Directions = [4]Direction{Up, Right, Down, Left}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsUnit reports whether d is one of the four axis-aligned unit vectors.
func (d Direction) IsUnit() bool {
	return Abs(d.DX)+Abs(d.DY) == 1
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
	}
}

// Rect represents an axis-aligned box on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
