// Package core provides fundamental types and utilities shared by the game
// logic and the display hosts. It contains no external dependencies (especially
// no Bubble Tea) to keep game logic pure and testable.
package core

// Point is a cell coordinate on the grid.
type Point struct {
	X, Y int
}

// Grid describes a fixed-size rectangular pixel grid stored row-major.
// Linear index 0 is the top-left cell.
type Grid struct {
	Width  int
	Height int
}

// NewGrid creates a grid with the given dimensions.
func NewGrid(width, height int) Grid {
	return Grid{Width: width, Height: height}
}

// Size returns the number of cells in the grid.
func (g Grid) Size() int {
	return g.Width * g.Height
}

// IndexOf converts a coordinate to its linear index.
// The coordinate must satisfy 0 <= x < Width and 0 <= y < Height.
func (g Grid) IndexOf(x, y int) int {
	return y*g.Width + x
}

// PositionOf converts a linear index back to its coordinate.
// It is the exact inverse of IndexOf over [0, Size()).
func (g Grid) PositionOf(idx int) (int, int) {
	return idx % g.Width, idx / g.Width
}

// Point returns the coordinate of idx as a Point.
func (g Grid) Point(idx int) Point {
	x, y := g.PositionOf(idx)
	return Point{X: x, Y: y}
}

// Contains returns true if (x, y) lies on the grid.
func (g Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Step moves (x, y) by (dx, dy), wrapping around the grid edges.
// Leaving the last column re-enters at column 0 and vice versa.
func (g Grid) Step(x, y, dx, dy int) (int, int) {
	return wrap(x+dx, g.Width), wrap(y+dy, g.Height)
}

// wrap reduces v into [0, n).
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
