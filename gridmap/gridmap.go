// Package gridmap is the grid model: a rectangular array of free/obstacle
// cells, the coordinate type the rest of the planner shares, and the
// handful of bounds/lookup predicates everyone else builds on.
package gridmap

import "fmt"

// State is the occupancy value of a single cell.
type State uint8

const (
	// Free marks a traversable cell.
	Free State = iota
	// Obstacle marks a blocked cell.
	Obstacle
)

// Point is an integer grid coordinate, column x and row y, origin at the
// top-left with y increasing downward.
type Point struct {
	X, Y int
}

// Add returns the componentwise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// String renders a Point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Grid is a rectangular occupancy map, row-major.
type Grid struct {
	Width, Height int
	cells         []State
}

// New returns a Width x Height grid with every cell set to state.
func New(width, height int, state State) *Grid {
	cells := make([]State, width*height)
	if state != Free {
		for i := range cells {
			cells[i] = state
		}
	}
	return &Grid{Width: width, Height: height, cells: cells}
}

// NewFromRows builds a Grid from row-major data already laid out as
// Height rows of Width states, e.g. loaded from an image.
func NewFromRows(width, height int, data []State) *Grid {
	cells := make([]State, len(data))
	copy(cells, data)
	return &Grid{Width: width, Height: height, cells: cells}
}

// InBounds reports whether p is a valid index into the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the state of the cell at p. Out-of-bounds points read as
// Obstacle, so stencil tests at the grid edge behave as if surrounded by
// walls without every caller needing its own bounds check.
func (g *Grid) At(p Point) State {
	if !g.InBounds(p) {
		return Obstacle
	}
	return g.cells[p.Y*g.Width+p.X]
}

// AtXY is the (x, y) form of At.
func (g *Grid) AtXY(x, y int) State {
	return g.At(Point{x, y})
}

// Set writes the state of the cell at p. Out-of-bounds writes are no-ops.
func (g *Grid) Set(p Point, s State) {
	if !g.InBounds(p) {
		return
	}
	g.cells[p.Y*g.Width+p.X] = s
}

// IsFree reports whether p is in bounds and Free.
func (g *Grid) IsFree(p Point) bool {
	return g.InBounds(p) && g.At(p) == Free
}

// Empty reports whether the grid has no free cell at all.
func (g *Grid) Empty() bool {
	for _, c := range g.cells {
		if c == Free {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]State, len(g.cells))
	copy(cells, g.cells)
	return &Grid{Width: g.Width, Height: g.Height, cells: cells}
}
