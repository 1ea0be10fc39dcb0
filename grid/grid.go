package grid

import (
	"bytes"

	"github.com/katalvlaran/aoc2023/parse"
)

// New constructs a Grid from non-empty rows of equal length.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if there are no rows or the first row is empty,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func New(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([][]byte, h)
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells[y] = []byte(row)
	}

	return &Grid{Width: w, Height: h, Cells: cells}, nil
}

// Parse splits input into lines and builds a Grid from them.
func Parse(input string) (*Grid, error) {
	return New(parse.Lines(input))
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the cell at p, or (0, false) when p is out of bounds.
func (g *Grid) At(p Point) (byte, bool) {
	if !g.InBounds(p) {
		return 0, false
	}

	return g.Cells[p.Y][p.X], true
}

// Find returns the first cell (row-major order) holding b.
func (g *Grid) Find(b byte) (Point, bool) {
	for y, row := range g.Cells {
		if x := bytes.IndexByte(row, b); x >= 0 {
			return Point{X: x, Y: y}, true
		}
	}

	return Point{}, false
}

// Neighbors returns the in-bounds neighbors of p under conn,
// clockwise from North.
// Complexity: O(d).
func (g *Grid) Neighbors(p Point, conn Connectivity) []Point {
	offs := Offsets(conn)
	out := make([]Point, 0, len(offs))
	for _, d := range offs {
		if q := p.Add(d); g.InBounds(q) {
			out = append(out, q)
		}
	}

	return out
}

// Index maps p to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(p Point) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.Width, Y: idx / g.Width}
}
