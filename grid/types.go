// Package grid defines core types, options, and sentinel errors
// for the grid package of github.com/katalvlaran/aoc2023.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("grid: point out of bounds")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	offsets4 = []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = []Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns the neighbor offsets for conn, clockwise from North.
// The returned slice is shared and must not be modified.
func Offsets(conn Connectivity) []Point {
	if conn == Conn8 {
		return offsets8
	}

	return offsets4
}

// Point is a cell coordinate; X grows east, Y grows south.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Step returns the neighbor of p in direction dir.
func (p Point) Step(dir Direction) Point {
	return p.Add(dir.Offset())
}

// String renders p as "x,y".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Direction is one of the four compass directions.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the compass directions clockwise from North.
var Directions = [4]Direction{North, East, South, West}

// Offset returns the unit step for d.
func (d Direction) Offset() Point {
	return offsets4[d&3]
}

// Opposite returns the direction pointing back at d.
func (d Direction) Opposite() Direction {
	return (d + 2) & 3
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}

	return fmt.Sprintf("Direction(%d)", int(d))
}

// Grid is an immutable rectangular grid of byte cells.
// Cells[y][x] holds the original input byte at (x, y).
type Grid struct {
	Width, Height int
	Cells         [][]byte
}

// Option configures BFS via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds parameters customizing a grid BFS.
type BFSOptions struct {
	// Conn chooses 4- or 8-directional expansion. Default Conn4.
	Conn Connectivity

	// Filter, if non-nil, is consulted for every candidate step from → to;
	// returning false skips that step.
	Filter func(g *Grid, from, to Point) bool
}

// DefaultOptions returns BFSOptions with Conn4 and no filter.
func DefaultOptions() BFSOptions {
	return BFSOptions{Conn: Conn4}
}

// WithConn sets the neighbor connectivity.
func WithConn(conn Connectivity) Option {
	return func(o *BFSOptions) {
		o.Conn = conn
	}
}

// WithFilter installs a step filter. A nil fn leaves all steps allowed.
func WithFilter(fn func(g *Grid, from, to Point) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.Filter = fn
		}
	}
}

// BFSResult holds the outcome of a grid BFS:
//   - Order: cells in visit sequence, start first.
//   - Depth: steps from the start to each reached cell.
//   - Parent: predecessor of each reached cell except the start.
type BFSResult struct {
	Order  []Point
	Depth  map[Point]int
	Parent map[Point]Point
}

// MaxDepth returns the largest depth reached, i.e. the distance to the
// farthest reachable cell. A start-only traversal returns 0.
func (r *BFSResult) MaxDepth() int {
	maxDepth := 0
	for _, d := range r.Depth {
		if d > maxDepth {
			maxDepth = d
		}
	}

	return maxDepth
}

// PathTo reconstructs the path from the start to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest Point) ([]Point, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("grid: no path to %v", dest)
	}
	path := []Point{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
