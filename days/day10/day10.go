// Package day10 solves "Pipe Maze": a single loop of pipes runs through
// the start tile S among unrelated junk pipes.
//
// Part 1 is a grid BFS over mutually connected pipes from S. Part 2
// counts enclosed tiles with the shoelace formula and Pick's theorem:
//
//	interior = area − boundary/2 + 1
package day10

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2023/grid"
	"github.com/katalvlaran/aoc2023/numeric"
	"github.com/katalvlaran/aoc2023/puzzle"
)

var (
	// ErrNoStart indicates the maze has no S tile.
	ErrNoStart = errors.New("day10: no start tile")
	// ErrOpenLoop indicates no pipe loop passes through S.
	ErrOpenLoop = errors.New("day10: start is not on a closed loop")
)

func init() {
	puzzle.Register(puzzle.Solution{Day: 10, Title: "Pipe Maze", Part1: Part1, Part2: Part2})
}

// openings lists the two directions each pipe connects.
var openings = map[byte][2]grid.Direction{
	'|': {grid.North, grid.South},
	'-': {grid.East, grid.West},
	'L': {grid.North, grid.East},
	'J': {grid.North, grid.West},
	'7': {grid.South, grid.West},
	'F': {grid.South, grid.East},
}

// Maze is a parsed pipe grid with its loop traced.
type Maze struct {
	Grid  *grid.Grid
	Start grid.Point
	// Shape is the pipe hidden under S, inferred from the loop.
	Shape [2]grid.Direction
	// Loop holds the loop tiles in walking order, Start first.
	Loop []grid.Point
}

// Parse reads the grid and traces the loop through S.
func Parse(input string) (*Maze, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return nil, err
	}
	start, ok := g.Find('S')
	if !ok {
		return nil, ErrNoStart
	}
	m := &Maze{Grid: g, Start: start}

	for _, d := range grid.Directions {
		if !m.opens(start.Step(d), d.Opposite()) {
			continue
		}
		if loop, back, ok := m.trace(d); ok {
			m.Loop = loop
			m.Shape = [2]grid.Direction{d, back}
			return m, nil
		}
	}

	return nil, fmt.Errorf("%w: start at %v", ErrOpenLoop, start)
}

// opens reports whether the pipe at p has an opening toward dir.
// Before the loop is traced S opens nowhere.
func (m *Maze) opens(p grid.Point, dir grid.Direction) bool {
	c, ok := m.Grid.At(p)
	if !ok {
		return false
	}
	dirs, ok := openings[c]
	if c == 'S' && m.Loop != nil {
		dirs, ok = m.Shape, true
	}

	return ok && (dirs[0] == dir || dirs[1] == dir)
}

// trace walks from S heading first, returning the loop tiles and the
// direction from S to the last tile once the walk re-enters S.
func (m *Maze) trace(first grid.Direction) ([]grid.Point, grid.Direction, bool) {
	loop := []grid.Point{m.Start}
	cur, dir := m.Start, first
	limit := m.Grid.Width * m.Grid.Height
	for len(loop) <= limit {
		cur = cur.Step(dir)
		if cur == m.Start {
			return loop, dir.Opposite(), true
		}
		c, _ := m.Grid.At(cur)
		pipe, ok := openings[c]
		if !ok {
			return nil, 0, false
		}
		in := dir.Opposite()
		switch in {
		case pipe[0]:
			dir = pipe[1]
		case pipe[1]:
			dir = pipe[0]
		default:
			return nil, 0, false
		}
		loop = append(loop, cur)
	}

	return nil, 0, false
}

// connected allows a BFS step only between pipes that open toward each other.
func (m *Maze) connected(_ *grid.Grid, from, to grid.Point) bool {
	for _, d := range grid.Directions {
		if from.Step(d) == to {
			return m.opens(from, d) && m.opens(to, d.Opposite())
		}
	}

	return false
}

// Farthest returns the number of steps along the loop to the tile
// farthest from S.
func (m *Maze) Farthest() (int, error) {
	res, err := m.Grid.BFS(m.Start, grid.WithFilter(m.connected))
	if err != nil {
		return 0, err
	}

	return res.MaxDepth(), nil
}

// Enclosed counts the tiles strictly inside the loop.
// Complexity: O(len(Loop)).
func (m *Maze) Enclosed() int {
	area2 := 0
	for i, p := range m.Loop {
		q := m.Loop[(i+1)%len(m.Loop)]
		area2 += p.X*q.Y - q.X*p.Y
	}

	return numeric.Abs(area2)/2 - len(m.Loop)/2 + 1
}

// Part1 returns the distance to the farthest loop tile.
func Part1(input string) (int, error) {
	m, err := Parse(input)
	if err != nil {
		return 0, err
	}

	return m.Farthest()
}

// Part2 returns the number of tiles enclosed by the loop.
func Part2(input string) (int, error) {
	m, err := Parse(input)
	if err != nil {
		return 0, err
	}

	return m.Enclosed(), nil
}
