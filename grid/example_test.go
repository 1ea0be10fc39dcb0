// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: BFS
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_BFS walks a small maze from S, refusing to enter '#' cells,
// and reports the distance to the farthest open cell.
func ExampleGrid_BFS() {
	g, _ := grid.Parse("S..#\n#.##\n#...\n")
	start, _ := g.Find('S')

	res, _ := g.BFS(start, grid.WithFilter(func(g *grid.Grid, _, to grid.Point) bool {
		b, _ := g.At(to)
		return b != '#'
	}))
	fmt.Println("reached:", len(res.Order))
	fmt.Println("farthest:", res.MaxDepth())

	// Output:
	// reached: 7
	// farthest: 5
}
