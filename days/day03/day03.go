// Package day03 solves "Gear Ratios": an engine schematic where numbers
// touching a symbol (including diagonally) are part numbers, and a '*'
// touching exactly two part numbers is a gear.
package day03

import (
	"github.com/katalvlaran/aoc2023/grid"
	"github.com/katalvlaran/aoc2023/puzzle"
)

func init() {
	puzzle.Register(puzzle.Solution{Day: 3, Title: "Gear Ratios", Part1: Part1, Part2: Part2})
}

// Number is a maximal horizontal run of digits.
type Number struct {
	Value int
	Row   int
	Start int // first column
	End   int // last column, inclusive
	// Symbols holds the positions of adjacent symbols, deduplicated.
	Symbols []grid.Point
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// isSymbol: anything that is neither a digit nor '.'.
func isSymbol(b byte) bool { return b != '.' && !isDigit(b) }

// scan extracts every number of the schematic together with the symbols
// adjacent to it (Conn8 around each of its cells).
func scan(g *grid.Grid) []Number {
	var nums []Number
	for y, row := range g.Cells {
		for x := 0; x < g.Width; {
			if !isDigit(row[x]) {
				x++
				continue
			}
			n := Number{Row: y, Start: x}
			for ; x < g.Width && isDigit(row[x]); x++ {
				n.Value = n.Value*10 + int(row[x]-'0')
			}
			n.End = x - 1

			seen := map[grid.Point]bool{}
			for cx := n.Start; cx <= n.End; cx++ {
				for _, p := range g.Neighbors(grid.Point{X: cx, Y: y}, grid.Conn8) {
					if seen[p] || !isSymbol(g.Cells[p.Y][p.X]) {
						continue
					}
					seen[p] = true
					n.Symbols = append(n.Symbols, p)
				}
			}
			nums = append(nums, n)
		}
	}

	return nums
}

// Part1 sums every number adjacent to at least one symbol.
func Part1(input string) (int, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, n := range scan(g) {
		if len(n.Symbols) > 0 {
			total += n.Value
		}
	}

	return total, nil
}

// Part2 sums the gear ratios: for every '*' adjacent to exactly two
// numbers, the product of those numbers.
func Part2(input string) (int, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return 0, err
	}
	touching := map[grid.Point][]int{}
	for _, n := range scan(g) {
		for _, p := range n.Symbols {
			if g.Cells[p.Y][p.X] == '*' {
				touching[p] = append(touching[p], n.Value)
			}
		}
	}
	total := 0
	for _, vals := range touching {
		if len(vals) == 2 {
			total += vals[0] * vals[1]
		}
	}

	return total, nil
}
