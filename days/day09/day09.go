// Package day09 solves "Mirage Maintenance": extrapolating sequences by
// taking repeated differences until they vanish.
package day09

import (
	"github.com/katalvlaran/aoc2023/parse"
	"github.com/katalvlaran/aoc2023/puzzle"
)

func init() {
	puzzle.Register(puzzle.Solution{Day: 9, Title: "Mirage Maintenance", Part1: Part1, Part2: Part2})
}

// Extrapolate returns the values before the first and after the last
// element of seq. An empty sequence extrapolates to (0, 0).
//
// Complexity: O(n²) time, O(n) extra space.
func Extrapolate(seq []int) (prev, next int) {
	row := append([]int(nil), seq...)
	sign := 1
	for len(row) > 0 && !allZero(row) {
		// next = sum of last elements; prev = alternating sum of first elements
		next += row[len(row)-1]
		prev += sign * row[0]
		sign = -sign
		for i := 0; i+1 < len(row); i++ {
			row[i] = row[i+1] - row[i]
		}
		row = row[:len(row)-1]
	}

	return prev, next
}

func allZero(s []int) bool {
	for _, v := range s {
		if v != 0 {
			return false
		}
	}

	return true
}

func sum(input string, pick func(prev, next int) int) (int, error) {
	total := 0
	for _, line := range parse.Lines(input) {
		seq, err := parse.Ints[int](line)
		if err != nil {
			return 0, err
		}
		total += pick(Extrapolate(seq))
	}

	return total, nil
}

// Part1 sums the extrapolated next values.
func Part1(input string) (int, error) {
	return sum(input, func(_, next int) int { return next })
}

// Part2 sums the extrapolated previous values.
func Part2(input string) (int, error) {
	return sum(input, func(prev, _ int) int { return prev })
}
