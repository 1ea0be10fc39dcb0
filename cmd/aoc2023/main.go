// Command aoc2023 runs the Advent of Code 2023 solutions.
//
//	aoc2023 run 5          # inputs/day5.txt
//	aoc2023 run --all
//	aoc2023 list
//	aoc2023 verify         # compare against answers in aoc.yaml
package main

import "github.com/katalvlaran/aoc2023/internal/cli"

func main() {
	cli.Execute()
}
