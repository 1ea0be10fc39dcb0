// Package days links every puzzle solution into the puzzle registry.
// Importing it for side effects makes days 1 to 10 available to
// puzzle.Lookup and puzzle.Runner.
package days

import (
	_ "github.com/katalvlaran/aoc2023/days/day01"
	_ "github.com/katalvlaran/aoc2023/days/day02"
	_ "github.com/katalvlaran/aoc2023/days/day03"
	_ "github.com/katalvlaran/aoc2023/days/day04"
	_ "github.com/katalvlaran/aoc2023/days/day05"
	_ "github.com/katalvlaran/aoc2023/days/day06"
	_ "github.com/katalvlaran/aoc2023/days/day07"
	_ "github.com/katalvlaran/aoc2023/days/day08"
	_ "github.com/katalvlaran/aoc2023/days/day09"
	_ "github.com/katalvlaran/aoc2023/days/day10"
)
