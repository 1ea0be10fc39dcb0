// Package day06 solves "Wait For It": toy boat races where holding the
// button for h of T milliseconds moves the boat h·(T−h) millimetres.
//
// The number of winning hold times is counted in closed form from the
// roots of h² − T·h + D = 0, corrected to exact integers.
package day06

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/aoc2023/parse"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// ErrMalformed indicates the input is not a Time line followed by a Distance line.
var ErrMalformed = errors.New("day06: malformed race sheet")

func init() {
	puzzle.Register(puzzle.Solution{Day: 6, Title: "Wait For It", Part1: Part1, Part2: Part2})
}

// Race is one column of the sheet: its duration and the record distance.
type Race struct {
	Time, Distance int
}

// Beats reports whether holding for hold beats the record.
func (r Race) Beats(hold int) bool {
	return hold*(r.Time-hold) > r.Distance
}

// WaysToWin counts the integer hold times in (0, Time) that beat the record.
// Complexity: O(1) plus a constant number of correction steps.
func (r Race) WaysToWin() int {
	disc := float64(r.Time)*float64(r.Time) - 4*float64(r.Distance)
	if disc < 0 {
		return 0
	}
	lo := int((float64(r.Time) - math.Sqrt(disc)) / 2)
	// the float root may be off by one either way
	for lo > 1 && r.Beats(lo-1) {
		lo--
	}
	for lo <= r.Time/2 && !r.Beats(lo) {
		lo++
	}
	if lo < 1 {
		lo = 1
	}
	hi := r.Time - lo // h·(T−h) is symmetric around T/2
	if lo > hi || !r.Beats(lo) {
		return 0
	}

	return hi - lo + 1
}

// sheet returns the text after "Time:" and "Distance:".
func sheet(input string) (times, dists string, err error) {
	lines := parse.Lines(input)
	if len(lines) != 2 {
		return "", "", fmt.Errorf("%w: want 2 lines, got %d", ErrMalformed, len(lines))
	}
	if times, err = parse.After(lines[0], "Time:"); err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if dists, err = parse.After(lines[1], "Distance:"); err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return times, dists, nil
}

// ParseRaces reads one race per column.
func ParseRaces(input string) ([]Race, error) {
	tl, dl, err := sheet(input)
	if err != nil {
		return nil, err
	}
	times, err := parse.Ints[int](tl)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	dists, err := parse.Ints[int](dl)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if len(times) != len(dists) || len(times) == 0 {
		return nil, fmt.Errorf("%w: %d times vs %d distances", ErrMalformed, len(times), len(dists))
	}
	races := make([]Race, len(times))
	for i := range times {
		races[i] = Race{Time: times[i], Distance: dists[i]}
	}

	return races, nil
}

// ParseKerned reads the sheet as a single race, ignoring the spaces
// between digits.
func ParseKerned(input string) (Race, error) {
	tl, dl, err := sheet(input)
	if err != nil {
		return Race{}, err
	}
	t, err := parse.Digits[int](tl)
	if err != nil {
		return Race{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	d, err := parse.Digits[int](dl)
	if err != nil {
		return Race{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return Race{Time: t, Distance: d}, nil
}

// Part1 multiplies the number of ways to win each race.
func Part1(input string) (int, error) {
	races, err := ParseRaces(input)
	if err != nil {
		return 0, err
	}
	product := 1
	for _, r := range races {
		product *= r.WaysToWin()
	}

	return product, nil
}

// Part2 counts the ways to win the single kerned race.
func Part2(input string) (int, error) {
	r, err := ParseKerned(input)
	if err != nil {
		return 0, err
	}

	return r.WaysToWin(), nil
}
