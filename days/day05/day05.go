// Package day05 solves "If You Give A Seed A Fertilizer": seeds are pushed
// through a chain of category maps (seed → soil → … → location) and the
// lowest resulting location is reported.
//
// Part 2 treats the seed list as (start, length) pairs and maps whole
// ranges with interval.Table.MapRanges instead of enumerating seeds.
package day05

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2023/interval"
	"github.com/katalvlaran/aoc2023/parse"
	"github.com/katalvlaran/aoc2023/puzzle"
)

var (
	// ErrMalformed indicates the almanac text does not have the expected shape.
	ErrMalformed = errors.New("day05: malformed almanac")
	// ErrBrokenChain indicates the maps do not lead from seed to location.
	ErrBrokenChain = errors.New("day05: category chain does not reach location")
)

const (
	firstCategory = "seed"
	lastCategory  = "location"
)

func init() {
	puzzle.Register(puzzle.Solution{Day: 5, Title: "If You Give A Seed A Fertilizer", Part1: Part1, Part2: Part2})
}

// Map converts values of one category into the next.
type Map struct {
	From, To string
	Table    interval.Table
}

// Almanac is the parsed puzzle input.
type Almanac struct {
	Seeds []int
	// Maps is keyed by source category.
	Maps map[string]Map
}

// Parse reads the seeds line followed by blank-line separated map blocks:
//
//	seed-to-soil map:
//	50 98 2
//
// Each row is "destination source length".
func Parse(input string) (*Almanac, error) {
	blocks := parse.Blocks(input)
	if len(blocks) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformed)
	}
	rest, err := parse.After(blocks[0][0], "seeds:")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	seeds, err := parse.Ints[int](rest)
	if err != nil {
		return nil, fmt.Errorf("%w: seeds: %w", ErrMalformed, err)
	}

	a := &Almanac{Seeds: seeds, Maps: make(map[string]Map, len(blocks)-1)}
	for _, b := range blocks[1:] {
		m, err := parseMap(b)
		if err != nil {
			return nil, err
		}
		if _, dup := a.Maps[m.From]; dup {
			return nil, fmt.Errorf("%w: two maps from %q", ErrMalformed, m.From)
		}
		a.Maps[m.From] = m
	}

	return a, nil
}

func parseMap(lines []string) (Map, error) {
	name, ok := strings.CutSuffix(strings.TrimSpace(lines[0]), " map:")
	if !ok {
		return Map{}, fmt.Errorf("%w: header %q", ErrMalformed, lines[0])
	}
	from, to, ok := strings.Cut(name, "-to-")
	if !ok {
		return Map{}, fmt.Errorf("%w: header %q", ErrMalformed, lines[0])
	}

	m := Map{From: from, To: to}
	for _, row := range lines[1:] {
		nums, err := parse.Ints[int](row)
		if err != nil {
			return Map{}, fmt.Errorf("%w: %s map: %w", ErrMalformed, from, err)
		}
		if len(nums) != 3 {
			return Map{}, fmt.Errorf("%w: %s map: row %q", ErrMalformed, from, row)
		}
		dst, src, n := nums[0], nums[1], nums[2]
		m.Table = append(m.Table, interval.Shift{Source: interval.FromLength(src, n), Delta: dst - src})
	}

	return m, nil
}

// chain returns the maps in order from seed to location.
func (a *Almanac) chain() ([]Map, error) {
	var out []Map
	cat := firstCategory
	for cat != lastCategory {
		m, ok := a.Maps[cat]
		if !ok {
			return nil, fmt.Errorf("%w: no map from %q", ErrBrokenChain, cat)
		}
		if len(out) >= len(a.Maps) {
			return nil, fmt.Errorf("%w: cycle at %q", ErrBrokenChain, cat)
		}
		out = append(out, m)
		cat = m.To
	}

	return out, nil
}

// Location follows seed through every map.
func (a *Almanac) Location(seed int) (int, error) {
	maps, err := a.chain()
	if err != nil {
		return 0, err
	}
	v := seed
	for _, m := range maps {
		v = m.Table.Map(v)
	}

	return v, nil
}

// Part1 returns the lowest location of any listed seed.
func Part1(input string) (int, error) {
	a, err := Parse(input)
	if err != nil {
		return 0, err
	}
	if len(a.Seeds) == 0 {
		return 0, fmt.Errorf("%w: no seeds", ErrMalformed)
	}
	maps, err := a.chain()
	if err != nil {
		return 0, err
	}
	lowest := 0
	for i, s := range a.Seeds {
		v := s
		for _, m := range maps {
			v = m.Table.Map(v)
		}
		if i == 0 || v < lowest {
			lowest = v
		}
	}

	return lowest, nil
}

// Part2 reads the seeds as (start, length) pairs and returns the lowest
// location over all of them.
func Part2(input string) (int, error) {
	a, err := Parse(input)
	if err != nil {
		return 0, err
	}
	if len(a.Seeds) == 0 || len(a.Seeds)%2 != 0 {
		return 0, fmt.Errorf("%w: seeds must be start/length pairs", ErrMalformed)
	}
	maps, err := a.chain()
	if err != nil {
		return 0, err
	}
	ranges := make([]interval.Range, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		ranges = append(ranges, interval.FromLength(a.Seeds[i], a.Seeds[i+1]))
	}
	for _, m := range maps {
		ranges = m.Table.MapRanges(ranges)
	}
	if len(ranges) == 0 {
		return 0, fmt.Errorf("%w: every seed range is empty", ErrMalformed)
	}

	// MapRanges returns sorted ranges
	return ranges[0].Start, nil
}
