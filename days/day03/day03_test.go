package day03_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/days/day03"
	"github.com/katalvlaran/aoc2023/grid"
)

func example(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile("testdata/example.txt")
	require.NoError(t, err)
	return string(b)
}

func TestPart1(t *testing.T) {
	got, err := day03.Part1(example(t))
	require.NoError(t, err)
	assert.Equal(t, 4361, got)
}

func TestPart2(t *testing.T) {
	got, err := day03.Part2(example(t))
	require.NoError(t, err)
	assert.Equal(t, 467835, got)
}

func TestEdges(t *testing.T) {
	cases := []struct {
		name         string
		input        string
		part1, part2 int
	}{
		{"NumberAtRowEnd", "..12\n...#\n", 12, 0},
		{"DiagonalOnly", "5..\n.+.\n..7\n", 12, 0},
		{"SharedSymbolCountsOnce", "1*1\n", 2, 1},
		{"GearNeedsExactlyTwo", "2.3\n.*.\n4..\n", 9, 0},
		{"NoSymbols", "123\n456\n", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p1, err := day03.Part1(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.part1, p1)
			p2, err := day03.Part2(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.part2, p2)
		})
	}
}

func TestRaggedSchematic(t *testing.T) {
	_, err := day03.Part1("12.\n*\n")
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
}
