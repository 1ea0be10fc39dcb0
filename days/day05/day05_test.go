package day05_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/days/day05"
)

func example(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile("testdata/example.txt")
	require.NoError(t, err)
	return string(b)
}

func TestPart1(t *testing.T) {
	got, err := day05.Part1(example(t))
	require.NoError(t, err)
	assert.Equal(t, 35, got)
}

func TestPart2(t *testing.T) {
	got, err := day05.Part2(example(t))
	require.NoError(t, err)
	assert.Equal(t, 46, got)
}

func TestPart1_CRLF(t *testing.T) {
	got, err := day05.Part1(strings.ReplaceAll(example(t), "\n", "\r\n"))
	require.NoError(t, err)
	assert.Equal(t, 35, got)
}

func TestLocation(t *testing.T) {
	a, err := day05.Parse(example(t))
	require.NoError(t, err)
	assert.Equal(t, []int{79, 14, 55, 13}, a.Seeds)
	assert.Len(t, a.Maps, 7)

	want := map[int]int{79: 82, 14: 43, 55: 86, 13: 35}
	for seed, loc := range want {
		got, err := a.Location(seed)
		require.NoError(t, err)
		assert.Equal(t, loc, got, "seed %d", seed)
	}
}

// TestRangeEndIsExclusive: "50 98 2" covers 98 and 99 only.
func TestRangeEndIsExclusive(t *testing.T) {
	input := "seeds: 98 99 100\n\nseed-to-location map:\n50 98 2\n"
	a, err := day05.Parse(input)
	require.NoError(t, err)
	for seed, want := range map[int]int{98: 50, 99: 51, 100: 100} {
		got, err := a.Location(seed)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", day05.ErrMalformed},
		{"NoSeedsLabel", "79 14\n\nseed-to-location map:\n1 2 3\n", day05.ErrMalformed},
		{"BadHeader", "seeds: 1 2\n\nseed to soil:\n1 2 3\n", day05.ErrMalformed},
		{"ShortRow", "seeds: 1 2\n\nseed-to-location map:\n1 2\n", day05.ErrMalformed},
		{"DuplicateSource", "seeds: 1 2\n\nseed-to-location map:\n1 2 3\n\nseed-to-soil map:\n4 5 6\n", day05.ErrMalformed},
		{"MissingLink", "seeds: 1 2\n\nseed-to-soil map:\n1 2 3\n", day05.ErrBrokenChain},
		{"Cycle", "seeds: 1 2\n\nseed-to-soil map:\n1 2 3\n\nsoil-to-seed map:\n1 2 3\n", day05.ErrBrokenChain},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := day05.Part1(tc.input)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := day05.Part2("seeds: 1 2 3\n\nseed-to-location map:\n1 2 3\n")
	assert.ErrorIs(t, err, day05.ErrMalformed)
}
