package day02_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/days/day02"
	"github.com/katalvlaran/aoc2023/parse"
)

func example(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile("testdata/example.txt")
	require.NoError(t, err)
	return string(b)
}

func TestPart1(t *testing.T) {
	got, err := day02.Part1(example(t))
	require.NoError(t, err)
	assert.Equal(t, 8, got)
}

func TestPart2(t *testing.T) {
	got, err := day02.Part2(example(t))
	require.NoError(t, err)
	assert.Equal(t, 2286, got)
}

func TestParseGame(t *testing.T) {
	g, err := day02.ParseGame("Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red")
	require.NoError(t, err)
	assert.Equal(t, 3, g.ID)
	assert.Equal(t, []day02.Cubes{
		{Red: 20, Green: 8, Blue: 6},
		{Red: 4, Green: 13, Blue: 5},
		{Red: 1, Green: 5},
	}, g.Draws)
	assert.False(t, g.Possible(day02.Bag))
	assert.Equal(t, day02.Cubes{Red: 20, Green: 13, Blue: 6}, g.MinimalBag())
	assert.Equal(t, 1560, g.MinimalBag().Power())
}

func TestParseGame_Errors(t *testing.T) {
	_, err := day02.ParseGame("Game 1: 3 purple")
	assert.ErrorIs(t, err, day02.ErrUnknownColor)

	_, err = day02.ParseGame("Game 1 3 red")
	assert.ErrorIs(t, err, parse.ErrMissingSeparator)

	_, err = day02.ParseGame("Game x: 3 red")
	assert.ErrorIs(t, err, parse.ErrNotInteger)

	_, err = day02.ParseGame("Game 1: red 3 4")
	assert.Error(t, err)
}
