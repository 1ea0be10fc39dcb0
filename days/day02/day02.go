// Package day02 solves "Cube Conundrum": games of colored cubes drawn
// from a bag, checked against a bag limit and reduced to minimal bags.
package day02

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2023/parse"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// ErrUnknownColor indicates a draw names a color other than red, green or blue.
var ErrUnknownColor = errors.New("day02: unknown cube color")

func init() {
	puzzle.Register(puzzle.Solution{Day: 2, Title: "Cube Conundrum", Part1: Part1, Part2: Part2})
}

// Cubes counts cubes per color.
type Cubes struct {
	Red, Green, Blue int
}

// Fits reports whether c can be drawn from a bag holding limit.
func (c Cubes) Fits(limit Cubes) bool {
	return c.Red <= limit.Red && c.Green <= limit.Green && c.Blue <= limit.Blue
}

// Power is the product of the three counts.
func (c Cubes) Power() int {
	return c.Red * c.Green * c.Blue
}

// Game is one line of the record.
type Game struct {
	ID    int
	Draws []Cubes
}

// MinimalBag is the smallest bag that could have produced every draw.
func (g Game) MinimalBag() Cubes {
	var bag Cubes
	for _, d := range g.Draws {
		bag.Red = max(bag.Red, d.Red)
		bag.Green = max(bag.Green, d.Green)
		bag.Blue = max(bag.Blue, d.Blue)
	}

	return bag
}

// Possible reports whether every draw fits limit.
func (g Game) Possible(limit Cubes) bool {
	for _, d := range g.Draws {
		if !d.Fits(limit) {
			return false
		}
	}

	return true
}

// ParseGame reads "Game 3: 8 green, 6 blue; 5 blue, 4 red".
func ParseGame(line string) (Game, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, fmt.Errorf("day02: %w: %q", parse.ErrMissingSeparator, line)
	}
	id, err := parse.Int[int](strings.TrimPrefix(strings.TrimSpace(head), "Game"))
	if err != nil {
		return Game{}, fmt.Errorf("day02: game id: %w", err)
	}

	g := Game{ID: id}
	for _, draw := range strings.Split(body, ";") {
		var c Cubes
		for _, item := range strings.Split(draw, ",") {
			fields := strings.Fields(item)
			if len(fields) == 0 {
				continue
			}
			if len(fields) != 2 {
				return Game{}, fmt.Errorf("day02: game %d: malformed draw %q", id, item)
			}
			n, err := parse.Int[int](fields[0])
			if err != nil {
				return Game{}, fmt.Errorf("day02: game %d: %w", id, err)
			}
			switch fields[1] {
			case "red":
				c.Red += n
			case "green":
				c.Green += n
			case "blue":
				c.Blue += n
			default:
				return Game{}, fmt.Errorf("%w: %q in game %d", ErrUnknownColor, fields[1], id)
			}
		}
		g.Draws = append(g.Draws, c)
	}

	return g, nil
}

func parseGames(input string) ([]Game, error) {
	lines := parse.Lines(input)
	games := make([]Game, 0, len(lines))
	for _, line := range lines {
		g, err := ParseGame(line)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}

	return games, nil
}

// Bag is the limit Part1 checks games against.
var Bag = Cubes{Red: 12, Green: 13, Blue: 14}

// Part1 sums the IDs of games possible with Bag.
func Part1(input string) (int, error) {
	games, err := parseGames(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, g := range games {
		if g.Possible(Bag) {
			total += g.ID
		}
	}

	return total, nil
}

// Part2 sums the power of each game's minimal bag.
func Part2(input string) (int, error) {
	games, err := parseGames(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, g := range games {
		total += g.MinimalBag().Power()
	}

	return total, nil
}
