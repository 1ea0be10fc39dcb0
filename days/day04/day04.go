// Package day04 solves "Scratchcards".
package day04

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2023/parse"
	"github.com/katalvlaran/aoc2023/puzzle"
)

func init() {
	puzzle.Register(puzzle.Solution{Day: 4, Title: "Scratchcards", Part1: Part1, Part2: Part2})
}

// Card holds the winning numbers and the numbers scratched off.
type Card struct {
	ID      int
	Winning map[int]struct{}
	Have    []int
}

// Matches counts the distinct scratched numbers that are winning numbers.
func (c Card) Matches() int {
	n := 0
	seen := make(map[int]struct{}, len(c.Have))
	for _, v := range c.Have {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		if _, ok := c.Winning[v]; ok {
			n++
		}
	}

	return n
}

// Points is 1 for the first match, doubled for each further match.
func (c Card) Points() int {
	m := c.Matches()
	if m == 0 {
		return 0
	}

	return 1 << (m - 1)
}

// ParseCard reads "Card 1: 41 48 83 | 83 86  6".
func ParseCard(line string) (Card, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, fmt.Errorf("day04: %w: %q", parse.ErrMissingSeparator, line)
	}
	id, err := parse.Int[int](strings.TrimPrefix(strings.TrimSpace(head), "Card"))
	if err != nil {
		return Card{}, fmt.Errorf("day04: card id: %w", err)
	}
	left, right, ok := strings.Cut(body, "|")
	if !ok {
		return Card{}, fmt.Errorf("day04: card %d: %w: %q", id, parse.ErrMissingSeparator, "|")
	}
	winning, err := parse.Ints[int](left)
	if err != nil {
		return Card{}, fmt.Errorf("day04: card %d: %w", id, err)
	}
	have, err := parse.Ints[int](right)
	if err != nil {
		return Card{}, fmt.Errorf("day04: card %d: %w", id, err)
	}

	c := Card{ID: id, Winning: make(map[int]struct{}, len(winning)), Have: have}
	for _, w := range winning {
		c.Winning[w] = struct{}{}
	}

	return c, nil
}

func parseCards(input string) ([]Card, error) {
	var cards []Card
	for _, line := range parse.Lines(input) {
		c, err := ParseCard(line)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}

	return cards, nil
}

// Part1 sums the points of every card.
func Part1(input string) (int, error) {
	cards, err := parseCards(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, c := range cards {
		total += c.Points()
	}

	return total, nil
}

// Part2 counts cards once copies are won: a card with m matches wins one
// copy of each of the next m cards, never past the end of the table.
// Copies are accumulated in a single forward pass.
func Part2(input string) (int, error) {
	cards, err := parseCards(input)
	if err != nil {
		return 0, err
	}
	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	total := 0
	for i, c := range cards {
		total += copies[i]
		for j := i + 1; j <= i+c.Matches() && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}

	return total, nil
}
