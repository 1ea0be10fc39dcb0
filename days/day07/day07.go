// Package day07 solves "Camel Cards", a poker variant ranked by hand type
// and then card by card. Part 2 turns J into a joker.
package day07

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/aoc2023/parse"
	"github.com/katalvlaran/aoc2023/puzzle"
)

var (
	// ErrBadCard indicates a card label outside the deck.
	ErrBadCard = errors.New("day07: unknown card label")
	// ErrBadHand indicates a line that is not "<5 cards> <bid>".
	ErrBadHand = errors.New("day07: malformed hand")
)

func init() {
	puzzle.Register(puzzle.Solution{Day: 7, Title: "Camel Cards", Part1: Part1, Part2: Part2})
}

// HandType orders hands from weakest to strongest.
type HandType int

const (
	// HighCard has five distinct labels.
	HighCard HandType = iota
	// OnePair has exactly one pair.
	OnePair
	// TwoPair has two pairs and a fifth card.
	TwoPair
	// ThreeOfAKind has a triple and two distinct singles.
	ThreeOfAKind
	// FullHouse has a triple and a pair.
	FullHouse
	// FourOfAKind has four matching labels.
	FourOfAKind
	// FiveOfAKind has all labels equal.
	FiveOfAKind
)

func (t HandType) String() string {
	return [...]string{"high card", "one pair", "two pair", "three of a kind",
		"full house", "four of a kind", "five of a kind"}[t]
}

// Card strengths, weakest first. With jokers, J moves to the bottom.
const (
	standardOrder = "23456789TJQKA"
	jokerOrder    = "J23456789TQKA"
	joker         = 0 // strength of J under jokerOrder
)

// Hand is a parsed hand: card strengths in dealt order, its type and bid.
type Hand struct {
	Cards [5]int
	Type  HandType
	Bid   int
}

// Classify determines the hand type. When jokers is set, cards of
// strength 0 join whichever group is largest.
func Classify(cards [5]int, jokers bool) HandType {
	var counts [13]int
	wild := 0
	for _, c := range cards {
		if jokers && c == joker {
			wild++
			continue
		}
		counts[c]++
	}
	sizes := make([]int, 0, 5)
	for _, n := range counts {
		if n > 0 {
			sizes = append(sizes, n)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	if len(sizes) == 0 { // five jokers
		return FiveOfAKind
	}
	sizes[0] += wild

	switch {
	case sizes[0] == 5:
		return FiveOfAKind
	case sizes[0] == 4:
		return FourOfAKind
	case sizes[0] == 3 && sizes[1] == 2:
		return FullHouse
	case sizes[0] == 3:
		return ThreeOfAKind
	case sizes[0] == 2 && sizes[1] == 2:
		return TwoPair
	case sizes[0] == 2:
		return OnePair
	}

	return HighCard
}

// ParseHand reads "KTJJT 220".
func ParseHand(line string, jokers bool) (Hand, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 || len(fields[0]) != 5 {
		return Hand{}, fmt.Errorf("%w: %q", ErrBadHand, line)
	}
	order := standardOrder
	if jokers {
		order = jokerOrder
	}
	var h Hand
	for i := 0; i < 5; i++ {
		s := strings.IndexByte(order, fields[0][i])
		if s < 0 {
			return Hand{}, fmt.Errorf("%w: %q in %q", ErrBadCard, fields[0][i], line)
		}
		h.Cards[i] = s
	}
	bid, err := parse.Int[int](fields[1])
	if err != nil {
		return Hand{}, fmt.Errorf("%w: %w", ErrBadHand, err)
	}
	h.Bid = bid
	h.Type = Classify(h.Cards, jokers)

	return h, nil
}

// Less orders hands by type, then card by card in dealt order.
func (h Hand) Less(o Hand) bool {
	if h.Type != o.Type {
		return h.Type < o.Type
	}
	for i := range h.Cards {
		if h.Cards[i] != o.Cards[i] {
			return h.Cards[i] < o.Cards[i]
		}
	}

	return false
}

// winnings ranks every hand (1 = weakest) and sums bid × rank.
func winnings(input string, jokers bool) (int, error) {
	var hands []Hand
	for _, line := range parse.Lines(input) {
		h, err := ParseHand(line, jokers)
		if err != nil {
			return 0, err
		}
		hands = append(hands, h)
	}
	sort.SliceStable(hands, func(i, j int) bool { return hands[i].Less(hands[j]) })

	total := 0
	for i, h := range hands {
		total += h.Bid * (i + 1)
	}

	return total, nil
}

// Part1 returns the total winnings with J as jack.
func Part1(input string) (int, error) {
	return winnings(input, false)
}

// Part2 returns the total winnings with J as joker.
func Part2(input string) (int, error) {
	return winnings(input, true)
}
