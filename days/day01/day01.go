// Package day01 solves "Trebuchet?!": recover calibration values from
// lines of text by combining the first and last digit on each line.
package day01

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2023/parse"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// ErrNoDigits indicates a line with no digit to calibrate from.
var ErrNoDigits = errors.New("day01: line has no digits")

func init() {
	puzzle.Register(puzzle.Solution{Day: 1, Title: "Trebuchet?!", Part1: Part1, Part2: Part2})
}

// spelled[i] is the word for digit i+1.
var spelled = [9]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt reports the digit starting at s[i], if any. With words set,
// spelled-out digits count as well; overlapping words such as "eightwo"
// yield a digit at both positions.
func digitAt(s string, i int, words bool) (int, bool) {
	if c := s[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !words {
		return 0, false
	}
	for d, w := range spelled {
		if strings.HasPrefix(s[i:], w) {
			return d + 1, true
		}
	}

	return 0, false
}

// calibration combines the first and last digit of line into a
// two-digit number.
func calibration(line string, words bool) (int, error) {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		d, ok := digitAt(line, i, words)
		if !ok {
			continue
		}
		if first < 0 {
			first = d
		}
		last = d
	}
	if first < 0 {
		return 0, fmt.Errorf("%w: %q", ErrNoDigits, line)
	}

	return first*10 + last, nil
}

func sum(input string, words bool) (int, error) {
	total := 0
	for _, line := range parse.Lines(input) {
		v, err := calibration(line, words)
		if err != nil {
			return 0, err
		}
		total += v
	}

	return total, nil
}

// Part1 sums calibration values built from numeric digits only.
func Part1(input string) (int, error) {
	return sum(input, false)
}

// Part2 also accepts digits spelled out as words.
func Part2(input string) (int, error) {
	return sum(input, true)
}
