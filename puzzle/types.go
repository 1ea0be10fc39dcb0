package puzzle

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// Sentinel errors for puzzle execution.
var (
	// ErrUnknownDay is returned when no solution is registered for a day.
	ErrUnknownDay = errors.New("puzzle: unknown day")

	// ErrInputNotFound is returned when a day's input file is missing.
	ErrInputNotFound = errors.New("puzzle: input file not found")

	// ErrPartFailed wraps an error returned by a PartFunc.
	ErrPartFailed = errors.New("puzzle: part failed")
)

// Days are numbered like the advent calendar.
const (
	FirstDay = 1
	LastDay  = 25
)

// PartFunc computes one answer from the raw puzzle input.
type PartFunc func(input string) (int, error)

// Solution describes one puzzle day.
type Solution struct {
	Day   int
	Title string
	Part1 PartFunc
	Part2 PartFunc
}

// Result holds both answers of a day and how long solving took.
type Result struct {
	Day     int
	Part1   int
	Part2   int
	Elapsed time.Duration
}

// WriteTo prints the two answer lines:
//
//	Part 1: <n>
//	Part 2: <n>
func (r Result) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "Part 1: %d\nPart 2: %d\n", r.Part1, r.Part2)
	return int64(n), err
}
