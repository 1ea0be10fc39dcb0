// Package parse holds the small text helpers every puzzle day needs:
// splitting input into lines or blank-line separated blocks, and reading
// whitespace-separated integer fields.
//
// All functions accept input with either LF or CRLF line endings.
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

var (
	// ErrNotInteger indicates a field that does not parse as a base-10 integer.
	ErrNotInteger = errors.New("parse: field is not an integer")
	// ErrMissingSeparator indicates After could not find its separator.
	ErrMissingSeparator = errors.New("parse: separator not found")
)

// normalize rewrites CRLF line endings to LF.
func normalize(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// Lines splits s into lines, dropping the trailing newline.
// An empty (or newline-only) input yields an empty slice.
// Complexity: O(len(s)).
func Lines(s string) []string {
	s = strings.TrimRight(normalize(s), "\n")
	if s == "" {
		return []string{}
	}

	return strings.Split(s, "\n")
}

// Blocks splits s into groups of lines separated by one or more blank lines.
// Lines consisting only of spaces count as blank.
// Complexity: O(len(s)).
func Blocks(s string) [][]string {
	var (
		blocks [][]string
		cur    []string
	)
	for _, line := range Lines(s) {
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}

	return blocks
}

// Int parses a single trimmed base-10 integer of type T.
// A value that does not fit T is ErrNotInteger.
func Int[T constraints.Integer](s string) (T, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotInteger, s)
	}
	v := T(n)
	if int64(v) != n || (v < 0) != (n < 0) {
		return 0, fmt.Errorf("%w: %q overflows %T", ErrNotInteger, s, v)
	}

	return v, nil
}

// Ints parses every whitespace-separated field of s as an integer.
// Runs of spaces (as in right-aligned puzzle columns) are tolerated.
// Complexity: O(len(s)).
func Ints[T constraints.Integer](s string) ([]T, error) {
	fields := strings.Fields(s)
	out := make([]T, 0, len(fields))
	for _, f := range fields {
		n, err := Int[T](f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}

	return out, nil
}

// After returns the text following the first occurrence of sep,
// e.g. After("Game 7: 3 red", ":") == " 3 red".
func After(s, sep string) (string, error) {
	_, rest, ok := strings.Cut(s, sep)
	if !ok {
		return "", fmt.Errorf("%w: %q in %q", ErrMissingSeparator, sep, s)
	}

	return rest, nil
}

// Digits concatenates every decimal digit in s into a single integer,
// ignoring all other characters ("Time:  7  15   30" → 71530).
// Returns ErrNotInteger if s contains no digit.
func Digits[T constraints.Integer](s string) (T, error) {
	var (
		n     T
		found bool
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			continue
		}
		n = n*10 + T(c-'0')
		found = true
	}
	if !found {
		return 0, fmt.Errorf("%w: no digits in %q", ErrNotInteger, s)
	}

	return n, nil
}
