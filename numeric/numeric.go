// Package numeric provides the integer helpers shared by several days:
// greatest common divisor, least common multiple and absolute value,
// generic over golang.org/x/exp/constraints.
package numeric

import "golang.org/x/exp/constraints"

// Abs returns |v|.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// GCD returns the greatest common divisor of a and b using Euclid's
// algorithm. GCD(0, 0) == 0; the result is never negative.
// Complexity: O(log min(a, b)).
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}

	return a
}

// LCM returns the least common multiple of a and b.
// If either argument is zero the result is zero.
func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	// divide first to keep the intermediate small
	l := a / GCD(a, b) * b
	if l < 0 {
		return -l
	}

	return l
}

// LCMAll folds LCM over values. The LCM of an empty list is 1.
func LCMAll[T constraints.Integer](values ...T) T {
	var acc T = 1
	for _, v := range values {
		acc = LCM(acc, v)
	}

	return acc
}
