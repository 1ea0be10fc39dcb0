package numeric_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/aoc2023/numeric"
)

func TestGCD(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{0, 0, 0},
		{12, 0, 12},
		{0, 7, 7},
		{12, 18, 6},
		{-12, 18, 6},
		{17, 5, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, numeric.GCD(tc.a, tc.b), "GCD(%d,%d)", tc.a, tc.b)
	}
}

func TestLCM(t *testing.T) {
	assert.Equal(t, 0, numeric.LCM(0, 5))
	assert.Equal(t, 36, numeric.LCM(12, 18))
	assert.Equal(t, 36, numeric.LCM(-12, 18))
	assert.Equal(t, uint64(20), numeric.LCM[uint64](4, 5))
}

func TestLCMAll(t *testing.T) {
	assert.Equal(t, 1, numeric.LCMAll[int]())
	assert.Equal(t, 6, numeric.LCMAll(2, 3))
	assert.Equal(t, 60, numeric.LCMAll(2, 3, 4, 5))
	// cycle lengths of the size day 8 produces stay within int64
	assert.Equal(t, int64(10371555451871), numeric.LCMAll[int64](20093, 12169, 22357, 14999, 13301, 17263))
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 3, numeric.Abs(-3))
	assert.Equal(t, int64(0), numeric.Abs[int64](0))
	assert.Equal(t, 9, numeric.Abs(9))
}

func ExampleLCMAll() {
	fmt.Println(numeric.LCMAll(2, 6))
	// Output: 6
}
