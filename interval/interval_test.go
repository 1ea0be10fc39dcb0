package interval_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/aoc2023/interval"
)

func TestRange(t *testing.T) {
	r := interval.FromLength(98, 2)
	assert.Equal(t, interval.Range{Start: 98, End: 100}, r)
	assert.Equal(t, 2, r.Len())
	assert.True(t, r.Contains(98))
	assert.True(t, r.Contains(99))
	assert.False(t, r.Contains(100)) // half-open
	assert.False(t, r.Contains(97))

	assert.True(t, interval.Range{Start: 5, End: 5}.Empty())
	assert.Equal(t, 0, interval.Range{Start: 6, End: 5}.Len())
	assert.Equal(t, "[98,100)", r.String())
}

func TestIntersect(t *testing.T) {
	cases := []struct {
		name string
		a, b interval.Range
		want interval.Range
	}{
		{"Overlap", interval.Range{Start: 0, End: 10}, interval.Range{Start: 5, End: 15}, interval.Range{Start: 5, End: 10}},
		{"Inside", interval.Range{Start: 0, End: 10}, interval.Range{Start: 2, End: 3}, interval.Range{Start: 2, End: 3}},
		{"Touching", interval.Range{Start: 0, End: 5}, interval.Range{Start: 5, End: 9}, interval.Range{}},
		{"Disjoint", interval.Range{Start: 0, End: 2}, interval.Range{Start: 7, End: 9}, interval.Range{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Intersect(tc.b))
			assert.Equal(t, tc.want, tc.b.Intersect(tc.a))
		})
	}
}

// seedToSoil is the first table of the published day 5 example.
var seedToSoil = interval.Table{
	{Source: interval.FromLength(98, 2), Delta: 50 - 98},
	{Source: interval.FromLength(50, 48), Delta: 52 - 50},
}

func TestTableMap(t *testing.T) {
	cases := map[int]int{79: 81, 14: 14, 55: 57, 13: 13, 98: 50, 99: 51, 100: 100, 49: 49, 50: 52}
	for in, want := range cases {
		assert.Equal(t, want, seedToSoil.Map(in), "Map(%d)", in)
	}
}

func TestTableMapRanges(t *testing.T) {
	cases := []struct {
		name string
		in   []interval.Range
		want []interval.Range
	}{
		{
			name: "Uncovered",
			in:   []interval.Range{{Start: 0, End: 10}},
			want: []interval.Range{{Start: 0, End: 10}},
		},
		{
			name: "FullyCovered",
			in:   []interval.Range{interval.FromLength(79, 14)},
			want: []interval.Range{interval.FromLength(81, 14)},
		},
		{
			name: "SplitAcrossShifts",
			// [45,50) identity, [50,98) → [52,100), [98,100) → [50,52),
			// [100,101) identity; the pieces coalesce back into one range
			in:   []interval.Range{{Start: 45, End: 101}},
			want: []interval.Range{{Start: 45, End: 101}},
		},
		{
			name: "DropsEmpty",
			in:   []interval.Range{{Start: 3, End: 3}},
			want: nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := seedToSoil.MapRanges(tc.in)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("MapRanges(%v) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

// TestMapRangesMatchesMap cross-checks range mapping against pointwise mapping.
func TestMapRangesMatchesMap(t *testing.T) {
	in := []interval.Range{{Start: 40, End: 60}, {Start: 95, End: 105}}
	want := map[int]bool{}
	for _, r := range in {
		for v := r.Start; v < r.End; v++ {
			want[seedToSoil.Map(v)] = true
		}
	}

	got := map[int]bool{}
	for _, r := range seedToSoil.MapRanges(in) {
		for v := r.Start; v < r.End; v++ {
			got[v] = true
		}
	}
	assert.Equal(t, want, got)
}

func TestMerge(t *testing.T) {
	got := interval.Merge([]interval.Range{
		{Start: 10, End: 12},
		{Start: 1, End: 3},
		{Start: 3, End: 5},
		{Start: 4, End: 8},
		{Start: 20, End: 20},
	})
	assert.Equal(t, []interval.Range{{Start: 1, End: 8}, {Start: 10, End: 12}}, got)
	assert.Nil(t, interval.Merge(nil))
}
