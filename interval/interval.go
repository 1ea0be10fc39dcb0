// Package interval implements half-open integer ranges and ordered
// remapping tables, the arithmetic behind range-to-range conversion
// pipelines such as the day 5 almanac.
//
// A Table is a list of Shifts; each Shift moves the values of its Source
// range by Delta. Values not covered by any Shift map to themselves.
// MapRanges applies a Table to whole ranges at once by splitting every
// input range along Shift boundaries, so the cost depends on the number
// of ranges rather than the number of values they contain.
//
// Complexity:
//
//   - Table.Map:       O(S)          (S = number of shifts)
//   - Table.MapRanges: O(S × R)      (R = number of ranges produced)
//   - Merge:           O(R log R)
package interval

import (
	"fmt"
	"sort"
)

// Range is the half-open interval [Start, End).
type Range struct {
	Start, End int
}

// FromLength builds [start, start+length).
func FromLength(start, length int) Range {
	return Range{Start: start, End: start + length}
}

// Len returns the number of integers in r (0 when empty).
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}

	return r.End - r.Start
}

// Empty reports whether r contains no integers.
func (r Range) Empty() bool {
	return r.Start >= r.End
}

// Contains reports whether v lies in [Start, End).
func (r Range) Contains(v int) bool {
	return v >= r.Start && v < r.End
}

// Intersect returns the overlap of r and o, or the zero Range when they
// are disjoint.
func (r Range) Intersect(o Range) Range {
	out := Range{Start: max(r.Start, o.Start), End: min(r.End, o.End)}
	if out.Empty() {
		return Range{}
	}

	return out
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Shift moves every value of Source by Delta.
type Shift struct {
	Source Range
	Delta  int
}

// Table is an ordered list of shifts. When sources overlap, the first
// matching shift wins.
type Table []Shift

// Map converts a single value: the first shift whose source contains v
// applies, otherwise v is returned unchanged.
func (t Table) Map(v int) int {
	for _, s := range t {
		if s.Source.Contains(v) {
			return v + s.Delta
		}
	}

	return v
}

// MapRanges converts whole ranges through t.
//
// Behavior:
//  1. For each shift in order, split every still-unmapped range into the
//     part covered by the shift and the uncovered remainder(s).
//  2. Covered parts are translated by Delta and set aside as mapped.
//  3. Remainders continue to the next shift.
//  4. Whatever no shift covered passes through unchanged.
//  5. The result is merged into sorted, non-overlapping ranges.
//
// Empty input ranges are dropped.
func (t Table) MapRanges(in []Range) []Range {
	pending := make([]Range, 0, len(in))
	for _, r := range in {
		if !r.Empty() {
			pending = append(pending, r)
		}
	}

	var mapped []Range
	for _, s := range t {
		var next []Range
		for _, r := range pending {
			covered := r.Intersect(s.Source)
			if covered.Empty() {
				next = append(next, r)
				continue
			}
			mapped = append(mapped, Range{Start: covered.Start + s.Delta, End: covered.End + s.Delta})
			if r.Start < covered.Start {
				next = append(next, Range{Start: r.Start, End: covered.Start})
			}
			if covered.End < r.End {
				next = append(next, Range{Start: covered.End, End: r.End})
			}
		}
		pending = next
	}

	return Merge(append(mapped, pending...))
}

// Merge returns the union of rs as sorted, non-overlapping ranges.
// Adjacent ranges ([1,3) and [3,5)) are coalesced. Empty ranges are dropped.
// The input slice is not modified.
func Merge(rs []Range) []Range {
	sorted := make([]Range, 0, len(rs))
	for _, r := range rs {
		if !r.Empty() {
			sorted = append(sorted, r)
		}
	}
	if len(sorted) == 0 {
		return nil
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	out := []Range{sorted[0]}
	for _, r := range sorted[1:] {
		last := &out[len(out)-1]
		if r.Start <= last.End {
			last.End = max(last.End, r.End)
			continue
		}
		out = append(out, r)
	}

	return out
}
