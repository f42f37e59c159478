package interval

import (
	"math/bits"
	"sort"

	"github.com/hadeaninc/libzinc/morton"
)

// Contains reports whether c falls within [i.Start, i.End].
func (i Interval[T]) Contains(c morton.Code2) bool {
	return c >= i.Start && c <= i.End
}

// Area returns the number of Morton codes spanned by the interval.
func (i Interval[T]) Area() uint64 {
	return uint64(i.End) + 1 - uint64(i.Start)
}

// Equal reports whether i and o have the same range and, when T is not
// Unit, the same data.
func (i Interval[T]) Equal(o Interval[T]) bool {
	return i.Start == o.Start && i.End == o.End && i.Data == o.Data
}

// Less orders intervals by (Start, End) only — Data participates in
// coalescence-equality checks elsewhere, not in ordering (see DESIGN.md OQ-1).
func (i Interval[T]) Less(o Interval[T]) bool {
	if i.Start != o.Start {
		return i.Start < o.Start
	}
	return i.End < o.End
}

// Intersect returns the overlap of i and o, and whether one exists. The
// returned interval carries i's data; callers comparing typed intervals
// with differing non-unit data must pre-check data equality themselves.
func (i Interval[T]) Intersect(o Interval[T]) (Interval[T], bool) {
	start := i.Start
	if o.Start > start {
		start = o.Start
	}
	end := i.End
	if o.End < end {
		end = o.End
	}
	if start > end {
		var zero Interval[T]
		return zero, false
	}
	return Interval[T]{Start: start, End: end, Data: i.Data}, true
}

// StartAlignment returns ctz64(Start)/2, or math.MaxUint64 if Start is zero.
func (i Interval[T]) StartAlignment() uint64 {
	if i.Start == 0 {
		return ^uint64(0)
	}
	return uint64(bits.TrailingZeros64(uint64(i.Start))) / morton.Dimension2
}

// EndAlignment returns ctz64(End)/2, or math.MaxUint64 if End is zero.
func (i Interval[T]) EndAlignment() uint64 {
	if i.End == 0 {
		return ^uint64(0)
	}
	return uint64(bits.TrailingZeros64(uint64(i.End))) / morton.Dimension2
}

// ToCells greedily decomposes the interval into the maximal Morton-aligned
// cells that cover it, in increasing order.
func (i Interval[T]) ToCells() []Interval[T] {
	var out []Interval[T]
	s := i.Start
	for s <= i.End {
		amax := morton.AlignMax2(s, i.End)
		out = append(out, Interval[T]{Start: s, End: amax, Data: i.Data})
		if amax == ^morton.Code2(0) {
			break
		}
		s = amax + 1
	}
	return out
}

// ToCellsMax is ToCells but caps each emitted cell's end at s+2^maxLevel,
// preserving the source's undimensioned cap formula verbatim (DESIGN.md
// OQ-4).
func (i Interval[T]) ToCellsMax(maxLevel uint64) []Interval[T] {
	var out []Interval[T]
	s := i.Start
	for s <= i.End {
		capEnd := s + morton.Code2(uint64(1)<<maxLevel)
		amax := morton.AlignMax2(s, i.End)
		if capEnd < amax {
			amax = capEnd
		}
		out = append(out, Interval[T]{Start: s, End: amax, Data: i.Data})
		if amax == ^morton.Code2(0) {
			break
		}
		s = amax + 1
	}
	return out
}

// CountCells returns a histogram, sorted ascending by level, of the cell
// sizes produced by ToCells. Level is fast_log2(area)/2.
func (i Interval[T]) CountCells() []LevelCount {
	counts := map[uint64]int{}
	s := i.Start
	for s <= i.End {
		amax := morton.AlignMax2(s, i.End)
		level := morton.FastLog2(uint64(1)+uint64(amax)-uint64(s)) / morton.Dimension2
		counts[level]++
		if amax == ^morton.Code2(0) {
			break
		}
		s = amax + 1
	}
	out := make([]LevelCount, 0, len(counts))
	for level, count := range counts {
		out = append(out, LevelCount{Level: level, Count: count})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Level < out[b].Level })
	return out
}

// Parent returns the smallest Morton-aligned cell containing the whole of i.
func (i Interval[T]) Parent() Interval[T] {
	level := morton.UnifyingLevel2(i.Start, i.End)
	p := i.Start.ParentAligned(level)
	return Interval[T]{Start: p, End: p + morton.Code2(morton.LevelCode2(level)), Data: i.Data}
}
