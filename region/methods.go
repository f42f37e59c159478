package region

import (
	"sort"

	"github.com/hadeaninc/libzinc/interval"
	"github.com/hadeaninc/libzinc/morton"
)

// bound is a (start, end) pair extracted from a right-hand-side interval,
// stripped of its payload type, so the intersection/difference sweeps can
// run against either a same-typed Region or an untyped mask Region.
type bound struct{ start, end morton.Code2 }

func boundsOf[M comparable](intervals []interval.Interval[M]) []bound {
	out := make([]bound, len(intervals))
	for i, iv := range intervals {
		out[i] = bound{iv.Start, iv.End}
	}
	return out
}

// Union returns r merged with o: a sorted merge of both interval lists
// followed by a coalescence pass that absorbs adjacent-or-overlapping,
// data-equal runs into one interval.
func (r Region[T]) Union(o Region[T]) Region[T] {
	out := r.clone()
	out.UnionWith(o)
	return out
}

// UnionWith merges o into r in place.
func (r *Region[T]) UnionWith(o Region[T]) {
	merged := make([]interval.Interval[T], 0, len(r.Intervals)+len(o.Intervals))
	merged = append(merged, r.Intervals...)
	merged = append(merged, o.Intervals...)
	sort.SliceStable(merged, func(i, j int) bool { return merged[i].Less(merged[j]) })

	out := make([]interval.Interval[T], 0, len(merged))
	i := 0
	for i < len(merged) {
		cur := merged[i]
		j := i + 1
		for j < len(merged) && uint64(merged[j].Start) <= uint64(cur.End)+1 && merged[j].Data == cur.Data {
			if merged[j].End > cur.End {
				cur.End = merged[j].End
			}
			j++
		}
		out = append(out, cur)
		i = j
	}
	r.Intervals = out
}

// Intersect returns the overlap of r and o, taking payload from r.
func (r Region[T]) Intersect(o Region[T]) Region[T] {
	return Region[T]{Intervals: intersectBounds(r.Intervals, boundsOf(o.Intervals))}
}

// IntersectWith intersects r with o in place.
func (r *Region[T]) IntersectWith(o Region[T]) {
	r.Intervals = intersectBounds(r.Intervals, boundsOf(o.Intervals))
}

// IntersectMask returns the overlap of r with an untyped mask region,
// taking payload from r. Go rendition of the source's cross-type
// operator&= with a monostate right operand (see SPEC_FULL.md §4.4).
func (r Region[T]) IntersectMask(mask Region[interval.Unit]) Region[T] {
	return Region[T]{Intervals: intersectBounds(r.Intervals, boundsOf(mask.Intervals))}
}

// intersectBounds is the two-pointer sweep shared by Intersect/
// IntersectWith/IntersectMask, keyed only on (start, end).
func intersectBounds[T comparable](lhs []interval.Interval[T], rhs []bound) []interval.Interval[T] {
	out := make([]interval.Interval[T], 0, len(lhs))
	i, j := 0, 0
	for i < len(lhs) && j < len(rhs) {
		a := lhs[i]
		b := rhs[j]
		if a.End < b.start {
			i++
			continue
		}
		if b.end < a.Start {
			j++
			continue
		}
		s := a.Start
		if b.start > s {
			s = b.start
		}
		e := a.End
		if b.end < e {
			e = b.end
		}
		out = append(out, interval.Interval[T]{Start: s, End: e, Data: a.Data})
		switch {
		case a.End < b.end:
			i++
		case b.end < a.End:
			j++
		default:
			i++
			j++
		}
	}
	return out
}

// Difference returns r with every Morton code covered by o removed.
func (r Region[T]) Difference(o Region[T]) Region[T] {
	return Region[T]{Intervals: differenceBounds(r.Intervals, boundsOf(o.Intervals))}
}

// DifferenceWith removes every Morton code covered by o from r in place.
func (r *Region[T]) DifferenceWith(o Region[T]) {
	r.Intervals = differenceBounds(r.Intervals, boundsOf(o.Intervals))
}

// DifferenceMask removes every Morton code covered by mask from r.
func (r Region[T]) DifferenceMask(mask Region[interval.Unit]) Region[T] {
	return Region[T]{Intervals: differenceBounds(r.Intervals, boundsOf(mask.Intervals))}
}

func differenceBounds[T comparable](lhs []interval.Interval[T], rhs []bound) []interval.Interval[T] {
	out := make([]interval.Interval[T], 0, len(lhs))
	li, ri := 0, 0
	var s morton.Code2
	if li < len(lhs) {
		s = lhs[li].Start
	}
	for li < len(lhs) && ri < len(rhs) {
		a := lhs[li]
		b := rhs[ri]
		if a.End < b.start {
			out = append(out, interval.Interval[T]{Start: s, End: a.End, Data: a.Data})
			li++
			if li < len(lhs) {
				s = lhs[li].Start
			}
			continue
		}
		if s > b.end {
			ri++
			continue
		}
		if s >= b.start {
			if a.End <= b.end {
				li++
				if li < len(lhs) {
					s = lhs[li].Start
				}
			} else {
				s = b.end + 1
				ri++
			}
			continue
		}
		out = append(out, interval.Interval[T]{Start: s, End: b.start - 1, Data: a.Data})
		if b.end < a.End {
			s = b.end + 1
			ri++
		} else {
			li++
			if li < len(lhs) {
				s = lhs[li].Start
			}
		}
	}
	if li < len(lhs) {
		out = append(out, interval.Interval[T]{Start: s, End: lhs[li].End, Data: lhs[li].Data})
		out = append(out, lhs[li+1:]...)
	}
	return out
}

// Intersects reports whether r and o share any Morton code.
func (r Region[T]) Intersects(o Region[T]) bool {
	i, j := 0, 0
	for i < len(r.Intervals) && j < len(o.Intervals) {
		a := r.Intervals[i]
		b := o.Intervals[j]
		if a.End < b.Start {
			i++
			continue
		}
		if b.End < a.Start {
			j++
			continue
		}
		return true
	}
	return false
}

// Contains reports whether c falls within any of r's intervals.
func (r Region[T]) Contains(c morton.Code2) bool {
	for _, iv := range r.Intervals {
		if c < iv.Start {
			return false
		}
		if c <= iv.End {
			return true
		}
	}
	return false
}

// Area returns the sum of the areas of r's intervals.
func (r Region[T]) Area() uint64 {
	var a uint64
	for _, iv := range r.Intervals {
		a += iv.Area()
	}
	return a
}

// Empty reports whether r has no intervals.
func (r Region[T]) Empty() bool {
	return len(r.Intervals) == 0
}

// ToCells flattens r into the aligned cells of every constituent interval.
func (r Region[T]) ToCells() []interval.Interval[T] {
	var out []interval.Interval[T]
	for _, iv := range r.Intervals {
		out = append(out, iv.ToCells()...)
	}
	return out
}

// ToCellsMax is ToCells with each cell's size capped per interval.ToCellsMax.
func (r Region[T]) ToCellsMax(maxLevel uint64) []interval.Interval[T] {
	var out []interval.Interval[T]
	for _, iv := range r.Intervals {
		out = append(out, iv.ToCellsMax(maxLevel)...)
	}
	return out
}

// CountCells merges the per-interval cell-size histograms of every
// constituent interval into one, sorted ascending by level. Implemented as
// a genuine sorted-map merge (see DESIGN.md OQ-5), not the source's
// order-dependent insertion.
func (r Region[T]) CountCells() []interval.LevelCount {
	totals := map[uint64]int{}
	for _, iv := range r.Intervals {
		for _, lc := range iv.CountCells() {
			totals[lc.Level] += lc.Count
		}
	}
	out := make([]interval.LevelCount, 0, len(totals))
	for level, count := range totals {
		out = append(out, interval.LevelCount{Level: level, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Level < out[j].Level })
	return out
}

func (r Region[T]) clone() Region[T] {
	cp := make([]interval.Interval[T], len(r.Intervals))
	copy(cp, r.Intervals)
	return Region[T]{Intervals: cp}
}
