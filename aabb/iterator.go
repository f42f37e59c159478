package aabb

import (
	"github.com/hadeaninc/libzinc/interval"
)

// Iterator streams the ToIntervals decomposition of an AABB lazily, one
// coalesced run at a time, without materializing the whole Region up
// front. It mirrors the state machine of the C++ iterator_intervals: an
// explicit work-stack (inputs), a pending accumulation (curr), the last
// value handed to the caller (value), a monotone index used for equality,
// and a finished flag.
type Iterator struct {
	parent   AABB
	inputs   []AABB
	curr     interval.Interval[interval.Unit]
	hasCurr  bool
	value    interval.Interval[interval.Unit]
	index    int
	finished bool
}

// Begin returns an Iterator positioned at the first emitted interval of
// b's ToIntervals decomposition (or already finished, for a degenerate
// empty decomposition — which cannot happen for a well-formed AABB, since
// every AABB covers at least one Morton code).
func (b AABB) Begin() *Iterator {
	it := &Iterator{parent: b, inputs: []AABB{b}}
	it.advance()
	return it
}

// End returns an Iterator representing the past-the-end position of b's
// decomposition, for comparison against a walked Iterator's Done state.
func (b AABB) End() *Iterator {
	it := &Iterator{parent: b, finished: true}
	return it
}

// Done reports whether the iterator has been exhausted.
func (it *Iterator) Done() bool {
	return it.finished
}

// Value returns the interval the iterator currently holds. Only valid
// while !Done().
func (it *Iterator) Value() interval.Interval[interval.Unit] {
	return it.value
}

// Next advances the iterator to the following interval of the decomposition.
func (it *Iterator) Next() {
	it.advance()
}

// Equal reports whether it and o refer to the same position in the same
// parent AABB's decomposition: same parent, same finished state, and (if
// unfinished) the same index — matching operator== on iterator_intervals.
func (it *Iterator) Equal(o *Iterator) bool {
	if it.parent != o.parent || it.finished != o.finished {
		return false
	}
	return it.finished || it.index == o.index
}

// advance pops work off the stack, either extending the pending
// accumulation curr or flushing it as the next emitted value, mirroring
// iterator_intervals::progress(). A degenerate {0,0} box yields exactly
// one interval [0,0]: the sentinel-free hasCurr flag (in place of the
// source's curr == interval{0,0} initialisation check) distinguishes an
// empty accumulator from one that has already accumulated [0,0].
func (it *Iterator) advance() {
	for len(it.inputs) > 0 {
		cur := it.inputs[len(it.inputs)-1]
		it.inputs = it.inputs[:len(it.inputs)-1]
		if cur.IsMortonAligned() {
			cell := cur.ToCell()
			switch {
			case !it.hasCurr:
				it.curr = cell
				it.hasCurr = true
				continue
			case it.curr.End+1 == cell.Start:
				it.curr.End = cell.End
				continue
			default:
				it.value = it.curr
				it.curr = cell
				it.index++
				return
			}
		}
		litmax, bigmin := cur.NextAddress()
		first := AABB{Min: cur.Min, Max: litmax}
		second := AABB{Min: bigmin, Max: cur.Max}
		it.inputs = append(it.inputs, second, first)
	}
	if it.hasCurr {
		it.value = it.curr
		it.hasCurr = false
		it.index++
		return
	}
	it.finished = true
}
