package region

import (
	"github.com/hadeaninc/libzinc/interval"
	"github.com/hadeaninc/libzinc/morton"
)

// Region is a sorted, disjoint list of intervals sharing a payload type T.
type Region[T comparable] struct {
	Intervals []interval.Interval[T]
}

// New builds a Region from already-sorted, disjoint intervals. Callers
// assembling a Region from unsorted pieces should go through Union instead.
func New[T comparable](intervals ...interval.Interval[T]) Region[T] {
	return Region[T]{Intervals: intervals}
}

// CellToRegion returns the single-interval region covering the aligned
// cell identified by (code, level): [code, code + 2^(2*level) - 1].
func CellToRegion[T comparable](code morton.Code2, level uint64, data T) Region[T] {
	span := morton.Code2((uint64(1) << (level * 2)) - 1)
	return Region[T]{Intervals: []interval.Interval[T]{
		interval.New(code, code+span, data),
	}}
}
