package interval

import (
	"fmt"

	"github.com/hadeaninc/libzinc/morton"
)

// Unit is the payload type used when an Interval or Region carries no data.
// struct{}{} always equals struct{}{}, so data-equality checks involving
// Unit are unconditionally true without any special-casing.
type Unit = struct{}

// Interval is an inclusive Morton-code range [Start, End] tagged with a
// comparable payload. Start must be <= End; construct via New rather than a
// bare literal unless the caller has already established that invariant.
type Interval[T comparable] struct {
	Start, End morton.Code2
	Data       T
}

// New constructs an Interval, panicking if start > end.
func New[T comparable](start, end morton.Code2, data T) Interval[T] {
	if start > end {
		panic(fmt.Errorf("%w: start=%d end=%d", ErrInvalidRange, start, end))
	}
	return Interval[T]{Start: start, End: end, Data: data}
}

// NewUnit constructs a data-less Interval.
func NewUnit(start, end morton.Code2) Interval[Unit] {
	return New(start, end, Unit{})
}

// LevelCount pairs a decomposition level with the number of cells of that
// size, as produced by CountCells.
type LevelCount struct {
	Level uint64
	Count int
}
