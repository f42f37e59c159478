package aabb

import (
	"fmt"

	"github.com/hadeaninc/libzinc/morton"
)

// AABB is an inclusive 2-dimensional Morton-code range [Min, Max].
type AABB struct {
	Min, Max morton.Code2
}

// New constructs an AABB, panicking if min > max.
func New(min, max morton.Code2) AABB {
	if min > max {
		panic(fmt.Errorf("%w: min=%d max=%d", ErrInvalidRange, min, max))
	}
	return AABB{Min: min, Max: max}
}
