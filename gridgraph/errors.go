package gridgraph

import "errors"

// Sentinel errors for gridgraph construction, the same validation-error
// pattern as the teacher's gridgraph/errors.go.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrCoordinateOverflow indicates the grid is too large to address
	// with the 32-bit-per-axis Morton grid.
	ErrCoordinateOverflow = errors.New("gridgraph: grid dimensions overflow the 32-bit Morton grid")
)
