package quantize

import "errors"

// Sentinel errors for Grid.Quantize. These cover ordinary untrusted
// caller input (a float box from a CAD/GIS/physics source), unlike the
// panics morton/interval/aabb raise for internal precondition violations.
var (
	// ErrEmptyBox indicates the box has zero or negative area.
	ErrEmptyBox = errors.New("quantize: box is empty")
	// ErrCoordinateOverflow indicates a quantized coordinate would not fit
	// in the 32-bit-per-axis Morton grid.
	ErrCoordinateOverflow = errors.New("quantize: coordinate overflows the 32-bit grid")
)
