// Package quantize bridges floating-point world-space bounding boxes
// (gonum.org/v1/gonum/spatial/r2.Box) onto the integer Morton grid
// aabb.AABB operates over.
//
// What:
//
//   - Grid{Origin, CellSize} defines the quantization frame: Origin maps
//     to grid coordinate (0,0); CellSize is one cell's world-space extent.
//   - Quantize floors/ceils a world-space Box onto the grid and encodes
//     the two opposite corners into an aabb.AABB.
//   - Dequantize is the inverse, recovering a world-space Box from an
//     AABB's Min/Max corners.
//
// Why:
//
//   - Real callers (CAD, GIS, physics engines) hold floating-point boxes,
//     not pre-quantized integer grid coordinates; this package is the one
//     concrete place that world-space geometry meets the Morton core.
//
// Errors:
//
//   - Quantize returns ErrEmptyBox for a degenerate/backwards input box,
//     and ErrCoordinateOverflow if a quantized coordinate does not fit the
//     32-bit-per-axis grid. Both are ordinary validation of untrusted
//     caller input, not precondition violations, so they are returned
//     errors rather than panics.
package quantize
