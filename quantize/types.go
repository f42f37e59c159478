package quantize

import "gonum.org/v1/gonum/spatial/r2"

// Grid defines the quantization frame that bridges a floating-point world
// space onto the integer Morton grid: Origin is the world-space point that
// maps to grid coordinate (0,0), and CellSize is the world-space length of
// one grid cell along each axis.
type Grid struct {
	Origin   r2.Vec
	CellSize float64
}
