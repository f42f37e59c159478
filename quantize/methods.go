package quantize

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/hadeaninc/libzinc/aabb"
	"github.com/hadeaninc/libzinc/morton"
)

const maxCoordinate = math.MaxUint32

// Quantize maps a world-space box onto g's grid, flooring the minimum
// corner and ceiling the maximum corner so the resulting AABB fully covers
// b, then encodes the two grid-aligned corners as a morton.Code2 pair.
// Returns ErrEmptyBox for a degenerate/backwards box, or
// ErrCoordinateOverflow if a quantized coordinate would not fit in the
// 32-bit-per-axis grid — both are ordinary validation of untrusted caller
// input, not a precondition violation, so they return an error rather than
// panicking (see DESIGN.md's panics-vs-errors policy).
func (g Grid) Quantize(b r2.Box) (aabb.AABB, error) {
	if b.Empty() {
		return aabb.AABB{}, ErrEmptyBox
	}
	minX := math.Floor((b.Min.X - g.Origin.X) / g.CellSize)
	minY := math.Floor((b.Min.Y - g.Origin.Y) / g.CellSize)
	maxX := math.Ceil((b.Max.X-g.Origin.X)/g.CellSize) - 1
	maxY := math.Ceil((b.Max.Y-g.Origin.Y)/g.CellSize) - 1

	for _, v := range []float64{minX, minY, maxX, maxY} {
		if v < 0 || v > maxCoordinate {
			return aabb.AABB{}, fmt.Errorf("quantize: %w: %v", ErrCoordinateOverflow, v)
		}
	}

	min := morton.EncodeXY(uint32(minX), uint32(minY))
	max := morton.EncodeXY(uint32(maxX), uint32(maxY))
	return aabb.New(min, max), nil
}

// Dequantize is Quantize's inverse: it decodes a.Min/a.Max back to grid
// coordinates and scales them into world space, producing the
// world-space box a quantized AABB's two corners correspond to.
func (g Grid) Dequantize(a aabb.AABB) r2.Box {
	minX, minY := a.Min.DecodeXY()
	maxX, maxY := a.Max.DecodeXY()
	return r2.Box{
		Min: r2.Vec{
			X: g.Origin.X + float64(minX)*g.CellSize,
			Y: g.Origin.Y + float64(minY)*g.CellSize,
		},
		Max: r2.Vec{
			X: g.Origin.X + float64(maxX+1)*g.CellSize,
			Y: g.Origin.Y + float64(maxY+1)*g.CellSize,
		},
	}
}
