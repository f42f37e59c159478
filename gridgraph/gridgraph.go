package gridgraph

import (
	"math"

	"github.com/hadeaninc/libzinc/interval"
	"github.com/hadeaninc/libzinc/morton"
	"github.com/hadeaninc/libzinc/region"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice,
// deep-copying the input to ensure immutability — the same validation and
// copy discipline as the teacher's NewGridGraph.
func NewGrid(values [][]int, opts GridOptions) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if w > math.MaxUint32 || h > math.MaxUint32 {
		return nil, ErrCoordinateOverflow
	}

	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	return &Grid{Width: w, Height: h, Cells: cells, Options: opts}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// CoverageRegion encodes every land cell (value >= LandThreshold) as a
// singleton Morton interval via morton.EncodeXY, and unions them all into
// one Region — the grid's occupied footprint, expressed as the same
// sorted/coalesced Morton run list an AABB decomposition would produce.
// This is the concrete analogue of spec.md's "used by downstream octree
// code" consumer role for tree cells.
func (g *Grid) CoverageRegion() region.Region[interval.Unit] {
	out := region.New[interval.Unit]()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Cells[y][x] < g.Options.LandThreshold {
				continue
			}
			code := morton.EncodeXY(uint32(x), uint32(y))
			out.UnionWith(region.New(interval.NewUnit(code, code)))
		}
	}
	return out
}
