package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8). Same enum as the teacher's gridgraph.
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold int
}

// DefaultGridOptions returns a GridOptions with LandThreshold=1 (values >=1
// are land).
func DefaultGridOptions() GridOptions {
	return GridOptions{LandThreshold: 1}
}

// Grid treats a rectangular 2D integer grid as a Morton-indexable surface:
// every cell (x,y) maps onto morton.EncodeXY(x,y), so its occupied ("land")
// cells can be expressed as a region.Region the same way an AABB
// decomposition is.
type Grid struct {
	Width, Height int
	Cells         [][]int
	Options       GridOptions
}

// cellOffsets returns the neighbor offsets for the given connectivity.
func cellOffsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}
	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}
