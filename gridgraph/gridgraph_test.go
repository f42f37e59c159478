package gridgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridErrors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGrid(tc.grid, DefaultGridOptions())
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestInBounds(t *testing.T) {
	g, err := NewGrid([][]int{{0, 1, 0}, {1, 0, 1}}, DefaultGridOptions())
	require.NoError(t, err)

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		assert.True(t, g.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}}
	for _, xy := range invalid {
		assert.False(t, g.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
}

func TestCoverageRegionArea(t *testing.T) {
	grid := [][]int{
		{1, 1, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	g, err := NewGrid(grid, DefaultGridOptions())
	require.NoError(t, err)

	r := g.CoverageRegion()
	assert.Equal(t, uint64(4), r.Area())
}

func TestComponentCount(t *testing.T) {
	grid := [][]int{
		{1, 1, 0, 1},
		{0, 0, 0, 1},
		{1, 0, 1, 0},
	}
	g, err := NewGrid(grid, DefaultGridOptions())
	require.NoError(t, err)

	assert.Equal(t, 4, g.ComponentCount(Conn4))
	assert.Equal(t, 3, g.ComponentCount(Conn8))
}
