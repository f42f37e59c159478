package quantize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestQuantizeDequantizeRoundTrip(t *testing.T) {
	g := Grid{Origin: r2.Vec{X: 0, Y: 0}, CellSize: 1.0}
	box := r2.NewBox(1, 1, 5, 4)

	a, err := g.Quantize(box)
	require.NoError(t, err)

	minX, minY := a.Min.DecodeXY()
	maxX, maxY := a.Max.DecodeXY()
	assert.Equal(t, uint32(1), minX)
	assert.Equal(t, uint32(1), minY)
	assert.Equal(t, uint32(4), maxX)
	assert.Equal(t, uint32(3), maxY)

	back := g.Dequantize(a)
	assert.True(t, back.Contains(box.Min), "Dequantize() = %+v does not cover original box min %+v", back, box)
	assert.True(t, back.Contains(r2.Vec{X: box.Max.X - 0.001, Y: box.Max.Y - 0.001}),
		"Dequantize() = %+v does not cover original box max %+v", back, box)
}

func TestQuantizeEmptyBox(t *testing.T) {
	g := Grid{Origin: r2.Vec{}, CellSize: 1.0}
	_, err := g.Quantize(r2.Box{})
	assert.ErrorIs(t, err, ErrEmptyBox)
}

func TestQuantizeCoordinateOverflow(t *testing.T) {
	g := Grid{Origin: r2.Vec{}, CellSize: 1.0}
	_, err := g.Quantize(r2.NewBox(-10, 0, 1, 1))
	assert.ErrorIs(t, err, ErrCoordinateOverflow)
}
