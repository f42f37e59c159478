package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hadeaninc/libzinc/morton"
)

func TestNewPanicsOnBackwardsRange(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic when start > end")
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		assert.ErrorIs(t, err, ErrInvalidRange)
	}()
	New[int](5, 1, 0)
}

func TestArea(t *testing.T) {
	cases := []struct {
		start, end morton.Code2
		want       uint64
	}{
		{0, 0, 1},
		{0, 1, 2},
		{1, 2, 2},
	}
	for _, c := range cases {
		i := NewUnit(c.start, c.end)
		assert.Equal(t, c.want, i.Area(), "Area(%d,%d)", c.start, c.end)
	}
}

func TestIntersect(t *testing.T) {
	a := NewUnit(0, 5)
	got, ok := a.Intersect(NewUnit(2, 7))
	require.True(t, ok, "expected an intersection")
	assert.Equal(t, morton.Code2(2), got.Start)
	assert.Equal(t, morton.Code2(5), got.End)

	_, ok = a.Intersect(NewUnit(7, 23))
	assert.False(t, ok, "expected no intersection with disjoint range")
}

func TestToCells(t *testing.T) {
	i := NewUnit(0, 12)
	got := i.ToCells()
	want := []Interval[Unit]{
		{Start: 0, End: 3}, {Start: 4, End: 7}, {Start: 8, End: 11},
		{Start: 12, End: 12},
	}
	require.Len(t, got, len(want))
	for idx := range want {
		assert.Equal(t, want[idx].Start, got[idx].Start, "ToCells()[%d].Start", idx)
		assert.Equal(t, want[idx].End, got[idx].End, "ToCells()[%d].End", idx)
	}
}

func TestToCellsRoundTripsIdentity(t *testing.T) {
	i := NewUnit(0, 15)
	got := i.ToCells()
	require.Len(t, got, 1, "ToCells of an already-aligned interval should be itself")
	assert.Equal(t, morton.Code2(0), got[0].Start)
	assert.Equal(t, morton.Code2(15), got[0].End)

	i2 := NewUnit(1, 15)
	got2 := i2.ToCells()
	want2 := [][2]morton.Code2{{1, 1}, {2, 2}, {3, 3}, {4, 7}, {8, 11}, {12, 15}}
	require.Len(t, got2, len(want2))
	for idx, w := range want2 {
		assert.Equal(t, w[0], got2[idx].Start, "ToCells()[%d].Start", idx)
		assert.Equal(t, w[1], got2[idx].End, "ToCells()[%d].End", idx)
	}
}

func TestCountCells(t *testing.T) {
	cases := []struct {
		start, end morton.Code2
		want       []LevelCount
	}{
		{0, 21, []LevelCount{{0, 2}, {1, 1}, {2, 1}}},
		{0, 3, []LevelCount{{1, 1}}},
		{0, 63, []LevelCount{{3, 1}}},
		{1, 63, []LevelCount{{0, 3}, {1, 3}, {2, 3}}},
	}
	for _, c := range cases {
		got := NewUnit(c.start, c.end).CountCells()
		assert.Equal(t, c.want, got, "CountCells(%d,%d)", c.start, c.end)
	}
}

func TestStartEndAlignment(t *testing.T) {
	assert.Equal(t, ^uint64(0), NewUnit(0, 0).StartAlignment(), "StartAlignment(0)")
	assert.Equal(t, ^uint64(0), NewUnit(0, 0).EndAlignment(), "EndAlignment(0)")
}
