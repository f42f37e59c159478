package aabb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hadeaninc/libzinc/morton"
)

func TestIsMortonAligned(t *testing.T) {
	cases := []struct {
		min, max morton.Code2
		want     bool
	}{
		{3, 12, false},
		{15, 48, false},
		{1, 2, false},
		{16, 23, false},
		{0, 3, true},
		{8, 11, true},
		{12, 15, true},
		{4, 7, true},
		{0, 0, true},
		{2, 2, true},
		{7, 7, true},
		{0, 15, true},
	}
	for _, c := range cases {
		got := New(c.min, c.max).IsMortonAligned()
		assert.Equal(t, c.want, got, "AABB{%d,%d}.IsMortonAligned()", c.min, c.max)
	}
}

// S3: recursive NextAddress chain.
func TestNextAddressChain(t *testing.T) {
	cases := []struct {
		min, max               morton.Code2
		wantLitmax, wantBigmin morton.Code2
	}{
		{51, 193, 107, 145},
		{51, 107, 63, 98},
		{98, 107, 99, 104},
		{145, 193, 149, 192},
	}
	for _, c := range cases {
		litmax, bigmin := New(c.min, c.max).NextAddress()
		require.Equal(t, c.wantLitmax, litmax, "NextAddress(%d,%d) litmax", c.min, c.max)
		require.Equal(t, c.wantBigmin, bigmin, "NextAddress(%d,%d) bigmin", c.min, c.max)
	}
}

func TestNextAddressPanicsOnAlignedBox(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic when NextAddress is called on an already-aligned box")
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		assert.ErrorIs(t, err, ErrAlreadyAligned)
	}()
	New(4, 7).NextAddress()
}

// S1.
func TestToCells(t *testing.T) {
	got := New(0, 12).ToCells()
	want := [][2]morton.Code2{{0, 3}, {4, 4}, {6, 6}, {8, 8}, {9, 9}, {12, 12}}
	require.Len(t, got.Intervals, len(want))
	for i, w := range want {
		assert.Equal(t, w[0], got.Intervals[i].Start, "ToCells()[%d].Start", i)
		assert.Equal(t, w[1], got.Intervals[i].End, "ToCells()[%d].End", i)
	}
}

// S2.
func TestToIntervals(t *testing.T) {
	got := New(0, 12).ToIntervals()
	want := [][2]morton.Code2{{0, 4}, {6, 6}, {8, 9}, {12, 12}}
	require.Len(t, got.Intervals, len(want))
	for i, w := range want {
		assert.Equal(t, w[0], got.Intervals[i].Start, "ToIntervals()[%d].Start", i)
		assert.Equal(t, w[1], got.Intervals[i].End, "ToIntervals()[%d].End", i)
	}
}

// Iterator equivalence: the streamed iterator yields exactly the
// sequence ToIntervals() returns, in order, mirroring the ++it/begin/end
// chain asserted in zinc-test.cc.
func TestIteratorMatchesToIntervals(t *testing.T) {
	b := New(0, 12)
	want := b.ToIntervals().Intervals

	it := b.Begin()
	for i, w := range want {
		require.False(t, it.Done(), "iterator finished early at index %d, want %v", i, w)
		v := it.Value()
		assert.Equal(t, w.Start, v.Start, "iterator[%d].Start", i)
		assert.Equal(t, w.End, v.End, "iterator[%d].End", i)
		it.Next()
	}
	assert.True(t, it.Equal(b.End()), "iterator did not reach end() after exhausting ToIntervals()")
}

// S7: a degenerate {0,0} box yields exactly one interval [0,0].
func TestIteratorDegenerateBox(t *testing.T) {
	b := New(0, 0)
	it := b.Begin()
	v := it.Value()
	require.Equal(t, morton.Code2(0), v.Start)
	require.Equal(t, morton.Code2(0), v.End)

	it.Next()
	assert.True(t, it.Equal(b.End()), "expected iterator to reach end() after one element")
}
