package aabb

import (
	"fmt"
	"math/bits"

	"github.com/hadeaninc/libzinc/interval"
	"github.com/hadeaninc/libzinc/morton"
	"github.com/hadeaninc/libzinc/region"
)

// IsMortonAligned reports whether the box is exactly one Morton-aligned
// cell: its size is a power of two and that power's trailing-zero count is
// both a multiple of the dimension stride and no larger than Min's own
// maximal alignment.
func (b AABB) IsMortonAligned() bool {
	var alignMax uint64 = ^uint64(0)
	if b.Min != 0 {
		alignMax = uint64(bits.TrailingZeros64(uint64(b.Min)))
	}
	diff := uint64(b.Max) - uint64(b.Min) + 1
	align := uint64(bits.TrailingZeros64(diff))
	return align/morton.Dimension2 <= alignMax/morton.Dimension2 &&
		bits.OnesCount64(diff) == 1 &&
		align%morton.Dimension2 == 0
}

// ToCell returns b as a single Interval, panicking if b is not aligned.
func (b AABB) ToCell() interval.Interval[interval.Unit] {
	if !b.IsMortonAligned() {
		panic("aabb: ToCell requires an aligned box")
	}
	return interval.NewUnit(b.Min, b.Max)
}

// NextAddress implements the LITMAX/BIGMIN splitter (2D only): given an
// unaligned box it returns (litmax, bigmin) such that [Min, litmax] and
// [bigmin, Max] are the two sub-ranges that exclude the Morton codes
// strictly between them which fall outside the box. Panics if the box is
// already aligned (Min == Max included), matching the source's
// precondition that next_address is only meaningful on an unaligned range.
func (b AABB) NextAddress() (litmax, bigmin morton.Code2) {
	if b.IsMortonAligned() {
		panic(fmt.Errorf("%w: min=%d max=%d", ErrAlreadyAligned, b.Min, b.Max))
	}
	diffBit := 65 - uint64(bits.LeadingZeros64(uint64(b.Min)^uint64(b.Max)))
	mask := ^((uint64(1) << (diffBit / 2)) - 1)
	inc := uint64(1) << ((diffBit / 2) - 1)
	axis := diffBit % 2

	var axisMask uint64 = mask2XShifted(axis)

	part := (uint64(morton.CompactBits2(uint64(b.Min)>>axis)) & mask) + inc

	bigminVal := uint64(b.Min) &^ axisMask
	bigminVal |= morton.ExpandBits2(uint32(part)) << axis

	litmaxVal := uint64(b.Max) &^ axisMask
	litmaxVal |= morton.ExpandBits2(uint32(part-1)) << axis

	return morton.Code2(litmaxVal), morton.Code2(bigminVal)
}

// mask2XShifted exposes the even-bit axis-0 mask shifted onto whichever
// axis NextAddress is splitting, without growing morton's public surface
// for a single-axis helper only this algorithm needs.
func mask2XShifted(axis uint64) uint64 {
	const mask2X uint64 = 0x5555555555555555
	return mask2X << axis
}

// ToCells recursively splits the box via NextAddress into Morton-aligned
// cells, pushing the second half before the first so the work-stack pops
// the lower Morton prefix first and the output is emitted in sorted order
// without an explicit sort.
func (b AABB) ToCells() region.Region[interval.Unit] {
	stack := []AABB{b}
	var out []interval.Interval[interval.Unit]
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.IsMortonAligned() {
			out = append(out, cur.ToCell())
			continue
		}
		litmax, bigmin := cur.NextAddress()
		first := AABB{Min: cur.Min, Max: litmax}
		second := AABB{Min: bigmin, Max: cur.Max}
		stack = append(stack, second, first)
	}
	return region.New(out...)
}

// ToIntervals is ToCells but coalesces adjacent aligned cells into the
// coarsest contiguous runs.
func (b AABB) ToIntervals() region.Region[interval.Unit] {
	stack := []AABB{b}
	var out []interval.Interval[interval.Unit]
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.IsMortonAligned() {
			if len(out) > 0 && out[len(out)-1].End+1 == cur.Min {
				out[len(out)-1].End = cur.Max
			} else {
				out = append(out, cur.ToCell())
			}
			continue
		}
		litmax, bigmin := cur.NextAddress()
		first := AABB{Min: cur.Min, Max: litmax}
		second := AABB{Min: bigmin, Max: cur.Max}
		stack = append(stack, second, first)
	}
	return region.New(out...)
}
