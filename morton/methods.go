package morton

// ExpandBits2 spreads a single 32-bit coordinate across the even bit
// positions of a 64-bit word. Exposed for callers (e.g. aabb's LITMAX/
// BIGMIN splitter) that need to re-interleave a single axis rather than a
// full coordinate pair.
func ExpandBits2(x uint32) uint64 {
	return expandBits2(uint64(x))
}

// CompactBits2 is the inverse of ExpandBits2: it gathers every other bit of
// x (starting at bit 0) into a contiguous 32-bit value.
func CompactBits2(x uint64) uint32 {
	return uint32(compactBits2(x))
}

// EncodeXY interleaves two 32-bit coordinates into a Code2.
func EncodeXY(x, y uint32) Code2 {
	return Code2(expandBits2(uint64(x))<<0 | expandBits2(uint64(y))<<1)
}

// DecodeXY splits a Code2 back into its X and Y coordinates.
func (c Code2) DecodeXY() (x, y uint32) {
	v := uint64(c)
	return uint32(compactBits2(v >> 0)), uint32(compactBits2(v >> 1))
}

// Add returns c shifted by delta, performing masked per-axis addition so a
// carry on one axis cannot leak into the other. This is the Go rendition of
// morton_code<2,32>::operator+=.
func (c Code2) Add(delta Code2) Code2 {
	x := (uint64(c) | ^mask2X) + (uint64(delta) & mask2X)
	y := (uint64(c) | ^mask2Y) + (uint64(delta) & mask2Y)
	return Code2((x & mask2X) | (y & mask2Y))
}

// Sub returns c minus delta, performing masked per-axis subtraction so a
// borrow on one axis cannot leak into the other. Go rendition of
// morton_code<2,32>::operator-=.
func (c Code2) Sub(delta Code2) Code2 {
	x := (uint64(c) & mask2X) - (uint64(delta) & mask2X)
	y := (uint64(c) & mask2Y) - (uint64(delta) & mask2Y)
	return Code2((x & mask2X) | (y & mask2Y))
}

// MaxAlignLevel returns the maximum alignment level of c: the largest level
// ℓ such that c is the start of a morton-aligned cell of that level.
func (c Code2) MaxAlignLevel() uint64 {
	return maxAlignLevel(uint64(c), Dimension2, MaxLevel2)
}

// ParentAligned returns the code of c's aligned ancestor cell at level.
func (c Code2) ParentAligned(level uint64) Code2 {
	return Code2(parentAligned(Dimension2, uint64(c), level))
}

// EncodeXYZ interleaves three 21-bit coordinates into a Code3.
func EncodeXYZ(x, y, z uint32) Code3 {
	return Code3(expandBits3(uint64(x))<<0 | expandBits3(uint64(y))<<1 | expandBits3(uint64(z))<<2)
}

// DecodeXYZ splits a Code3 back into its X, Y and Z coordinates.
func (c Code3) DecodeXYZ() (x, y, z uint32) {
	v := uint64(c)
	return uint32(compactBits3(v >> 0)), uint32(compactBits3(v >> 1)), uint32(compactBits3(v >> 2))
}

// Add returns c shifted by delta with masked per-axis addition across all
// three axes. Go rendition of morton_code<3,21>::operator+=.
func (c Code3) Add(delta Code3) Code3 {
	x := (uint64(c) | ^mask3X) + (uint64(delta) & mask3X)
	y := (uint64(c) | ^mask3Y) + (uint64(delta) & mask3Y)
	z := (uint64(c) | ^mask3Z) + (uint64(delta) & mask3Z)
	return Code3((x & mask3X) | (y & mask3Y) | (z & mask3Z))
}

// Sub returns c minus delta with masked per-axis subtraction across all
// three axes. Go rendition of morton_code<3,21>::operator-=.
func (c Code3) Sub(delta Code3) Code3 {
	x := (uint64(c) & mask3X) - (uint64(delta) & mask3X)
	y := (uint64(c) & mask3Y) - (uint64(delta) & mask3Y)
	z := (uint64(c) & mask3Z) - (uint64(delta) & mask3Z)
	return Code3((x & mask3X) | (y & mask3Y) | (z & mask3Z))
}

// MaxAlignLevel returns the maximum alignment level of c.
func (c Code3) MaxAlignLevel() uint64 {
	return maxAlignLevel(uint64(c), Dimension3, MaxLevel3)
}

// ParentAligned returns the code of c's aligned ancestor cell at level.
func (c Code3) ParentAligned(level uint64) Code3 {
	return Code3(parentAligned(Dimension3, uint64(c), level))
}

// UnifyingLevel2 returns the smallest level whose aligned cell contains both
// lo and hi, for the 2-dimensional stride. Panics if hi < lo.
func UnifyingLevel2(lo, hi Code2) uint64 {
	return unifyingLevel(Dimension2, uint64(lo), uint64(hi))
}

// UnifyingLevel3 returns the smallest level whose aligned cell contains both
// lo and hi, for the 3-dimensional stride. Panics if hi < lo.
func UnifyingLevel3(lo, hi Code3) uint64 {
	return unifyingLevel(Dimension3, uint64(lo), uint64(hi))
}

// LevelCode2 returns the morton code spanning a level-`level` cell under the
// 2-dimensional stride: (1 << (level*2)) - 1.
func LevelCode2(level uint64) uint64 {
	return levelSpan(Dimension2, level)
}

// LevelCode3 returns the morton code spanning a level-`level` cell under the
// 3-dimensional stride: (1 << (level*3)) - 1.
func LevelCode3(level uint64) uint64 {
	return levelSpan(Dimension3, level)
}

// AlignMax2 returns the greedy maximal morton-aligned upper bound for the
// range [lo, hi] under the 2-dimensional stride. Panics if hi < lo.
func AlignMax2(lo, hi Code2) Code2 {
	return Code2(alignMax(Dimension2, MaxLevel2, uint64(lo), uint64(hi)))
}

// AlignMax3 returns the greedy maximal morton-aligned upper bound for the
// range [lo, hi] under the 3-dimensional stride. Panics if hi < lo.
func AlignMax3(lo, hi Code3) Code3 {
	return Code3(alignMax(Dimension3, MaxLevel3, uint64(lo), uint64(hi)))
}
