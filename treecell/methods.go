package treecell

import (
	"github.com/hadeaninc/libzinc/interval"
	"github.com/hadeaninc/libzinc/morton"
	"github.com/hadeaninc/libzinc/region"
)

// span returns the offset of the cell's last Morton code from its first:
// 2^(2*Level) - 1.
func (c TreeCell) span() morton.Code2 {
	return morton.Code2((uint64(1) << (c.Level * morton.Dimension2)) - 1)
}

// FixCode re-aligns Code to the start of its level-Level cell, zeroing the
// low 2*Level bits. Go rendition of tree_cell::fix_code.
func (c TreeCell) FixCode() TreeCell {
	c.Code = c.Code.ParentAligned(c.Level)
	return c
}

// CheckOverlap reports whether c and o's cells overlap, comparing at
// whichever of the two levels is coarser. Go rendition of
// tree_cell::check_overlap.
func (c TreeCell) CheckOverlap(o TreeCell) bool {
	l := c.Level
	if o.Level > l {
		l = o.Level
	}
	shift := l * morton.Dimension2
	return uint64(c.Code)>>shift == uint64(o.Code)>>shift
}

// Contains reports whether Morton code c falls within this cell's aligned
// range. Specified as (c &^ levelMask(level)) == Code, resolving the
// tautology in the source's tree_cell::contains (which compared a shifted
// value against itself) — see DESIGN.md OQ-3.
func (c TreeCell) Contains(code morton.Code2) bool {
	return code&^c.span() == c.Code
}

// Region returns the single-interval, data-less Region covering this cell.
// Go rendition of tree_cell::region().
func (c TreeCell) Region() region.Region[interval.Unit] {
	return region.New(interval.NewUnit(c.Code, c.Code+c.span()))
}

// RegionData is Region but tags the single interval with data. Go
// rendition of the templated tree_cell::region(T data) overload.
func RegionData[T comparable](c TreeCell, data T) region.Region[T] {
	return region.New(interval.New(c.Code, c.Code+c.span(), data))
}
