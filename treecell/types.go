// Package treecell provides the consumer-side (code, level) cell address
// used by downstream octree/quadtree storage built on top of region.Region.
// It is not part of the core algebra; region and aabb never construct or
// consume a TreeCell themselves (see cell.hh in the original source).
package treecell

import "github.com/hadeaninc/libzinc/morton"

// TreeCell identifies an aligned Morton cell [Code, Code + 2^(2*Level) - 1]
// at a given octree/quadtree level.
type TreeCell struct {
	Code  morton.Code2
	Level uint64
}
