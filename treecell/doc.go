// Package treecell provides the (code, level) cell address used by
// downstream octree/quadtree node storage.
//
// What:
//
//   - TreeCell{Code, Level} identifies the aligned cell
//     [Code, Code + 2^(2*Level) - 1].
//   - Region/RegionData hand that cell to a caller as a region.Region, the
//     same shape an AABB decomposition produces.
//   - Contains tests membership against the cell's aligned range.
//
// Why:
//
//   - A tree-structured spatial store (the system spec.md alludes to via
//     "used by downstream octree code") indexes nodes by (code, level)
//     rather than by raw Morton range; TreeCell is the bridge between that
//     indexing scheme and region.Region's algebra.
//
// Errors:
//
//   - None; every operation here is a total function of its inputs.
package treecell
