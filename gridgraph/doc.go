// Package gridgraph treats a 2D land/water grid as a Morton-indexable
// surface, reporting its occupied footprint as a region.Region and
// counting connected "island" components.
//
// What:
//
//   - Grid wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - CoverageRegion encodes every land cell via morton.EncodeXY and
//     unions them into a single region.Region: the grid's occupied
//     footprint, in the same coalesced-run shape an AABB decomposition
//     produces.
//   - ComponentCount flood-fills 4- or 8-connected land components.
//
// Why:
//
//   - This is a worked example of the "downstream octree-style consumer"
//     role spec.md's tree_cell section describes only as an external
//     interface: a caller that turns raw occupancy data into a Region it
//     can then combine with other Regions via the core algebra.
//
// Errors:
//
//   - NewGrid returns ErrEmptyGrid for a grid with no rows/columns,
//     ErrNonRectangular for ragged rows, and ErrCoordinateOverflow if the
//     grid is too large to address with the 32-bit-per-axis Morton grid —
//     ordinary validation of caller-supplied data, not a precondition
//     violation.
package gridgraph
