// Package aabb implements 2-dimensional axis-aligned bounding boxes over
// Morton codes and their decomposition into Morton-aligned cells or
// coalesced runs.
//
// What:
//
//   - AABB{Min, Max} is an inclusive Morton-code range (Min == Max is a
//     valid single-cell box).
//   - NextAddress implements the LITMAX/BIGMIN splitter: given an
//     unaligned box, it finds the two sub-ranges whose union covers the
//     box while skipping the Morton codes in between that fall outside it.
//   - ToCells/ToIntervals decompose a box into a region.Region of aligned
//     cells, or of coalesced contiguous runs, respectively.
//   - Iterator streams the ToIntervals decomposition lazily, one interval
//     at a time, without allocating the whole Region up front.
//
// Why:
//
//   - A 2D AABB over Morton codes does not correspond to a single
//     contiguous Morton range; NextAddress is the core primitive that lets
//     a caller walk that range in sorted order without materializing every
//     individual Morton code in the box.
//
// Errors:
//
//   - NextAddress panics if the box is already aligned (Min == Max is
//     always "aligned" in this sense) — callers must check IsMortonAligned
//     first; this is a precondition violation, not a recoverable case.
package aabb
