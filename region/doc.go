// Package region implements set algebra over sorted, disjoint lists of
// Morton-code intervals: union, intersection, difference, membership and
// the cell-decomposition/histogram queries built on top of interval.
//
// What:
//
//   - Region[T] wraps a sorted, disjoint []interval.Interval[T].
//   - Union/Intersect/Difference (value-returning) and their *With
//     in-place counterparts implement the sorted-merge, two-pointer and
//     case-analysis sweeps respectively.
//   - IntersectMask/DifferenceMask accept an untyped (Unit-payload) right
//     operand as a wildcard match against a typed receiver.
//   - ToCells/ToCellsMax/CountCells flatten a Region into its constituent
//     aligned cells, or histogram them by level.
//
// Why:
//
//   - A Region is the natural representation of "the set of space covered
//     by an AABB decomposition", and all four algebraic operations are
//     exactly what a caller combining multiple such sets needs.
//
// Errors:
//
//   - None of these operations validate their input's sortedness at
//     runtime (matching the source's debug-only assert); a Region built
//     exclusively through this package's own constructors and algebra
//     always satisfies the invariant, so callers who build one by hand
//     out of order get undefined ordering in the result, not a panic.
package region
