// Package interval implements closed Morton-code ranges tagged with an
// optional user payload.
//
// What:
//
//   - Interval[T] is an inclusive range [Start, End] of morton.Code2 values,
//     carrying a comparable payload Data of type T.
//   - Unit is the payload type for data-less intervals: since struct{}{}
//     always equals itself, Interval[Unit] values compare data-equal
//     unconditionally, with no special-casing anywhere else in the package.
//   - ToCells/ToCellsMax decompose an interval into the coarsest run of
//     Morton-aligned cells that covers it; CountCells histograms the
//     resulting cell sizes by level.
//
// Why:
//
//   - Region (the set-algebra layer one level up) is built entirely out of
//     sorted, disjoint Interval values; Interval carries the per-range math
//     Region's merge/intersect/difference sweeps depend on.
//
// Errors:
//
//   - New panics if start > end: a caller presenting a backwards range has
//     broken a documented precondition, not supplied recoverable bad input.
package interval
