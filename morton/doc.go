// Package morton implements Z-order (Morton) bit-interleaving codes and the
// bit algebra built on top of them.
//
// What:
//
//   - Code2 interleaves two uint32 coordinates into a 64-bit Z-order code.
//   - Code3 interleaves three 21-bit coordinates into a 64-bit Z-order code.
//   - The Add/Sub methods of Code2 and Code3 perform per-axis arithmetic
//     directly on an interleaved code, without letting a carry from one
//     axis leak into its neighbor.
//   - Alignment helpers (MaxAlignLevel, UnifyingLevel2/3, ParentAligned,
//     AlignMax2/3, LevelCode2/3) answer "how big an aligned cell does this code
//     sit in" and "what is the smallest aligned cell spanning this range".
//
// Why:
//
//   - Interleaving turns a multi-dimensional nearest-neighbor/range problem
//     into a one-dimensional sorted-order problem: codes close in value are
//     close in space (with some locality loss at high-bit boundaries).
//   - The alignment helpers are the arithmetic core the AABB splitter and
//     the interval/region decomposition build on.
//
// Errors:
//
//   - None of these functions return an error. Out-of-domain input (x=0 to
//     FastLog2, a descending range to the alignment helpers) is a
//     precondition violation and panics rather than returning a zero value
//     that would silently propagate.
package morton
