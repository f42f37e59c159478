// Package libzinc (zinc) is a spatial-indexing core built on Morton
// (Z-order) codes.
//
// 🚀 What is libzinc?
//
//	A small, dependency-light library that turns axis-aligned boxes into
//	sorted runs of one-dimensional Morton-code intervals, and performs set
//	algebra over those runs:
//
//	  • Bit algebra:  interleave/de-interleave coordinates, masked per-axis
//	                  arithmetic, alignment queries (morton)
//	  • Interval:     a closed Morton range with greedy cell decomposition
//	                  and a cell-size histogram (interval)
//	  • AABB:         LITMAX/BIGMIN Z-curve splitting into aligned cells or
//	                  coalesced runs, streamed lazily via an iterator (aabb)
//	  • Region:       sorted, disjoint interval lists closed under union,
//	                  intersection and difference (region)
//
// ✨ Why choose libzinc?
//
//   - Pure value semantics — no global state, no goroutines, no locks
//   - Deterministic        — same inputs always produce the same output
//   - Composable           — Region algebra builds the same way callers
//     already compose sets, just backed by Morton runs instead of slices
//
// Under the hood, everything is organized under four core subpackages plus
// three consumer-facing ones:
//
//	morton/    — Z-order bit algebra (Code2, Code3)
//	interval/  — tagged closed Morton ranges
//	aabb/      — axis-aligned box decomposition (2D)
//	region/    — sorted/disjoint interval set algebra
//	treecell/  — (code, level) aligned-cell helper for downstream storage
//	quantize/  — floating-point box to integer AABB bridge
//	gridgraph/ — a worked example consumer: a land/water grid exposed as a
//	             Morton coverage Region
//
// Quick ASCII example: the AABB {0,12} decomposes into the aligned cells
//
//	[0,3] [4,4] [6,6] [8,8] [9,9] [12,12]
//
// and coalesces into the four contiguous runs [0,4] [6,6] [8,9] [12,12].
//
// Dive into the per-package doc comments for full examples and the concrete
// scenarios each algorithm is tested against.
//
//	go get github.com/hadeaninc/libzinc
package libzinc
