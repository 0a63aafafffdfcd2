// Package contiguity expands a sparse path produced by the pathfinder's
// findPath search into a contiguous dense sequence suitable for the DRC
// engine and congestion deposition to scan cell-by-cell, per spec.md
// section 4.3.
//
// A sparse path's adjacent coordinates differ by exactly one of the
// eighteen designrule moves. A dense path's adjacent coordinates differ
// by at most one in each of X, Y, and Z: diagonal and knight moves are
// expanded by inserting canonical intermediate cells, mirroring the
// neighbor-offset expansion lvlath's gridgraph package performs for 2-D
// 4-/8-connectivity, generalized here to the 18-move 3-D move set and the
// spec's "thin line needs fill, wide line already overlaps" rule for
// diagonals.
package contiguity
