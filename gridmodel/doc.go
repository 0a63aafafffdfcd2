// Package gridmodel defines the static 3-D cell grid every routing
// component reads and writes: CellGrid is the arena, Cell is the
// per-(x,y,z) record of static design-rule/barrier fields and dynamic
// congestion/path-center lists described by spec.md section 3.
//
// The grid is deliberately arena-style, following the design note in
// spec.md section 9: cells and paths cross-reference each other only by
// integer path numbers and coordinates, never by pointer, so the grid and
// the per-iteration path arrays can be reallocated independently without
// an ownership cycle. This mirrors the lvlath core package's own
// vertex/edge arena (adjacency tracked by string ID, not by pointer),
// generalized from a 2-D vertex set to a 3-D cell lattice.
//
// Concurrency model (spec.md section 5): the static fields are read-only
// after setup. The dynamic congestion lists are mutated only during the
// single-threaded congestion-deposition phase (package congestion) and
// during evaporation, whose goroutines each decay and compact a disjoint
// range of cells; CellGrid itself
// holds no locks — callers are responsible for respecting the phase
// separation the iteration controller enforces.
package gridmodel
