// Package pathfinder implements findPath (spec.md section 4.1): an
// A*/Dijkstra search over a gridmodel.CellGrid that accounts for layer
// transitions, diagonal and knight's moves, per-subset direction masks,
// cost-zone multipliers, negotiated-congestion penalties, and pin-swap
// cost substitution.
//
// The search itself is directly adapted from the teacher's dijkstra
// package: the open set is still a binary heap of candidate cells
// ordered by cost, and the overall init/process/relax shape is kept.
// Two things change because A* (unlike plain Dijkstra) needs them to stay
// competitive: the heap supports true decrease-key via an index
// back-reference stored on each node (the teacher's lazy "push a
// duplicate, skip it later" approach wastes heap slots once a nontrivial
// heuristic is in play), and every relaxation also evaluates an
// admissible heuristic H chosen by the destination subset's allowed
// direction mask.
package pathfinder
