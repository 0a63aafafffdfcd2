// Package acorn is a multi-layer, design-rule-aware autorouter core for
// PCB-like (or integrated-circuit) routing topologies.
//
// Given a rectangular routing area discretized into a 3-D cell grid, a
// netlist of single-ended nets and differential pairs, a catalogue of
// design-rule sets, keep-out regions, cost-multiplier zones, pin-swap
// zones, and routing-direction restrictions, Acorn produces a set of
// lateral traces and vertical vias — one path per net — that connect each
// net's two terminals while minimizing a weighted cost (lateral length,
// via count, cost-zone multipliers) and driving design-rule violations to
// zero.
//
// Acorn implements an iterative, pathfinder-style negotiated-congestion
// router: each iteration evaporates prior congestion, routes every net in
// parallel with an A*/Dijkstra search over the cell grid, synthesizes
// differential-pair shoulder paths from routed pseudo-nets, runs a
// shape-aware design-rule check, deposits fresh congestion along every
// path, and adapts its own parameters (sensitivity ladders, start/end
// swaps, randomized congestion) when the routing-cost metric plateaus.
//
// The subpackages are organized leaf-first:
//
//	geom/        coordinates, bit-packing, geometric shape primitives
//	designrule/  design-rule sets/subsets, direction masks, DRC/congestion radius tables
//	gridmodel/   the static+dynamic 3-D cell grid (CellGrid/CellInfo)
//	congestion/  per-cell sparse congestion store: add/evaporate/lookup/compact
//	pathfinder/  the A*/Dijkstra findPath search
//	contiguity/  sparse-to-dense path fill
//	nearnet/     bounded-radius multi-source "near a net" marking
//	drc/         the design-rule checker and its violation bitset
//	diffpair/    differential-pair pseudo-net synthesis and shoulder/via projection
//	metrics/     per-iteration metrics, rolling DRC windows, plateau detection
//	router/      the iteration controller: RouterContext and dynamic algorithm control
//	setup/       InputValues -> CellGrid/Catalogue/[]router.Net construction
//
// Input-file parsing, visualization, CLI/configuration loading, and result
// persistence are external collaborators and are out of scope for this
// module; it consumes an already-parsed InputValues and emits per-net path
// coordinate sequences plus routing metrics.
package acorn
