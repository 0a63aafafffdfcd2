// Package designrule holds the static design-rule tables every other
// routing component reads: design-rule sets and subsets (line widths, via
// diameters, and pairwise spacings converted to cell units), the 18-bit
// routing-direction masks, and the precomputed pairwise DRC-radius and
// congestion-radius tables keyed by (design-rule set, subset, shape type).
//
// The radius tables are the performance-critical precomputation described
// by the specification's component C1 and C4: rather than recompute
// spacing + radius on every DRC/congestion lookup, designrule builds a
// dense r-major table once per design-rule catalogue, mirroring the dense
// row-major storage the lvlath matrix package uses for its Dense type.
//
// Nothing in this package mutates after construction; every exported type
// here is safe to share (read-only) across the router's parallel findPath
// workers.
package designrule
