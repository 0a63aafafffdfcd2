// Package drc implements the design-rule-check engine (spec.md section
// 4.2): given the dense contiguous paths already marked onto the grid's
// path-center lists, detect every foreign (path, shape-type) pair whose
// centers lie closer than their design-rule-required spacing, record up
// to ten detailed violations, and maintain per-path/per-layer violation
// counters.
//
// The pairwise radius lookup reuses designrule's dense RadiusTable
// exactly as gridmodel.DeriveProximityMasks does; the violation-pair
// deduplication bitset (section 4.2.1) is a packed-byte bitset in the
// style of the teacher's sentinel-error, minimal-allocation packages —
// no generic bitset library is warranted for a single fixed-shape index
// function.
package drc
