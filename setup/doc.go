// Package setup turns an InputValues configuration into a ready-to-route
// gridmodel.CellGrid and designrule.Catalogue: rasterizing RECT/TRI/CIR
// keep-out, design-rule-zone, cost-zone, and pin-swap-zone primitives onto
// the grid, seeding the universal repellent near hard barriers, and
// rejecting a configuration that assigns conflicting design rules to
// vertically adjacent layers before a single cell is routed.
//
// BuildNets turns InputValues.Nets into the router.Net slice Run
// negotiates paths for, pairing up declared diff partners into a
// synthesized pseudo-net and its two shoulder-routed physical nets.
//
// The validate-before-construct discipline and the "Grid(...) Constructor"
// procedural-builder shape are grounded on the teacher's builder package
// (builder/impl_grid.go, builder/validators.go); detecting a conflicting
// via-diameter pairing across adjacent layers reuses the teacher's dfs
// package's graph-walk style (dfs/cycle.go), generalized from cycle
// detection over a core.Graph to a linear adjacent-layer-pair scan over
// the cell grid's Z axis.
package setup
