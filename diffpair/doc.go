// Package diffpair implements differential-pair synthesis (spec.md
// section 4.5, component C7): given a routed pseudo-net path midway
// between a declared pair's two physical nets, project two parallel
// "shoulder" paths at the pair's half-pitch, place the diff-pair vias at
// each pseudo-path layer transition, match the two proposed vias onto the
// two shoulder paths, and splice them in.
//
// Geometry (tangent/normal fitting, shoulder legality search, via
// placement) is plain analytic math — no ecosystem library in the
// example pack models parabola-through-three-points or perpendicular-
// offset projection, so this part is standard-library `math` throughout.
// The A/B-to-1/2 via/shoulder assignment reuses the teacher's tsp
// package's greedy-matching shape (tsp/matching.go's greedyMatch): a
// deterministic O(k^2) comparison with the same "lower id wins ties"
// discipline, specialized here to the k=2 case spec.md section 4.5
// describes ("compare D(A->1,B->2) vs D(A->2,B->1), choose the smaller").
package diffpair
