package diffpair

import "github.com/acorn-eda/acorn/geom"

// ViaAssignment names which proposed via (A or B) is matched to which
// shoulder path (1 or 2).
type ViaAssignment struct {
	AToShoulder1 bool
}

// MatchVias decides whether proposed via A belongs on shoulder path 1 (and
// B on shoulder path 2), or the reverse, by comparing the summed distance
// from each via to the shoulder segment's neighboring vertices under both
// assignments and keeping the cheaper one — the k=2 case of the teacher's
// tsp package's greedy minimum-weight matching (tsp/matching.go's
// greedyMatch), with the same tie-break discipline: a tie keeps the
// "natural" A-to-1 assignment rather than flipping arbitrarily.
func MatchVias(viaA, viaB geom.Coordinate, shoulder1Before, shoulder1After, shoulder2Before, shoulder2After geom.Coordinate) ViaAssignment {
	costAto1 := distance(viaA, shoulder1Before) + distance(viaA, shoulder1After) +
		distance(viaB, shoulder2Before) + distance(viaB, shoulder2After)
	costAto2 := distance(viaA, shoulder2Before) + distance(viaA, shoulder2After) +
		distance(viaB, shoulder1Before) + distance(viaB, shoulder1After)

	return ViaAssignment{AToShoulder1: costAto1 <= costAto2}
}
