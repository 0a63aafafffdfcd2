package diffpair

import "github.com/acorn-eda/acorn/geom"

// ViaParams returns the physical parameters (barrel diameters, spacing
// rules, nominal pair pitch) governing a diff-pair via placed between
// fromLayer and toLayer. Implementations typically look these up from a
// design-rule catalogue keyed by the layer pair.
type ViaParams func(fromLayer, toLayer int) (ViaDiameters, Spacings, pairPitch float64)

// Result is the fully synthesized output of diff-pair processing for one
// pseudo-net: the two shoulder paths with their diff-pair vias spliced in.
type Result struct {
	Shoulders ShoulderPair
}

// Synthesize runs the full pipeline spec.md section 4.5 describes for one
// routed pseudo-net path: shoulder projection, then — at each layer
// transition along the pseudo-path — via placement, A/B-to-1/2 matching,
// and splicing the chosen vias into the corresponding shoulder paths.
func Synthesize(pseudoPath []geom.Coordinate, halfPitch float64, legal Legality, viaParams ViaParams) (Result, error) {
	shoulders, err := Project(pseudoPath, halfPitch, legal)
	if err != nil {
		return Result{}, err
	}

	for i := 0; i+1 < len(pseudoPath); i++ {
		from, to := pseudoPath[i], pseudoPath[i+1]
		if from.Z == to.Z || !from.SameLateralPosition(to) {
			continue
		}

		var tangentBefore, tangentAfter point2
		var haveBefore, haveAfter bool
		if t, ok := fitTangent(pseudoPath, i); ok && i > 0 {
			tangentBefore, haveBefore = t, true
		}
		if t, ok := fitTangent(pseudoPath, i+1); ok && i+1 < len(pseudoPath)-1 {
			tangentAfter, haveAfter = t, true
		}

		dir, ok := Perpendicular(tangentBefore, tangentAfter, haveBefore, haveAfter)
		if !ok {
			continue
		}

		vias, spacing, pitch := viaParams(from.Z, to.Z)
		halfDist := HalfDistance(vias, spacing, pitch)

		viaA, viaB, err := PlaceVias(from, dir, halfDist, legal)
		if err != nil {
			return Result{}, err
		}

		shoulders, err = spliceTransition(shoulders, from.Z, to.Z, viaA, viaB)
		if err != nil {
			return Result{}, err
		}
	}

	return Result{Shoulders: shoulders}, nil
}

// spliceTransition locates the matching layer transition on each shoulder
// path, matches the two proposed vias onto the two shoulders, and splices
// each via into its assigned shoulder path.
func spliceTransition(shoulders ShoulderPair, fromLayer, toLayer int, viaA, viaB geom.Coordinate) (ShoulderPair, error) {
	idx1, err := FindLayerTransition(shoulders.A, viaA, fromLayer, toLayer)
	if err != nil {
		return shoulders, err
	}
	idx2, err := FindLayerTransition(shoulders.B, viaB, fromLayer, toLayer)
	if err != nil {
		return shoulders, err
	}

	assignment := MatchVias(viaA, viaB,
		shoulders.A[idx1], shoulders.A[idx1+1],
		shoulders.B[idx2], shoulders.B[idx2+1])

	if assignment.AToShoulder1 {
		shoulders.A = Splice(shoulders.A, idx1, viaA)
		shoulders.B = Splice(shoulders.B, idx2, viaB)
	} else {
		shoulders.A = Splice(shoulders.A, idx1, viaB)
		shoulders.B = Splice(shoulders.B, idx2, viaA)
	}

	return shoulders, nil
}
