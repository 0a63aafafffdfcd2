package diffpair

import "github.com/acorn-eda/acorn/geom"

// PseudoEndpoints computes the start and end vertices of a diff-pair's
// pseudo-net: the lateral midpoint between each pair of paired terminals
// (a0/b0 at one end of the pair, a1/b1 at the other), snapped to the
// integer grid. Both terminals of a pair must sit on the same layer; a
// mismatch is a configuration error the caller should surface before
// routing begins, not a per-iteration routing failure.
func PseudoEndpoints(a0, b0, a1, b1 geom.Coordinate) (start, end geom.Coordinate, err error) {
	if a0.Z != b0.Z {
		return geom.Coordinate{}, geom.Coordinate{}, ErrLayerMismatch
	}
	if a1.Z != b1.Z {
		return geom.Coordinate{}, geom.Coordinate{}, ErrLayerMismatch
	}

	start, err = round(midpoint(a0, b0), a0.Z)
	if err != nil {
		return geom.Coordinate{}, geom.Coordinate{}, err
	}
	end, err = round(midpoint(a1, b1), a1.Z)
	if err != nil {
		return geom.Coordinate{}, geom.Coordinate{}, err
	}

	return start, end, nil
}

func midpoint(a, b geom.Coordinate) point2 {
	return scale(add(fromCoordinate(a), fromCoordinate(b)), 0.5)
}
