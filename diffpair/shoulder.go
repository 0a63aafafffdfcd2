package diffpair

import (
	"math"

	"github.com/acorn-eda/acorn/geom"
)

// maxShoulderShiftAttempts bounds the symmetric legality search described
// in spec.md section 4.5: when the nominal +/- half-pitch offset lands one
// shoulder in a forbidden zone, both shoulders are shifted together along
// the normal, in this many 0.3-cell steps, before the vertex is declared
// infeasible.
const (
	maxShoulderShiftAttempts = 10
	shoulderShiftStep        = 0.3

	// maxShoulderTurnAngle is the largest angle, in radians, a new
	// shoulder segment may make with the pseudo-path tangent before it is
	// rejected as too sharp a turn.
	maxShoulderTurnAngle = 20 * math.Pi / 180
)

// Legality reports whether a candidate lateral point is usable as a
// shoulder vertex, and whether the straight segment from a pseudo-path
// vertex to a candidate shoulder point would cross a pin-swap zone.
type Legality interface {
	Walkable(c geom.Coordinate) bool
	CrossesPinSwap(from, to geom.Coordinate) bool
}

// ShoulderPair is one layer's two parallel diff-pair shoulder paths,
// synthesized from a single pseudo-net path.
type ShoulderPair struct {
	A, B []geom.Coordinate
}

// Project synthesizes the two shoulder paths for a pseudo-path, offsetting
// each vertex by halfPitch along the local normal. Polarity (which side is
// "A") persists from one vertex to the next and only flips when the local
// normal rotates by more than 90 degrees, matching a pseudo-path that
// curves back on itself rather than an arbitrary alternation.
func Project(pseudoPath []geom.Coordinate, halfPitch float64, legal Legality) (ShoulderPair, error) {
	if len(pseudoPath) < 2 {
		return ShoulderPair{}, ErrEmptyPseudoPath
	}

	var out ShoulderPair
	var prevNormal point2
	havePrevNormal := false
	var prevTangent point2

	for i, vertex := range pseudoPath {
		tangent, ok := fitTangent(pseudoPath, i)
		if !ok {
			tangent = prevTangent
		}
		normal := perpendicular(tangent)

		if havePrevNormal && dot(normal, prevNormal) < 0 {
			normal = scale(normal, -1)
		}
		prevNormal = normal
		havePrevNormal = true
		prevTangent = tangent

		aCand, bCand, ok := findLegalShoulderOffset(vertex, normal, halfPitch, legal)
		if !ok {
			return ShoulderPair{}, ErrShoulderInfeasible
		}

		aCoord, err := round(aCand, vertex.Z)
		if err != nil {
			return ShoulderPair{}, err
		}
		bCoord, err := round(bCand, vertex.Z)
		if err != nil {
			return ShoulderPair{}, err
		}

		if legal.CrossesPinSwap(vertex, aCoord) || legal.CrossesPinSwap(vertex, bCoord) {
			// Drop this vertex from both shoulders rather than routing a
			// segment across a pin-swap zone.
			continue
		}

		if len(out.A) > 0 && !withinTurnAngle(out.A[len(out.A)-1], aCoord, tangent) {
			out.A = out.A[:len(out.A)-1]
			out.B = out.B[:len(out.B)-1]
			continue
		}

		out.A = append(out.A, aCoord)
		out.B = append(out.B, bCoord)
	}

	if len(out.A) < 2 {
		return ShoulderPair{}, ErrShoulderInfeasible
	}

	return out, nil
}

// findLegalShoulderOffset returns the first (A,B) continuous-space pair,
// in increasing shift magnitude, where both points are walkable.
func findLegalShoulderOffset(vertex geom.Coordinate, normal point2, halfPitch float64, legal Legality) (point2, point2, bool) {
	base := fromCoordinate(vertex)

	try := func(shift float64) (point2, point2, bool) {
		a := add(base, scale(normal, halfPitch+shift))
		b := add(base, scale(normal, -halfPitch+shift))
		aCoord, errA := round(a, vertex.Z)
		bCoord, errB := round(b, vertex.Z)
		if errA != nil || errB != nil {
			return point2{}, point2{}, false
		}
		if legal.Walkable(aCoord) && legal.Walkable(bCoord) {
			return a, b, true
		}

		return point2{}, point2{}, false
	}

	if a, b, ok := try(0); ok {
		return a, b, true
	}

	for k := 1; k <= maxShoulderShiftAttempts; k++ {
		shift := shoulderShiftStep * float64(k)
		if a, b, ok := try(shift); ok {
			return a, b, true
		}
		if a, b, ok := try(-shift); ok {
			return a, b, true
		}
	}

	return point2{}, point2{}, false
}

// withinTurnAngle reports whether the segment from prev to candidate makes
// an angle of at most maxShoulderTurnAngle with tangent.
func withinTurnAngle(prev, candidate geom.Coordinate, tangent point2) bool {
	seg, ok := normalize(sub(fromCoordinate(candidate), fromCoordinate(prev)))
	if !ok {
		return true
	}
	cosAngle := dot(seg, tangent)
	// Numerical clamp: dot of two unit vectors can drift slightly outside
	// [-1,1].
	if cosAngle > 1 {
		cosAngle = 1
	} else if cosAngle < -1 {
		cosAngle = -1
	}

	return math.Acos(cosAngle) <= maxShoulderTurnAngle
}
