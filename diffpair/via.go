package diffpair

import (
	"math"

	"github.com/acorn-eda/acorn/geom"
)

// viaRadialSearchSteps is the number of radii sampled between the minimum
// (half the nominal via-to-via distance) and maximum (1.2x the nominal
// distance) search bound, per spec.md section 4.5's "bounded radial
// search ... from half-distance to about 1.2x" rule.
const viaRadialSearchSteps = 8

// ViaDiameters holds the physical widths of the two candidate via
// barrels (own net's via going up, own net's via going down the stack)
// used to derive the minimum center-to-center via spacing.
type ViaDiameters struct {
	Up, Down float64
}

// Spacings holds the design-rule clearances that bound how close the two
// diff-pair vias (and the trace leaving them) may legally sit.
type Spacings struct {
	UpToUp, UpToTrace, DownToDown, DownToTrace float64
}

// HalfDistance computes the half center-to-center spacing the two
// diff-pair vias must keep, per spec.md section 4.5: the largest of the
// five candidate clearances (up-via to up-via, up-via to trace, down-via
// to down-via, down-via to trace, and the pair's own nominal pitch).
func HalfDistance(vias ViaDiameters, spacing Spacings, pairPitch float64) float64 {
	candidates := [5]float64{
		0.5 * (vias.Up + spacing.UpToUp),
		0.5 * (vias.Up + spacing.UpToTrace),
		0.5 * (vias.Down + spacing.DownToDown),
		0.5 * (vias.Down + spacing.DownToTrace),
		0.5 * pairPitch,
	}

	max := candidates[0]
	for _, c := range candidates[1:] {
		if c > max {
			max = c
		}
	}

	return max
}

// Perpendicular picks the direction along which the two diff-pair vias
// are offset from the pseudo-path's via-stack vertex: the bisector of the
// incoming and outgoing tangents when both exist, or a 90-degree rotation
// of whichever single tangent is available at a path endpoint.
func Perpendicular(tangentBefore, tangentAfter point2, hasBefore, hasAfter bool) (point2, bool) {
	switch {
	case hasBefore && hasAfter:
		bis, ok := normalize(add(tangentBefore, tangentAfter))
		if !ok {
			// Tangents point exactly opposite: any perpendicular works,
			// fall back to rotating the incoming one.
			return perpendicular(tangentBefore), true
		}

		return perpendicular(bis), true
	case hasBefore:
		return perpendicular(tangentBefore), true
	case hasAfter:
		return perpendicular(tangentAfter), true
	default:
		return point2{}, false
	}
}

// PlaceVias searches for a legal pair of diff-pair via positions centered
// on vertex, offset +/- along dir. It samples radii between half and 1.2x
// halfDist (spec.md section 4.5's bounded radial search) and returns the
// first radius at which both candidates are walkable and respect pin-swap
// adjacency; ErrViaPlacementInfeasible if none qualify.
func PlaceVias(vertex geom.Coordinate, dir point2, halfDist float64, legal Legality) (geom.Coordinate, geom.Coordinate, error) {
	unit, ok := normalize(dir)
	if !ok {
		return geom.Coordinate{}, geom.Coordinate{}, ErrViaPlacementInfeasible
	}

	base := fromCoordinate(vertex)
	minR := 0.5 * halfDist
	maxR := 1.2 * halfDist

	for i := 0; i <= viaRadialSearchSteps; i++ {
		r := minR + (maxR-minR)*float64(i)/float64(viaRadialSearchSteps)

		aCoord, errA := round(add(base, scale(unit, r)), vertex.Z)
		bCoord, errB := round(add(base, scale(unit, -r)), vertex.Z)
		if errA != nil || errB != nil {
			continue
		}
		if !legal.Walkable(aCoord) || !legal.Walkable(bCoord) {
			continue
		}
		if legal.CrossesPinSwap(vertex, aCoord) || legal.CrossesPinSwap(vertex, bCoord) {
			continue
		}

		return aCoord, bCoord, nil
	}

	return geom.Coordinate{}, geom.Coordinate{}, ErrViaPlacementInfeasible
}

// distance is the plain Euclidean lateral distance between two
// Coordinates, ignoring layer — used by the matching step to score
// via/shoulder assignments.
func distance(a, b geom.Coordinate) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)

	return math.Sqrt(dx*dx + dy*dy)
}
