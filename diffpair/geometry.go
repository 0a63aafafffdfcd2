package diffpair

import (
	"math"

	"github.com/acorn-eda/acorn/geom"
)

// point2 is a lateral (X,Y) pair in continuous (non-grid-snapped) space,
// used internally while projecting shoulder offsets. It deliberately
// leaves the layer (Z) to the caller: diff-pair shoulder projection works
// one per-layer pseudo-path segment at a time.
type point2 struct {
	X, Y float64
}

func fromCoordinate(c geom.Coordinate) point2 {
	return point2{X: float64(c.X), Y: float64(c.Y)}
}

// round snaps a continuous point back to an integer grid Coordinate at
// layer z, returning an error rather than panicking if the result falls
// outside the representable lateral range — unlike geom.New, an
// out-of-range shoulder offset here is an ordinary routing failure, not a
// programming error.
func round(p point2, z int) (geom.Coordinate, error) {
	x := int(math.Round(p.X))
	y := int(math.Round(p.Y))
	if x < 0 || x > geom.MaxLateral || y < 0 || y > geom.MaxLateral {
		return geom.Coordinate{}, ErrShoulderInfeasible
	}

	return geom.New(x, y, z), nil
}

func sub(a, b point2) point2    { return point2{X: a.X - b.X, Y: a.Y - b.Y} }
func add(a, b point2) point2    { return point2{X: a.X + b.X, Y: a.Y + b.Y} }
func scale(a point2, s float64) point2 { return point2{X: a.X * s, Y: a.Y * s} }
func dot(a, b point2) float64   { return a.X*b.X + a.Y*b.Y }
func length(a point2) float64   { return math.Sqrt(a.X*a.X + a.Y*a.Y) }

// normalize returns the unit vector along a, and false if a is (near) zero.
func normalize(a point2) (point2, bool) {
	l := length(a)
	if l < 1e-9 {
		return point2{}, false
	}

	return point2{X: a.X / l, Y: a.Y / l}, true
}

// perpendicular rotates a unit vector 90 degrees counter-clockwise.
func perpendicular(a point2) point2 {
	return point2{X: -a.Y, Y: a.X}
}

// fitTangent estimates the unit tangent direction of path at index i using
// up to three consecutive vertices (i-1, i, i+1). With three points
// available it fits a quadratic (a parabola, in whichever of x(y) or y(x)
// form keeps the fit well-conditioned) through them and differentiates at
// the middle vertex; with only two points it falls back to the straight
// chord between them. This mirrors the spec's "parabola where possible,
// line at the ends" rule for a pseudo-path's local direction.
func fitTangent(path []geom.Coordinate, i int) (point2, bool) {
	n := len(path)
	if n < 2 {
		return point2{}, false
	}

	switch {
	case i > 0 && i < n-1:
		return fitQuadraticTangent(fromCoordinate(path[i-1]), fromCoordinate(path[i]), fromCoordinate(path[i+1]))
	case i == 0:
		return normalize(sub(fromCoordinate(path[1]), fromCoordinate(path[0])))
	default: // i == n-1
		return normalize(sub(fromCoordinate(path[n-1]), fromCoordinate(path[n-2])))
	}
}

// fitQuadraticTangent fits a parabola through p0, p1, p2 and returns the
// unit tangent at p1. It picks whichever axis varies more as the
// independent variable, so a near-vertical run of points (where x(y) is
// well defined but y(x) is not) is still fit cleanly.
func fitQuadraticTangent(p0, p1, p2 point2) (point2, bool) {
	dxSpan := math.Abs(p2.X - p0.X)
	dySpan := math.Abs(p2.Y - p0.Y)

	if dxSpan >= dySpan {
		deriv, ok := quadraticDerivative(p0.X, p0.Y, p1.X, p1.Y, p2.X, p2.Y, p1.X)
		if !ok {
			return normalize(sub(p2, p0))
		}

		return normalize(point2{X: 1, Y: deriv})
	}

	deriv, ok := quadraticDerivative(p0.Y, p0.X, p1.Y, p1.X, p2.Y, p2.X, p1.Y)
	if !ok {
		return normalize(sub(p2, p0))
	}

	return normalize(point2{X: deriv, Y: 1})
}

// quadraticDerivative fits y = a*x^2 + b*x + c through three (x,y) pairs
// and returns dy/dx at x = at. Returns false if the three x-values are not
// distinct (the fit is singular).
func quadraticDerivative(x0, y0, x1, y1, x2, y2, at float64) (float64, bool) {
	// Lagrange-basis derivative: differentiate the unique interpolating
	// polynomial directly, avoiding an explicit 3x3 solve.
	d0 := (x0 - x1) * (x0 - x2)
	d1 := (x1 - x0) * (x1 - x2)
	d2 := (x2 - x0) * (x2 - x1)
	if math.Abs(d0) < 1e-9 || math.Abs(d1) < 1e-9 || math.Abs(d2) < 1e-9 {
		return 0, false
	}

	l0 := ((at - x1) + (at - x2)) / d0
	l1 := ((at - x0) + (at - x2)) / d1
	l2 := ((at - x0) + (at - x1)) / d2

	return y0*l0 + y1*l1 + y2*l2, true
}
