package geom

import "errors"

// ErrUnknownShapeKind is returned when a Shape carries a Kind this package
// does not recognize.
var ErrUnknownShapeKind = errors.New("geom: unknown shape kind")

// ShapeKind enumerates the shape alphabet InputValues uses for keep-out
// regions, pin-swap regions, design-rule zones, and cost-multiplier zones.
// Every primitive is described with up to six float64 parameters so the
// parser-side representation (out of scope for this module) can stay
// uniform across kinds.
type ShapeKind int

const (
	// Rect is an axis-aligned rectangle: params = [minX, minY, maxX, maxY].
	Rect ShapeKind = iota
	// Tri is a triangle: params = [x0, y0, x1, y1, x2, y2].
	Tri
	// Circ is a circle: params = [centerX, centerY, radius].
	Circ
)

// Shape is one geometric primitive in microns, in the coordinate space of
// InputValues (before conversion to cell units).
type Shape struct {
	Kind   ShapeKind
	Params [6]float64
}

// NewRect builds a rectangle shape from two opposite corners, normalizing
// so Params always holds (minX, minY, maxX, maxY).
func NewRect(x0, y0, x1, y1 float64) Shape {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}

	return Shape{Kind: Rect, Params: [6]float64{x0, y0, x1, y1}}
}

// NewTri builds a triangle shape from its three vertices.
func NewTri(x0, y0, x1, y1, x2, y2 float64) Shape {
	return Shape{Kind: Tri, Params: [6]float64{x0, y0, x1, y1, x2, y2}}
}

// NewCirc builds a circle shape from a center and radius.
func NewCirc(cx, cy, r float64) Shape {
	return Shape{Kind: Circ, Params: [6]float64{cx, cy, r}}
}

// Contains reports whether the point (x,y) lies within the shape,
// inclusive of the boundary. Returns ErrUnknownShapeKind for a malformed
// Shape.Kind (a configuration error the caller should treat as fatal at
// setup time, per spec.md section 7).
func (s Shape) Contains(x, y float64) (bool, error) {
	switch s.Kind {
	case Rect:
		minX, minY, maxX, maxY := s.Params[0], s.Params[1], s.Params[2], s.Params[3]

		return x >= minX && x <= maxX && y >= minY && y <= maxY, nil
	case Circ:
		cx, cy, r := s.Params[0], s.Params[1], s.Params[2]
		dx, dy := x-cx, y-cy

		return dx*dx+dy*dy <= r*r, nil
	case Tri:
		return triContains(s.Params, x, y), nil
	default:
		return false, ErrUnknownShapeKind
	}
}

// BoundingBox returns the axis-aligned bounding box of s as (minX, minY,
// maxX, maxY), for restricting rasterization scans to the relevant cells.
func (s Shape) BoundingBox() (minX, minY, maxX, maxY float64) {
	switch s.Kind {
	case Rect:
		return s.Params[0], s.Params[1], s.Params[2], s.Params[3]
	case Circ:
		cx, cy, r := s.Params[0], s.Params[1], s.Params[2]

		return cx - r, cy - r, cx + r, cy + r
	case Tri:
		minX := min3(s.Params[0], s.Params[2], s.Params[4])
		minY := min3(s.Params[1], s.Params[3], s.Params[5])
		maxX := max3(s.Params[0], s.Params[2], s.Params[4])
		maxY := max3(s.Params[1], s.Params[3], s.Params[5])

		return minX, minY, maxX, maxY
	default:
		return 0, 0, 0, 0
	}
}

// triContains uses the standard sign-of-cross-product barycentric test.
func triContains(p [6]float64, px, py float64) bool {
	x0, y0, x1, y1, x2, y2 := p[0], p[1], p[2], p[3], p[4], p[5]

	d1 := sign(px, py, x0, y0, x1, y1)
	d2 := sign(px, py, x1, y1, x2, y2)
	d3 := sign(px, py, x2, y2, x0, y0)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0

	return !(hasNeg && hasPos)
}

func sign(px, py, ax, ay, bx, by float64) float64 {
	return (px-bx)*(ay-by) - (ax-bx)*(py-by)
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}

	return m
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}

	return m
}
