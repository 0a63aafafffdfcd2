package gridmodel

import (
	"github.com/acorn-eda/acorn/designrule"
	"github.com/acorn-eda/acorn/geom"
)

// CellGrid is the static 3-D arena of Cell records, row-major over
// (x, y, z) with x varying fastest — the same flat-slice discipline the
// lvlath matrix package uses for its Dense type, generalized from two
// dimensions to three.
type CellGrid struct {
	Width, Height, Layers int
	cells                 []Cell
}

// NewCellGrid allocates a width x height x layers grid of zero-valued cells.
func NewCellGrid(width, height, layers int) (*CellGrid, error) {
	if width <= 0 || height <= 0 || layers <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &CellGrid{
		Width:  width,
		Height: height,
		Layers: layers,
		cells:  make([]Cell, width*height*layers),
	}, nil
}

// InBounds reports whether c lies within the grid's declared dimensions.
func (g *CellGrid) InBounds(c geom.Coordinate) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height && c.Z >= 0 && c.Z < g.Layers
}

func (g *CellGrid) index(c geom.Coordinate) int {
	return (c.Z*g.Height+c.Y)*g.Width + c.X
}

// At returns a pointer to the cell at c, or ErrOutOfBounds.
func (g *CellGrid) At(c geom.Coordinate) (*Cell, error) {
	if !g.InBounds(c) {
		return nil, ErrOutOfBounds
	}

	return &g.cells[g.index(c)], nil
}

// MustAt is At without the error return, for hot paths that have already
// bounds-checked via InBounds (e.g. pathfinder's expansion loop).
func (g *CellGrid) MustAt(c geom.Coordinate) *Cell {
	return &g.cells[g.index(c)]
}

// NumCells returns the total number of cells in the grid (Width * Height * Layers),
// the size of the flat arena CellAtIndex addresses.
func (g *CellGrid) NumCells() int {
	return len(g.cells)
}

// CellAtIndex gives direct access to the flat cell arena by linear index,
// for components (congestion evaporation, DRC's near_a_net scan) that
// shard work by index rather than by coordinate.
func (g *CellGrid) CellAtIndex(i int) *Cell {
	return &g.cells[i]
}

// ForEachCoordinate visits every coordinate in the grid exactly once, in
// row-major (z, y, x) order — the deterministic traversal order spec.md
// section 5 requires for reproducible single-threaded phases.
func (g *CellGrid) ForEachCoordinate(fn func(geom.Coordinate)) {
	for z := 0; z < g.Layers; z++ {
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				fn(geom.Coordinate{X: x, Y: y, Z: z})
			}
		}
	}
}

// Step applies a single designrule move to c and reports whether the
// result lies within the grid. It does not check walkability — only
// bounds — mirroring the separation spec.md section 4.1 draws between
// "legal move" (bounds + direction masks) and "walkable" (barriers).
func (g *CellGrid) Step(c geom.Coordinate, move designrule.DirectionMask) (geom.Coordinate, bool) {
	dx, dy, dz := move.Delta()
	next := geom.Coordinate{X: c.X + dx, Y: c.Y + dy, Z: c.Z + dz}

	return next, g.InBounds(next)
}

// DeriveProximityMasks computes ForbiddenProximityBarrier and
// ForbiddenProximityPinSwap for every cell, per spec.md section 3:
// "barriers physically adjacent within the design-rule radius for a
// given (subset, shape-type) set the corresponding bit." For every
// (subset, shapeType) combination declared in the catalogue's design-rule
// set for a cell, it scans the bounding box of that pair's DRC radius
// and sets the bit if any neighbor is a hard barrier (respectively lies
// across a pin-swap-zone boundary from a non-swap-zone cell).
//
// This is an O(W*H*L*maxRadius^2) precomputation performed once at setup,
// not per iteration.
func (g *CellGrid) DeriveProximityMasks(cat *designrule.Catalogue) error {
	g.ForEachCoordinate(func(c geom.Coordinate) {
		cell := g.MustAt(c)
		drs := cat.Sets[cell.DesignRuleSet]
		if drs == nil {
			return
		}
		for subID, sub := range drs.Subsets {
			for shape := designrule.ShapeType(0); shape < designrule.NumShapeTypes; shape++ {
				selfIdx := designrule.CombinedIndex(cell.DesignRuleSet, subID, shape)
				radius, err := cat.DRCRadius.At(selfIdx, selfIdx)
				if err != nil {
					continue
				}
				if g.anyBarrierWithin(c, radius, shape) {
					cell.ForbiddenProximityBarrier |= 1 << uint(LocalIndex(subID, shape))
				}
				if g.anySwapBoundaryWithin(c, radius, cell.SwapZone) {
					cell.ForbiddenProximityPinSwap |= 1 << uint(LocalIndex(subID, shape))
				}
			}
		}
	})

	return nil
}

func (g *CellGrid) anyBarrierWithin(center geom.Coordinate, radius float64, shape designrule.ShapeType) bool {
	r := int(radius) + 1
	rsq := radius * radius
	for dz := -0; dz <= 0; dz++ { // proximity is evaluated within a layer; vias are handled at their own Z
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if float64(dx*dx+dy*dy) > rsq {
					continue
				}
				n := geom.Coordinate{X: center.X + dx, Y: center.Y + dy, Z: center.Z + dz}
				if !g.InBounds(n) {
					continue
				}
				if g.MustAt(n).Barrier(shape) {
					return true
				}
			}
		}
	}

	return false
}

func (g *CellGrid) anySwapBoundaryWithin(center geom.Coordinate, radius float64, selfZone int) bool {
	r := int(radius) + 1
	rsq := radius * radius
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if float64(dx*dx+dy*dy) > rsq {
				continue
			}
			n := geom.Coordinate{X: center.X + dx, Y: center.Y + dy, Z: center.Z}
			if !g.InBounds(n) {
				continue
			}
			if (g.MustAt(n).SwapZone != 0) != (selfZone != 0) {
				return true
			}
		}
	}

	return false
}
