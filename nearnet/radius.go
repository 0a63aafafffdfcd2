package nearnet

import (
	"github.com/acorn-eda/acorn/designrule"
	"github.com/acorn-eda/acorn/geom"
	"github.com/acorn-eda/acorn/gridmodel"
)

// MaxInteractionRadius computes, for each layer, the largest self-
// interaction DRC radius any (design-rule set, subset, shape-type)
// combination present on that layer can require (spec.md section 4.2's
// "maxInteractionRadiusCells"). Mark uses this as the flood bound so the
// near_a_net pass never under-covers a cell DRC would otherwise need to
// inspect.
func MaxInteractionRadius(grid *gridmodel.CellGrid, cat *designrule.Catalogue) []float64 {
	radii := make([]float64, grid.Layers)

	grid.ForEachCoordinate(func(c geom.Coordinate) {
		cell := grid.MustAt(c)
		drs := cat.Sets[cell.DesignRuleSet]
		if drs == nil {
			return
		}
		for subID := range drs.Subsets {
			for shape := designrule.ShapeType(0); shape < designrule.NumShapeTypes; shape++ {
				idx := designrule.CombinedIndex(cell.DesignRuleSet, subID, shape)
				r, err := cat.DRCRadius.At(idx, idx)
				if err != nil {
					continue
				}
				if r > radii[c.Z] {
					radii[c.Z] = r
				}
			}
		}
	})

	return radii
}
