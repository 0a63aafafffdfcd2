package congestion

import (
	"errors"
	"fmt"

	"github.com/acorn-eda/acorn/contiguity"
	"github.com/acorn-eda/acorn/designrule"
	"github.com/acorn-eda/acorn/geom"
	"github.com/acorn-eda/acorn/gridmodel"
)

// ErrUnknownDesignRuleSet is returned when Deposit encounters a cell whose
// DesignRuleSet has no entry in the catalogue.
var ErrUnknownDesignRuleSet = errors.New("congestion: cell references an unconfigured design-rule set")

// SelfRepellentFraction is the extra congestion (on top of the base
// traversal weight) deposited only at a path's own centerline cells, per
// spec.md section 4.4's "self-repellent" note: without it a path is free
// to re-route directly on top of its own prior shape every iteration,
// which never converges.
const SelfRepellentFraction = 0.10

// Deposit adds traversalWeight (in hundredths of a traversal, see
// gridmodel.CongestionEntry) to every cell within the (subset, shapeType)
// congestion radius of each step of a dense path, plus an additional
// SelfRepellentFraction at the step's own cell. pathNum identifies the
// owning path/net for later evaporation and DRC attribution.
//
// Radius expansion only searches within the step's own layer: vias
// already appear as their own Step with the via's own shape type, so
// cross-layer spread is never needed here.
func Deposit(grid *gridmodel.CellGrid, cat *designrule.Catalogue, dense []contiguity.Step, pathNum, subsetID int, traversalWeight int32) error {
	for _, step := range dense {
		if err := depositStep(grid, cat, step, pathNum, subsetID, traversalWeight); err != nil {
			return err
		}
	}

	return nil
}

func depositStep(grid *gridmodel.CellGrid, cat *designrule.Catalogue, step contiguity.Step, pathNum, subsetID int, traversalWeight int32) error {
	center := grid.MustAt(step.Coord)
	drs := cat.Sets[center.DesignRuleSet]
	if drs == nil {
		return fmt.Errorf("congestion: cell %s design-rule set %d: %w", step.Coord, center.DesignRuleSet, ErrUnknownDesignRuleSet)
	}

	selfIdx := designrule.CombinedIndex(center.DesignRuleSet, subsetID, step.Shape)
	radius, err := cat.CongRadius.At(selfIdx, selfIdx)
	if err != nil {
		return err
	}

	r := int(radius) + 1
	rsq := radius * radius
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if float64(dx*dx+dy*dy) > rsq {
				continue
			}
			n := geom.Coordinate{X: step.Coord.X + dx, Y: step.Coord.Y + dy, Z: step.Coord.Z}
			if !grid.InBounds(n) {
				continue
			}
			if err := grid.MustAt(n).Congestion.Add(pathNum, subsetID, step.Shape, traversalWeight); err != nil {
				return err
			}
		}
	}

	extra := int32(float64(traversalWeight) * SelfRepellentFraction)
	if extra > 0 {
		if err := center.Congestion.Add(pathNum, subsetID, step.Shape, extra); err != nil {
			return err
		}
	}

	return nil
}
