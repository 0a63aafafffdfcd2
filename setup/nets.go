package setup

import (
	"fmt"

	"github.com/acorn-eda/acorn/designrule"
	"github.com/acorn-eda/acorn/diffpair"
	"github.com/acorn-eda/acorn/geom"
	"github.com/acorn-eda/acorn/gridmodel"
	"github.com/acorn-eda/acorn/router"
)

// BuildNets turns InputValues.Nets into the router.Net slice Build's grid
// and catalogue route against: ordinary nets map one-to-one onto
// router.Net, while each declared diff pair additionally synthesizes a
// pseudo-net (spec.md section 4.5) whose PathNum is appended after every
// declared net's own index, so a pseudo-net's PathNum never collides with
// a user-declared one.
func BuildNets(iv InputValues, cat *designrule.Catalogue) ([]router.Net, error) {
	if len(iv.Nets) > gridmodel.MaxTraversingPaths {
		return nil, fmt.Errorf("%w: %d nets declared, limit %d", ErrTooManyNets, len(iv.Nets), gridmodel.MaxTraversingPaths)
	}

	nets := make([]router.Net, 0, len(iv.Nets))
	handled := make([]bool, len(iv.Nets))
	nextPseudoPath := len(iv.Nets)

	for i, spec := range iv.Nets {
		if handled[i] {
			continue
		}

		if spec.DiffPairPartner < 0 {
			nets = append(nets, router.NewNet(i, spec.SubsetID, micronCoord(iv.CellSizeMicrons, spec.StartXMicrons, spec.StartYMicrons, spec.StartLayer), micronCoord(iv.CellSizeMicrons, spec.EndXMicrons, spec.EndYMicrons, spec.EndLayer), spec.TraversalWeight))
			handled[i] = true

			continue
		}

		j := spec.DiffPairPartner
		if j < 0 || j >= len(iv.Nets) || iv.Nets[j].DiffPairPartner != i {
			return nil, fmt.Errorf("%w: net %d (%q) names partner %d", ErrMissingDiffPairPartner, i, spec.Name, j)
		}
		partner := iv.Nets[j]

		pseudoSpec := spec
		if pseudoSpec.PseudoSubsetID == 0 && partner.PseudoSubsetID != 0 {
			pseudoSpec = partner
		}

		pseudoSubset, err := resolveSubset(cat, pseudoSpec.DesignRuleSetID, pseudoSpec.PseudoSubsetID)
		if err != nil {
			return nil, fmt.Errorf("setup: diff pair %d/%d: resolving pseudo subset: %w", i, j, err)
		}
		subsetA, err := resolveSubset(cat, spec.DesignRuleSetID, spec.SubsetID)
		if err != nil {
			return nil, fmt.Errorf("setup: net %d (%q): resolving subset: %w", i, spec.Name, err)
		}
		subsetB, err := resolveSubset(cat, partner.DesignRuleSetID, partner.SubsetID)
		if err != nil {
			return nil, fmt.Errorf("setup: net %d (%q): resolving subset: %w", j, partner.Name, err)
		}

		startA := micronCoord(iv.CellSizeMicrons, spec.StartXMicrons, spec.StartYMicrons, spec.StartLayer)
		startB := micronCoord(iv.CellSizeMicrons, partner.StartXMicrons, partner.StartYMicrons, partner.StartLayer)
		endA := micronCoord(iv.CellSizeMicrons, spec.EndXMicrons, spec.EndYMicrons, spec.EndLayer)
		endB := micronCoord(iv.CellSizeMicrons, partner.EndXMicrons, partner.EndYMicrons, partner.EndLayer)

		start, end, err := diffpair.PseudoEndpoints(startA, startB, endA, endB)
		if err != nil {
			return nil, fmt.Errorf("setup: diff pair %d/%d: %w", i, j, err)
		}

		pseudoPath := nextPseudoPath
		nextPseudoPath++

		pseudo := router.NewPseudoNet(pseudoPath, pseudoSubset.ID, start, end, spec.TraversalWeight, router.DiffPairSynthesis{
			PartnerAPath:   i,
			PartnerBPath:   j,
			PartnerASubset: subsetA,
			PartnerBSubset: subsetB,
			HalfPitchCells: pseudoSubset.DiffPairPitchCells / 2,
		})

		nets = append(nets,
			pseudo,
			router.NewDiffPairPartnerNet(i, spec.SubsetID, pseudoPath, spec.TraversalWeight),
			router.NewDiffPairPartnerNet(j, partner.SubsetID, pseudoPath, partner.TraversalWeight),
		)
		handled[i] = true
		handled[j] = true
	}

	return nets, nil
}

func resolveSubset(cat *designrule.Catalogue, setID, subsetID int) (designrule.Subset, error) {
	drs := cat.Sets[setID]
	if drs == nil {
		return designrule.Subset{}, fmt.Errorf("design-rule set %d not configured", setID)
	}

	return drs.Subset(subsetID)
}

// micronCoord converts a micron-space terminal into cell coordinates,
// the same cellCoord = micronCoord / CellSizeMicrons conversion rasterize
// applies to zone geometry.
func micronCoord(cellSizeMicrons, xMicrons, yMicrons float64, layer int) geom.Coordinate {
	return geom.Coordinate{X: int(xMicrons / cellSizeMicrons), Y: int(yMicrons / cellSizeMicrons), Z: layer}
}
