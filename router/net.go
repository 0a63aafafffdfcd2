package router

import (
	"github.com/acorn-eda/acorn/designrule"
	"github.com/acorn-eda/acorn/geom"
	"github.com/acorn-eda/acorn/pathfinder"
)

// DiffPairSynthesis configures the shoulder/via synthesis (spec.md section
// 4.5, component C7) that a pseudo-net's routed path drives once per
// iteration (spec.md section 4.7 step 4). It is set only on the
// pseudo-net's own Net entry; PartnerAPath/PartnerBPath name the two
// physical Net entries (registered separately, with PartnerOfPseudo
// pointing back at this pseudo-net's PathNum) whose geometry for the
// iteration comes from this synthesis rather than from an independent
// findPath call -- spec.md section 4.7 step 3 is explicit that "diff-pair
// partners are not routed in this phase -- only the pseudo-net is".
type DiffPairSynthesis struct {
	PartnerAPath, PartnerBPath     int
	PartnerASubset, PartnerBSubset designrule.Subset

	// HalfPitchCells is the perpendicular offset each shoulder is
	// projected at from the pseudo-path centerline.
	HalfPitchCells float64
}

// Net is one physical or pseudo net the router negotiates a path for each
// iteration: its terminals, which design-rule subset it routes with, and
// the traversal weight its deposits carry.
type Net struct {
	// PathNum uniquely identifies this net for congestion/DRC attribution
	// and the metrics store's per-path breakdown. Must be >= 0;
	// congestion.UniversalRepellentPath (-1) is reserved.
	PathNum int

	SubsetID int
	Start    geom.Coordinate
	End      geom.Coordinate

	// TraversalWeight is the congestion deposited per traversal, in
	// hundredths (gridmodel.CongestionEntry units).
	TraversalWeight int32

	// DiffPairPartnerSubset marks this net as a diff-pair pseudo-net (or
	// physical partner) that should see foreign congestion scaled by the
	// diff-pair via/trace multipliers. -1 (the zero value via NewNet)
	// means "not a diff-pair move".
	DiffPairPartnerSubset int

	// Synthesis is non-nil only on a pseudo-net's own Net entry; it names
	// the two physical partners and the geometric parameters
	// diffpair.Synthesize needs once this net's own path is found.
	Synthesis *DiffPairSynthesis

	// PartnerOfPseudo is the PathNum of the pseudo-net whose synthesis
	// this net's path is projected from, or -1 for an ordinary net
	// (including the pseudo-net itself, which is routed normally).
	// routeAll skips findPath entirely for any net with
	// PartnerOfPseudo >= 0.
	PartnerOfPseudo int

	// Restriction optionally bounds this net's search (spec.md section
	// 4.1's routing restriction); nil means unrestricted.
	Restriction *pathfinder.RoutingRestriction
}

// NewNet constructs a Net with DiffPairPartnerSubset defaulted to "not a
// diff-pair move", matching pathfinder's own config default.
func NewNet(pathNum, subsetID int, start, end geom.Coordinate, traversalWeight int32) Net {
	return Net{
		PathNum:               pathNum,
		SubsetID:              subsetID,
		Start:                 start,
		End:                   end,
		TraversalWeight:       traversalWeight,
		DiffPairPartnerSubset: -1,
		PartnerOfPseudo:       -1,
	}
}

// NewPseudoNet constructs the Net entry for a diff-pair's pseudo-net:
// routed normally by findPath (start/end at the pair's midpoint
// terminals, per diffpair.PseudoEndpoints), but additionally carrying the
// synthesis configuration that produces its two physical partners'
// geometry once routed.
func NewPseudoNet(pathNum, subsetID int, start, end geom.Coordinate, traversalWeight int32, synth DiffPairSynthesis) Net {
	n := NewNet(pathNum, subsetID, start, end, traversalWeight)
	n.DiffPairPartnerSubset = synth.PartnerASubset.ID
	n.Synthesis = &synth

	return n
}

// NewDiffPairPartnerNet constructs the Net entry for one physical partner
// of a diff pair: it carries its own PathNum/SubsetID for congestion and
// DRC attribution, but no independent terminals -- routeAll skips it, and
// its path for the iteration comes from pseudoPathNum's synthesized
// shoulder geometry.
func NewDiffPairPartnerNet(pathNum, subsetID, pseudoPathNum int, traversalWeight int32) Net {
	n := NewNet(pathNum, subsetID, geom.Coordinate{}, geom.Coordinate{}, traversalWeight)
	n.PartnerOfPseudo = pseudoPathNum

	return n
}

// routeOptions builds the pathfinder.Option list for one net, given the
// router's resolved cost/congestion configuration and this iteration's
// per-path/per-map DRC-clean fractions.
func (n Net) routeOptions(cfg config, pathDRCFraction, mapDRCFraction float64, jitter func() float64) []pathfinder.Option {
	opts := []pathfinder.Option{
		pathfinder.WithCosts(cfg.costs),
		pathfinder.WithCongestionMultipliers(cfg.congestion),
		pathfinder.WithDRCFractions(pathDRCFraction, mapDRCFraction),
	}
	if n.DiffPairPartnerSubset >= 0 {
		opts = append(opts, pathfinder.WithDiffPairPartnerSubset(n.DiffPairPartnerSubset))
	}
	if jitter != nil {
		opts = append(opts, pathfinder.WithRandomCongestionDelta(jitter))
	}

	return opts
}

// viaCount counts ViaUp/ViaDown steps in a dense path, for metrics.
func viaCount(dense []designrule.ShapeType) int {
	n := 0
	for _, s := range dense {
		if s == designrule.ViaUp || s == designrule.ViaDown {
			n++
		}
	}

	return n
}
