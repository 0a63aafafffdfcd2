package setup

import (
	"github.com/acorn-eda/acorn/designrule"
	"github.com/acorn-eda/acorn/geom"
)

// InputValues is the parsed configuration setup.Build consumes: grid
// dimensions, the cell size used to convert micron-space zone geometry
// into cell coordinates, the design-rule catalogue, and the zone lists
// that get rasterized onto the grid (spec.md section 2).
type InputValues struct {
	Width, Height, Layers int

	// CellSizeMicrons converts a geom.Shape's micron-space coordinates
	// into cell-grid coordinates: cellCoord = micronCoord / CellSizeMicrons.
	CellSizeMicrons float64

	Catalogue *designrule.Catalogue

	// UniversalRepellentProximityCells is the lateral radius (in cells)
	// around every hard-barrier cell that gets seeded with the universal
	// repellent before iteration 0 (spec.md section 4.2's "never
	// evaporated" congestion floor).
	UniversalRepellentProximityCells float64
	// UniversalRepellentWeight is the traversal weight deposited at each
	// seeded cell, in the same hundredths-of-a-traversal units
	// gridmodel.CongestionList.Add expects.
	UniversalRepellentWeight int32

	Barriers    []BarrierZone
	DesignRules []DesignRuleZone
	CostZones   []CostZone
	SwapZones   []SwapZone

	// Nets lists every net the router will negotiate a path for (spec.md
	// section 6's "list of nets (name, start/end microns, start/end
	// layer, optional diff-pair partner, optional rule name)"). A net's
	// position in this slice is also its router.Net.PathNum.
	Nets []NetSpec
}

// NetSpec is one declared net: its terminals in micron space, which
// design-rule subset it routes with, and (for one physical net of a
// declared diff pair) a back-reference to its partner.
type NetSpec struct {
	Name string

	StartXMicrons, StartYMicrons float64
	StartLayer                   int
	EndXMicrons, EndYMicrons     float64
	EndLayer                     int

	DesignRuleSetID int
	SubsetID        int
	TraversalWeight int32

	// DiffPairPartner is the index into InputValues.Nets of this net's
	// paired physical net, or -1 if this net is not part of a diff pair.
	// Exactly one of a pair's two entries must carry PseudoSubsetID; the
	// pair may be declared in either index order.
	DiffPairPartner int

	// PseudoSubsetID names the IsPseudoNet-flagged subset (within
	// DesignRuleSetID) that the pair's synthesized pseudo-net routes
	// with, supplying its routing-direction mask and
	// Subset.DiffPairPitchCells. Only meaningful when DiffPairPartner is
	// set on this entry.
	PseudoSubsetID int
}

// BarrierZone rasterizes a hard keep-out: every cell whose center falls
// inside Shape, on any of Layers, becomes unwalkable for every shape type
// listed in Shapes.
type BarrierZone struct {
	Shape  geom.Shape
	Layers []int
	Shapes []designrule.ShapeType
}

// DesignRuleZone assigns a design-rule set to every cell inside Shape on
// the given layers, overriding the grid's default (set 0).
type DesignRuleZone struct {
	Shape  geom.Shape
	Layers []int
	SetID  int
}

// CostZone overlays a cost-multiplier index for one move category
// (Category: Trace selects the lateral-move multiplier, ViaUp/ViaDown
// select the corresponding via multiplier) over every cell inside Shape.
type CostZone struct {
	Shape           geom.Shape
	Layers          []int
	Category        designrule.ShapeType
	MultiplierIndex int
}

// SwapZone marks every cell inside Shape, on the given layers, as
// belonging to pin-swap zone ZoneID (1..255; 0 means "not in a zone" and
// is never produced by a SwapZone entry).
type SwapZone struct {
	Shape  geom.Shape
	Layers []int
	ZoneID int
}
