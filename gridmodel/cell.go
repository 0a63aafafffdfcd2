package gridmodel

import "github.com/acorn-eda/acorn/designrule"

// PathCenterEntry flags that a path's centerline passes through a cell,
// for a given shape type. Like CongestionEntry, a cell holds at most one
// entry per (pathNum, shapeType) pair.
type PathCenterEntry struct {
	PathNum   int
	ShapeType designrule.ShapeType
}

// Cell is one (x,y,z) record in the routing grid: the static fields
// computed once by the setup package, and the dynamic fields mutated by
// congestion deposition/evaporation and the per-iteration DRC/nearnet
// passes.
type Cell struct {
	// --- static, read-only after setup ---

	// DesignRuleSet selects which designrule.DesignRuleSet this cell
	// belongs to (0..15).
	DesignRuleSet int

	// TraceCostMultiplierIndex, ViaUpCostMultiplierIndex, and
	// ViaDownCostMultiplierIndex index into the router's per-iteration
	// cost-multiplier tables (cost-zone overlays), keyed separately per
	// move category since a trace cost zone need not coincide with a via
	// cost zone.
	TraceCostMultiplierIndex   int
	ViaUpCostMultiplierIndex   int
	ViaDownCostMultiplierIndex int

	// SwapZone is 0 for "not in a pin-swap zone", else 1..255 identifying
	// the zone.
	SwapZone int

	// ForbiddenTraceBarrier, ForbiddenUpViaBarrier, and
	// ForbiddenDownViaBarrier mark this cell itself as an unwalkable hard
	// barrier for the corresponding shape type.
	ForbiddenTraceBarrier   bool
	ForbiddenUpViaBarrier   bool
	ForbiddenDownViaBarrier bool

	// ForbiddenProximityBarrier and ForbiddenProximityPinSwap are bitmasks
	// over localIndex(subset, shapeType) (see LocalIndex): bit set means
	// this cell is unwalkable for that (subset, shapeType) because it
	// lies within the design-rule radius of a hard barrier (respectively
	// a pin-swap-zone boundary). Derived once by DeriveProximityMasks.
	ForbiddenProximityBarrier uint64
	ForbiddenProximityPinSwap uint64

	// --- dynamic ---

	Congestion  CongestionList
	PathCenters CongestionList // reuses the same small-vector shape, keyed by (pathNum, 0, shapeType)

	// --- transient, cleared at the start of every iteration ---

	Explored bool
	NearANet bool
	DRCFlag  bool
}

// LocalIndex packs (subsetID, shapeType) into the bit position used by
// ForbiddenProximityBarrier/ForbiddenProximityPinSwap. designrule.MaxSubsets
// (16) times designrule.NumShapeTypes (3) is 48, comfortably inside the
// 64-bit mask.
func LocalIndex(subsetID int, shape designrule.ShapeType) int {
	return subsetID*designrule.NumShapeTypes + int(shape)
}

// ForbiddenByProximity reports whether cell c is unwalkable for
// (subsetID, shapeType) due to proximity to a hard barrier.
func (c *Cell) ForbiddenByProximity(subsetID int, shape designrule.ShapeType) bool {
	return c.ForbiddenProximityBarrier&(1<<uint(LocalIndex(subsetID, shape))) != 0
}

// ForbiddenByPinSwapProximity is ForbiddenByProximity's pin-swap-boundary counterpart.
func (c *Cell) ForbiddenByPinSwapProximity(subsetID int, shape designrule.ShapeType) bool {
	return c.ForbiddenProximityPinSwap&(1<<uint(LocalIndex(subsetID, shape))) != 0
}

// Barrier reports whether c is itself a hard barrier for shape.
func (c *Cell) Barrier(shape designrule.ShapeType) bool {
	switch shape {
	case designrule.Trace:
		return c.ForbiddenTraceBarrier
	case designrule.ViaUp:
		return c.ForbiddenUpViaBarrier
	case designrule.ViaDown:
		return c.ForbiddenDownViaBarrier
	default:
		return false
	}
}

// Walkable reports whether a shape of the given (subsetID, shapeType) may
// legally occupy cell c: not a hard barrier itself, and not forbidden by
// proximity to one (or, if SwapZone != 0, to a pin-swap boundary).
func (c *Cell) Walkable(subsetID int, shape designrule.ShapeType) bool {
	if c.Barrier(shape) {
		return false
	}
	if c.ForbiddenByProximity(subsetID, shape) {
		return false
	}
	if c.SwapZone != 0 && c.ForbiddenByPinSwapProximity(subsetID, shape) {
		return false
	}

	return true
}

// ClearTransient resets the per-iteration transient bits, per spec.md
// section 9's Open Question (b) decision: these are cleared explicitly at
// the start of every iteration controller pass, never as a side effect of
// anything else.
func (c *Cell) ClearTransient() {
	c.Explored = false
	c.NearANet = false
	c.DRCFlag = false
}
