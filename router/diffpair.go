package router

import (
	"fmt"

	"github.com/acorn-eda/acorn/designrule"
	"github.com/acorn-eda/acorn/diffpair"
	"github.com/acorn-eda/acorn/geom"
	"github.com/acorn-eda/acorn/gridmodel"
	"github.com/acorn-eda/acorn/pathfinder"
)

// gridLegality adapts a CellGrid into diffpair.Legality for one
// representative subset: a shoulder vertex is walkable if a trace of that
// subset may legally occupy the cell, and a proposed segment "crosses a
// pin-swap zone" if any of its endpoints or midpoint sit inside one or
// within its proximity boundary (spec.md section 4.5's "passes through,
// or near, a pin-swap zone"). Using a single subset for both shoulders is
// a deliberate simplification: a declared diff pair's two physical nets
// share a design-rule subset in every case spec.md describes.
type gridLegality struct {
	grid     *gridmodel.CellGrid
	subsetID int
}

func (g gridLegality) Walkable(c geom.Coordinate) bool {
	if !g.grid.InBounds(c) {
		return false
	}

	return g.grid.MustAt(c).Walkable(g.subsetID, designrule.Trace)
}

func (g gridLegality) CrossesPinSwap(from, to geom.Coordinate) bool {
	mid := geom.Coordinate{X: (from.X + to.X) / 2, Y: (from.Y + to.Y) / 2, Z: from.Z}
	for _, c := range [3]geom.Coordinate{from, mid, to} {
		if !g.grid.InBounds(c) {
			continue
		}
		cell := g.grid.MustAt(c)
		if cell.SwapZone != 0 || cell.ForbiddenByPinSwapProximity(g.subsetID, designrule.Trace) {
			return true
		}
	}

	return false
}

// synthesizeDiffPairs runs component C7 (spec.md section 4.5) for every
// registered pseudo-net, per spec.md section 4.7 step 4: once the
// pseudo-net's own path has been found (step 3), project its two
// shoulder paths and splice in the diff-pair vias, then write the result
// into results under the two physical partners' path numbers so the rest
// of the iteration (contiguity fill, DRC, congestion deposit, metrics)
// treats them like any other routed net. An unreachable pseudo-net (empty
// path) leaves both partners with an empty result for this iteration,
// mirroring findPath's own "no path" semantics rather than failing the
// whole iteration.
func (rc *Context) synthesizeDiffPairs(results map[int]pathfinder.Result) error {
	for _, n := range rc.nets {
		if n.Synthesis == nil {
			continue
		}

		pseudoRes := results[n.PathNum]
		if len(pseudoRes.Path) < 2 {
			results[n.Synthesis.PartnerAPath] = pathfinder.Result{}
			results[n.Synthesis.PartnerBPath] = pathfinder.Result{}

			continue
		}

		// Diameters/spacings are drawn from partner A's subset only: diam
		// via barrels and clearances are assumed shared by both shoulders
		// (see gridLegality's doc comment on the same assumption).
		sub := n.Synthesis.PartnerASubset
		legal := gridLegality{grid: rc.grid, subsetID: sub.ID}
		viaParams := func(fromLayer, toLayer int) (diffpair.ViaDiameters, diffpair.Spacings, float64) {
			diam := diffpair.ViaDiameters{
				Up:   sub.ViaUpDiameterCells,
				Down: sub.ViaDownDiameterCells,
			}
			spacing := diffpair.Spacings{
				UpToUp:      sub.Spacing[designrule.ViaUp][designrule.ViaUp],
				UpToTrace:   sub.Spacing[designrule.ViaUp][designrule.Trace],
				DownToDown:  sub.Spacing[designrule.ViaDown][designrule.ViaDown],
				DownToTrace: sub.Spacing[designrule.ViaDown][designrule.Trace],
			}

			return diam, spacing, n.Synthesis.HalfPitchCells * 2
		}

		result, err := diffpair.Synthesize(pseudoRes.Path, n.Synthesis.HalfPitchCells, legal, viaParams)
		if err != nil {
			return fmt.Errorf("router: diff-pair synthesis for pseudo-net %d: %w", n.PathNum, err)
		}

		results[n.Synthesis.PartnerAPath] = pathfinder.Result{
			Path:  result.Shoulders.A,
			GCost: approxPathCost(result.Shoulders.A, rc.cfg.costs),
		}
		results[n.Synthesis.PartnerBPath] = pathfinder.Result{
			Path:  result.Shoulders.B,
			GCost: approxPathCost(result.Shoulders.B, rc.cfg.costs),
		}
	}

	return nil
}

// approxPathCost estimates a synthesized shoulder path's routing cost by
// walking its sparse coordinate sequence and charging the same base move
// costs findPath would: lateral steps as cell or diagonal moves (whichever
// the step's shape matches) and layer transitions as via moves. It is an
// approximation -- the shoulder path was never searched, so no cost-zone
// multiplier or congestion penalty applies to it -- used only for the
// metrics store's cost totals and the "best iteration" comparison.
func approxPathCost(path []geom.Coordinate, costs pathfinder.Costs) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		dx, dy, dz := path[i].Delta(path[i-1])
		switch {
		case dz != 0:
			total += costs.Vert
		case dx != 0 && dy != 0:
			total += costs.Diag
		default:
			total += costs.Cell
		}
	}

	return total
}

// partnerSubset resolves the designrule.Subset a diff-pair partner net
// routes with, looked up from its owning pseudo-net's Synthesis rather
// than a grid cell (a partner net has no meaningful Start coordinate of
// its own to look a design-rule set up from).
func (rc *Context) partnerSubset(n Net) (designrule.Subset, bool) {
	pseudo, ok := rc.netByPath[n.PartnerOfPseudo]
	if !ok || pseudo.Synthesis == nil {
		return designrule.Subset{}, false
	}
	if n.PathNum == pseudo.Synthesis.PartnerAPath {
		return pseudo.Synthesis.PartnerASubset, true
	}
	if n.PathNum == pseudo.Synthesis.PartnerBPath {
		return pseudo.Synthesis.PartnerBSubset, true
	}

	return designrule.Subset{}, false
}
