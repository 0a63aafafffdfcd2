package drc

import (
	"math"

	"github.com/acorn-eda/acorn/designrule"
	"github.com/acorn-eda/acorn/geom"
	"github.com/acorn-eda/acorn/gridmodel"
)

// MaxDetailedRecords is the cap on detailed violation records kept per
// scan (spec.md section 4.2's "K = 10").
const MaxDetailedRecords = 10

// Violation is one detailed DRC record: a location, the two offending
// paths and their shape types, the minimum spacing the design rules
// require, and the actual center-to-center distance observed.
type Violation struct {
	Coord          geom.Coordinate
	PathA, PathB   int
	ShapeA, ShapeB designrule.ShapeType
	MinAllowed     float64
	Distance       float64
}

// Result is a completed DRC scan's output.
type Result struct {
	Records       []Violation
	PerPathCount  map[int]int
	PerLayerCount []int
}

// Scan detects design-rule violations among every pair of path-center
// cells the grid's near_a_net pass has already flagged (spec.md section
// 4.2). subsetOf maps a path number to the design-rule-set subset it was
// routed with — the same mapping the router's path registry maintains.
//
// Every violation occurrence sets the touched cell's DRCFlag and
// increments the per-path and per-layer counters; at most
// MaxDetailedRecords detailed Violation records are kept, deduplicated
// per canonicalized (pathA, shapeA, pathB, shapeB) pair via PairBitset so
// a long shared boundary between two nets does not spam identical
// records (spec.md section 4.2.1).
//
// The scan is literally "for each path-center cell, iterate" (spec.md
// section 4.2's scan strategy): cell c's neighborhood scan and cell n's
// neighborhood scan both independently discover the (c, n) violation, so
// PerPathCount/PerLayerCount count a violating neighbor pair twice — once
// from each cell's own perspective. The deduplicated Records list is
// unaffected, since PairBitset keys on the canonicalized (path, shape)
// pair rather than on the cell pair. See DESIGN.md's drc entry for why
// this is kept as the literal reading of the scan strategy rather than
// "fixed" to a single canonical direction.
func Scan(grid *gridmodel.CellGrid, cat *designrule.Catalogue, subsetOf map[int]int, pairs *PairBitset) (*Result, error) {
	result := &Result{PerPathCount: make(map[int]int), PerLayerCount: make([]int, grid.Layers)}

	var scanErr error
	grid.ForEachCoordinate(func(c geom.Coordinate) {
		if scanErr != nil {
			return
		}
		cell := grid.MustAt(c)
		if cell.PathCenters.Len() == 0 {
			return
		}

		radius := maxSelfRadius(cat, cell, subsetOf)
		r := int(radius) + 1
		rsq := radius * radius

		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				if float64(dx*dx+dy*dy) > rsq {
					continue
				}
				n := geom.Coordinate{X: c.X + dx, Y: c.Y + dy, Z: c.Z}
				if !grid.InBounds(n) || !grid.MustAt(n).NearANet {
					continue
				}
				if err := checkPair(grid, cat, subsetOf, pairs, result, c, n); err != nil {
					scanErr = err
				}
			}
		}
	})

	return result, scanErr
}

func maxSelfRadius(cat *designrule.Catalogue, cell *gridmodel.Cell, subsetOf map[int]int) float64 {
	var maxR float64
	cell.PathCenters.ForEach(func(e gridmodel.CongestionEntry) {
		subID := subsetOf[e.PathNum]
		idx := designrule.CombinedIndex(cell.DesignRuleSet, subID, e.ShapeType)
		r, err := cat.DRCRadius.At(idx, idx)
		if err == nil && r > maxR {
			maxR = r
		}
	})

	return maxR
}

func checkPair(grid *gridmodel.CellGrid, cat *designrule.Catalogue, subsetOf map[int]int, pairs *PairBitset, result *Result, a, b geom.Coordinate) error {
	cellA := grid.MustAt(a)
	cellB := grid.MustAt(b)
	distSq := float64((a.X-b.X)*(a.X-b.X) + (a.Y-b.Y)*(a.Y-b.Y))

	var outerErr error
	cellA.PathCenters.ForEach(func(ea gridmodel.CongestionEntry) {
		cellB.PathCenters.ForEach(func(eb gridmodel.CongestionEntry) {
			if ea.PathNum == eb.PathNum {
				return
			}
			mIdx := designrule.CombinedIndex(cellA.DesignRuleSet, subsetOf[ea.PathNum], ea.ShapeType)
			nIdx := designrule.CombinedIndex(cellB.DesignRuleSet, subsetOf[eb.PathNum], eb.ShapeType)
			allowedSq, err := cat.DRCRadius.AtSquared(mIdx, nIdx)
			if err != nil {
				outerErr = err

				return
			}
			if distSq >= allowedSq {
				return
			}

			cellA.DRCFlag = true
			cellB.DRCFlag = true
			result.PerPathCount[ea.PathNum]++
			result.PerPathCount[eb.PathNum]++
			if a.Z >= 0 && a.Z < len(result.PerLayerCount) {
				result.PerLayerCount[a.Z]++
			}

			if len(result.Records) >= MaxDetailedRecords {
				return
			}
			if pairs.TestAndSet(ea.PathNum, ea.ShapeType, eb.PathNum, eb.ShapeType) {
				return
			}

			allowed, _ := cat.DRCRadius.At(mIdx, nIdx)
			result.Records = append(result.Records, Violation{
				Coord:      a,
				PathA:      ea.PathNum,
				PathB:      eb.PathNum,
				ShapeA:     ea.ShapeType,
				ShapeB:     eb.ShapeType,
				MinAllowed: allowed,
				Distance:   math.Sqrt(distSq),
			})
		})
	})

	return outerErr
}
