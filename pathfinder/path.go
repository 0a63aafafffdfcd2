package pathfinder

import (
	"container/heap"
	"fmt"
	"math"
	"time"

	"github.com/acorn-eda/acorn/designrule"
	"github.com/acorn-eda/acorn/geom"
	"github.com/acorn-eda/acorn/gridmodel"
)

// Result is findPath's output: the sparse path (start..end inclusive, in
// order) and its total G-cost. An unreachable end yields an empty Path
// and GCost 0 — not an error (spec.md section 4.1's "failure semantics").
type Result struct {
	Path          []geom.Coordinate
	GCost         float64
	ExploredCells int
	Elapsed       time.Duration
}

// FindPath runs the A*/Dijkstra search described by spec.md section 4.1.
// subsetID selects which design-rule-set subset this path routes with
// (the same subsetID is looked up against whichever DR set each visited
// cell belongs to, since DR sets vary spatially but the routed variant
// does not). restriction may be nil.
func FindPath(grid *gridmodel.CellGrid, cat *designrule.Catalogue, start, end geom.Coordinate, pathNum, subsetID int, restriction *RoutingRestriction, opts ...Option) (Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !grid.InBounds(start) {
		return Result{}, ErrStartOutOfBounds
	}
	if !grid.InBounds(end) {
		return Result{}, ErrEndOutOfBounds
	}

	startCell := grid.MustAt(start)
	endCell := grid.MustAt(end)
	if startCell.Barrier(designrule.Trace) {
		return Result{}, ErrStartNotWalkable
	}
	if endCell.Barrier(designrule.Trace) {
		return Result{}, ErrEndNotWalkable
	}

	s := &search{grid: grid, cat: cat, cfg: &cfg, pathNum: pathNum, subsetID: subsetID, restriction: restriction, end: end, nodes: make(map[geom.Coordinate]*node)}

	startedAt := time.Now()
	found, err := s.run(start)
	if err != nil {
		return Result{}, err
	}

	result := Result{ExploredCells: len(s.nodes), Elapsed: time.Since(startedAt)}
	if !found {
		return result, nil
	}

	result.Path = s.reconstruct(end)
	result.GCost = s.nodes[end].g

	return result, nil
}

// search holds one FindPath call's mutable state.
type search struct {
	grid        *gridmodel.CellGrid
	cat         *designrule.Catalogue
	cfg         *config
	pathNum     int
	subsetID    int
	restriction *RoutingRestriction
	end         geom.Coordinate
	nodes       map[geom.Coordinate]*node
	open        openHeap
}

func (s *search) nodeAt(c geom.Coordinate) *node {
	n, ok := s.nodes[c]
	if !ok {
		n = &node{coord: c, list: untouched, sortNumber: -1}
		s.nodes[c] = n
	}

	return n
}

func (s *search) run(start geom.Coordinate) (bool, error) {
	heap.Init(&s.open)

	startNode := s.nodeAt(start)
	startNode.g = 0
	h, err := s.heuristic(start)
	if err != nil {
		return false, err
	}
	startNode.f = h
	startNode.list = openList
	heap.Push(&s.open, startNode)

	for s.open.Len() > 0 {
		cur := heap.Pop(&s.open).(*node)
		if cur.list == closedList {
			continue
		}
		cur.list = closedList

		if cur.coord == s.end {
			return true, nil
		}

		if err := s.expand(cur); err != nil {
			return false, err
		}
	}

	return false, nil
}

func (s *search) expand(cur *node) error {
	cell := s.grid.MustAt(cur.coord)
	drs := s.cat.Sets[cell.DesignRuleSet]
	if drs == nil {
		return fmt.Errorf("%w: %s", ErrUnknownDesignRuleSet, cur.coord)
	}
	subset, err := drs.Subset(s.subsetID)
	if err != nil {
		return fmt.Errorf("pathfinder: cell %s: %w", cur.coord, err)
	}

	for _, move := range subset.Directions.Moves() {
		if err := s.relax(cur, move, cell, subset); err != nil {
			return err
		}
	}

	return nil
}

func (s *search) relax(cur *node, move designrule.DirectionMask, cell *gridmodel.Cell, subset designrule.Subset) error {
	dest, inBounds := s.grid.Step(cur.coord, move)
	if !inBounds || !s.restriction.allows(dest.X, dest.Y, dest.Z) {
		return nil
	}

	destCell := s.grid.MustAt(dest)
	destDRS := s.cat.Sets[destCell.DesignRuleSet]
	if destDRS == nil {
		return fmt.Errorf("%w: %s", ErrUnknownDesignRuleSet, dest)
	}
	destSubset, err := destDRS.Subset(s.subsetID)
	if err != nil {
		return fmt.Errorf("pathfinder: cell %s: %w", dest, err)
	}

	allowed := designrule.MinimumAllowed(subset.Directions, destSubset.Directions)
	if !allowed.Intersects(move) {
		return nil
	}

	shape := moveShape(move)
	if !destCell.Walkable(s.subsetID, shape) {
		return nil
	}

	intermediates, ok := s.intermediatesFor(cur.coord, dest, move)
	if !ok {
		return nil
	}
	for _, mid := range intermediates {
		if !s.grid.InBounds(mid) {
			return nil
		}
		if !s.grid.MustAt(mid).Walkable(s.subsetID, designrule.Trace) {
			return nil
		}
	}

	moveCost, err := s.moveCost(move, shape, destCell, intermediates)
	if err != nil {
		return err
	}
	congestionAddend := s.congestionAddend(destCell, shape)

	newG := cur.g + moveCost + congestionAddend

	destNode := s.nodeAt(dest)
	if destNode.list == closedList {
		return nil
	}
	if destNode.list == untouched || newG < destNode.g {
		destNode.g = newG
		destNode.parent = cur.coord
		destNode.hasParent = true

		h, err := s.heuristic(dest)
		if err != nil {
			return err
		}
		destNode.f = newG + h

		if destNode.list == untouched {
			destNode.list = openList
			heap.Push(&s.open, destNode)
		} else {
			heap.Fix(&s.open, destNode.sortNumber)
		}
	}

	return nil
}

// intermediatesFor returns the cell(s) that must also be walkable for
// move to be legal, per spec.md section 4.1: none for orthogonal or
// vertical moves, one for diagonals, two for knight moves (the same
// canonical intermediates contiguity.Fill inserts).
func (s *search) intermediatesFor(from, to geom.Coordinate, move designrule.DirectionMask) ([]geom.Coordinate, bool) {
	dx, dy, dz := move.Delta()
	switch {
	case dz != 0:
		return nil, true
	case move.IsDiagonal():
		return []geom.Coordinate{{X: from.X + dx, Y: from.Y, Z: from.Z}}, true
	case move.IsKnight():
		if dx == 2 || dx == -2 {
			midX := from.X + dx/2
			return []geom.Coordinate{{X: midX, Y: from.Y, Z: from.Z}, {X: midX, Y: to.Y, Z: from.Z}}, true
		}
		midY := from.Y + dy/2
		return []geom.Coordinate{{X: from.X, Y: midY, Z: from.Z}, {X: to.X, Y: midY, Z: from.Z}}, true
	default:
		return nil, true
	}
}

func moveShape(move designrule.DirectionMask) designrule.ShapeType {
	switch {
	case move == designrule.Up:
		return designrule.ViaUp
	case move == designrule.Down:
		return designrule.ViaDown
	default:
		return designrule.Trace
	}
}

func (s *search) moveCost(move designrule.DirectionMask, shape designrule.ShapeType, dest *gridmodel.Cell, intermediates []geom.Coordinate) (float64, error) {
	costs := s.cfg.costs
	var cost float64

	switch {
	case shape == designrule.ViaUp:
		cost = costs.Vert * s.cfg.multiplierAt(dest.ViaUpCostMultiplierIndex)
	case shape == designrule.ViaDown:
		cost = costs.Vert * s.cfg.multiplierAt(dest.ViaDownCostMultiplierIndex)
	case move.IsKnight():
		destKnight := costs.Knight * s.cfg.multiplierAt(dest.TraceCostMultiplierIndex)
		maxMid := 0.0
		for _, mid := range intermediates {
			midCost := costs.Knight * s.cfg.multiplierAt(s.grid.MustAt(mid).TraceCostMultiplierIndex)
			if midCost > maxMid {
				maxMid = midCost
			}
		}
		cost = (destKnight + maxMid) / 2
	case move.IsDiagonal():
		cost = costs.Diag * s.cfg.multiplierAt(dest.TraceCostMultiplierIndex)
	default:
		cost = costs.Cell * s.cfg.multiplierAt(dest.TraceCostMultiplierIndex)
	}

	if dest.SwapZone != 0 {
		cost /= designrule.PinSwapCostRatio
	}

	return cost, nil
}

func (s *search) congestionAddend(dest *gridmodel.Cell, shape designrule.ShapeType) float64 {
	var total float64
	dest.Congestion.ForEach(func(e gridmodel.CongestionEntry) {
		if e.ShapeType != shape {
			return
		}
		if e.PathNum == s.pathNum && !s.cfg.recognizeSelf {
			return
		}

		scale := s.cfg.congestion.Trace
		if shape != designrule.Trace {
			scale = s.cfg.congestion.Via
		}
		if s.cfg.diffPairPartnerSubset >= 0 && e.Subset == s.cfg.diffPairPartnerSubset {
			if shape != designrule.Trace {
				scale *= s.cfg.congestion.DiffPairViaScale
			} else {
				scale *= s.cfg.congestion.DiffPairTraceScale
			}
		}

		addend := scale * float64(e.Traversals) / 100
		if s.cfg.randomCongestionDelta != nil {
			addend += s.cfg.randomCongestionDelta()
		}
		total += addend
	})

	return total
}

func (s *search) heuristic(c geom.Coordinate) (float64, error) {
	if s.cfg.dijkstra {
		return 0, nil
	}

	cell := s.grid.MustAt(c)
	drs := s.cat.Sets[cell.DesignRuleSet]
	if drs == nil {
		return 0, fmt.Errorf("%w: %s", ErrUnknownDesignRuleSet, c)
	}
	subset, err := drs.Subset(s.subsetID)
	if err != nil {
		return 0, fmt.Errorf("pathfinder: cell %s: %w", c, err)
	}

	dx := absInt(s.end.X - c.X)
	dy := absInt(s.end.Y - c.Y)
	dz := absInt(s.end.Z - c.Z)

	costs := s.cfg.costs
	vert := float64(dz) * costs.Vert

	var lateral float64
	mask := subset.Directions
	switch {
	case mask.Intersects(designrule.Knight):
		lateral = math.Sqrt(float64(dx*dx+dy*dy)) * costs.Cell
	case mask.Intersects(designrule.Diagonal) && mask.Intersects(designrule.Cardinal):
		mn, mx := dx, dy
		if mn > mx {
			mn, mx = mx, mn
		}
		lateral = float64(mx-mn)*costs.Cell + float64(mn)*costs.Diag
	case mask.Intersects(designrule.Diagonal):
		mx := dx
		if dy > mx {
			mx = dy
		}
		lateral = float64(mx) * costs.Diag
	default:
		lateral = float64(dx+dy) * costs.Cell
	}

	h := lateral + vert
	if cell.SwapZone != 0 {
		h /= designrule.PinSwapCostRatio
	}

	return h * s.cfg.pathDRCFraction * s.cfg.mapDRCFraction, nil
}

func (s *search) reconstruct(end geom.Coordinate) []geom.Coordinate {
	var rev []geom.Coordinate
	c := end
	for {
		rev = append(rev, c)
		n := s.nodes[c]
		if !n.hasParent {
			break
		}
		c = n.parent
	}

	path := make([]geom.Coordinate, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}

	return path
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
