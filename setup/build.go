package setup

import (
	"fmt"
	"math"

	"github.com/acorn-eda/acorn/congestion"
	"github.com/acorn-eda/acorn/designrule"
	"github.com/acorn-eda/acorn/geom"
	"github.com/acorn-eda/acorn/gridmodel"
	"github.com/acorn-eda/acorn/nearnet"
)

// viaDiameterEpsilon is the tolerance two adjacent layers' via diameters
// must agree within before Build rejects the configuration.
const viaDiameterEpsilon = 1e-6

// Build validates iv and turns it into a ready-to-route grid and
// catalogue: it rejects a malformed configuration outright (spec.md
// section 7's "validate before construct" discipline, grounded on the
// teacher's builder/validators.go), then rasterizes every zone onto a
// freshly allocated CellGrid, derives the proximity masks, and seeds the
// universal repellent around every hard barrier.
func Build(iv InputValues) (*gridmodel.CellGrid, *designrule.Catalogue, error) {
	if iv.Width <= 0 || iv.Height <= 0 || iv.Layers <= 0 {
		return nil, nil, ErrInvalidDimensions
	}
	if iv.Catalogue == nil {
		return nil, nil, ErrNilCatalogue
	}
	if err := checkAdjacentLayerDesignRules(iv); err != nil {
		return nil, nil, err
	}

	if err := iv.Catalogue.Build(); err != nil {
		return nil, nil, fmt.Errorf("setup: building catalogue: %w", err)
	}

	grid, err := gridmodel.NewCellGrid(iv.Width, iv.Height, iv.Layers)
	if err != nil {
		return nil, nil, fmt.Errorf("setup: allocating grid: %w", err)
	}

	for _, z := range iv.Barriers {
		applyBarrier(grid, iv.CellSizeMicrons, z)
	}
	for _, z := range iv.DesignRules {
		applyDesignRuleZone(grid, iv.CellSizeMicrons, z)
	}
	for _, z := range iv.CostZones {
		applyCostZone(grid, iv.CellSizeMicrons, z)
	}
	for _, z := range iv.SwapZones {
		applySwapZone(grid, iv.CellSizeMicrons, z)
	}

	if err := grid.DeriveProximityMasks(iv.Catalogue); err != nil {
		return nil, nil, fmt.Errorf("setup: deriving proximity masks: %w", err)
	}

	seedUniversalRepellent(grid, iv)

	return grid, iv.Catalogue, nil
}

// NearNetRadius computes the per-layer near_a_net flood radius
// router.New's nearNetRadius parameter expects, from a grid and
// catalogue Build has already produced. It is a thin adapter over
// nearnet.MaxInteractionRadius so that a caller wiring setup.Build into
// router.New never has to reimplement spec.md section 4.2's
// "maxInteractionRadiusCells" derivation by hand.
func NearNetRadius(grid *gridmodel.CellGrid, cat *designrule.Catalogue) []float64 {
	return nearnet.MaxInteractionRadius(grid, cat)
}

// checkAdjacentLayerDesignRules rejects a configuration where two
// vertically-adjacent layers assign the same design-rule-subset ID a via
// diameter that disagrees with its neighbor's (a via barrel shared
// between the two layers would otherwise have no single valid
// diameter). Adjacency is derived from each DesignRuleZone's declared
// Layers list, generalizing the teacher's dfs package's graph-walk style
// (dfs/cycle.go) from an explicit edge list to a linear scan over the Z
// axis.
func checkAdjacentLayerDesignRules(iv InputValues) error {
	setsByLayer := make(map[int]map[int]bool)
	addLayer := func(z, setID int) {
		if setsByLayer[z] == nil {
			setsByLayer[z] = make(map[int]bool)
		}
		setsByLayer[z][setID] = true
	}
	for _, z := range iv.DesignRules {
		layers := z.Layers
		if len(layers) == 0 {
			layers = allLayers(iv.Layers)
		}
		for _, layer := range layers {
			addLayer(layer, z.SetID)
		}
	}

	for z := 0; z < iv.Layers-1; z++ {
		for setA := range setsByLayer[z] {
			for setB := range setsByLayer[z+1] {
				if err := compareViaDiameters(iv.Catalogue, setA, setB); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func compareViaDiameters(cat *designrule.Catalogue, setA, setB int) error {
	drsA := cat.Sets[setA]
	drsB := cat.Sets[setB]
	if drsA == nil || drsB == nil {
		return nil
	}
	for _, subA := range drsA.Subsets {
		subB, err := drsB.Subset(subA.ID)
		if err != nil {
			continue
		}
		if math.Abs(subA.ViaUpDiameterCells-subB.ViaDownDiameterCells) > viaDiameterEpsilon {
			return fmt.Errorf("%w: set %d subset %d via-up %.4f vs set %d subset %d via-down %.4f",
				ErrConflictingDesignRules, setA, subA.ID, subA.ViaUpDiameterCells, setB, subB.ID, subB.ViaDownDiameterCells)
		}
	}

	return nil
}

func allLayers(n int) []int {
	layers := make([]int, n)
	for i := range layers {
		layers[i] = i
	}

	return layers
}

// rasterize calls fn for every (x, y) cell within shape's bounding box,
// on every layer in layers (or every layer if layers is empty), whose
// center lies inside shape.
func rasterize(grid *gridmodel.CellGrid, cellSizeMicrons float64, shape geom.Shape, layers []int, fn func(x, y, z int)) {
	if len(layers) == 0 {
		layers = allLayers(grid.Layers)
	}

	minX, minY, maxX, maxY := shape.BoundingBox()
	x0 := int(math.Floor(minX / cellSizeMicrons))
	y0 := int(math.Floor(minY / cellSizeMicrons))
	x1 := int(math.Ceil(maxX / cellSizeMicrons))
	y1 := int(math.Ceil(maxY / cellSizeMicrons))

	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 >= grid.Width {
		x1 = grid.Width - 1
	}
	if y1 >= grid.Height {
		y1 = grid.Height - 1
	}

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			cx := (float64(x) + 0.5) * cellSizeMicrons
			cy := (float64(y) + 0.5) * cellSizeMicrons
			inside, err := shape.Contains(cx, cy)
			if err != nil || !inside {
				continue
			}
			for _, z := range layers {
				if z < 0 || z >= grid.Layers {
					continue
				}
				fn(x, y, z)
			}
		}
	}
}

func applyBarrier(grid *gridmodel.CellGrid, cellSizeMicrons float64, z BarrierZone) {
	rasterize(grid, cellSizeMicrons, z.Shape, z.Layers, func(x, y, layer int) {
		cell := grid.MustAt(geom.New(x, y, layer))
		for _, shape := range z.Shapes {
			switch shape {
			case designrule.Trace:
				cell.ForbiddenTraceBarrier = true
			case designrule.ViaUp:
				cell.ForbiddenUpViaBarrier = true
			case designrule.ViaDown:
				cell.ForbiddenDownViaBarrier = true
			}
		}
	})
}

func applyDesignRuleZone(grid *gridmodel.CellGrid, cellSizeMicrons float64, z DesignRuleZone) {
	rasterize(grid, cellSizeMicrons, z.Shape, z.Layers, func(x, y, layer int) {
		grid.MustAt(geom.New(x, y, layer)).DesignRuleSet = z.SetID
	})
}

func applyCostZone(grid *gridmodel.CellGrid, cellSizeMicrons float64, z CostZone) {
	rasterize(grid, cellSizeMicrons, z.Shape, z.Layers, func(x, y, layer int) {
		cell := grid.MustAt(geom.New(x, y, layer))
		switch z.Category {
		case designrule.Trace:
			cell.TraceCostMultiplierIndex = z.MultiplierIndex
		case designrule.ViaUp:
			cell.ViaUpCostMultiplierIndex = z.MultiplierIndex
		case designrule.ViaDown:
			cell.ViaDownCostMultiplierIndex = z.MultiplierIndex
		}
	})
}

func applySwapZone(grid *gridmodel.CellGrid, cellSizeMicrons float64, z SwapZone) {
	rasterize(grid, cellSizeMicrons, z.Shape, z.Layers, func(x, y, layer int) {
		grid.MustAt(geom.New(x, y, layer)).SwapZone = z.ZoneID
	})
}

// seedUniversalRepellent deposits the never-evaporated congestion floor
// (congestion.UniversalRepellentPath) around every hard-barrier cell, so
// the first routing pass already sees a soft penalty for hugging a
// keep-out before any net has traversed nearby (spec.md section 4.2).
func seedUniversalRepellent(grid *gridmodel.CellGrid, iv InputValues) {
	r := int(math.Ceil(iv.UniversalRepellentProximityCells))
	if r < 0 || iv.UniversalRepellentWeight == 0 {
		return
	}
	rsq := iv.UniversalRepellentProximityCells * iv.UniversalRepellentProximityCells

	grid.ForEachCoordinate(func(c geom.Coordinate) {
		cell := grid.MustAt(c)
		if !cell.Barrier(designrule.Trace) && !cell.Barrier(designrule.ViaUp) && !cell.Barrier(designrule.ViaDown) {
			return
		}

		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if float64(dx*dx+dy*dy) > rsq {
					continue
				}
				n := geom.Coordinate{X: c.X + dx, Y: c.Y + dy, Z: c.Z}
				if !grid.InBounds(n) {
					continue
				}
				neighbor := grid.MustAt(n)
				_ = neighbor.Congestion.Add(congestion.UniversalRepellentPath, 0, designrule.Trace, iv.UniversalRepellentWeight)
			}
		}
	})
}
