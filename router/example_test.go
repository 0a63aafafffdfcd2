package router_test

import (
	"context"
	"fmt"

	"github.com/acorn-eda/acorn/designrule"
	"github.com/acorn-eda/acorn/router"
	"github.com/acorn-eda/acorn/setup"
)

// Example wires the whole pipeline a caller assembles to route a board:
// setup.Build turns a configuration into a grid and catalogue,
// setup.BuildNets turns the declared nets into router.Net entries,
// setup.NearNetRadius derives the near_a_net flood radius from the built
// catalogue, and router.New/Run negotiates every net's path down to a
// DRC-free result.
func Example() {
	cat := &designrule.Catalogue{}
	cat.Sets[0] = &designrule.DesignRuleSet{
		ID: 0,
		Subsets: []designrule.Subset{{
			ID:             0,
			LineWidthCells: 1,
			Spacing:        [designrule.NumShapeTypes][designrule.NumShapeTypes]float64{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}},
			Directions:     designrule.MaskManhattan,
		}},
	}

	iv := setup.InputValues{
		Width: 10, Height: 10, Layers: 1,
		CellSizeMicrons: 10,
		Catalogue:       cat,
		Nets: []setup.NetSpec{
			{Name: "A", StartXMicrons: 0, StartYMicrons: 0, EndXMicrons: 0, EndYMicrons: 90, TraversalWeight: 100, DiffPairPartner: -1},
			{Name: "B", StartXMicrons: 90, StartYMicrons: 0, EndXMicrons: 90, EndYMicrons: 90, TraversalWeight: 100, DiffPairPartner: -1},
		},
	}

	grid, builtCat, err := setup.Build(iv)
	if err != nil {
		fmt.Println("build error:", err)
		return
	}

	nets, err := setup.BuildNets(iv, builtCat)
	if err != nil {
		fmt.Println("build nets error:", err)
		return
	}

	radii := setup.NearNetRadius(grid, builtCat)

	rc, err := router.New(grid, builtCat, nets, radii,
		router.WithMaxIterations(60),
		router.WithDRCFreeThreshold(1),
		router.WithWorkers(2),
	)
	if err != nil {
		fmt.Println("router.New error:", err)
		return
	}

	store, err := rc.Run(context.Background())
	if err != nil {
		fmt.Println("run error:", err)
		return
	}

	best, ok := store.Best()
	fmt.Println("has best iteration:", ok)
	fmt.Println("final DRCs:", best.TotalDRCs())

	paths := rc.Paths()
	fmt.Println("net A routed:", len(paths[0]) > 0)
	fmt.Println("net B routed:", len(paths[1]) > 0)

	// Output:
	// has best iteration: true
	// final DRCs: 0
	// net A routed: true
	// net B routed: true
}
