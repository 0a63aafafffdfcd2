package router

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/acorn-eda/acorn/congestion"
	"github.com/acorn-eda/acorn/contiguity"
	"github.com/acorn-eda/acorn/designrule"
	"github.com/acorn-eda/acorn/drc"
	"github.com/acorn-eda/acorn/geom"
	"github.com/acorn-eda/acorn/gridmodel"
	"github.com/acorn-eda/acorn/metrics"
	"github.com/acorn-eda/acorn/nearnet"
	"github.com/acorn-eda/acorn/pathfinder"
)

// Context carries everything one negotiated-congestion routing run needs:
// the grid and design-rule catalogue it routes against, the registered
// nets, resolved options, and the per-run metrics state.
type Context struct {
	grid *gridmodel.CellGrid
	cat  *designrule.Catalogue
	nets []Net
	cfg  config

	nearNetRadius []float64

	store       *metrics.Store
	sensitivity *metrics.SensitivityLadder
	costHistory metrics.History
	drcWindows  map[int]*metrics.DRCWindow

	lastPaths map[int][]contiguity.Step

	// netByPath indexes nets by PathNum, so diff-pair partner nets (which
	// carry no terminals of their own) can look their owning pseudo-net's
	// Synthesis config back up.
	netByPath map[int]Net
}

// New builds a routing Context over grid/cat for the given nets.
// nearNetRadius[z] is the per-layer near-net flood radius nearnet.Mark
// uses every iteration (spec.md section 4.7 step 6).
func New(grid *gridmodel.CellGrid, cat *designrule.Catalogue, nets []Net, nearNetRadius []float64, opts ...Option) (*Context, error) {
	if len(nets) == 0 {
		return nil, ErrNoNets
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	windows := make(map[int]*metrics.DRCWindow, len(nets))
	netByPath := make(map[int]Net, len(nets))
	for _, n := range nets {
		windows[n.PathNum] = metrics.NewDRCWindow()
		netByPath[n.PathNum] = n
	}

	return &Context{
		grid:          grid,
		cat:           cat,
		nets:          nets,
		cfg:           cfg,
		nearNetRadius: nearNetRadius,
		store:         metrics.NewStore(),
		sensitivity:   metrics.NewSensitivityLadder(),
		drcWindows:    windows,
		lastPaths:     make(map[int][]contiguity.Step, len(nets)),
		netByPath:     netByPath,
	}, nil
}

// Store exposes the accumulated per-iteration metrics, including
// best-iteration tracking.
func (rc *Context) Store() *metrics.Store {
	return rc.store
}

// Paths returns the most recently computed dense path for every net,
// keyed by PathNum — the routed board state after the last completed
// iteration.
func (rc *Context) Paths() map[int][]contiguity.Step {
	return rc.lastPaths
}

// Run executes the iteration controller until a stop condition fires
// (spec.md section 4.8): the DRC-free threshold is reached, the
// iteration cap is hit, or ctx is cancelled. It returns the final store.
func (rc *Context) Run(ctx context.Context) (*metrics.Store, error) {
	for iteration := 0; iteration < rc.cfg.maxIterations; iteration++ {
		if err := ctx.Err(); err != nil {
			return rc.store, err
		}

		it, err := rc.runIteration(ctx, iteration)
		if err != nil {
			return rc.store, err
		}
		rc.store.Add(it)

		rc.cfg.log.Info().
			Int("iteration", iteration).
			Float64("cost", it.Cost.Combined()).
			Int("drcs", it.TotalDRCs()).
			Bool("plateaued", it.Plateaued).
			Str("action", it.AdaptiveAction.String()).
			Msg("iteration complete")

		if rc.store.DRCFreeCount() >= rc.cfg.drcFreeThreshold {
			break
		}
	}

	return rc.store, nil
}

// runIteration executes one full pass of the C8 orchestration: evaporate,
// clear transient bits, route every net in parallel (step 3), synthesize
// diff-pair shoulders and vias for every pseudo-net (step 4), expand every
// net's path to a dense contiguous trace (step 5) and deposit fresh
// congestion along it (step 8, done here in the same per-net loop, before
// steps 6-7), mark near-net cells (step 6), scan DRC (step 7), and update
// the rolling per-path DRC window and plateau/adaptive-action state
// (steps 9-10).
func (rc *Context) runIteration(ctx context.Context, iteration int) (metrics.Iteration, error) {
	if iteration >= rc.cfg.preEvaporationIterations {
		if err := congestion.Evaporate(ctx, rc.grid, rc.cfg.evaporationRate, rc.cfg.workers); err != nil {
			return metrics.Iteration{}, err
		}
	}

	rc.clearTransient()

	results, err := rc.routeAll(ctx)
	if err != nil {
		return metrics.Iteration{}, err
	}

	if err := rc.synthesizeDiffPairs(results); err != nil {
		return metrics.Iteration{}, err
	}

	perPath := make(map[int]metrics.PathMetrics, len(rc.nets))
	var totalCost, totalLength metrics.CostBreakdown
	totalVias := 0
	totalElapsed := time.Duration(0)
	totalExplored := 0

	for _, n := range rc.nets {
		res := results[n.PathNum]
		lineWidth := rc.subsetLineWidth(n)
		// A diff-pair partner's path is projected shoulder geometry, not a
		// findPath search output, so its inter-vertex jumps are not
		// guaranteed to match the 18-move vocabulary exactly; tolerate a
		// gap rather than treat it as the fatal configuration error
		// spec.md section 7 reserves for a genuine invalid jump.
		steps, err := contiguity.Fill(res.Path, lineWidth, n.PartnerOfPseudo < 0)
		if err != nil {
			return metrics.Iteration{}, err
		}
		rc.lastPaths[n.PathNum] = steps

		// Mark every dense cell as one of this path's centerline cells before
		// depositing congestion: nearnet.Mark seeds its flood from these marks,
		// and drc.Scan only scans cells that carry one (spec.md section 4.7
		// steps 6-7).
		for _, step := range steps {
			if err := rc.grid.MustAt(step.Coord).MarkPathCenter(n.PathNum, step.Shape); err != nil {
				return metrics.Iteration{}, err
			}
		}

		shapes := make([]designrule.ShapeType, len(steps))
		for i, s := range steps {
			shapes[i] = s.Shape
		}
		vias := viaCount(shapes)
		totalVias += vias
		lengthMM := float64(len(steps)) * rc.cfg.cellSizeMM

		pm := metrics.PathMetrics{
			Cost:     res.GCost,
			Vias:     vias,
			LengthMM: lengthMM,
		}
		perPath[n.PathNum] = pm

		// A pseudo-net and its two physical partners all contribute to the
		// "pseudo" cost/length bucket; every other net is "non-pseudo"
		// (spec.md section 6's output contract).
		isPseudo := n.DiffPairPartnerSubset >= 0 || n.PartnerOfPseudo >= 0
		if isPseudo {
			totalCost.Pseudo += res.GCost
			totalLength.Pseudo += lengthMM
		} else {
			totalCost.NonPseudo += res.GCost
			totalLength.NonPseudo += lengthMM
		}
		totalElapsed += res.Elapsed
		totalExplored += res.ExploredCells

		if err := congestion.Deposit(rc.grid, rc.cat, steps, n.PathNum, n.SubsetID, n.TraversalWeight); err != nil {
			return metrics.Iteration{}, err
		}
	}

	if err := nearnet.Mark(ctx, rc.grid, rc.nearNetRadius); err != nil {
		return metrics.Iteration{}, err
	}

	subsetOf := make(map[int]int, len(rc.nets))
	for _, n := range rc.nets {
		subsetOf[n.PathNum] = n.SubsetID
	}
	pairs := drc.NewPairBitset(len(rc.nets) + 1)
	scanResult, err := drc.Scan(rc.grid, rc.cat, subsetOf, pairs)
	if err != nil {
		return metrics.Iteration{}, err
	}

	for pathNum, pm := range perPath {
		pm.DRCCount = scanResult.PerPathCount[pathNum]
		perPath[pathNum] = pm
		rc.drcWindows[pathNum].Record(pm.DRCCount > 0)
	}

	it := metrics.Iteration{
		Number:        iteration,
		Cost:          totalCost,
		LateralLength: totalLength,
		TotalVias:     totalVias,
		PerPath:       perPath,
		PerLayerDRC:   scanResult.PerLayerCount,
		DetailedDRCs:  scanResult.Records,
		Elapsed:       totalElapsed,
		ExploredCells: totalExplored,
	}

	rc.costHistory.Add(totalCost.NonPseudo)
	if plateau, ok := rc.costHistory.DetectPlateau(); ok {
		it.Plateaued = plateau.Plateaued
	}
	it.AdaptiveAction = rc.chooseAdaptiveAction(it)

	return it, nil
}

// routeAll runs pathfinder.FindPath for every registered net concurrently,
// bounded to cfg.workers in flight at once, mirroring the teacher's
// goroutine-fan-out-plus-sync.WaitGroup concurrency pattern
// (core/concurrency_test.go) rather than an unbounded per-net goroutine.
func (rc *Context) routeAll(ctx context.Context) (map[int]pathfinder.Result, error) {
	results := make(map[int]pathfinder.Result, len(rc.nets))
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, rc.cfg.workers)

	errs := make(chan error, len(rc.nets))

	for _, n := range rc.nets {
		if n.PartnerOfPseudo >= 0 {
			// Diff-pair partners are not routed in this phase (spec.md
			// section 4.7 step 3): their geometry for this iteration comes
			// from synthesizeDiffPairs once their pseudo-net is routed.
			continue
		}

		n := n
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			if err := ctx.Err(); err != nil {
				errs <- err

				return
			}

			pathFraction := rc.drcWindows[n.PathNum].CleanFraction()
			mapFraction := rc.mapDRCFraction()
			opts := n.routeOptions(rc.cfg, pathFraction, mapFraction, nil)

			res, err := pathfinder.FindPath(rc.grid, rc.cat, n.Start, n.End, n.PathNum, n.SubsetID, n.Restriction, opts...)
			if err != nil {
				errs <- fmt.Errorf("router: net %d: %w", n.PathNum, err)

				return
			}

			mu.Lock()
			results[n.PathNum] = res
			mu.Unlock()
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// mapDRCFraction averages every tracked net's clean fraction, the "map
// recent DRC history" fraction spec.md section 4.1 scales H by.
func (rc *Context) mapDRCFraction() float64 {
	if len(rc.drcWindows) == 0 {
		return 1
	}
	sum := 0.0
	for _, w := range rc.drcWindows {
		sum += w.CleanFraction()
	}

	return sum / float64(len(rc.drcWindows))
}

// clearTransient resets every cell's per-iteration transient bits, per
// spec.md section 9's Open Question (b) decision: explicit, at the start
// of every pass.
func (rc *Context) clearTransient() {
	rc.grid.ForEachCoordinate(func(c geom.Coordinate) {
		rc.grid.MustAt(c).ClearTransient()
	})
}

// subsetLineWidth looks up the trace radius (half the line width) the
// net's design-rule subset uses, for contiguity.Fill's diagonal-fill
// decision.
// A diff-pair partner net has no terminals of its own to resolve a
// design-rule set from, so its subset comes from its pseudo-net's
// Synthesis config instead of a grid lookup.
func (rc *Context) subsetLineWidth(n Net) float64 {
	if n.PartnerOfPseudo >= 0 {
		if subset, ok := rc.partnerSubset(n); ok {
			return subset.ShapeRadius(designrule.Trace)
		}

		return 1
	}

	cell := rc.grid.MustAt(n.Start)
	drs := rc.cat.Sets[cell.DesignRuleSet]
	if drs == nil {
		return 1
	}
	subset, err := drs.Subset(n.SubsetID)
	if err != nil {
		return 1
	}

	return subset.ShapeRadius(designrule.Trace)
}
