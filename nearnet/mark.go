package nearnet

import (
	"context"
	"math"

	"github.com/acorn-eda/acorn/designrule"
	"github.com/acorn-eda/acorn/geom"
	"github.com/acorn-eda/acorn/gridmodel"
)

// queueItem pairs a coordinate with its remaining hop budget, mirroring
// the teacher bfs package's (id, depth) queue entries.
type queueItem struct {
	coord geom.Coordinate
	depth int
}

// Mark floods out from every cell carrying a path-centerline marker
// (gridmodel.Cell.PathCenters) and sets NearANet on every cell within
// maxRadiusPerLayer[z] cardinal hops, same layer — spec.md section 4.7
// step 6. Each seed's flood is independent and idempotent (setting
// NearANet=true on an already-true cell is a no-op), matching the
// concurrency note in spec.md section 5 that these are "embarrassingly
// parallel ... idempotent set-to-true" writes; Mark itself runs the
// seeds sequentially, in grid scan order, for deterministic behavior in
// a single-threaded caller, and exits early on ctx cancellation between
// seeds.
func Mark(ctx context.Context, grid *gridmodel.CellGrid, maxRadiusPerLayer []float64) error {
	var seeds []geom.Coordinate
	grid.ForEachCoordinate(func(c geom.Coordinate) {
		if grid.MustAt(c).PathCenters.Len() > 0 {
			seeds = append(seeds, c)
		}
	})

	for _, seed := range seeds {
		if err := ctx.Err(); err != nil {
			return err
		}
		radius := 0.0
		if seed.Z >= 0 && seed.Z < len(maxRadiusPerLayer) {
			radius = maxRadiusPerLayer[seed.Z]
		}
		floodFrom(grid, seed, int(math.Ceil(radius)))
	}

	return nil
}

// floodFrom marks NearANet on every cell reachable from seed within
// maxDepth cardinal (north/south/east/west) hops on the same layer.
func floodFrom(grid *gridmodel.CellGrid, seed geom.Coordinate, maxDepth int) {
	if maxDepth < 0 {
		return
	}

	visited := map[geom.Coordinate]bool{seed: true}
	queue := []queueItem{{coord: seed, depth: 0}}
	grid.MustAt(seed).NearANet = true

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if item.depth >= maxDepth {
			continue
		}
		for _, move := range designrule.Cardinal.Moves() {
			next, ok := grid.Step(item.coord, move)
			if !ok || visited[next] {
				continue
			}
			visited[next] = true
			grid.MustAt(next).NearANet = true
			queue = append(queue, queueItem{coord: next, depth: item.depth + 1})
		}
	}
}
