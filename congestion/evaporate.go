package congestion

import (
	"context"
	"runtime"
	"sync"

	"github.com/acorn-eda/acorn/gridmodel"
)

// UniversalRepellentPath is the reserved path number spec.md section 3
// assigns to the universal repellent congestion setup seeds near hard
// barriers: Decay must never evaporate it.
const UniversalRepellentPath = -1

// Evaporate applies the evaporation rate to every cell's congestion list,
// then compacts zeroed-out entries, per spec.md section 4.4. The
// evaporation pass is sharded across numWorkers goroutines, each owning a
// disjoint contiguous range of the grid's flat cell index space; no two
// goroutines ever touch the same cell, so no locking is needed. Compact
// runs in the same sharded pass, since it only touches the cell it just
// decayed.
//
// Every shard's goroutine is started up front and checks ctx before each
// cell; if ctx is cancelled mid-pass, each goroutine stops at its next
// cell and Evaporate returns ctx.Err(); cells already decayed are left decayed (evaporation
// is idempotent-ish across iterations, so a partial pass is not corrupt,
// merely incomplete).
func Evaporate(ctx context.Context, grid *gridmodel.CellGrid, rate float64, numWorkers int) error {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	n := grid.NumCells()
	if n == 0 {
		return nil
	}
	shardSize := (n + numWorkers - 1) / numWorkers

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	for start := 0; start < n; start += shardSize {
		end := start + shardSize
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					errOnce.Do(func() { firstErr = err })

					return
				}
				cell := grid.CellAtIndex(i)
				cell.Congestion.Decay(rate, UniversalRepellentPath)
				cell.Congestion.Compact()
			}
		}(start, end)
	}
	wg.Wait()

	return firstErr
}
