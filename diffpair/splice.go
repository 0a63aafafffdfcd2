package diffpair

import (
	"math"

	"github.com/acorn-eda/acorn/geom"
)

// laterallyNearThreshold bounds how far (in lateral grid cells) a
// candidate layer-transition vertex may sit from the pseudo-path via
// location and still count as "the nearby transition" rather than an
// unrelated via elsewhere on the same shoulder.
const laterallyNearThreshold = 3

// FindLayerTransition locates the index i in path such that path[i] and
// path[i+1] form a layer transition near via, trying progressively looser
// matches as spec.md section 4.5 prescribes: first the exact
// fromLayer->toLayer transition, then any transition away from fromLayer,
// then any transition into toLayer. Returns ErrNoLayerTransition if none
// of the three searches finds a candidate.
func FindLayerTransition(path []geom.Coordinate, via geom.Coordinate, fromLayer, toLayer int) (int, error) {
	if idx, ok := nearestTransition(path, via, func(a, b geom.Coordinate) bool {
		return a.Z == fromLayer && b.Z == toLayer
	}); ok {
		return idx, nil
	}

	if idx, ok := nearestTransition(path, via, func(a, b geom.Coordinate) bool {
		return a.Z == fromLayer && b.Z != fromLayer
	}); ok {
		return idx, nil
	}

	if idx, ok := nearestTransition(path, via, func(a, b geom.Coordinate) bool {
		return b.Z == toLayer && a.Z != toLayer
	}); ok {
		return idx, nil
	}

	return -1, ErrNoLayerTransition
}

// nearestTransition scans consecutive vertex pairs in path matching pred,
// returning the index of the pair whose first vertex lies laterally
// closest to via (and within laterallyNearThreshold).
func nearestTransition(path []geom.Coordinate, via geom.Coordinate, pred func(a, b geom.Coordinate) bool) (int, bool) {
	bestIdx := -1
	bestDist := math.MaxFloat64

	for i := 0; i+1 < len(path); i++ {
		if !pred(path[i], path[i+1]) {
			continue
		}
		d := distance(path[i], via)
		if d > laterallyNearThreshold {
			continue
		}
		if d < bestDist {
			bestDist = d
			bestIdx = i
		}
	}

	return bestIdx, bestIdx >= 0
}

// Splice inserts via into path immediately after index idx, returning the
// extended path. The caller is expected to have located idx with
// FindLayerTransition.
func Splice(path []geom.Coordinate, idx int, via geom.Coordinate) []geom.Coordinate {
	out := make([]geom.Coordinate, 0, len(path)+1)
	out = append(out, path[:idx+1]...)
	out = append(out, via)
	out = append(out, path[idx+1:]...)

	return out
}
