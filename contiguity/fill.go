package contiguity

import (
	"errors"
	"fmt"

	"github.com/acorn-eda/acorn/designrule"
	"github.com/acorn-eda/acorn/geom"
)

// ErrInvalidJump is returned when two consecutive sparse-path coordinates
// do not differ by exactly one legal move, and the caller has not opted
// out via exitIfInvalidJump=false (spec.md section 7).
var ErrInvalidJump = errors.New("contiguity: invalid inter-segment jump")

// Step is one cell of a dense (contiguous) path, tagged with the shape
// type that occupies it: Trace for lateral segments (including inserted
// diagonal/knight fill cells), ViaUp/ViaDown for the via step that landed
// on it.
type Step struct {
	Coord geom.Coordinate
	Shape designrule.ShapeType
}

// Fill expands a sparse path (as produced by pathfinder.Result.Path) into
// a dense, contiguous sequence of Steps. lineWidthCells is the subset's
// trace radius (half its line width), used to decide whether diagonal moves need
// an inserted orthogonal intermediate (spec.md section 4.3: "inserted
// only when the path's design-rule radius is less than one cell").
//
// If exitIfInvalidJump is false, an unrecognized jump between two
// consecutive sparse coordinates is tolerated: Fill stops expanding and
// returns the dense path built so far with no error, for sub-maps where a
// path may legitimately exit and re-enter the region of interest (spec.md
// section 7).
func Fill(sparse []geom.Coordinate, lineWidthCells float64, exitIfInvalidJump bool) ([]Step, error) {
	if len(sparse) == 0 {
		return nil, nil
	}

	dense := make([]Step, 0, len(sparse)*2)
	dense = append(dense, Step{Coord: sparse[0], Shape: designrule.Trace})

	for i := 1; i < len(sparse); i++ {
		prev, cur := sparse[i-1], sparse[i]
		dx, dy, dz := cur.Delta(prev)

		switch {
		case dx == 0 && dy == 0 && dz != 0 && abs(dz) == 1:
			shape := designrule.ViaUp
			if dz < 0 {
				shape = designrule.ViaDown
			}
			dense = append(dense, Step{Coord: cur, Shape: shape})

		case dz == 0 && abs(dx) == 1 && abs(dy) == 1:
			if lineWidthCells < 1 {
				intermediate := geom.Coordinate{X: prev.X + dx, Y: prev.Y, Z: prev.Z}
				dense = append(dense, Step{Coord: intermediate, Shape: designrule.Trace})
			}
			dense = append(dense, Step{Coord: cur, Shape: designrule.Trace})

		case dz == 0 && abs(dx) == 2 && abs(dy) == 1:
			midX := (prev.X + cur.X) / 2
			dense = append(dense,
				Step{Coord: geom.Coordinate{X: midX, Y: prev.Y, Z: prev.Z}, Shape: designrule.Trace},
				Step{Coord: geom.Coordinate{X: midX, Y: cur.Y, Z: prev.Z}, Shape: designrule.Trace},
				Step{Coord: cur, Shape: designrule.Trace},
			)

		case dz == 0 && abs(dx) == 1 && abs(dy) == 2:
			midY := (prev.Y + cur.Y) / 2
			dense = append(dense,
				Step{Coord: geom.Coordinate{X: prev.X, Y: midY, Z: prev.Z}, Shape: designrule.Trace},
				Step{Coord: geom.Coordinate{X: cur.X, Y: midY, Z: prev.Z}, Shape: designrule.Trace},
				Step{Coord: cur, Shape: designrule.Trace},
			)

		case dz == 0 && ((dx == 0 && abs(dy) == 1) || (dy == 0 && abs(dx) == 1)):
			dense = append(dense, Step{Coord: cur, Shape: designrule.Trace})

		default:
			if !exitIfInvalidJump {
				return dense, nil
			}

			return nil, fmt.Errorf("contiguity: jump %s -> %s: %w", prev, cur, ErrInvalidJump)
		}
	}

	return dense, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
