package designrule

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfBounds mirrors the teacher matrix package's bounds-check
// sentinel, reused here for RadiusTable's flat row-major storage.
var ErrIndexOutOfBounds = errors.New("designrule: index out of bounds")

// RadiusTable is a dense, row-major table over combined (design-rule set,
// subset, shape-type) indices, exactly the storage shape lvlath's
// matrix.Dense uses for numeric matrices — adapted here because the
// table's "rows" and "columns" are both CombinedIndex values rather than
// arbitrary matrix dimensions, and because DRC's inner loop wants squared
// distances (RadiusTable precomputes both the radius and its square in
// one pass, per spec.md section 4.2).
type RadiusTable struct {
	n    int // both dimensions: n x n
	data []float64
	sq   []float64
}

// NewRadiusTable allocates an n x n table, zero-initialized.
func NewRadiusTable(n int) (*RadiusTable, error) {
	if n <= 0 {
		return nil, fmt.Errorf("designrule: invalid table size %d: %w", n, ErrIndexOutOfBounds)
	}

	return &RadiusTable{n: n, data: make([]float64, n*n), sq: make([]float64, n*n)}, nil
}

func (t *RadiusTable) indexOf(i, j int) (int, error) {
	if i < 0 || i >= t.n || j < 0 || j >= t.n {
		return 0, fmt.Errorf("designrule: RadiusTable(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}

	return i*t.n + j, nil
}

// Set stores the radius value for the ordered pair (i, j) and its square.
func (t *RadiusTable) Set(i, j int, radius float64) error {
	idx, err := t.indexOf(i, j)
	if err != nil {
		return err
	}
	t.data[idx] = radius
	t.sq[idx] = radius * radius

	return nil
}

// At retrieves the radius for the ordered pair (i, j).
func (t *RadiusTable) At(i, j int) (float64, error) {
	idx, err := t.indexOf(i, j)
	if err != nil {
		return 0, err
	}

	return t.data[idx], nil
}

// AtSquared retrieves the precomputed squared radius for (i, j), letting
// DRC's inner scan avoid a sqrt per candidate cell.
func (t *RadiusTable) AtSquared(i, j int) (float64, error) {
	idx, err := t.indexOf(i, j)
	if err != nil {
		return 0, err
	}

	return t.sq[idx], nil
}

// N returns the table's row/column count.
func (t *RadiusTable) N() int {
	return t.n
}

// congestionRadiusSlack enlarges every DRC radius to produce the
// strictly-larger congestion-radius table component C6 deposits
// congestion over (spec.md section 4.2: "cong_radius ... strictly
// larger"). A fixed proportional slack keeps the relationship simple and
// monotonic without inventing a second independent rule catalogue.
const congestionRadiusSlack = 1.5

// Build computes DRCRadius and CongRadius for every populated
// (set, subset, shapeType) pair in the catalogue, using the literal
// formula from spec.md section 4.2: DRCRadius[m][n] = radius(n) +
// spacing[m][n], where spacing is read from subset m's own Spacing table
// entry for the foreign shape type of n.
func (c *Catalogue) Build() error {
	drc, err := NewRadiusTable(NumCombinedIndices)
	if err != nil {
		return err
	}
	cong, err := NewRadiusTable(NumCombinedIndices)
	if err != nil {
		return err
	}

	type entry struct {
		setID, subID int
		shape        ShapeType
		subset       Subset
	}
	var entries []entry
	for setID := 0; setID < MaxDesignRuleSets; setID++ {
		drs := c.Sets[setID]
		if drs == nil {
			continue
		}
		for subID, sub := range drs.Subsets {
			for shape := ShapeType(0); shape < NumShapeTypes; shape++ {
				entries = append(entries, entry{setID: setID, subID: subID, shape: shape, subset: sub})
			}
		}
	}

	for _, m := range entries {
		mi := combinedIndex(m.setID, m.subID, m.shape)
		for _, n := range entries {
			ni := combinedIndex(n.setID, n.subID, n.shape)
			spacing := m.subset.Spacing[m.shape][n.shape]
			radius := n.subset.ShapeRadius(n.shape) + spacing
			if err = drc.Set(mi, ni, radius); err != nil {
				return err
			}
			if err = cong.Set(mi, ni, radius*congestionRadiusSlack); err != nil {
				return err
			}
		}
	}

	c.DRCRadius = drc
	c.CongRadius = cong

	return nil
}
