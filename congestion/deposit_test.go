package congestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acorn-eda/acorn/contiguity"
	"github.com/acorn-eda/acorn/designrule"
	"github.com/acorn-eda/acorn/geom"
	"github.com/acorn-eda/acorn/gridmodel"
)

func buildTestCatalogue(t *testing.T) *designrule.Catalogue {
	t.Helper()
	cat := &designrule.Catalogue{}
	cat.Sets[0] = &designrule.DesignRuleSet{
		ID: 0,
		Subsets: []designrule.Subset{{
			ID:             0,
			LineWidthCells: 2,
			Spacing:        [designrule.NumShapeTypes][designrule.NumShapeTypes]float64{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}},
			Directions:     designrule.MaskManhattan,
		}},
	}
	require.NoError(t, cat.Build())

	return cat
}

func TestDepositSpreadsWithinRadius(t *testing.T) {
	grid, err := gridmodel.NewCellGrid(10, 10, 1)
	require.NoError(t, err)
	cat := buildTestCatalogue(t)

	dense := []contiguity.Step{{Coord: geom.Coordinate{X: 5, Y: 5}, Shape: designrule.Trace}}
	require.NoError(t, Deposit(grid, cat, dense, 1, 0, 100))

	center := grid.MustAt(geom.Coordinate{X: 5, Y: 5})
	entry := center.Congestion.Get(0)
	assert.EqualValues(t, 110, entry.Traversals) // base 100 + 10% self-repellent

	neighbor := grid.MustAt(geom.Coordinate{X: 6, Y: 5})
	require.Equal(t, 1, neighbor.Congestion.Len())
	assert.EqualValues(t, 100, neighbor.Congestion.Get(0).Traversals)

	far := grid.MustAt(geom.Coordinate{X: 0, Y: 0})
	assert.Equal(t, 0, far.Congestion.Len())
}

func TestDepositUnknownDesignRuleSet(t *testing.T) {
	grid, err := gridmodel.NewCellGrid(3, 3, 1)
	require.NoError(t, err)
	cat := &designrule.Catalogue{}
	require.NoError(t, cat.Build())

	dense := []contiguity.Step{{Coord: geom.Coordinate{X: 1, Y: 1}, Shape: designrule.Trace}}
	err = Deposit(grid, cat, dense, 1, 0, 100)
	assert.ErrorIs(t, err, ErrUnknownDesignRuleSet)
}
