package nearnet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acorn-eda/acorn/designrule"
	"github.com/acorn-eda/acorn/geom"
	"github.com/acorn-eda/acorn/gridmodel"
)

func TestMaxInteractionRadius(t *testing.T) {
	grid, err := gridmodel.NewCellGrid(3, 3, 1)
	require.NoError(t, err)
	cat := &designrule.Catalogue{}
	cat.Sets[0] = &designrule.DesignRuleSet{
		ID: 0,
		Subsets: []designrule.Subset{{
			ID:             0,
			LineWidthCells: 4,
			Spacing:        [designrule.NumShapeTypes][designrule.NumShapeTypes]float64{{2, 2, 2}, {2, 2, 2}, {2, 2, 2}},
		}},
	}
	require.NoError(t, cat.Build())

	radii := MaxInteractionRadius(grid, cat)
	require.Len(t, radii, 1)
	assert.Greater(t, radii[0], 0.0)
}

func TestMarkFloodsFromPathCenterWithinRadius(t *testing.T) {
	grid, err := gridmodel.NewCellGrid(10, 10, 1)
	require.NoError(t, err)

	center := geom.Coordinate{X: 5, Y: 5}
	require.NoError(t, grid.MustAt(center).MarkPathCenter(1, designrule.Trace))

	require.NoError(t, Mark(context.Background(), grid, []float64{2}))

	assert.True(t, grid.MustAt(center).NearANet)
	assert.True(t, grid.MustAt(geom.Coordinate{X: 6, Y: 5}).NearANet)
	assert.True(t, grid.MustAt(geom.Coordinate{X: 7, Y: 5}).NearANet)
	assert.False(t, grid.MustAt(geom.Coordinate{X: 9, Y: 5}).NearANet)
}

func TestMarkZeroRadiusOnlyMarksSeed(t *testing.T) {
	grid, err := gridmodel.NewCellGrid(5, 5, 1)
	require.NoError(t, err)
	center := geom.Coordinate{X: 2, Y: 2}
	require.NoError(t, grid.MustAt(center).MarkPathCenter(1, designrule.Trace))

	require.NoError(t, Mark(context.Background(), grid, []float64{0}))

	assert.True(t, grid.MustAt(center).NearANet)
	assert.False(t, grid.MustAt(geom.Coordinate{X: 3, Y: 2}).NearANet)
}

func TestMarkRespectsCancellation(t *testing.T) {
	grid, err := gridmodel.NewCellGrid(5, 5, 1)
	require.NoError(t, err)
	require.NoError(t, grid.MustAt(geom.Coordinate{X: 0, Y: 0}).MarkPathCenter(1, designrule.Trace))
	require.NoError(t, grid.MustAt(geom.Coordinate{X: 4, Y: 4}).MarkPathCenter(2, designrule.Trace))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = Mark(ctx, grid, []float64{1})
	assert.ErrorIs(t, err, context.Canceled)
}
