package pathfinder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acorn-eda/acorn/designrule"
	"github.com/acorn-eda/acorn/geom"
	"github.com/acorn-eda/acorn/gridmodel"
)

func buildCatalogue(t *testing.T, directions designrule.DirectionMask) *designrule.Catalogue {
	t.Helper()
	cat := &designrule.Catalogue{}
	cat.Sets[0] = &designrule.DesignRuleSet{
		ID: 0,
		Subsets: []designrule.Subset{{
			ID:             0,
			LineWidthCells: 2,
			Spacing:        [designrule.NumShapeTypes][designrule.NumShapeTypes]float64{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}},
			Directions:     directions,
		}},
	}
	require.NoError(t, cat.Build())

	return cat
}

func TestFindPathStraightLineManhattan(t *testing.T) {
	grid, err := gridmodel.NewCellGrid(10, 10, 1)
	require.NoError(t, err)
	cat := buildCatalogue(t, designrule.MaskManhattan)

	start := geom.Coordinate{X: 0, Y: 0}
	end := geom.Coordinate{X: 0, Y: 5}
	result, err := FindPath(grid, cat, start, end, 1, 0, nil)
	require.NoError(t, err)
	require.NotEmpty(t, result.Path)
	assert.Equal(t, start, result.Path[0])
	assert.Equal(t, end, result.Path[len(result.Path)-1])
	assert.Len(t, result.Path, 6)
}

func TestFindPathUnreachableBehindBarrier(t *testing.T) {
	grid, err := gridmodel.NewCellGrid(5, 5, 1)
	require.NoError(t, err)
	cat := buildCatalogue(t, designrule.MaskManhattan)

	for x := 0; x < 5; x++ {
		grid.MustAt(geom.Coordinate{X: x, Y: 2}).ForbiddenTraceBarrier = true
	}

	result, err := FindPath(grid, cat, geom.Coordinate{X: 0, Y: 0}, geom.Coordinate{X: 0, Y: 4}, 1, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Path)
	assert.Zero(t, result.GCost)
}

func TestFindPathRoutesAroundCongestion(t *testing.T) {
	grid, err := gridmodel.NewCellGrid(5, 3, 1)
	require.NoError(t, err)
	cat := buildCatalogue(t, designrule.MaskAny)

	require.NoError(t, grid.MustAt(geom.Coordinate{X: 2, Y: 0}).Congestion.Add(99, 0, designrule.Trace, 100000))

	result, err := FindPath(grid, cat, geom.Coordinate{X: 0, Y: 0}, geom.Coordinate{X: 4, Y: 0}, 1, 0, nil,
		WithCongestionMultipliers(CongestionMultipliers{Trace: 100, Via: 100, DiffPairViaScale: 16, DiffPairTraceScale: 1}))
	require.NoError(t, err)
	require.NotEmpty(t, result.Path)

	for _, c := range result.Path {
		assert.False(t, c.X == 2 && c.Y == 0, "path should avoid the heavily congested cell")
	}
}

func TestFindPathStartOutOfBounds(t *testing.T) {
	grid, err := gridmodel.NewCellGrid(3, 3, 1)
	require.NoError(t, err)
	cat := buildCatalogue(t, designrule.MaskManhattan)

	_, err = FindPath(grid, cat, geom.Coordinate{X: -1, Y: 0}, geom.Coordinate{X: 1, Y: 1}, 1, 0, nil)
	assert.ErrorIs(t, err, ErrStartOutOfBounds)
}

func TestFindPathDijkstraModeZeroesHeuristic(t *testing.T) {
	grid, err := gridmodel.NewCellGrid(6, 6, 1)
	require.NoError(t, err)
	cat := buildCatalogue(t, designrule.MaskManhattan)

	result, err := FindPath(grid, cat, geom.Coordinate{X: 0, Y: 0}, geom.Coordinate{X: 0, Y: 3}, 1, 0, nil, Dijkstra())
	require.NoError(t, err)
	require.NotEmpty(t, result.Path)
	assert.Equal(t, geom.Coordinate{X: 0, Y: 3}, result.Path[len(result.Path)-1])
}

func TestFindPathSameStartAndEndReturnsLengthOneZeroCost(t *testing.T) {
	grid, err := gridmodel.NewCellGrid(5, 5, 1)
	require.NoError(t, err)
	cat := buildCatalogue(t, designrule.MaskManhattan)

	same := geom.Coordinate{X: 2, Y: 2}
	result, err := FindPath(grid, cat, same, same, 1, 0, nil)
	require.NoError(t, err)
	require.Len(t, result.Path, 1)
	assert.Equal(t, same, result.Path[0])
	assert.Zero(t, result.GCost)
}

func TestFindPathKnightOnlyMaskOnTwoByTwoGridFindsNoPath(t *testing.T) {
	grid, err := gridmodel.NewCellGrid(2, 2, 1)
	require.NoError(t, err)
	cat := buildCatalogue(t, designrule.Knight)

	// Every knight-move destination from a corner of a 2x2 grid lands
	// off-grid entirely (the nearest is two cells away on one axis), so
	// grid.Step's own bounds check rejects the move before intermediate
	// legality is ever consulted.
	result, err := FindPath(grid, cat, geom.Coordinate{X: 0, Y: 0}, geom.Coordinate{X: 1, Y: 1}, 1, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Path, "no cardinal/diagonal move is permitted under a knight-only mask, and every knight move from the corner runs off-grid")
}

func TestFindPathRoutingRestrictionSkipsOutsideRadius(t *testing.T) {
	grid, err := gridmodel.NewCellGrid(20, 20, 1)
	require.NoError(t, err)
	cat := buildCatalogue(t, designrule.MaskManhattan)

	restriction := &RoutingRestriction{PivotX: 0, PivotY: 0, RadiusCells: 3}
	result, err := FindPath(grid, cat, geom.Coordinate{X: 0, Y: 0}, geom.Coordinate{X: 10, Y: 10}, 1, 0, restriction)
	require.NoError(t, err)
	assert.Empty(t, result.Path)
}
