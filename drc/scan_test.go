package drc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acorn-eda/acorn/designrule"
	"github.com/acorn-eda/acorn/geom"
	"github.com/acorn-eda/acorn/gridmodel"
)

func buildScanCatalogue(t *testing.T) *designrule.Catalogue {
	t.Helper()
	cat := &designrule.Catalogue{}
	cat.Sets[0] = &designrule.DesignRuleSet{
		ID: 0,
		Subsets: []designrule.Subset{{
			ID:             0,
			LineWidthCells: 2,
			Spacing:        [designrule.NumShapeTypes][designrule.NumShapeTypes]float64{{3, 3, 3}, {3, 3, 3}, {3, 3, 3}},
		}},
	}
	require.NoError(t, cat.Build())

	return cat
}

func TestScanDetectsTooCloseForeignPaths(t *testing.T) {
	grid, err := gridmodel.NewCellGrid(10, 10, 1)
	require.NoError(t, err)
	cat := buildScanCatalogue(t)

	a := geom.Coordinate{X: 5, Y: 5}
	b := geom.Coordinate{X: 6, Y: 5}
	require.NoError(t, grid.MustAt(a).MarkPathCenter(1, designrule.Trace))
	require.NoError(t, grid.MustAt(b).MarkPathCenter(2, designrule.Trace))
	grid.MustAt(a).NearANet = true
	grid.MustAt(b).NearANet = true

	subsetOf := map[int]int{1: 0, 2: 0}
	result, err := Scan(grid, cat, subsetOf, NewPairBitset(8))
	require.NoError(t, err)

	require.Len(t, result.Records, 1)
	assert.ElementsMatch(t, []int{1, 2}, []int{result.Records[0].PathA, result.Records[0].PathB})
	assert.True(t, grid.MustAt(a).DRCFlag)
	assert.True(t, grid.MustAt(b).DRCFlag)
	// PerPathCount is 2, not 1: the single (a, b) violation is discovered
	// once from a's own neighborhood scan and once from b's (see Scan's
	// doc comment) — the deduplicated Records list above stays at 1.
	assert.Equal(t, 2, result.PerPathCount[1])
	assert.Equal(t, 2, result.PerPathCount[2])
}

func TestScanNoViolationWhenFarEnoughApart(t *testing.T) {
	grid, err := gridmodel.NewCellGrid(20, 20, 1)
	require.NoError(t, err)
	cat := buildScanCatalogue(t)

	a := geom.Coordinate{X: 0, Y: 0}
	b := geom.Coordinate{X: 15, Y: 15}
	require.NoError(t, grid.MustAt(a).MarkPathCenter(1, designrule.Trace))
	require.NoError(t, grid.MustAt(b).MarkPathCenter(2, designrule.Trace))
	grid.MustAt(a).NearANet = true
	grid.MustAt(b).NearANet = true

	result, err := Scan(grid, cat, map[int]int{1: 0, 2: 0}, NewPairBitset(8))
	require.NoError(t, err)
	assert.Empty(t, result.Records)
}

func TestScanIgnoresSamePathCenter(t *testing.T) {
	grid, err := gridmodel.NewCellGrid(5, 5, 1)
	require.NoError(t, err)
	cat := buildScanCatalogue(t)

	a := geom.Coordinate{X: 2, Y: 2}
	b := geom.Coordinate{X: 3, Y: 2}
	require.NoError(t, grid.MustAt(a).MarkPathCenter(1, designrule.Trace))
	require.NoError(t, grid.MustAt(b).MarkPathCenter(1, designrule.Trace))
	grid.MustAt(a).NearANet = true
	grid.MustAt(b).NearANet = true

	result, err := Scan(grid, cat, map[int]int{1: 0}, NewPairBitset(8))
	require.NoError(t, err)
	assert.Empty(t, result.Records)
}

func TestPairBitsetCanonicalizesOrder(t *testing.T) {
	b := NewPairBitset(8)
	assert.False(t, b.TestAndSet(3, designrule.Trace, 1, designrule.ViaUp))
	assert.True(t, b.TestAndSet(1, designrule.ViaUp, 3, designrule.Trace))
}

func TestPairBitsetResetClearsBits(t *testing.T) {
	b := NewPairBitset(8)
	b.TestAndSet(1, designrule.Trace, 2, designrule.Trace)
	b.Reset()
	assert.False(t, b.TestAndSet(1, designrule.Trace, 2, designrule.Trace))
}
