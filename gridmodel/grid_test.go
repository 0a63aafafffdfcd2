package gridmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acorn-eda/acorn/designrule"
	"github.com/acorn-eda/acorn/geom"
)

func TestNewCellGridAndBounds(t *testing.T) {
	g, err := NewCellGrid(10, 10, 2)
	require.NoError(t, err)
	assert.True(t, g.InBounds(geom.Coordinate{X: 0, Y: 0, Z: 0}))
	assert.False(t, g.InBounds(geom.Coordinate{X: 10, Y: 0, Z: 0}))

	_, err = NewCellGrid(0, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestAtOutOfBounds(t *testing.T) {
	g, err := NewCellGrid(3, 3, 1)
	require.NoError(t, err)
	_, err = g.At(geom.Coordinate{X: 5, Y: 0, Z: 0})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestStep(t *testing.T) {
	g, err := NewCellGrid(3, 3, 1)
	require.NoError(t, err)
	next, ok := g.Step(geom.Coordinate{X: 1, Y: 1, Z: 0}, designrule.North)
	require.True(t, ok)
	assert.Equal(t, geom.Coordinate{X: 1, Y: 2, Z: 0}, next)

	_, ok = g.Step(geom.Coordinate{X: 0, Y: 0, Z: 0}, designrule.West)
	assert.False(t, ok)
}

func TestWalkableRespectsBarrierAndProximity(t *testing.T) {
	g, err := NewCellGrid(5, 5, 1)
	require.NoError(t, err)
	barrier := g.MustAt(geom.Coordinate{X: 2, Y: 2, Z: 0})
	barrier.ForbiddenTraceBarrier = true
	assert.False(t, barrier.Walkable(0, designrule.Trace))

	clean := g.MustAt(geom.Coordinate{X: 0, Y: 0, Z: 0})
	assert.True(t, clean.Walkable(0, designrule.Trace))

	clean.ForbiddenProximityBarrier = 1 << uint(LocalIndex(0, designrule.Trace))
	assert.False(t, clean.Walkable(0, designrule.Trace))
}

func TestDeriveProximityMasksFlagsNeighborOfBarrier(t *testing.T) {
	g, err := NewCellGrid(10, 10, 1)
	require.NoError(t, err)

	sub := designrule.Subset{LineWidthCells: 2, Spacing: [designrule.NumShapeTypes][designrule.NumShapeTypes]float64{
		{3, 3, 3}, {3, 3, 3}, {3, 3, 3},
	}}
	cat := &designrule.Catalogue{}
	cat.Sets[0] = &designrule.DesignRuleSet{Subsets: []designrule.Subset{sub}}
	require.NoError(t, cat.Build())

	g.MustAt(geom.Coordinate{X: 5, Y: 5, Z: 0}).ForbiddenTraceBarrier = true

	require.NoError(t, g.DeriveProximityMasks(cat))

	near := g.MustAt(geom.Coordinate{X: 5, Y: 6, Z: 0})
	assert.True(t, near.ForbiddenByProximity(0, designrule.Trace))

	far := g.MustAt(geom.Coordinate{X: 0, Y: 0, Z: 0})
	assert.False(t, far.ForbiddenByProximity(0, designrule.Trace))
}

func TestClearTransient(t *testing.T) {
	c := &Cell{Explored: true, NearANet: true, DRCFlag: true}
	c.ClearTransient()
	assert.False(t, c.Explored)
	assert.False(t, c.NearANet)
	assert.False(t, c.DRCFlag)
}
