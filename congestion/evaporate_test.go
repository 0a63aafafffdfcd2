package congestion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acorn-eda/acorn/designrule"
	"github.com/acorn-eda/acorn/gridmodel"
)

func TestEvaporateDecaysAndCompactsAllCells(t *testing.T) {
	grid, err := gridmodel.NewCellGrid(4, 4, 1)
	require.NoError(t, err)

	for i := 0; i < grid.NumCells(); i++ {
		require.NoError(t, grid.CellAtIndex(i).Congestion.Add(1, 0, designrule.Trace, 100))
	}

	require.NoError(t, Evaporate(context.Background(), grid, 1.0, 4))

	for i := 0; i < grid.NumCells(); i++ {
		assert.Equal(t, 0, grid.CellAtIndex(i).Congestion.Len())
	}
}

func TestEvaporateExemptsUniversalRepellent(t *testing.T) {
	grid, err := gridmodel.NewCellGrid(2, 2, 1)
	require.NoError(t, err)
	cell := grid.CellAtIndex(0)
	require.NoError(t, cell.Congestion.Add(UniversalRepellentPath, 0, designrule.Trace, 100))

	require.NoError(t, Evaporate(context.Background(), grid, 1.0, 2))

	require.Equal(t, 1, cell.Congestion.Len())
	assert.EqualValues(t, 100, cell.Congestion.Get(0).Traversals)
}

func TestEvaporateRespectsCancellation(t *testing.T) {
	grid, err := gridmodel.NewCellGrid(100, 100, 1)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = Evaporate(ctx, grid, 0.5, 4)
	assert.ErrorIs(t, err, context.Canceled)
}
