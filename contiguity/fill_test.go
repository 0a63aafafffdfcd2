package contiguity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acorn-eda/acorn/designrule"
	"github.com/acorn-eda/acorn/geom"
)

func TestFillOrthogonalIsUnchanged(t *testing.T) {
	sparse := []geom.Coordinate{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}}
	dense, err := Fill(sparse, 2, true)
	require.NoError(t, err)
	require.Len(t, dense, 3)
	for _, s := range dense {
		assert.Equal(t, designrule.Trace, s.Shape)
	}
}

func TestFillThinDiagonalInsertsIntermediate(t *testing.T) {
	sparse := []geom.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 1}}
	dense, err := Fill(sparse, 0.5, true)
	require.NoError(t, err)
	require.Len(t, dense, 3)
	assert.Equal(t, geom.Coordinate{X: 1, Y: 0}, dense[1].Coord)
}

func TestFillWideDiagonalSkipsIntermediate(t *testing.T) {
	sparse := []geom.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 1}}
	dense, err := Fill(sparse, 2, true)
	require.NoError(t, err)
	require.Len(t, dense, 2)
}

func TestFillKnightMoveInsertsTwoIntermediates(t *testing.T) {
	sparse := []geom.Coordinate{{X: 0, Y: 0}, {X: 2, Y: 1}}
	dense, err := Fill(sparse, 2, true)
	require.NoError(t, err)
	require.Len(t, dense, 4)
	assert.Equal(t, geom.Coordinate{X: 1, Y: 0}, dense[1].Coord)
	assert.Equal(t, geom.Coordinate{X: 1, Y: 1}, dense[2].Coord)
	assert.Equal(t, geom.Coordinate{X: 2, Y: 1}, dense[3].Coord)

	// Every consecutive pair differs by at most one in each of X/Y/Z.
	for i := 1; i < len(dense); i++ {
		dx, dy, dz := dense[i].Coord.Delta(dense[i-1].Coord)
		assert.LessOrEqual(t, abs(dx), 1)
		assert.LessOrEqual(t, abs(dy), 1)
		assert.LessOrEqual(t, abs(dz), 1)
	}
}

func TestFillViaStep(t *testing.T) {
	sparse := []geom.Coordinate{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 1}}
	dense, err := Fill(sparse, 2, true)
	require.NoError(t, err)
	require.Len(t, dense, 2)
	assert.Equal(t, designrule.ViaUp, dense[1].Shape)
}

func TestFillInvalidJump(t *testing.T) {
	sparse := []geom.Coordinate{{X: 0, Y: 0}, {X: 5, Y: 5}}
	_, err := Fill(sparse, 2, true)
	assert.ErrorIs(t, err, ErrInvalidJump)

	dense, err := Fill(sparse, 2, false)
	require.NoError(t, err)
	assert.Len(t, dense, 1)
}
