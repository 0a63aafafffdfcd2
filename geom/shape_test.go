package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 0, 0)
	ok, err := r.Contains(5, 5)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.Contains(11, 5)
	require.NoError(t, err)
	assert.False(t, ok)

	minX, minY, maxX, maxY := r.BoundingBox()
	assert.Equal(t, [4]float64{0, 0, 10, 10}, [4]float64{minX, minY, maxX, maxY})
}

func TestCircContains(t *testing.T) {
	c := NewCirc(0, 0, 5)
	ok, err := c.Contains(3, 4) // exactly on boundary (3-4-5 triangle)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Contains(4, 4)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTriContains(t *testing.T) {
	tri := NewTri(0, 0, 10, 0, 0, 10)
	ok, err := tri.Contains(1, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = tri.Contains(9, 9)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUnknownShapeKind(t *testing.T) {
	s := Shape{Kind: ShapeKind(99)}
	_, err := s.Contains(0, 0)
	assert.ErrorIs(t, err, ErrUnknownShapeKind)
}
