package diffpair

import (
	"testing"

	"github.com/acorn-eda/acorn/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPseudoEndpointsMidpoint(t *testing.T) {
	start, end, err := PseudoEndpoints(
		geom.New(0, 0, 0), geom.New(10, 0, 0),
		geom.New(0, 20, 0), geom.New(10, 20, 0),
	)
	require.NoError(t, err)
	assert.Equal(t, geom.New(5, 0, 0), start)
	assert.Equal(t, geom.New(5, 20, 0), end)
}

func TestPseudoEndpointsRejectsLayerMismatch(t *testing.T) {
	_, _, err := PseudoEndpoints(
		geom.New(0, 0, 0), geom.New(10, 0, 1),
		geom.New(0, 20, 0), geom.New(10, 20, 0),
	)
	assert.ErrorIs(t, err, ErrLayerMismatch)
}
