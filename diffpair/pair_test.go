package diffpair

import (
	"testing"

	"github.com/acorn-eda/acorn/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedViaParams(fromLayer, toLayer int) (ViaDiameters, Spacings, float64) {
	return ViaDiameters{Up: 2, Down: 2}, Spacings{UpToUp: 2, UpToTrace: 2, DownToDown: 2, DownToTrace: 2}, 4
}

func TestSynthesizeSplicesViaAtLayerTransition(t *testing.T) {
	pseudo := []geom.Coordinate{
		geom.New(10, 10, 0),
		geom.New(20, 10, 0),
		geom.New(20, 10, 1),
		geom.New(30, 10, 1),
	}
	legal := permissiveLegality{blocked: map[geom.Coordinate]bool{}}

	result, err := Synthesize(pseudo, 2, legal, fixedViaParams)
	require.NoError(t, err)

	assert.Len(t, result.Shoulders.A, 5) // 4 projected vertices + 1 spliced via
	assert.Len(t, result.Shoulders.B, 5)
}

func TestSynthesizeWithoutLayerTransitionJustProjects(t *testing.T) {
	pseudo := []geom.Coordinate{
		geom.New(10, 10, 0),
		geom.New(20, 10, 0),
		geom.New(30, 10, 0),
	}
	legal := permissiveLegality{blocked: map[geom.Coordinate]bool{}}

	result, err := Synthesize(pseudo, 2, legal, fixedViaParams)
	require.NoError(t, err)
	assert.Len(t, result.Shoulders.A, 3)
}
