package diffpair

import (
	"testing"

	"github.com/acorn-eda/acorn/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHalfDistancePicksLargestCandidate(t *testing.T) {
	vias := ViaDiameters{Up: 4, Down: 4}
	spacing := Spacings{UpToUp: 10, UpToTrace: 1, DownToDown: 1, DownToTrace: 1}
	got := HalfDistance(vias, spacing, 2)
	assert.Equal(t, 7.0, got) // 0.5*(4+10) dominates
}

func TestHalfDistanceFallsBackToPairPitch(t *testing.T) {
	vias := ViaDiameters{Up: 0, Down: 0}
	spacing := Spacings{}
	got := HalfDistance(vias, spacing, 20)
	assert.Equal(t, 10.0, got)
}

func TestPerpendicularBisectsBothTangents(t *testing.T) {
	before, _ := normalize(point2{X: 1, Y: 0})
	after, _ := normalize(point2{X: 0, Y: 1})
	dir, ok := Perpendicular(before, after, true, true)
	require.True(t, ok)
	assert.InDelta(t, 1.0, length(dir), 1e-9)
}

func TestPerpendicularFallsBackToSingleTangent(t *testing.T) {
	before, _ := normalize(point2{X: 1, Y: 0})
	dir, ok := Perpendicular(before, point2{}, true, false)
	require.True(t, ok)
	assert.InDelta(t, 0.0, dot(dir, before), 1e-9)
}

func TestPerpendicularFailsWithNoTangents(t *testing.T) {
	_, ok := Perpendicular(point2{}, point2{}, false, false)
	assert.False(t, ok)
}

func TestPlaceViasFindsLegalRadius(t *testing.T) {
	center := geom.New(50, 50, 0)
	dir := point2{X: 1, Y: 0}
	legal := permissiveLegality{blocked: map[geom.Coordinate]bool{}}

	a, b, err := PlaceVias(center, dir, 4, legal)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.Equal(t, center.Z, a.Z)
	assert.Equal(t, center.Z, b.Z)
}

func TestPlaceViasFailsWhenFullyBlocked(t *testing.T) {
	center := geom.New(50, 50, 0)
	dir := point2{X: 1, Y: 0}
	blocked := map[geom.Coordinate]bool{}
	for dx := -10; dx <= 10; dx++ {
		blocked[geom.New(50+dx, 50, 0)] = true
	}
	legal := permissiveLegality{blocked: blocked}

	_, _, err := PlaceVias(center, dir, 4, legal)
	assert.ErrorIs(t, err, ErrViaPlacementInfeasible)
}

func TestDistanceIsEuclidean(t *testing.T) {
	a := geom.New(0, 0, 0)
	b := geom.New(3, 4, 0)
	assert.Equal(t, 5.0, distance(a, b))
}
