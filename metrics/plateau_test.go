package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlateauInsufficientHistory(t *testing.T) {
	var h History
	for i := 0; i < PlateauWindow; i++ {
		h.Add(float64(100 - i))
	}
	_, ok := h.DetectPlateau()
	assert.False(t, ok, "need 2*PlateauWindow samples before the past-window comparison is possible")
}

func TestDetectPlateauFlatHistoryIsExactZero(t *testing.T) {
	var h History
	for i := 0; i < 2*PlateauWindow; i++ {
		h.Add(500)
	}
	result, ok := h.DetectPlateau()
	require := assert.New(t)
	require.True(ok)
	require.True(result.Plateaued)
	require.Zero(result.Current.Slope)
	require.Zero(result.Current.StdDev)
}

func TestDetectPlateauSteadyDeclineIsNotAPlateau(t *testing.T) {
	var h History
	for i := 0; i < 3*PlateauWindow; i++ {
		h.Add(float64(1000 - 50*i)) // steep steady decline
	}
	result, ok := h.DetectPlateau()
	assert := assert.New(t)
	assert.True(ok)
	assert.False(result.Plateaued)
}

func TestDetectPlateauNoisyButConvergedIsAPlateau(t *testing.T) {
	var h History
	// 20 nearly-identical samples with tiny jitter: small current slope,
	// comparable stddev to 10 iterations earlier.
	samples := []float64{
		200, 199, 201, 200, 198, 202, 200, 199, 201, 200,
		200, 198, 202, 199, 201, 200, 200, 201, 199, 200,
	}
	for _, s := range samples {
		h.Add(s)
	}
	result, ok := h.DetectPlateau()
	assert := assert.New(t)
	assert.True(ok)
	assert.True(result.Plateaued)
}

func TestWindowStatsMean(t *testing.T) {
	var h History
	for _, v := range []float64{10, 20, 30, 40} {
		h.Add(v)
	}
	stats, ok := h.Stats(4, 4)
	assert := assert.New(t)
	assert.True(ok)
	assert.Equal(25.0, stats.Mean)
	assert.Greater(stats.Slope, 0.0)
}
