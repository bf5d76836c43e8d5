package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bootstrapSample = []float64{
	101, 98, 103, 97, 105, 99, 102, 100, 104, 96,
	107, 95, 101, 103, 99, 100, 98, 106, 102, 97,
}

func TestBootstrapPointMatchesDescriptiveStatistic(t *testing.T) {
	est := Bootstrap(bootstrapSample, 1000, 0.95, 1, Mean)
	assert.Equal(t, Mean(bootstrapSample), est.Point)
	assert.Equal(t, 0.95, est.Confidence)

	varEst := Bootstrap(bootstrapSample, 1000, 0.95, 1, Variance)
	assert.Equal(t, Variance(bootstrapSample), varEst.Point)
}

func TestBootstrapIntervalContainsMean(t *testing.T) {
	est := Bootstrap(bootstrapSample, 2000, 0.95, 7, Mean)

	assert.LessOrEqual(t, est.Lower, est.Point)
	assert.GreaterOrEqual(t, est.Upper, est.Point)
}

func TestBootstrapDeterministicForSeed(t *testing.T) {
	a := Bootstrap(bootstrapSample, 500, 0.95, 99, Mean)
	b := Bootstrap(bootstrapSample, 500, 0.95, 99, Mean)

	assert.Equal(t, a, b)
}

func TestBootstrapWidensWithConfidence(t *testing.T) {
	// Same data, seed and resample count: the resampled distribution is
	// identical, so a higher confidence level can only widen the interval.
	narrow := Bootstrap(bootstrapSample, 1000, 0.80, 3, Mean)
	wide := Bootstrap(bootstrapSample, 1000, 0.99, 3, Mean)

	assert.LessOrEqual(t, wide.Lower, narrow.Lower)
	assert.GreaterOrEqual(t, wide.Upper, narrow.Upper)
}

func TestBootstrapDegenerateInputs(t *testing.T) {
	est := Bootstrap(nil, 100, 0.95, 1, Mean)
	assert.Equal(t, est.Point, est.Lower)
	assert.Equal(t, est.Point, est.Upper)

	est = Bootstrap(bootstrapSample, 0, 0.95, 1, Mean)
	require.Equal(t, Mean(bootstrapSample), est.Point)
	assert.Equal(t, est.Point, est.Lower)
	assert.Equal(t, est.Point, est.Upper)
}

func TestBootstrapConstantSample(t *testing.T) {
	xs := []float64{5, 5, 5, 5, 5}
	est := Bootstrap(xs, 200, 0.95, 1, Mean)

	assert.Equal(t, 5.0, est.Point)
	assert.Equal(t, 5.0, est.Lower)
	assert.Equal(t, 5.0, est.Upper)
}
