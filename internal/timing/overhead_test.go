package timing

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Small invocation budget so calibration stays fast in tests.
const testCalibrationBudget = 10_000

func TestEstimateIsCachedAcrossCalls(t *testing.T) {
	cache := NewOverheadCache(testCalibrationBudget)

	first := cache.Estimate()
	second := cache.Estimate()

	assert.Equal(t, first, second, "second call must return the cached value, not recalibrate")
	assert.GreaterOrEqual(t, first, time.Duration(0))
}

func TestSetPinsAgainstRecomputation(t *testing.T) {
	cache := NewOverheadCache(testCalibrationBudget)
	pinned := 37 * time.Nanosecond

	cache.Set(pinned)

	assert.Equal(t, pinned, cache.Estimate())
	assert.Equal(t, pinned, cache.Calibrate(), "Calibrate must not disturb a pinned value")
	assert.Equal(t, pinned, cache.Estimate())
	assert.True(t, cache.Pinned())
}

func TestInvalidateReenablesCalibration(t *testing.T) {
	cache := NewOverheadCache(testCalibrationBudget)
	cache.Set(time.Hour) // absurd pin, must disappear after invalidation

	cache.Invalidate()
	assert.False(t, cache.Pinned())

	fresh := cache.Estimate()
	assert.Less(t, fresh, time.Second, "invalidation must trigger a real recalibration")
}

func TestEstimateConcurrentReaders(t *testing.T) {
	cache := NewOverheadCache(testCalibrationBudget)

	var wg sync.WaitGroup
	results := make([]time.Duration, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = cache.Estimate()
		}(i)
	}
	wg.Wait()

	for _, r := range results[1:] {
		assert.Equal(t, results[0], r, "all readers must observe the same cached value")
	}
}

func TestCalibrateRefreshesCache(t *testing.T) {
	cache := NewOverheadCache(testCalibrationBudget)
	cache.Set(time.Minute)
	cache.Invalidate()

	d := cache.Calibrate()
	assert.Equal(t, d, cache.Estimate())
}
