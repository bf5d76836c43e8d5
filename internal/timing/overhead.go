package timing

import (
	"sync"
	"time"
)

// Calibration runs a fixed, large number of no-op invocations through the
// same RunBatch path used for real measurements, so the estimate reflects the
// measurement machinery itself (call dispatch, interface boxing, clock reads)
// rather than any particular workload. That takes a few seconds of wall time,
// which is why the result is cached process-wide.
const (
	defaultCalibrationInvocations = 400_000_000
	calibrationBatches            = 10
)

// OverheadCache is a thread-safe, lazily computed per-invocation overhead
// estimate. The zero value is ready to use. One process-wide instance backs
// the package-level functions; tests construct their own with a smaller
// invocation budget.
type OverheadCache struct {
	mu          sync.RWMutex
	estimate    time.Duration
	known       bool
	pinned      bool
	invocations int // 0 means defaultCalibrationInvocations
}

// NewOverheadCache returns a cache that calibrates with the given number of
// no-op invocations. Intended for tests; production code uses the
// package-level cache.
func NewOverheadCache(invocations int) *OverheadCache {
	return &OverheadCache{invocations: invocations}
}

// Estimate returns the cached per-invocation overhead, calibrating lazily on
// first use. Concurrent readers only contend during that first calibration.
func (c *OverheadCache) Estimate() time.Duration {
	c.mu.RLock()
	if c.known {
		d := c.estimate
		c.mu.RUnlock()
		return d
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.known {
		return c.estimate
	}
	c.estimate = measureOverhead(c.budget())
	c.known = true
	return c.estimate
}

// Calibrate forces a fresh calibration and caches the result. A pinned cache
// is left untouched and the pinned value is returned.
func (c *OverheadCache) Calibrate() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pinned {
		return c.estimate
	}
	c.estimate = measureOverhead(c.budget())
	c.known = true
	return c.estimate
}

// Set pins the overhead to a caller-supplied value. Pinning disables any
// future recomputation until Invalidate is called, which makes results
// reproducible across processes.
func (c *OverheadCache) Set(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.estimate = d
	c.known = true
	c.pinned = true
}

// Invalidate discards the cached estimate and re-enables lazy calibration.
func (c *OverheadCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.estimate = 0
	c.known = false
	c.pinned = false
}

// Pinned reports whether the estimate was explicitly set by the caller.
func (c *OverheadCache) Pinned() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pinned
}

func (c *OverheadCache) budget() int {
	if c.invocations > 0 {
		return c.invocations
	}
	return defaultCalibrationInvocations
}

// measureOverhead times total no-op invocations split across several batches
// and returns the mean per-invocation cost.
func measureOverhead(invocations int) time.Duration {
	noop := func() (any, error) { return nil, nil }

	perBatch := invocations / calibrationBatches
	if perBatch < 1 {
		perBatch = 1
	}

	var total time.Duration
	ran := 0
	for i := 0; i < calibrationBatches; i++ {
		elapsed, _ := RunBatch(noop, perBatch)
		total += elapsed
		ran += perBatch
	}

	return time.Duration(float64(total) / float64(ran))
}

var procOverhead OverheadCache

// Overhead returns the process-wide per-invocation overhead estimate,
// calibrating lazily on first use.
func Overhead() time.Duration { return procOverhead.Estimate() }

// CalibrateOverhead forces recalibration of the process-wide estimate.
func CalibrateOverhead() time.Duration { return procOverhead.Calibrate() }

// SetOverhead pins the process-wide estimate to d.
func SetOverhead(d time.Duration) { procOverhead.Set(d) }

// InvalidateOverhead discards the process-wide estimate.
func InvalidateOverhead() { procOverhead.Invalidate() }
