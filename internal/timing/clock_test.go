package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// spin busy-waits for roughly d without sleeping, so timings stay on-CPU and
// deterministic enough to assert against.
func spin(d time.Duration) {
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
	}
}

func TestMeasureCoversBlockDuration(t *testing.T) {
	const d = 2 * time.Millisecond
	elapsed := Measure(func() { spin(d) })

	assert.GreaterOrEqual(t, elapsed, d)
	assert.Less(t, elapsed, 50*d, "suspiciously slow; timer likely broken")
}

func TestMeasureEmptyBlock(t *testing.T) {
	elapsed := Measure(func() {})
	assert.GreaterOrEqual(t, elapsed, time.Duration(0))
}

func TestMeasureRunsBlockExactlyOnce(t *testing.T) {
	calls := 0
	Measure(func() { calls++ })
	assert.Equal(t, 1, calls)
}
