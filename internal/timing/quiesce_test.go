package timing

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRequestQuiescenceRunsACollection(t *testing.T) {
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)

	elapsed := RequestQuiescence()

	runtime.ReadMemStats(&after)
	assert.GreaterOrEqual(t, elapsed, time.Duration(0))
	assert.Greater(t, after.NumGC, before.NumGC, "a full GC cycle must have completed")
}

func TestRequestQuiescenceIsRepeatable(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.GreaterOrEqual(t, RequestQuiescence(), time.Duration(0))
	}
}
