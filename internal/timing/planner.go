package timing

import (
	"math"
	"time"
)

// DefaultMinBatchSize is the fallback batch size when a single execution is
// too fast to distinguish from clock resolution. Large enough that even a
// sub-nanosecond workload produces a non-zero elapsed reading.
const DefaultMinBatchSize = 1000

// PlanBatchSize computes how many executions make up one sample so that the
// sample's elapsed time approximates target. Pure function: same inputs, same
// answer.
//
// When singleExec is zero (the workload is below clock resolution) the
// planner falls back to minBatch. The result is always at least 1.
func PlanBatchSize(singleExec, target time.Duration, minBatch int) int {
	if minBatch < 1 {
		minBatch = 1
	}
	if singleExec <= 0 {
		return minBatch
	}

	n := int(math.Round(float64(target) / float64(singleExec)))
	if n < 1 {
		n = 1
	}
	return n
}

// EstimateSingleExec times a handful of single executions and returns their
// mean raw duration. This seeds the planner; the batch size computed from it
// is then held fixed for the whole run, trading per-sample precision for
// stability when the workload's cost drifts.
func EstimateSingleExec(w Workload, probes int) (time.Duration, error) {
	if probes < 1 {
		probes = 1
	}

	var total time.Duration
	for i := 0; i < probes; i++ {
		elapsed, err := RunBatch(w, 1)
		if err != nil {
			return 0, err
		}
		total += elapsed
	}
	return total / time.Duration(probes), nil
}
