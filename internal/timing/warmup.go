package timing

import "time"

// DefaultMaxWarmupExecs bounds the warm-up loop for workloads so fast that a
// time budget alone would allow an absurd number of iterations.
const DefaultMaxWarmupExecs = 1_000_000

// WarmupSummary reports what the warm-up phase actually did. The timing data
// itself is discarded; warm-up exists only to let caches, branch predictors
// and the runtime's own adaptive machinery settle before measurement.
type WarmupSummary struct {
	Executions int
	Elapsed    time.Duration
}

// WarmUp repeatedly executes w (batch size 1) until the accumulated elapsed
// time reaches budget or maxExecs executions have run. A budget of zero skips
// warm-up entirely. A workload slower than the whole budget still runs once:
// the budget check happens after the first execution.
func WarmUp(w Workload, budget time.Duration, maxExecs int) (WarmupSummary, error) {
	var summary WarmupSummary

	if budget <= 0 {
		return summary, nil
	}
	if maxExecs < 1 {
		maxExecs = DefaultMaxWarmupExecs
	}

	for summary.Elapsed < budget && summary.Executions < maxExecs {
		elapsed, err := RunBatch(w, 1)
		if err != nil {
			return summary, err
		}
		summary.Elapsed += elapsed
		summary.Executions++
	}

	return summary, nil
}
