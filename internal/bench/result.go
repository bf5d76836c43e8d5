package bench

import (
	"time"

	"mbench/internal/stats"
	"mbench/internal/timing"
)

// Result is the immutable record of one completed benchmark run. All timing
// statistics are nanoseconds held as float64; a per-execution mean over a
// large batch is routinely fractional.
type Result struct {
	// Samples holds one value per collected sample: the overhead-corrected
	// mean per-execution time over a batch, in nanoseconds.
	Samples []float64 `json:"samples_ns"`

	// BatchSize is the number of executions per sample, fixed for the run.
	BatchSize int `json:"batch_size"`

	// Warmup reports what the warm-up phase did before measurement.
	Warmup timing.WarmupSummary `json:"warmup"`

	Mean     float64 `json:"mean_ns"`
	Variance float64 `json:"variance_ns2"`
	StdDev   float64 `json:"std_dev_ns"`

	Outliers   stats.OutlierCounts `json:"outliers"`
	MeanCI     stats.Estimate      `json:"mean_ci"`
	VarianceCI stats.Estimate      `json:"variance_ci"`

	// Overhead is the per-invocation clock/dispatch estimate that was
	// subtracted from every sample.
	Overhead time.Duration `json:"overhead_ns"`

	// FinalQuiescence is how long the post-run reclamation request took,
	// an auxiliary cleanup-cost figure separate from the samples.
	FinalQuiescence time.Duration `json:"final_quiescence_ns"`

	// Unmeasurable warns that single executions could not be distinguished
	// from clock resolution even at the minimum batch size. The result is
	// still returned; degraded precision beats no answer.
	Unmeasurable bool `json:"unmeasurable,omitempty"`

	// Options is the configuration the run executed under.
	Options Options `json:"options"`

	// Env is opaque environment metadata supplied by the caller and passed
	// through untouched.
	Env any `json:"env,omitempty"`

	Started  time.Time `json:"started"`
	Finished time.Time `json:"finished"`

	sorted []float64
}

// Quantile returns the p-quantile of the samples (linear interpolation), in
// nanoseconds.
func (r *Result) Quantile(p float64) float64 {
	if r.sorted == nil {
		r.sorted = stats.SortedCopy(r.Samples)
	}
	return stats.Quantile(r.sorted, p)
}

// MeanDuration returns the mean rounded to a time.Duration for display.
func (r *Result) MeanDuration() time.Duration {
	return time.Duration(r.Mean)
}

// StdDevDuration returns the standard deviation rounded to a time.Duration.
func (r *Result) StdDevDuration() time.Duration {
	return time.Duration(r.StdDev)
}
