// Package bench composes the timing and stats packages into the end-to-end
// measurement protocol: calibrate, warm up, plan a batch size, collect
// samples, summarize.
package bench

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"mbench/internal/timing"
)

// ErrInvalidOptions wraps every option validation failure so callers can
// detect the class with errors.Is.
var ErrInvalidOptions = errors.New("invalid benchmark options")

// Options configures a single benchmark run. The zero value is not usable;
// start from DefaultOptions.
type Options struct {
	// WarmupTime is how long to execute the workload before measurement
	// starts. Zero disables warm-up, for platforms where it buys nothing.
	WarmupTime time.Duration `json:"warmup_time"`

	// SampleTime is the target elapsed wall time of one sample. The planner
	// picks the batch size so one batch runs approximately this long.
	SampleTime time.Duration `json:"sample_time"`

	// Samples is the number of samples to collect. At least 2, since a
	// single sample carries no variance information.
	Samples int `json:"samples"`

	// GCBeforeSample requests a collection-quiescence cycle before every
	// sample, reducing the chance that deferred reclamation work lands
	// inside a timed batch.
	GCBeforeSample bool `json:"gc_before_sample"`

	// Confidence is the bootstrap confidence level, strictly between 0 and 1.
	Confidence float64 `json:"confidence"`

	// BootstrapResamples is the number of bootstrap resamples; 1000 or more
	// is recommended.
	BootstrapResamples int `json:"bootstrap_resamples"`

	// MinBatchSize is the fallback batch size when a single execution is too
	// fast to measure.
	MinBatchSize int `json:"min_batch_size"`

	// MaxWarmupExecs bounds warm-up iterations for very fast workloads.
	MaxWarmupExecs int `json:"max_warmup_execs"`

	// Seed drives the bootstrap RNG; fixed by default so repeated analysis
	// of the same samples is reproducible.
	Seed uint64 `json:"seed"`

	// PinOverhead, when set, pins the process-wide overhead estimate to
	// PinnedOverhead instead of calibrating, for cross-process
	// reproducibility.
	PinOverhead    bool          `json:"pin_overhead,omitempty"`
	PinnedOverhead time.Duration `json:"pinned_overhead,omitempty"`
}

// DefaultOptions returns the standard measurement profile: a balance between
// wall-time cost and statistical power.
func DefaultOptions() Options {
	return Options{
		WarmupTime:         2 * time.Second,
		SampleTime:         100 * time.Millisecond,
		Samples:            60,
		GCBeforeSample:     true,
		Confidence:         0.95,
		BootstrapResamples: 1000,
		MinBatchSize:       timing.DefaultMinBatchSize,
		MaxWarmupExecs:     timing.DefaultMaxWarmupExecs,
		Seed:               1,
	}
}

// QuickOptions trades precision for speed; useful during interactive
// exploration.
func QuickOptions() Options {
	opts := DefaultOptions()
	opts.WarmupTime = 500 * time.Millisecond
	opts.SampleTime = 25 * time.Millisecond
	opts.Samples = 30
	return opts
}

// ThoroughOptions spends more wall time for tighter intervals.
func ThoroughOptions() Options {
	opts := DefaultOptions()
	opts.WarmupTime = 10 * time.Second
	opts.SampleTime = 500 * time.Millisecond
	opts.Samples = 100
	opts.BootstrapResamples = 2000
	return opts
}

// Validate checks every field and reports all violations at once, wrapped in
// ErrInvalidOptions. Runs before any measurement; a bad configuration is
// fatal to the run.
func (o Options) Validate() error {
	var problems []string

	if o.Samples < 2 {
		problems = append(problems, fmt.Sprintf("samples must be at least 2, got %d", o.Samples))
	}
	if o.SampleTime <= 0 {
		problems = append(problems, fmt.Sprintf("sample_time must be positive, got %v", o.SampleTime))
	}
	if o.WarmupTime < 0 {
		problems = append(problems, fmt.Sprintf("warmup_time cannot be negative, got %v", o.WarmupTime))
	}
	if o.Confidence <= 0 || o.Confidence >= 1 {
		problems = append(problems, fmt.Sprintf("confidence must be in (0,1), got %v", o.Confidence))
	}
	if o.BootstrapResamples < 1 {
		problems = append(problems, fmt.Sprintf("bootstrap_resamples must be at least 1, got %d", o.BootstrapResamples))
	}
	if o.MinBatchSize < 1 {
		problems = append(problems, fmt.Sprintf("min_batch_size must be at least 1, got %d", o.MinBatchSize))
	}
	if o.PinnedOverhead < 0 {
		problems = append(problems, fmt.Sprintf("pinned_overhead cannot be negative, got %v", o.PinnedOverhead))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidOptions, strings.Join(problems, "; "))
	}
	return nil
}
