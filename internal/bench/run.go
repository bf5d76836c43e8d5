package bench

import (
	"fmt"
	"log/slog"
	"time"

	"mbench/internal/stats"
	"mbench/internal/telemetry"
	"mbench/internal/timing"
)

// phase tracks where the orchestrator is in the measurement protocol. A run
// walks the phases strictly forward; a fresh run starts a fresh sequence.
type phase int

const (
	phaseIdle phase = iota
	phaseCalibrating
	phaseWarmingUp
	phasePlanning
	phaseSampling
	phaseFinalizing
	phaseDone
)

func (p phase) String() string {
	switch p {
	case phaseIdle:
		return "idle"
	case phaseCalibrating:
		return "calibrating"
	case phaseWarmingUp:
		return "warming-up"
	case phasePlanning:
		return "planning"
	case phaseSampling:
		return "sampling"
	case phaseFinalizing:
		return "finalizing"
	case phaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// planProbes is how many single executions seed the batch-size estimate.
const planProbes = 5

// Run executes the full measurement protocol for w under opts and returns the
// completed result. The workload's own error aborts the run immediately;
// samples collected up to that point are discarded because a short SampleSet
// cannot support the statistics.
func Run(w timing.Workload, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	telemetry.RunsStarted.Inc()
	res := &Result{
		Options: opts,
		Started: time.Now(),
	}

	// Calibrating. The overhead cache is process-wide; only the first run in
	// a process pays for calibration unless the caller pins a value.
	logPhase(phaseCalibrating)
	if opts.PinOverhead {
		timing.SetOverhead(opts.PinnedOverhead)
	}
	overhead := timing.Overhead()
	res.Overhead = overhead

	// WarmingUp.
	logPhase(phaseWarmingUp)
	warmup, err := timing.WarmUp(w, opts.WarmupTime, opts.MaxWarmupExecs)
	if err != nil {
		return nil, fmt.Errorf("warm-up: %w", err)
	}
	res.Warmup = warmup
	slog.Debug("Warm-up finished", "executions", warmup.Executions, "elapsed", warmup.Elapsed)

	// Planning. The batch size is computed once and held fixed for the whole
	// run; recomputing per sample would let cost drift silently change what
	// a sample means mid-run.
	logPhase(phasePlanning)
	single, err := timing.EstimateSingleExec(w, planProbes)
	if err != nil {
		return nil, fmt.Errorf("planning: %w", err)
	}
	n := timing.PlanBatchSize(single, opts.SampleTime, opts.MinBatchSize)
	res.BatchSize = n
	slog.Debug("Batch size planned", "single_estimate", single, "batch_size", n)

	// Sampling.
	logPhase(phaseSampling)
	samples := make([]float64, 0, opts.Samples)
	zeroBatches := 0
	for i := 0; i < opts.Samples; i++ {
		if opts.GCBeforeSample {
			timing.RequestQuiescence()
			telemetry.QuiescenceRequests.Inc()
		}

		elapsed, err := timing.RunBatch(w, n)
		if err != nil {
			return nil, fmt.Errorf("sample %d/%d: %w", i+1, opts.Samples, err)
		}
		if elapsed == 0 {
			zeroBatches++
		}

		corrected := (float64(elapsed) - float64(overhead)*float64(n)) / float64(n)
		if corrected < 0 {
			corrected = 0
		}
		samples = append(samples, corrected)
		telemetry.SamplesCollected.Inc()
	}
	res.Samples = samples

	if single <= 0 && zeroBatches > 0 {
		res.Unmeasurable = true
		slog.Warn("Workload is below clock resolution even at minimum batch size",
			"batch_size", n, "zero_batches", zeroBatches)
	}

	// Finalizing: one more quiescence request, timed as an auxiliary
	// cleanup-cost figure, then the statistical summary.
	logPhase(phaseFinalizing)
	res.FinalQuiescence = timing.RequestQuiescence()
	telemetry.QuiescenceRequests.Inc()
	summarize(res)

	res.Finished = time.Now()
	logPhase(phaseDone)
	telemetry.RunsCompleted.Inc()
	return res, nil
}

// summarize fills in every derived statistic from the collected samples.
func summarize(res *Result) {
	res.sorted = stats.SortedCopy(res.Samples)
	res.Mean = stats.Mean(res.Samples)
	res.Variance = stats.Variance(res.Samples)
	res.StdDev = stats.StdDev(res.Samples)
	res.Outliers = stats.ClassifyOutliers(res.sorted)

	opts := res.Options
	res.MeanCI = stats.Bootstrap(res.Samples, opts.BootstrapResamples, opts.Confidence, opts.Seed, stats.Mean)
	res.VarianceCI = stats.Bootstrap(res.Samples, opts.BootstrapResamples, opts.Confidence, opts.Seed, stats.Variance)
}

func logPhase(p phase) {
	slog.Debug("Benchmark phase", "phase", p.String())
}
