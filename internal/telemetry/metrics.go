package telemetry

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Engine counters. A single benchmark is one-shot, but suite runs over many
// workloads can take hours; these let an operator watch progress remotely.
var (
	RunsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mbench_runs_started_total",
		Help: "Benchmark runs started.",
	})
	RunsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mbench_runs_completed_total",
		Help: "Benchmark runs that produced a result.",
	})
	SamplesCollected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mbench_samples_collected_total",
		Help: "Timed samples collected across all runs.",
	})
	QuiescenceRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mbench_quiescence_requests_total",
		Help: "Collection-quiescence requests issued.",
	})
	Calibrations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mbench_overhead_calibrations_total",
		Help: "Timer overhead calibrations performed.",
	})
)

// StartMetricsServer exposes the counters on addr under /metrics. Runs in the
// foreground; callers start it on its own goroutine.
func StartMetricsServer(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	slog.Info("Serving metrics", "addr", addr)
	return http.ListenAndServe(addr, mux)
}
