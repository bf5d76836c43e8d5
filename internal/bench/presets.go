package bench

import "mbench/internal/timing"

// Quick benchmarks w with the fast, lower-precision profile.
func Quick(w timing.Workload) (*Result, error) {
	return Run(w, QuickOptions())
}

// Thorough benchmarks w with the slow, high-precision profile.
func Thorough(w timing.Workload) (*Result, error) {
	return Run(w, ThoroughOptions())
}
