// Package stats implements the descriptive statistics, outlier
// classification and bootstrap resampling used to summarize raw benchmark
// samples. All inputs are nanosecond values held as float64; keeping a single
// unit end to end avoids conversion drift between components.
package stats

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean of xs, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Variance returns the Bessel-corrected sample variance (divide by n-1).
// Fewer than two values carry no variance information; the result is 0.
func Variance(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := Mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return sum / float64(len(xs)-1)
}

// StdDev returns the sample standard deviation, sqrt(Variance).
func StdDev(xs []float64) float64 {
	return math.Sqrt(Variance(xs))
}

// Quantile returns the p-quantile of sorted using linear interpolation
// between closest ranks: rank = p*(n-1), interpolated between the floor and
// ceil indices. Quantile(0) is the minimum, Quantile(1) the maximum and
// Quantile(0.5) the usual median for both even and odd lengths.
//
// sorted must be in ascending order; callers sort once and query many times.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}

	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	rank := p * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}

	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// SortedCopy returns an ascending copy of xs, leaving the input untouched.
func SortedCopy(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	sort.Float64s(out)
	return out
}
