package stats

import (
	"math/rand/v2"
	"sort"
)

// Estimate is a bootstrap confidence interval around a point estimate. The
// point is always the statistic computed on the original sample, so it agrees
// exactly with the corresponding descriptive statistic.
type Estimate struct {
	Point      float64 `json:"point"`
	Lower      float64 `json:"lower"`
	Upper      float64 `json:"upper"`
	Confidence float64 `json:"confidence"`
}

// Statistic reduces a sample to a single number, e.g. Mean or Variance.
type Statistic func([]float64) float64

// Bootstrap estimates a confidence interval for stat over xs by percentile
// bootstrap: draw resamples of len(xs) with replacement, evaluate stat on
// each, and read the interval bounds off the tails of the sorted resampled
// values. Non-parametric on purpose; execution-time distributions are
// typically right-skewed and a normality assumption would be wrong.
//
// The RNG is seeded deterministically, so two calls with the same data, seed
// and resample count see the identical resampled distribution regardless of
// the confidence level requested.
func Bootstrap(xs []float64, resamples int, confidence float64, seed uint64, stat Statistic) Estimate {
	est := Estimate{
		Point:      stat(xs),
		Confidence: confidence,
	}

	if len(xs) == 0 || resamples < 1 {
		est.Lower = est.Point
		est.Upper = est.Point
		return est
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	resample := make([]float64, len(xs))
	dist := make([]float64, resamples)
	for i := 0; i < resamples; i++ {
		for j := range resample {
			resample[j] = xs[rng.IntN(len(xs))]
		}
		dist[i] = stat(resample)
	}
	sort.Float64s(dist)

	alpha := (1 - confidence) / 2
	est.Lower = Quantile(dist, alpha)
	est.Upper = Quantile(dist, 1-alpha)
	return est
}
