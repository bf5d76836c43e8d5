package stats

// OutlierCounts tallies samples by severity relative to the interquartile
// range. Outliers are reported, never removed: they describe measurement
// quality, not a correction to apply.
type OutlierCounts struct {
	LowSevere  int `json:"low_severe"`
	LowMild    int `json:"low_mild"`
	None       int `json:"none"`
	HighMild   int `json:"high_mild"`
	HighSevere int `json:"high_severe"`
}

// Total returns the number of classified samples. Always equals the sample
// count the classification ran over.
func (c OutlierCounts) Total() int {
	return c.LowSevere + c.LowMild + c.None + c.HighMild + c.HighSevere
}

// Outliers returns how many samples fell outside the mild fences.
func (c OutlierCounts) Outliers() int {
	return c.Total() - c.None
}

// ClassifyOutliers buckets every value of sorted against Tukey-style IQR
// fences: mild beyond 1.5*IQR from the quartiles, severe beyond 3*IQR.
// Interval edges follow the usual convention that a value sitting exactly on
// a mild fence is not an outlier.
func ClassifyOutliers(sorted []float64) OutlierCounts {
	var counts OutlierCounts
	if len(sorted) == 0 {
		return counts
	}

	q1 := Quantile(sorted, 0.25)
	q3 := Quantile(sorted, 0.75)
	iqr := q3 - q1

	lowSevere := q1 - 3*iqr
	lowMild := q1 - 1.5*iqr
	highMild := q3 + 1.5*iqr
	highSevere := q3 + 3*iqr

	for _, x := range sorted {
		switch {
		case x < lowSevere:
			counts.LowSevere++
		case x < lowMild:
			counts.LowMild++
		case x <= highMild:
			counts.None++
		case x <= highSevere:
			counts.HighMild++
		default:
			counts.HighSevere++
		}
	}

	return counts
}
