package timing

import "time"

// Measure returns the wall-clock time spent executing fn exactly once.
//
// time.Now carries a monotonic clock reading on every supported platform, so
// the subtraction is immune to NTP steps and timezone changes. The result is
// clamped at zero; a negative elapsed reading can only come from a broken
// monotonic source.
func Measure(fn func()) time.Duration {
	start := time.Now()
	fn()
	elapsed := time.Since(start)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}
