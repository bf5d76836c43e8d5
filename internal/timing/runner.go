package timing

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Workload is the computation under measurement: zero arguments, an arbitrary
// result, and an error if the computation itself failed. The engine never
// inspects the result value; it only keeps it alive (see keepAlive).
type Workload func() (any, error)

// Thunk adapts a plain function to a Workload.
func Thunk(fn func() any) Workload {
	return func() (any, error) {
		return fn(), nil
	}
}

// sink retains the last workload result so the compiler cannot prove the
// calls are dead and elide them.
var sink atomic.Pointer[any]

func keepAlive(v any) {
	sink.Store(&v)
}

// Sink returns the most recently retained workload result. Exists so the
// retention path is observable; callers have no other use for it.
func Sink() any {
	p := sink.Load()
	if p == nil {
		return nil
	}
	return *p
}

// RunBatch invokes w exactly n times inside a single timed region and returns
// the raw elapsed time for the whole batch. No overhead correction happens
// here; that is the caller's job.
//
// If any invocation fails, the batch aborts and the error is returned with
// the user's error in its chain. Elapsed time from a failed batch is
// meaningless and is not returned.
func RunBatch(w Workload, n int) (time.Duration, error) {
	var (
		last any
		err  error
	)

	start := time.Now()
	for i := 0; i < n; i++ {
		last, err = w()
		if err != nil {
			break
		}
	}
	elapsed := time.Since(start)

	if err != nil {
		return 0, fmt.Errorf("workload failed: %w", err)
	}

	// Reference the result outside the timed region.
	keepAlive(last)

	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed, nil
}
