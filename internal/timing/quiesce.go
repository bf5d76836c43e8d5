package timing

import (
	"runtime"
	"time"
)

// RequestQuiescence asks the runtime for a full garbage collection cycle and
// returns how long the request took. runtime.GC blocks until the cycle
// completes, which is exactly the "brief blocking wait" we want: deferred
// reclamation work that would otherwise land inside a timed sample gets paid
// for here instead.
//
// Best effort by contract. On a runtime without a managed collector this
// would degrade to an allocator-trim hint; the interface stays the same
// either way so the orchestrator never has to care.
func RequestQuiescence() time.Duration {
	start := time.Now()
	runtime.GC()
	elapsed := time.Since(start)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}
