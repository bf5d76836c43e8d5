package main

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"mbench/internal/timing"
)

// builtinWorkload is a reference computation shipped with the tool, so the
// end-to-end path can be exercised (and the host's noise floor inspected)
// without writing any code.
type builtinWorkload struct {
	name string
	desc string
	fn   timing.Workload
}

var builtinWorkloads = []builtinWorkload{
	{
		name: "sort-1k",
		desc: "sort a shuffled slice of 1024 ints",
		fn:   sortWorkload(1024),
	},
	{
		name: "sha256-4k",
		desc: "SHA-256 over a 4 KiB buffer",
		fn:   shaWorkload(4096),
	},
	{
		name: "json-marshal",
		desc: "marshal a small struct to JSON",
		fn:   jsonWorkload(),
	},
	{
		name: "alloc-1m",
		desc: "allocate and touch a 1 MiB slice (GC pressure)",
		fn:   allocWorkload(1 << 20),
	},
	{
		name: "spin-100us",
		desc: "busy-wait for 100µs (deterministic delay)",
		fn:   spinWorkload(100 * time.Microsecond),
	},
}

func lookupWorkload(name string) (builtinWorkload, error) {
	for _, w := range builtinWorkloads {
		if w.name == name {
			return w, nil
		}
	}
	return builtinWorkload{}, fmt.Errorf("unknown workload %q (see 'mbench run --list')", name)
}

func sortWorkload(n int) timing.Workload {
	rng := rand.New(rand.NewPCG(42, 42))
	base := make([]int, n)
	for i := range base {
		base[i] = rng.IntN(1 << 20)
	}
	scratch := make([]int, n)

	return timing.Thunk(func() any {
		copy(scratch, base)
		sort.Ints(scratch)
		return scratch[0]
	})
}

func shaWorkload(n int) timing.Workload {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(i)
	}

	return timing.Thunk(func() any {
		sum := sha256.Sum256(buf)
		return sum[0]
	})
}

func jsonWorkload() timing.Workload {
	type payload struct {
		ID      int       `json:"id"`
		Name    string    `json:"name"`
		Tags    []string  `json:"tags"`
		Created time.Time `json:"created"`
	}
	p := payload{
		ID:      7,
		Name:    "reference workload",
		Tags:    []string{"micro", "benchmark", "json"},
		Created: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	return func() (any, error) {
		data, err := json.Marshal(p)
		if err != nil {
			return nil, err
		}
		return len(data), nil
	}
}

func allocWorkload(n int) timing.Workload {
	return timing.Thunk(func() any {
		buf := make([]byte, n)
		// Touch one byte per page so the allocation is not just reserved.
		for i := 0; i < len(buf); i += 4096 {
			buf[i] = 1
		}
		return buf[0]
	})
}

func spinWorkload(d time.Duration) timing.Workload {
	return timing.Thunk(func() any {
		deadline := time.Now().Add(d)
		spins := 0
		for time.Now().Before(deadline) {
			spins++
		}
		return spins
	})
}
