package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanBatchSizeRoundsToTarget(t *testing.T) {
	cases := []struct {
		single time.Duration
		target time.Duration
		want   int
	}{
		{100 * time.Microsecond, 500 * time.Microsecond, 5},
		{time.Millisecond, time.Millisecond, 1},
		{3 * time.Millisecond, 10 * time.Millisecond, 3}, // 3.33 rounds down
		{4 * time.Millisecond, 10 * time.Millisecond, 3}, // 2.5 rounds up (half away from zero)
		{time.Second, time.Millisecond, 1},               // slower than target still runs once
	}

	for _, c := range cases {
		assert.Equal(t, c.want, PlanBatchSize(c.single, c.target, DefaultMinBatchSize),
			"single=%v target=%v", c.single, c.target)
	}
}

func TestPlanBatchSizeIsPureAndPositive(t *testing.T) {
	for _, single := range []time.Duration{0, 1, 50, 1000, time.Second} {
		for _, target := range []time.Duration{time.Nanosecond, time.Millisecond, time.Second} {
			a := PlanBatchSize(single, target, 64)
			b := PlanBatchSize(single, target, 64)
			assert.Equal(t, a, b, "planner must be a pure function")
			assert.GreaterOrEqual(t, a, 1)
		}
	}
}

func TestPlanBatchSizeZeroEstimateFallsBack(t *testing.T) {
	assert.Equal(t, 1000, PlanBatchSize(0, time.Millisecond, 1000))
	assert.Equal(t, 1, PlanBatchSize(0, time.Millisecond, 0), "bogus min batch clamps to 1")
}

func TestEstimateSingleExec(t *testing.T) {
	const d = time.Millisecond
	w := Thunk(func() any {
		spin(d)
		return nil
	})

	estimate, err := EstimateSingleExec(w, 3)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, estimate, d)
	assert.Less(t, estimate, 20*d)
}

func TestEstimateSingleExecPropagatesFailure(t *testing.T) {
	w := func() (any, error) { return nil, assert.AnError }

	_, err := EstimateSingleExec(w, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
