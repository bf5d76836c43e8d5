package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupWorkload(t *testing.T) {
	for _, bw := range builtinWorkloads {
		got, err := lookupWorkload(bw.name)
		require.NoError(t, err)
		assert.Equal(t, bw.name, got.name)
		assert.NotEmpty(t, got.desc)
		assert.NotNil(t, got.fn)
	}
}

func TestLookupWorkloadUnknown(t *testing.T) {
	_, err := lookupWorkload("no-such-thing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-thing")
	assert.Contains(t, err.Error(), "--list")
}

func TestBuiltinWorkloadsExecute(t *testing.T) {
	for _, bw := range builtinWorkloads {
		t.Run(bw.name, func(t *testing.T) {
			// Each built-in must complete a single invocation cleanly.
			_, err := bw.fn()
			assert.NoError(t, err)
		})
	}
}

func TestBuiltinWorkloadNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, bw := range builtinWorkloads {
		assert.False(t, seen[bw.name], "duplicate workload name %q", bw.name)
		seen[bw.name] = true
	}
}
