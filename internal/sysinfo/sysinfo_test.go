package sysinfo

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectPopulatesRuntimeFields(t *testing.T) {
	env := Collect()

	assert.Equal(t, runtime.GOOS, env.OS)
	assert.Equal(t, runtime.GOARCH, env.Arch)
	assert.Equal(t, runtime.Version(), env.GoVersion)
	assert.Positive(t, env.LogicalCores)
}

func TestCollectIsStable(t *testing.T) {
	a := Collect()
	b := Collect()

	assert.Equal(t, a.OS, b.OS)
	assert.Equal(t, a.CPUModel, b.CPUModel)
	assert.Equal(t, a.LogicalCores, b.LogicalCores)
}
