package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbench/internal/bench"
)

func TestLoadDefaultsMatchEngineDefaults(t *testing.T) {
	viper.Reset()
	Load("")

	opts := ToOptions()
	assert.Equal(t, bench.DefaultOptions().WarmupTime, opts.WarmupTime)
	assert.Equal(t, bench.DefaultOptions().SampleTime, opts.SampleTime)
	assert.Equal(t, bench.DefaultOptions().Samples, opts.Samples)
	assert.Equal(t, bench.DefaultOptions().Confidence, opts.Confidence)
	assert.False(t, opts.PinOverhead)
	assert.NoError(t, opts.Validate())
}

func TestLoadReadsConfigFile(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bench.yaml")
	cfg := "samples: 25\nsample_time: 50ms\nwarmup_time: 1s\nconfidence: 0.9\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0644))

	Load(cfgPath)

	opts := ToOptions()
	assert.Equal(t, 25, opts.Samples)
	assert.Equal(t, 50*time.Millisecond, opts.SampleTime)
	assert.Equal(t, time.Second, opts.WarmupTime)
	assert.Equal(t, 0.9, opts.Confidence)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	viper.Reset()
	t.Setenv("MBENCH_SAMPLES", "17")
	t.Setenv("MBENCH_GC_BEFORE_SAMPLE", "false")

	Load("")

	opts := ToOptions()
	assert.Equal(t, 17, opts.Samples)
	assert.False(t, opts.GCBeforeSample)
}

func TestToOptionsPinnedOverhead(t *testing.T) {
	viper.Reset()
	Load("")
	viper.Set("pinned_overhead", 25*time.Nanosecond)

	opts := ToOptions()
	assert.True(t, opts.PinOverhead)
	assert.Equal(t, 25*time.Nanosecond, opts.PinnedOverhead)
}
