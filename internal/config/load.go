// Package config bridges the CLI's viper configuration (file, environment,
// flags) into the engine's validated Options struct. The engine itself never
// touches viper.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"mbench/internal/bench"
	"mbench/internal/timing"
)

// Load initializes viper from an optional config file plus MBENCH_* env vars
// and registers the default for every knob.
func Load(cfgFile string) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".mbench")
	}

	viper.SetEnvPrefix("MBENCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	defaults := bench.DefaultOptions()
	viper.SetDefault("warmup_time", defaults.WarmupTime)
	viper.SetDefault("sample_time", defaults.SampleTime)
	viper.SetDefault("samples", defaults.Samples)
	viper.SetDefault("gc_before_sample", defaults.GCBeforeSample)
	viper.SetDefault("confidence", defaults.Confidence)
	viper.SetDefault("bootstrap_resamples", defaults.BootstrapResamples)
	viper.SetDefault("min_batch_size", timing.DefaultMinBatchSize)
	viper.SetDefault("max_warmup_execs", timing.DefaultMaxWarmupExecs)
	viper.SetDefault("seed", defaults.Seed)
	viper.SetDefault("pinned_overhead", time.Duration(0))
	viper.SetDefault("verbose", false)
	viper.SetDefault("log_file", "")
	viper.SetDefault("metrics_addr", "")

	// Config file is optional; defaults plus env cover everything.
	_ = viper.ReadInConfig()
}

// ToOptions builds the engine options from the current viper state. The
// result still goes through Options.Validate before any measurement.
func ToOptions() bench.Options {
	opts := bench.Options{
		WarmupTime:         viper.GetDuration("warmup_time"),
		SampleTime:         viper.GetDuration("sample_time"),
		Samples:            viper.GetInt("samples"),
		GCBeforeSample:     viper.GetBool("gc_before_sample"),
		Confidence:         viper.GetFloat64("confidence"),
		BootstrapResamples: viper.GetInt("bootstrap_resamples"),
		MinBatchSize:       viper.GetInt("min_batch_size"),
		MaxWarmupExecs:     viper.GetInt("max_warmup_execs"),
		Seed:               viper.GetUint64("seed"),
	}

	if d := viper.GetDuration("pinned_overhead"); d > 0 || viper.GetBool("pin_zero_overhead") {
		opts.PinOverhead = true
		opts.PinnedOverhead = d
	}

	return opts
}
