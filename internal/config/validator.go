package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ValidateConfig sanity-checks the viper state before it is turned into
// engine options, so a bad config file fails with a message naming the key
// the user actually wrote. All violations are reported at once.
func ValidateConfig() error {
	var problems []string

	if viper.GetInt("samples") < 2 {
		problems = append(problems, fmt.Sprintf("samples must be at least 2, got: %d", viper.GetInt("samples")))
	}
	if viper.GetDuration("sample_time") <= 0 {
		problems = append(problems, fmt.Sprintf("sample_time must be positive, got: %v", viper.GetDuration("sample_time")))
	}
	if viper.GetDuration("warmup_time") < 0 {
		problems = append(problems, fmt.Sprintf("warmup_time cannot be negative, got: %v", viper.GetDuration("warmup_time")))
	}
	if c := viper.GetFloat64("confidence"); c <= 0 || c >= 1 {
		problems = append(problems, fmt.Sprintf("confidence must be between 0 and 1 exclusive, got: %v", c))
	}
	if viper.GetInt("bootstrap_resamples") < 1 {
		problems = append(problems, fmt.Sprintf("bootstrap_resamples must be positive, got: %d", viper.GetInt("bootstrap_resamples")))
	}
	if viper.GetInt("min_batch_size") < 1 {
		problems = append(problems, fmt.Sprintf("min_batch_size must be positive, got: %d", viper.GetInt("min_batch_size")))
	}
	if viper.GetDuration("pinned_overhead") < 0 {
		problems = append(problems, fmt.Sprintf("pinned_overhead cannot be negative, got: %v", viper.GetDuration("pinned_overhead")))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}
