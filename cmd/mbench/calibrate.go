package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"mbench/internal/telemetry"
	"mbench/internal/timing"
)

var calibratePin time.Duration

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Measure timer overhead and print the per-invocation estimate",
	Long: `Runs the overhead calibration eagerly: a large number of no-op invocations
through the same measurement path real benchmarks use. Takes several seconds.
The printed value can be fed back via the pinned_overhead config key to make
results reproducible across processes.`,
	RunE: runCalibrate,
}

func init() {
	rootCmd.AddCommand(calibrateCmd)
	calibrateCmd.Flags().DurationVar(&calibratePin, "pin", -1, "Skip calibration and pin the overhead to this value")
}

func runCalibrate(cmd *cobra.Command, args []string) error {
	if calibratePin >= 0 {
		timing.SetOverhead(calibratePin)
		fmt.Fprintf(cmd.OutOrStdout(), "overhead pinned to %v per invocation\n", calibratePin)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), "calibrating timer overhead, this takes a few seconds...")
	estimate := timing.CalibrateOverhead()
	telemetry.Calibrations.Inc()

	fmt.Fprintf(cmd.OutOrStdout(), "overhead: %v per invocation\n", estimate)
	fmt.Fprintf(cmd.OutOrStdout(), "to reuse: set pinned_overhead: %dns in your config\n", estimate.Nanoseconds())
	return nil
}
