package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"mbench/internal/bench"
	"mbench/internal/config"
	"mbench/internal/report"
	"mbench/internal/sysinfo"
)

var (
	runJSON     bool
	runList     bool
	runQuick    bool
	runThorough bool
)

var runCmd = &cobra.Command{
	Use:   "run [workloads]",
	Short: "Benchmark one or more built-in reference workloads",
	Long: `Runs the full measurement protocol (calibrate, warm up, plan batch size,
sample, summarize) against the named built-in workloads, defaulting to all of
them. Use --list to see what is available.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runJSON, "json", false, "Emit results as JSON instead of tables")
	runCmd.Flags().BoolVar(&runList, "list", false, "List available workloads and exit")
	runCmd.Flags().BoolVar(&runQuick, "quick", false, "Use the fast, lower-precision profile")
	runCmd.Flags().BoolVar(&runThorough, "thorough", false, "Use the slow, high-precision profile")
	runCmd.Flags().Int("samples", 0, "Override sample count")
	runCmd.Flags().Duration("sample-time", 0, "Override target per-sample duration")
	runCmd.Flags().Duration("warmup", -1, "Override warm-up duration (0 disables warm-up)")
	runCmd.Flags().Bool("gc-before-sample", true, "Request a GC cycle before every sample")

	viper.BindPFlag("gc_before_sample", runCmd.Flags().Lookup("gc-before-sample"))
}

func runRun(cmd *cobra.Command, args []string) error {
	if runList {
		for _, w := range builtinWorkloads {
			fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", w.name, w.desc)
		}
		return nil
	}
	if runQuick && runThorough {
		return fmt.Errorf("--quick and --thorough are mutually exclusive")
	}

	if err := config.ValidateConfig(); err != nil {
		return err
	}
	opts := benchOptions(cmd.Flags())

	names := args
	if len(names) == 0 {
		for _, w := range builtinWorkloads {
			names = append(names, w.name)
		}
	}

	env := sysinfo.Collect()

	for i, name := range names {
		w, err := lookupWorkload(name)
		if err != nil {
			return err
		}

		res, err := bench.Run(w.fn, opts)
		if err != nil {
			return fmt.Errorf("benchmark %s: %w", name, err)
		}
		res.Env = env

		if runJSON {
			if err := report.WriteJSON(cmd.OutOrStdout(), name, res); err != nil {
				return err
			}
			continue
		}
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		report.Render(cmd.OutOrStdout(), name, res)
	}

	return nil
}

// benchOptions resolves the effective engine options: profile, then config
// and environment, then explicit flag overrides.
func benchOptions(flags *pflag.FlagSet) bench.Options {
	opts := config.ToOptions()
	if runQuick {
		opts = bench.QuickOptions()
	} else if runThorough {
		opts = bench.ThoroughOptions()
	}

	if flags.Changed("samples") {
		opts.Samples, _ = flags.GetInt("samples")
	}
	if flags.Changed("sample-time") {
		opts.SampleTime, _ = flags.GetDuration("sample-time")
	}
	if flags.Changed("warmup") {
		opts.WarmupTime, _ = flags.GetDuration("warmup")
	}
	if flags.Changed("gc-before-sample") {
		opts.GCBeforeSample, _ = flags.GetBool("gc-before-sample")
	}

	return opts
}
