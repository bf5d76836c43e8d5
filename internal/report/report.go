// Package report renders a benchmark result for humans (styled terminal
// table) and machines (JSON). Rendering is read-only; the result record is
// never modified.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"mbench/internal/bench"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	severeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	percentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// FormatNs renders a nanosecond quantity in the most readable unit.
func FormatNs(ns float64) string {
	switch {
	case ns < 1_000:
		return fmt.Sprintf("%.2f ns", ns)
	case ns < 1_000_000:
		return fmt.Sprintf("%.2f µs", ns/1_000)
	case ns < 1_000_000_000:
		return fmt.Sprintf("%.2f ms", ns/1_000_000)
	default:
		return fmt.Sprintf("%.2f s", ns/1_000_000_000)
	}
}

// Render writes the human-readable summary of res to w.
func Render(w io.Writer, name string, res *bench.Result) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Benchmark: %s", name)))
	fmt.Fprintln(w, subtleStyle.Render(fmt.Sprintf(
		"%d samples of %d executions each, overhead %v, warm-up %d executions in %v",
		len(res.Samples), res.BatchSize, res.Overhead,
		res.Warmup.Executions, res.Warmup.Elapsed.Round(time.Millisecond))))

	ciLabel := fmt.Sprintf("%.0f%% CI", res.MeanCI.Confidence*100)
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Statistic", "Estimate", ciLabel + " lower", ciLabel + " upper"}),
	)

	table.Append([]string{"mean", FormatNs(res.Mean), FormatNs(res.MeanCI.Lower), FormatNs(res.MeanCI.Upper)})
	table.Append([]string{"std dev", FormatNs(res.StdDev), "", ""})
	table.Append([]string{"variance", fmt.Sprintf("%.2f ns²", res.Variance),
		fmt.Sprintf("%.2f ns²", res.VarianceCI.Lower), fmt.Sprintf("%.2f ns²", res.VarianceCI.Upper)})
	table.Append([]string{"min", FormatNs(res.Quantile(0)), "", ""})
	table.Append([]string{"median", FormatNs(res.Quantile(0.5)), "", ""})
	table.Append([]string{"p90", FormatNs(res.Quantile(0.90)), "", ""})
	table.Append([]string{"p99", FormatNs(res.Quantile(0.99)), "", ""})
	table.Append([]string{"max", FormatNs(res.Quantile(1)), "", ""})
	table.Render()

	renderOutliers(w, res)

	if res.Unmeasurable {
		fmt.Fprintln(w, severeStyle.Render(
			"warning: workload is below clock resolution even at the minimum batch size; treat these numbers as an upper bound"))
	}
	fmt.Fprintln(w, subtleStyle.Render(fmt.Sprintf(
		"final reclamation took %v", res.FinalQuiescence.Round(time.Microsecond))))
}

func renderOutliers(w io.Writer, res *bench.Result) {
	o := res.Outliers
	total := o.Total()
	if total == 0 {
		return
	}

	if o.Outliers() == 0 {
		fmt.Fprintln(w, percentStyle.Render("no outliers among samples"))
		return
	}

	pct := float64(o.Outliers()) / float64(total) * 100
	line := fmt.Sprintf("found %d outliers among %d samples (%.1f%%)", o.Outliers(), total, pct)
	if o.LowSevere > 0 || o.HighSevere > 0 {
		fmt.Fprintln(w, severeStyle.Render(line))
	} else {
		fmt.Fprintln(w, warnStyle.Render(line))
	}

	for _, c := range []struct {
		n     int
		label string
	}{
		{o.LowSevere, "low severe"},
		{o.LowMild, "low mild"},
		{o.HighMild, "high mild"},
		{o.HighSevere, "high severe"},
	} {
		if c.n > 0 {
			fmt.Fprintf(w, "  %d (%.1f%%) %s\n", c.n, float64(c.n)/float64(total)*100, c.label)
		}
	}
}

// jsonResult pairs a result with its workload name for export.
type jsonResult struct {
	Name   string        `json:"name"`
	Result *bench.Result `json:"result"`
}

// WriteJSON writes the full result record as indented JSON.
func WriteJSON(w io.Writer, name string, res *bench.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonResult{Name: name, Result: res}); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}
