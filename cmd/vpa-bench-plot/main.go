package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/opscart/vpa-bench-plot/pkg/benchmark"
	"github.com/opscart/vpa-bench-plot/pkg/chart"
	"github.com/opscart/vpa-bench-plot/pkg/config"
	"github.com/opscart/vpa-bench-plot/pkg/viewer"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	// Global config
	cfg     *config.Config
	verbose bool
)

func logVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Printf("[DEBUG] "+format+"\n", args...)
	}
}

func main() {
	// Initialize config
	cfg = config.NewConfig()

	var rootCmd = &cobra.Command{
		Use:   "vpa-bench-plot <results-csv>",
		Short: "Chart VPA benchmark results",
		Long: `Parse a semicolon-delimited VPA benchmark results file and chart the
measurements with per-workload regression lines. The chart opens in an
interactive window unless VPA_PLOT_OUTPUT points at a file to write instead.`,
		Example: "  vpa-bench-plot /path/to/pod_memory_results.csv",
		Args:    cobra.ExactArgs(1),
		Run:     runPlot,
	}

	// Ctrl-C keeps its default process-terminating behavior even while
	// the chart window's event loop is running.
	signal.Reset(os.Interrupt)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runPlot(cmd *cobra.Command, args []string) {
	verbose = cfg.Verbose

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rs, err := benchmark.Load(args[0])
	if err != nil {
		fail(err)
	}

	fmt.Printf("[INFO] Loaded %d samples from %s (phase: %s, metric: %s)\n",
		rs.Len(), args[0], rs.Phase, rs.Metric)
	logVerbose("Chart canvas: %.1fx%.1f inches", cfg.WidthInches, cfg.HeightInches)

	p, err := chart.Build(rs)
	if err != nil {
		fail(err)
	}

	if cfg.OutputPath != "" {
		if err := chart.Save(p, cfg.WidthInches, cfg.HeightInches, cfg.OutputPath); err != nil {
			fail(err)
		}
		fmt.Printf("[INFO] Chart written to %s\n", cfg.OutputPath)
		return
	}

	fmt.Println("[INFO] Opening chart window (close it to exit)")
	viewer.Show(p.Title.Text, chart.Render(p, cfg.WidthInches, cfg.HeightInches))
}

// fail prints the error and exits. Filename validation errors print their
// one-line message alone; everything else prints the full error chain.
func fail(err error) {
	var nameErr *benchmark.NameError
	if errors.As(err, &nameErr) {
		fmt.Fprintln(os.Stderr, nameErr.Message)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	os.Exit(1)
}
