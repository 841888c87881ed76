package chart

import (
	"fmt"
	"strings"

	"github.com/opscart/vpa-bench-plot/pkg/benchmark"
	"gonum.org/v1/plot/vg/draw"
)

// phaseNouns names the scaled workload of each phase for chart titles
var phaseNouns = map[benchmark.TestPhase]string{
	benchmark.PhaseDeployment:           "Deployments",
	benchmark.PhasePod:                  "Pods",
	benchmark.PhaseDeploymentPods:       "Deployments and Pods",
	benchmark.PhaseDeploymentContainers: "Deployments and Containers",
}

func title(phase benchmark.TestPhase, metric benchmark.Metric) string {
	if phase == benchmark.PhaseIdle {
		return "Idle Performance"
	}
	noun := phaseNouns[phase]
	switch metric {
	case benchmark.MetricCPU:
		return fmt.Sprintf("CPU Usage Over %s (m) (interpolated)", noun)
	case benchmark.MetricMemory:
		return fmt.Sprintf("Memory Usage Over %s (MiB) (interpolated)", noun)
	default:
		return fmt.Sprintf("API Performance Over %s (interpolated)", noun)
	}
}

// xLabel returns the x-axis label. The combined phases scale deployments
// first, so they share the deployment label.
func xLabel(phase benchmark.TestPhase) string {
	switch phase {
	case benchmark.PhasePod:
		return "Number of Pods"
	case benchmark.PhaseIdle:
		return "Idle after 20 minutes"
	default:
		return "Number of Deployments"
	}
}

func yLabel(metric benchmark.Metric) string {
	switch metric {
	case benchmark.MetricCPU:
		return "CPU Usage (m)"
	case benchmark.MetricMemory:
		return "Memory Usage (MiB)"
	default:
		return "API Performance"
	}
}

// series describes how one CSV column appears on the chart
type series struct {
	column string
	name   string // scatter legend entry, group label appended
	fit    string // regression legend prefix
	glyph  draw.GlyphDrawer
}

// plotSeries lists the columns drawn on the standard path. Operator is
// loaded but left off the chart: its usage has no linear relationship to
// workload scale.
func plotSeries(metric benchmark.Metric) []series {
	if metric == benchmark.MetricAPI {
		return []series{
			{benchmark.ColumnAPIPerformance, "API Performance", "API Performance Regression", draw.CircleGlyph{}},
			{benchmark.ColumnWebhook, "Webhook", "Webhook Regression", draw.BoxGlyph{}},
			{benchmark.ColumnRequestLatency, "API Request Latency", "Request Latency Regression", draw.PyramidGlyph{}},
		}
	}
	return []series{
		{benchmark.ColumnAdmission, "Admission", "Admission eq", draw.CircleGlyph{}},
		{benchmark.ColumnRecommender, "Recommender", "Recommender eq", draw.BoxGlyph{}},
		{benchmark.ColumnUpdater, "Updater", "Updater eq", draw.PyramidGlyph{}},
	}
}

// rateLimiterSeries lists the lines of a rate-limiter sweep. Units ride
// in the legend because the sweep mixes them on a single axis.
func rateLimiterSeries(metric benchmark.Metric) []series {
	if metric == benchmark.MetricAPI {
		return []series{
			{column: benchmark.ColumnAPIPerformance, name: "API Performance (req/s)", glyph: draw.CircleGlyph{}},
			{column: benchmark.ColumnWebhook, name: "Webhook (ms/req)", glyph: draw.CrossGlyph{}},
			{column: benchmark.ColumnRequestLatency, name: "API Request Latency (ms)", glyph: draw.BoxGlyph{}},
		}
	}
	return []series{
		{column: benchmark.ColumnAdmission, name: "Admission", glyph: draw.CrossGlyph{}},
		{column: benchmark.ColumnRecommender, name: "Recommender", glyph: draw.BoxGlyph{}},
		{column: benchmark.ColumnUpdater, name: "Updater", glyph: draw.PyramidGlyph{}},
	}
}

// join builds a legend entry from its non-empty parts
func join(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, " ")
}
