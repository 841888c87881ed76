package chart

import (
	"math"
	"strconv"

	"github.com/opscart/vpa-bench-plot/pkg/analyzer"
	"github.com/opscart/vpa-bench-plot/pkg/benchmark"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Build assembles the chart for a result set. Rate-limiter sweeps render
// as line charts against their configuration labels; every other phase
// scatter-plots each workload group and overlays a regression line per
// series.
func Build(rs *benchmark.ResultSet) (*plot.Plot, error) {
	if rs.Phase == benchmark.PhaseRateLimiters {
		return buildRateLimiters(rs)
	}
	return buildStandard(rs)
}

func buildStandard(rs *benchmark.ResultSet) (*plot.Plot, error) {
	layout, err := benchmark.NewLayout(rs)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = title(rs.Phase, rs.Metric)
	p.X.Label.Text = xLabel(rs.Phase)
	p.Y.Label.Text = yLabel(rs.Metric)
	p.Add(plotter.NewGrid())

	for _, group := range layout.Groups {
		if err := plotGroup(p, rs, layout, group); err != nil {
			return nil, err
		}
	}

	p.X.Tick.Marker = plot.ConstantTicks(axisTicks(layout.Axis))
	rotateTickLabels(p)
	p.Legend.Top = true

	return p, nil
}

// plotGroup scatters each plotted series of one workload group and
// overlays its least-squares line, both in the group's colors.
func plotGroup(p *plot.Plot, rs *benchmark.ResultSet, layout *benchmark.Layout, group benchmark.WorkloadGroup) error {
	colors := groupColors(group.Label)

	for i, s := range plotSeries(rs.Metric) {
		ys := rs.Values[s.column][group.Start:group.End]

		pts := make(plotter.XYs, len(ys))
		for j := range ys {
			pts[j].X = layout.Axis[j]
			pts[j].Y = ys[j]
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return errors.Wrapf(err, "plotting %s", s.column)
		}
		scatter.GlyphStyle.Shape = s.glyph
		scatter.GlyphStyle.Color = colors[i]
		scatter.GlyphStyle.Radius = vg.Points(4)
		p.Add(scatter)
		p.Legend.Add(join(s.name, group.Label), scatter)

		line := analyzer.Fit(layout.Axis, ys)
		fitPts := make(plotter.XYs, len(layout.Axis))
		for j, x := range layout.Axis {
			fitPts[j].X = x
			fitPts[j].Y = line.At(x)
		}
		fit, err := plotter.NewLine(fitPts)
		if err != nil {
			return errors.Wrapf(err, "fitting %s", s.column)
		}
		fit.LineStyle.Color = colors[i]
		fit.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(fit)
		p.Legend.Add(join(s.fit, group.Label, line.Equation()), fit)
	}

	return nil
}

func buildRateLimiters(rs *benchmark.ResultSet) (*plot.Plot, error) {
	labels := benchmark.RateLimiterLabels(rs)

	p := plot.New()
	p.Title.Text = "Rate Limiter Configurations testing " + string(rs.Metric)
	p.Y.Label.Text = yLabel(rs.Metric)
	p.Add(plotter.NewGrid())

	for i, s := range rateLimiterSeries(rs.Metric) {
		values := rs.Values[s.column]

		pts := make(plotter.XYs, len(values))
		for j, v := range values {
			pts[j].X = float64(j)
			pts[j].Y = v
		}
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, errors.Wrapf(err, "plotting %s", s.column)
		}
		line.Color = plotutil.Color(i)
		points.Shape = s.glyph
		points.Color = plotutil.Color(i)
		p.Add(line, points)
		p.Legend.Add(s.name, line, points)
	}

	ticks := make([]plot.Tick, len(labels))
	for i, label := range labels {
		ticks[i] = plot.Tick{Value: float64(i), Label: label}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	rotateTickLabels(p)
	p.Legend.Top = true

	return p, nil
}

// axisTicks pins a tick to every distinct workload level
func axisTicks(axis []float64) []plot.Tick {
	seen := make(map[float64]bool, len(axis))
	ticks := make([]plot.Tick, 0, len(axis))
	for _, v := range axis {
		if seen[v] {
			continue
		}
		seen[v] = true
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', -1, 64)})
	}
	return ticks
}

func rotateTickLabels(p *plot.Plot) {
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
}
