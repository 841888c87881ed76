package chart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opscart/vpa-bench-plot/pkg/benchmark"
)

func podCPUResults(t *testing.T) *benchmark.ResultSet {
	t.Helper()

	data := "Step;Operator;Admission;Recommender;Updater\n" +
		"5 pods;100m;50m;30m;20m\n" +
		"10 pods;110m;55m;33m;22m\n" +
		"15 pods;120m;60m;36m;24m\n"
	rs, err := benchmark.Parse(strings.NewReader(data), benchmark.PhasePod, benchmark.MetricCPU)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return rs
}

func TestBuildPodCPU(t *testing.T) {
	p, err := Build(podCPUResults(t))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if p.Title.Text != "CPU Usage Over Pods (m) (interpolated)" {
		t.Errorf("Expected pod cpu title, got %q", p.Title.Text)
	}
	if p.Y.Label.Text != "CPU Usage (m)" {
		t.Errorf("Expected cpu y-axis label, got %q", p.Y.Label.Text)
	}
	if p.X.Label.Text != "Number of Pods" {
		t.Errorf("Expected pod x-axis label, got %q", p.X.Label.Text)
	}
}

func TestBuildIdleMemory(t *testing.T) {
	data := "Step;Operator;Admission;Recommender;Updater\n" +
		"sample 1;80MiB;40MiB;25MiB;15MiB\n" +
		"sample 2;82MiB;41MiB;26MiB;16MiB\n"
	rs, err := benchmark.Parse(strings.NewReader(data), benchmark.PhaseIdle, benchmark.MetricMemory)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	p, err := Build(rs)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if p.Title.Text != "Idle Performance" {
		t.Errorf("Expected idle title, got %q", p.Title.Text)
	}
	if p.X.Label.Text != "Idle after 20 minutes" {
		t.Errorf("Expected idle x-axis label, got %q", p.X.Label.Text)
	}
	if p.Y.Label.Text != "Memory Usage (MiB)" {
		t.Errorf("Expected memory y-axis label, got %q", p.Y.Label.Text)
	}
}

func TestBuildDeploymentContainersAPI(t *testing.T) {
	data := "Step;APIPerformance;Webhook;RequestLatency\n" +
		"2 deployments;30.2req/s;12.1ms/req;4.5ms/req\n" +
		"4 deployments;28.9req/s;13.4ms/req;5.1ms/req\n" +
		"2 deployments;27.5req/s;14.0ms/req;5.9ms/req\n" +
		"4 deployments;26.1req/s;15.2ms/req;6.4ms/req\n" +
		"2 deployments;25.0req/s;16.8ms/req;7.0ms/req\n" +
		"4 deployments;24.2req/s;17.3ms/req;7.7ms/req\n"
	rs, err := benchmark.Parse(strings.NewReader(data), benchmark.PhaseDeploymentContainers, benchmark.MetricAPI)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	p, err := Build(rs)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if p.Title.Text != "API Performance Over Deployments and Containers (interpolated)" {
		t.Errorf("Expected combined phase title, got %q", p.Title.Text)
	}
	if p.X.Label.Text != "Number of Deployments" {
		t.Errorf("Expected deployment x-axis label, got %q", p.X.Label.Text)
	}
	if p.Y.Label.Text != "API Performance" {
		t.Errorf("Expected api y-axis label, got %q", p.Y.Label.Text)
	}
}

func TestBuildRateLimiters(t *testing.T) {
	data := "Step;Operator;Admission;Recommender;Updater\n" +
		"64 deployments 10qps;100m;50m;30m;20m\n" +
		"64 deployments 50qps;120m;65m;40m;28m\n"
	rs, err := benchmark.Parse(strings.NewReader(data), benchmark.PhaseRateLimiters, benchmark.MetricCPU)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	p, err := Build(rs)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if p.Title.Text != "Rate Limiter Configurations testing cpu" {
		t.Errorf("Expected rate limiter title, got %q", p.Title.Text)
	}
	if p.Y.Label.Text != "CPU Usage (m)" {
		t.Errorf("Expected cpu y-axis label, got %q", p.Y.Label.Text)
	}
	// the rate-limiter path skips the standard axis labeling
	if p.X.Label.Text != "" {
		t.Errorf("Expected no x-axis label, got %q", p.X.Label.Text)
	}
}

func TestBuildUnevenSplitFails(t *testing.T) {
	data := "Step;Operator;Admission;Recommender;Updater\n" +
		"1 deployments;100m;50m;30m;20m\n" +
		"2 deployments;110m;55m;33m;22m\n" +
		"3 deployments;120m;60m;36m;24m\n" +
		"4 deployments;130m;65m;39m;26m\n"
	rs, err := benchmark.Parse(strings.NewReader(data), benchmark.PhaseDeploymentPods, benchmark.MetricCPU)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if _, err := Build(rs); err == nil {
		t.Fatal("Expected error for row count not divisible by 3, got none")
	}
}

func TestRenderImageSize(t *testing.T) {
	p, err := Build(podCPUResults(t))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	img := Render(p, 10, 6)

	// 10x6 inches at the default 96 DPI
	if img.Bounds().Dx() != 960 || img.Bounds().Dy() != 576 {
		t.Errorf("Expected a 960x576 image, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestSavePNG(t *testing.T) {
	p, err := Build(podCPUResults(t))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "chart.png")
	if err := Save(p, 10, 6, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Expected chart file, got %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected a non-empty chart file")
	}
}

func TestAxisTicksDeduplicate(t *testing.T) {
	ticks := axisTicks([]float64{1, 1, 1, 5, 10, 5})

	if len(ticks) != 3 {
		t.Fatalf("Expected 3 distinct ticks, got %d", len(ticks))
	}
	wantValues := []float64{1, 5, 10}
	wantLabels := []string{"1", "5", "10"}
	for i := range ticks {
		if ticks[i].Value != wantValues[i] {
			t.Errorf("Expected tick value %v, got %v", wantValues[i], ticks[i].Value)
		}
		if ticks[i].Label != wantLabels[i] {
			t.Errorf("Expected tick label %q, got %q", wantLabels[i], ticks[i].Label)
		}
	}
}
