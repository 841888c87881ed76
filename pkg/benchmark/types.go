package benchmark

// TestPhase identifies the benchmark scenario a results file was captured in
type TestPhase string

const (
	PhaseIdle                 TestPhase = "idle"
	PhaseDeployment           TestPhase = "deployment"
	PhasePod                  TestPhase = "pod"
	PhaseDeploymentPods       TestPhase = "deployment-pods"
	PhaseDeploymentContainers TestPhase = "deployment-containers"
	PhaseRateLimiters         TestPhase = "rate-limiters"
)

// Metric identifies which quantity a results file reports
type Metric string

const (
	MetricCPU    Metric = "cpu"
	MetricMemory Metric = "memory"
	MetricAPI    Metric = "api"
)

// Column names as they appear in the CSV header
const (
	ColumnStep           = "Step"
	ColumnOperator       = "Operator"
	ColumnAdmission      = "Admission"
	ColumnRecommender    = "Recommender"
	ColumnUpdater        = "Updater"
	ColumnAPIPerformance = "APIPerformance"
	ColumnWebhook        = "Webhook"
	ColumnRequestLatency = "RequestLatency"
)

// Columns returns the value columns a results file must carry for the metric
func (m Metric) Columns() []string {
	if m == MetricAPI {
		return []string{ColumnAPIPerformance, ColumnWebhook, ColumnRequestLatency}
	}
	return []string{ColumnOperator, ColumnAdmission, ColumnRecommender, ColumnUpdater}
}

// Suffix returns the unit suffix attached to cells of the given column
func (m Metric) Suffix(column string) string {
	switch m {
	case MetricCPU:
		return "m" // millicores
	case MetricMemory:
		return "MiB"
	case MetricAPI:
		if column == ColumnAPIPerformance {
			return "req/s"
		}
		return "ms/req"
	}
	return ""
}

func validMetric(s string) bool {
	switch Metric(s) {
	case MetricCPU, MetricMemory, MetricAPI:
		return true
	}
	return false
}

func validPhase(s string) bool {
	switch TestPhase(s) {
	case PhaseIdle, PhaseDeployment, PhasePod, PhaseDeploymentPods,
		PhaseDeploymentContainers, PhaseRateLimiters:
		return true
	}
	return false
}

// ResultSet holds one results file after unit normalization
type ResultSet struct {
	Phase  TestPhase
	Metric Metric

	// Steps are the raw Step labels in row order
	Steps []string

	// Values holds one normalized series per metric column, keyed by
	// column name, all in row order
	Values map[string][]float64
}

// Len returns the number of data rows
func (rs *ResultSet) Len() int {
	return len(rs.Steps)
}
