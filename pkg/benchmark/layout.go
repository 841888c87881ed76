package benchmark

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// RateLimiterPrefix is the fixed workload prefix carried by every Step
// label of a rate-limiters run.
const RateLimiterPrefix = "64 deployments "

// WorkloadGroup is one contiguous run of rows compared within a chart
type WorkloadGroup struct {
	// Label names the replica scale of the group, e.g. "2 pods".
	// Empty for phases with a single unscaled group.
	Label string
	// Start and End bound the group's rows, End exclusive
	Start int
	End   int
}

// Layout fixes the numeric x-axis and the workload grouping of a result
// set. Every group is plotted against the same Axis values.
type Layout struct {
	// Steps holds the per-row step labels after the phase rewrite:
	// the leading integer for split phases, "1 Idle" for idle,
	// unchanged otherwise
	Steps []string

	// Axis holds the numeric x value for each row of a group. Its
	// length always equals the row span of each group.
	Axis []float64

	Groups []WorkloadGroup
}

// NewLayout derives the x-axis and workload groups for a result set
// according to its test phase.
//
// deployment-pods and deployment-containers runs concatenate three scaling
// sweeps (1x, 2x, 4x replicas), so their rows split into three equal
// groups; the first group's step values serve as the shared axis for all
// three. The rate-limiters phase has no numeric axis and is rejected.
func NewLayout(rs *ResultSet) (*Layout, error) {
	switch rs.Phase {
	case PhaseDeploymentPods, PhaseDeploymentContainers:
		return splitLayout(rs)
	case PhaseIdle:
		return idleLayout(rs), nil
	case PhaseRateLimiters:
		return nil, errors.New("rate-limiters results have no numeric layout")
	default:
		return flatLayout(rs)
	}
}

func splitLayout(rs *ResultSet) (*Layout, error) {
	n := rs.Len()
	if n%3 != 0 {
		return nil, errors.Errorf("row count %d does not split into three equal workload groups", n)
	}
	third := n / 3

	l := &Layout{Steps: make([]string, n)}
	for i, step := range rs.Steps {
		l.Steps[i] = strings.Split(step, " ")[0]
	}

	// the first group's steps are the shared axis for all three groups
	for i := 0; i < third; i++ {
		v, err := leadingInt(rs.Steps[i])
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i+1)
		}
		l.Axis = append(l.Axis, float64(v))
	}

	scale := "pods"
	if rs.Phase == PhaseDeploymentContainers {
		scale = "containers"
	}
	l.Groups = []WorkloadGroup{
		{Label: "1 " + scale, Start: 0, End: third},
		{Label: "2 " + scale, Start: third, End: 2 * third},
		{Label: "4 " + scale, Start: 2 * third, End: n},
	}
	return l, nil
}

func idleLayout(rs *ResultSet) *Layout {
	n := rs.Len()
	l := &Layout{
		Steps:  make([]string, n),
		Axis:   make([]float64, n),
		Groups: []WorkloadGroup{{Start: 0, End: n}},
	}
	for i := range l.Steps {
		l.Steps[i] = "1 Idle"
		l.Axis[i] = 1
	}
	return l
}

func flatLayout(rs *ResultSet) (*Layout, error) {
	n := rs.Len()
	l := &Layout{
		Steps:  append([]string(nil), rs.Steps...),
		Groups: []WorkloadGroup{{Start: 0, End: n}},
	}
	for i, step := range rs.Steps {
		v, err := leadingInt(step)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i+1)
		}
		l.Axis = append(l.Axis, float64(v))
	}
	return l, nil
}

// RateLimiterLabels returns the categorical x-axis labels of a
// rate-limiters run, with the fixed workload prefix stripped.
func RateLimiterLabels(rs *ResultSet) []string {
	labels := make([]string, rs.Len())
	for i, step := range rs.Steps {
		labels[i] = strings.TrimPrefix(step, RateLimiterPrefix)
	}
	return labels
}

// leadingInt extracts the integer that starts a step label like
// "3 deployments"
func leadingInt(step string) (int, error) {
	head := strings.Split(step, " ")[0]
	v, err := strconv.Atoi(head)
	if err != nil {
		return 0, errors.Errorf("step %q does not start with a number", step)
	}
	return v, nil
}
