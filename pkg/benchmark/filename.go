package benchmark

import (
	"path/filepath"
	"strings"
)

// NameError reports an input file whose name violates the
// <test_phase>_<metric>_results.csv contract. Its message is meant to be
// shown to the user as-is.
type NameError struct {
	Name    string // offending basename
	Message string
}

func (e *NameError) Error() string {
	return e.Message
}

// ParseResultsFilename decodes the test phase and metric from a results
// file path. The basename must tokenize on '_' so that the last token is
// "results.csv", the second-to-last a metric and the third-to-last a test
// phase. Violations come back as a *NameError.
func ParseResultsFilename(path string) (TestPhase, Metric, error) {
	name := filepath.Base(path)
	tokens := strings.Split(name, "_")

	if tokens[len(tokens)-1] != "results.csv" {
		return "", "", &NameError{
			Name:    name,
			Message: "Invalid file. Must end with results.csv",
		}
	}
	if len(tokens) < 2 || !validMetric(tokens[len(tokens)-2]) {
		return "", "", &NameError{
			Name:    name,
			Message: "Invalid metric in file name. File name must look like <test_phase>_<metric>_results.csv",
		}
	}
	if len(tokens) < 3 || !validPhase(tokens[len(tokens)-3]) {
		return "", "", &NameError{
			Name:    name,
			Message: "Invalid test phase in file name. File name must look like <test_phase>_<metric>_results.csv",
		}
	}

	return TestPhase(tokens[len(tokens)-3]), Metric(tokens[len(tokens)-2]), nil
}
