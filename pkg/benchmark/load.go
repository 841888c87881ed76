package benchmark

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Load reads a results CSV from path, decoding the test phase and metric
// from the file name and normalizing the unit-suffixed value columns.
func Load(path string) (*ResultSet, error) {
	phase, metric, err := ParseResultsFilename(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	rs, err := Parse(f, phase, metric)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", filepath.Base(path))
	}
	return rs, nil
}

// Parse reads a semicolon-delimited results CSV. The header row names the
// columns; the Step column and every value column of the metric must be
// present. Extra columns are ignored.
func Parse(r io.Reader, phase TestPhase, metric Metric) (*ResultSet, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("file has no header row")
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading header")
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}

	columns := metric.Columns()
	for _, column := range append([]string{ColumnStep}, columns...) {
		if _, ok := index[column]; !ok {
			return nil, errors.Errorf("missing column %s", column)
		}
	}

	rs := &ResultSet{
		Phase:  phase,
		Metric: metric,
		Values: make(map[string][]float64, len(columns)),
	}

	for row := 1; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading row %d", row)
		}

		rs.Steps = append(rs.Steps, strings.TrimSpace(record[index[ColumnStep]]))
		for _, column := range columns {
			v, err := normalize(record[index[column]], metric.Suffix(column))
			if err != nil {
				return nil, errors.Wrapf(err, "row %d column %s", row, column)
			}
			rs.Values[column] = append(rs.Values[column], v)
		}
	}

	if rs.Len() == 0 {
		return nil, errors.New("file has no data rows")
	}
	return rs, nil
}

// normalize strips the unit suffix from a cell and parses the remainder as
// a float. Cells without the suffix still parse when the rest is numeric.
func normalize(cell, suffix string) (float64, error) {
	s := strings.TrimSpace(cell)
	s = strings.TrimSuffix(s, suffix)
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Errorf("malformed value %q", cell)
	}
	return v, nil
}
