package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"slices"
	"strconv"

	"hyperbench/internal/benchmark"
	"hyperbench/internal/units"
)

// CSVExporter writes one row per result with times in seconds.
type CSVExporter struct{}

func (e *CSVExporter) Serialize(results []benchmark.Result, _ *units.Unit) ([]byte, error) {
	var paramNames []string
	for _, res := range results {
		for _, name := range res.ParameterNames() {
			if !slices.Contains(paramNames, name) {
				paramNames = append(paramNames, name)
			}
		}
	}
	slices.Sort(paramNames)

	header := []string{"command", "mean", "stddev", "median", "user", "system", "min", "max"}
	for _, name := range paramNames {
		header = append(header, "parameter_"+name)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, &ExportError{Format: "csv", Err: fmt.Errorf("failed to write header: %w", err)}
	}

	for _, res := range results {
		stddev := ""
		if res.Stddev != nil {
			stddev = formatSeconds(*res.Stddev)
		}
		row := []string{
			res.Command,
			formatSeconds(res.Mean),
			stddev,
			formatSeconds(res.Median),
			formatSeconds(res.User),
			formatSeconds(res.System),
			formatSeconds(res.Min),
			formatSeconds(res.Max),
		}
		for _, name := range paramNames {
			row = append(row, res.Parameters[name])
		}
		if err := w.Write(row); err != nil {
			return nil, &ExportError{Format: "csv", Err: fmt.Errorf("failed to write row for %q: %w", res.Command, err)}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, &ExportError{Format: "csv", Err: err}
	}
	return buf.Bytes(), nil
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
