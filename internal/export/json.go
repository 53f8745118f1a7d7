package export

import (
	"encoding/json"
	"fmt"

	"hyperbench/internal/benchmark"
	"hyperbench/internal/units"
)

// JSONExporter writes the full result records, including raw times.
// Durations are always in seconds.
type JSONExporter struct{}

type jsonDocument struct {
	Results []benchmark.Result `json:"results"`
}

func (e *JSONExporter) Serialize(results []benchmark.Result, _ *units.Unit) ([]byte, error) {
	doc := jsonDocument{Results: results}
	if doc.Results == nil {
		doc.Results = []benchmark.Result{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, &ExportError{Format: "json", Err: fmt.Errorf("failed to marshal results: %w", err)}
	}
	return append(data, '\n'), nil
}
