package benchmark

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// resultsFile is the on-disk layout shared with the JSON exporter.
type resultsFile struct {
	Results []Result `json:"results"`
}

// ReadResults decodes a {"results": [...]} document. Entries that carry raw
// times but no mean are summarized from their samples.
func ReadResults(r io.Reader) ([]Result, error) {
	var doc resultsFile
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode results: %w", err)
	}

	for i, res := range doc.Results {
		if res.Mean == 0 && len(res.Times) > 0 {
			summary := Summarize(res.Command, res.Times, res.ExitCodes, res.Parameters)
			summary.User, summary.System = res.User, res.System
			doc.Results[i] = summary
		}
	}
	return doc.Results, nil
}

// LoadResults reads results from a JSON file.
func LoadResults(path string) ([]Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open results file %s: %w", path, err)
	}
	defer f.Close()

	results, err := ReadResults(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return results, nil
}
