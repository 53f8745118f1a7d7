// Package history persists benchmark runs so they can be exported later.
package history

import (
	"encoding/json"
	"errors"
	"fmt"

	"hyperbench/internal/benchmark"
)

// ErrRunNotFound is returned when a requested run does not exist.
var ErrRunNotFound = errors.New("run not found")

// Store defines the methods for persistent run history.
type Store interface {
	Close() error
	SaveRun(run benchmark.Run) (int64, error)
	// LatestRun returns nil, nil when the history is empty.
	LatestRun() (*benchmark.Run, error)
	GetRun(id int64) (*benchmark.Run, error)
	// ListRuns returns up to limit runs, newest first. A limit <= 0 means all runs.
	ListRuns(limit int) ([]benchmark.Run, error)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func encodeResults(results []benchmark.Result) (string, error) {
	if results == nil {
		results = []benchmark.Result{}
	}
	data, err := json.Marshal(results)
	if err != nil {
		return "", fmt.Errorf("failed to marshal results: %w", err)
	}
	return string(data), nil
}

func scanRun(row rowScanner) (*benchmark.Run, error) {
	var run benchmark.Run
	var results string
	if err := row.Scan(&run.ID, &run.Commit, &results, &run.Timestamp); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(results), &run.Results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal results of run %d: %w", run.ID, err)
	}
	return &run, nil
}
