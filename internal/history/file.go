package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"hyperbench/internal/benchmark"
)

// FileStore implements Store using a single JSON file.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Close() error { return nil }

func (s *FileStore) SaveRun(run benchmark.Run) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runs, err := s.load()
	if err != nil {
		return 0, err
	}

	run.ID = 1
	if len(runs) > 0 {
		run.ID = runs[len(runs)-1].ID + 1
	}
	runs = append(runs, run)

	data, err := json.MarshalIndent(runs, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to marshal runs: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return 0, err
	}
	return run.ID, nil
}

func (s *FileStore) LatestRun() (*benchmark.Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runs, err := s.load()
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[len(runs)-1], nil
}

func (s *FileStore) GetRun(id int64) (*benchmark.Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runs, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range runs {
		if runs[i].ID == id {
			return &runs[i], nil
		}
	}
	return nil, fmt.Errorf("run %d: %w", id, ErrRunNotFound)
}

func (s *FileStore) ListRuns(limit int) ([]benchmark.Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runs, err := s.load()
	if err != nil {
		return nil, err
	}

	var out []benchmark.Run
	for i := len(runs) - 1; i >= 0 && (limit <= 0 || len(out) < limit); i-- {
		out = append(out, runs[i])
	}
	return out, nil
}

// load returns all runs ordered by id. A missing file is an empty history.
func (s *FileStore) load() ([]benchmark.Run, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var runs []benchmark.Run
	if err := json.Unmarshal(data, &runs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal runs: %w", err)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].ID < runs[j].ID
	})
	return runs, nil
}
