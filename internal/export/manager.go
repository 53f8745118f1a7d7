package export

import (
	"fmt"
	"io"
	"os"
	"time"

	"hyperbench/internal/benchmark"
	"hyperbench/internal/units"
)

// Observer is notified after every serialization attempt.
type Observer func(format string, rows int, elapsed time.Duration, err error)

type target struct {
	format   string
	exporter Exporter
	path     string
}

// Manager writes a result set to several export targets.
type Manager struct {
	targets  []target
	unit     *units.Unit
	stdout   io.Writer
	observer Observer
}

// NewManager creates a manager. A nil unit lets each exporter choose.
func NewManager(unit *units.Unit, stdout io.Writer) *Manager {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Manager{unit: unit, stdout: stdout}
}

// SetObserver installs a hook called after each export.
func (m *Manager) SetObserver(o Observer) {
	m.observer = o
}

// Add registers a target. A path of "-" writes to the manager's stdout.
func (m *Manager) Add(format, path string) error {
	canonical, err := CanonicalFormat(format)
	if err != nil {
		return err
	}
	exporter, err := ForFormat(canonical)
	if err != nil {
		return err
	}
	m.targets = append(m.targets, target{format: canonical, exporter: exporter, path: path})
	return nil
}

// Len reports the number of registered targets.
func (m *Manager) Len() int {
	return len(m.targets)
}

// WriteResults serializes results for every target, stopping at the first
// failure.
func (m *Manager) WriteResults(results []benchmark.Result) error {
	for _, t := range m.targets {
		start := time.Now()
		data, err := t.exporter.Serialize(results, m.unit)
		if m.observer != nil {
			m.observer(t.format, len(results), time.Since(start), err)
		}
		if err != nil {
			return err
		}
		if err := m.write(t.path, data); err != nil {
			return fmt.Errorf("failed to write %s export to %s: %w", t.format, t.path, err)
		}
	}
	return nil
}

func (m *Manager) write(path string, data []byte) error {
	if path == "-" || path == "" {
		_, err := m.stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}
