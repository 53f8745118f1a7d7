package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"hyperbench/internal/benchmark"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_WritesAllTargets(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "out.csv")
	var stdout bytes.Buffer

	m := NewManager(nil, &stdout)
	require.NoError(t, m.Add("md", "-"))
	require.NoError(t, m.Add("csv", csvPath))
	assert.Equal(t, 2, m.Len())

	var observed []string
	m.SetObserver(func(format string, rows int, _ time.Duration, err error) {
		assert.NoError(t, err)
		assert.Equal(t, 2, rows)
		observed = append(observed, format)
	})

	require.NoError(t, m.WriteResults([]benchmark.Result{sleepShort(), sleepLong()}))

	assert.True(t, strings.HasPrefix(stdout.String(), tableHeader("ms")))
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "command,mean"))
	assert.Equal(t, []string{"markdown", "csv"}, observed)
}

func TestManager_StopsOnFirstFailure(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "out.json")

	m := NewManager(nil, &bytes.Buffer{})
	require.NoError(t, m.Add("markdown", "-"))
	require.NoError(t, m.Add("json", jsonPath))

	var failures int
	m.SetObserver(func(_ string, _ int, _ time.Duration, err error) {
		if err != nil {
			failures++
		}
	})

	err := m.WriteResults(nil)
	assert.ErrorIs(t, err, ErrRelativeComparisonUnavailable)
	assert.Equal(t, 1, failures)
	assert.NoFileExists(t, jsonPath)
}

func TestManager_RejectsUnknownFormat(t *testing.T) {
	m := NewManager(nil, nil)
	err := m.Add("yaml", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported export format "yaml"`)
	assert.Equal(t, 0, m.Len())

	require.NoError(t, m.Add(" ADOC ", "-"))
	assert.Equal(t, 1, m.Len())
}

func TestManager_WriteFailure(t *testing.T) {
	m := NewManager(nil, nil)
	require.NoError(t, m.Add("json", filepath.Join(t.TempDir(), "missing", "out.json")))
	err := m.WriteResults([]benchmark.Result{sleepShort()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write json export")
}
