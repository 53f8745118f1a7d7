package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	defer viper.Reset()

	t.Run("Defaults Without File", func(t *testing.T) {
		viper.Reset()
		t.Chdir(t.TempDir())

		require.NoError(t, Load(""))
		s := Current()
		assert.Equal(t, "markdown", s.Format)
		assert.Equal(t, "", s.TimeUnit)
		assert.Equal(t, "sqlite", s.HistoryType)
	})

	t.Run("Load From Env", func(t *testing.T) {
		viper.Reset()
		t.Chdir(t.TempDir())
		t.Setenv("HYPERBENCH_FORMAT", "csv")
		t.Setenv("HYPERBENCH_HISTORY_TYPE", "json")

		require.NoError(t, Load(""))
		assert.Equal(t, "csv", Current().Format)
		assert.Equal(t, "json", Current().HistoryType)
	})

	t.Run("Explicit File", func(t *testing.T) {
		viper.Reset()
		path := filepath.Join(t.TempDir(), "bench.yaml")
		require.NoError(t, os.WriteFile(path, []byte("format: asciidoc\ntime_unit: s\nhistory:\n  type: json\n"), 0644))

		require.NoError(t, Load(path))
		s := Current()
		assert.Equal(t, "asciidoc", s.Format)
		assert.Equal(t, "s", s.TimeUnit)
		assert.Equal(t, "json", s.HistoryType)
	})

	t.Run("Missing Explicit File", func(t *testing.T) {
		viper.Reset()
		err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}

func TestWrite(t *testing.T) {
	defer viper.Reset()
	viper.Reset()

	path := filepath.Join(t.TempDir(), "out.yaml")
	want := Settings{Format: "orgmode", TimeUnit: "ms", HistoryType: "json", HistoryDSN: "runs.json"}
	require.NoError(t, Write(path, want))

	require.NoError(t, Load(path))
	got := Current()
	assert.Equal(t, want.Format, got.Format)
	assert.Equal(t, want.TimeUnit, got.TimeUnit)
	assert.Equal(t, want.HistoryType, got.HistoryType)
	assert.Equal(t, want.HistoryDSN, got.HistoryDSN)
}
