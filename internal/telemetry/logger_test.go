package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock handler to inspect log records
type mockHandler struct {
	mu       sync.Mutex
	records  []slog.Record
	attrs    []slog.Attr
	group    string
	enabled  bool
	handleFn func(slog.Record) error // Optional custom handle logic
}

func (h *mockHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.enabled
}

func (h *mockHandler) Handle(ctx context.Context, record slog.Record) error {
	if h.handleFn != nil {
		return h.handleFn(record)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, record)
	return nil
}

func (h *mockHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h.mu.Lock()
	defer h.mu.Unlock()
	newHandler := *h
	newHandler.attrs = append(h.attrs, attrs...)
	return &newHandler
}

func (h *mockHandler) WithGroup(name string) slog.Handler {
	h.mu.Lock()
	defer h.mu.Unlock()
	newHandler := *h
	if newHandler.group == "" {
		newHandler.group = name
	} else {
		newHandler.group = newHandler.group + "." + name
	}
	return &newHandler
}

func (h *mockHandler) getRecords() []slog.Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.records
}

func TestMultiHandler(t *testing.T) {
	h1 := &mockHandler{enabled: true}
	h2 := &mockHandler{enabled: true}

	multi := &multiHandler{handlers: []slog.Handler{h1, h2}}

	t.Run("Enabled", func(t *testing.T) {
		assert.True(t, multi.Enabled(context.Background(), slog.LevelInfo))

		h1.enabled = false
		h2.enabled = false
		assert.False(t, multi.Enabled(context.Background(), slog.LevelInfo))
	})

	t.Run("Handle", func(t *testing.T) {
		h1.enabled = true
		h2.enabled = true
		record := slog.NewRecord(time.Now(), slog.LevelInfo, "test message", 0)
		err := multi.Handle(context.Background(), record)
		assert.NoError(t, err)
		assert.Len(t, h1.getRecords(), 1)
		assert.Len(t, h2.getRecords(), 1)
		assert.Equal(t, "test message", h1.getRecords()[0].Message)

		h2.enabled = false
		require.NoError(t, multi.Handle(context.Background(), record))
		assert.Len(t, h1.getRecords(), 2)
		assert.Len(t, h2.getRecords(), 1, "disabled handler must be skipped")
	})

	t.Run("WithAttrs", func(t *testing.T) {
		attrs := []slog.Attr{slog.String("key", "value")}
		handlerWithAttrs := multi.WithAttrs(attrs)

		// Check if the new handler is a multiHandler
		newMulti, ok := handlerWithAttrs.(*multiHandler)
		require.True(t, ok, "WithAttrs should return a *multiHandler")

		// Check if underlying handlers have the attributes
		for _, h := range newMulti.handlers {
			mockH, ok := h.(*mockHandler)
			require.True(t, ok)
			assert.Equal(t, attrs, mockH.attrs)
		}
	})

	t.Run("WithGroup", func(t *testing.T) {
		handlerWithGroup := multi.WithGroup("my-group")

		newMulti, ok := handlerWithGroup.(*multiHandler)
		require.True(t, ok, "WithGroup should return a *multiHandler")

		for _, h := range newMulti.handlers {
			mockH, ok := h.(*mockHandler)
			require.True(t, ok)
			assert.Equal(t, "my-group", mockH.group)
		}
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("Console only", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(false, "", &buf)
		logger.Debug("hidden")
		logger.Info("shown", "format", "markdown")

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, `"msg":"shown"`)
		assert.Contains(t, out, `"format":"markdown"`)
	})

	t.Run("Debug level", func(t *testing.T) {
		var buf bytes.Buffer
		NewLogger(true, "", &buf).Debug("debug message")
		assert.Contains(t, buf.String(), "debug message")
	})

	t.Run("File and console", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.log")
		var buf bytes.Buffer

		logger := NewLogger(false, path, &buf)
		_, ok := logger.Handler().(*multiHandler)
		assert.True(t, ok)
		logger.Info("file message")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "file message")
		assert.Contains(t, buf.String(), "file message")
	})

	t.Run("No handlers", func(t *testing.T) {
		logger := NewLogger(false, "", nil)
		assert.NotNil(t, logger)
		logger.Info("this goes to dev/null")
	})
}

func TestInitLogger(t *testing.T) {
	originalLogger := slog.Default()
	defer slog.SetDefault(originalLogger)

	InitLogger(true, "")
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))

	InitLogger(false, "")
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}

func TestLogInfof(t *testing.T) {
	originalLogger := slog.Default()
	defer slog.SetDefault(originalLogger)
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	LogInfof("hello, %s", "world")

	var logOutput map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &logOutput)
	require.NoError(t, err)

	assert.Equal(t, "hello, world", logOutput["msg"])
	assert.Equal(t, "INFO", logOutput["level"])
}

func TestLogError(t *testing.T) {
	originalLogger := slog.Default()
	defer slog.SetDefault(originalLogger)
	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))

	LogError("export failed", io.ErrUnexpectedEOF, "format", "csv")
	out := buf.String()
	assert.Contains(t, out, `"format":"csv"`)
	assert.Contains(t, out, `"error":"unexpected EOF"`)
}

func TestNewLogger_FileError(t *testing.T) {
	originalLogger := slog.Default()
	defer slog.SetDefault(originalLogger)

	var buf bytes.Buffer
	testLogger := slog.New(slog.NewJSONHandler(&buf, nil))
	slog.SetDefault(testLogger)

	invalidPath := filepath.Join(t.TempDir(), "nonexistent/test.log")
	logger := NewLogger(false, invalidPath, nil)
	assert.NotNil(t, logger)

	output := buf.String()
	assert.True(t, strings.Contains(output, "Failed to open log file"), "Expected log file error message, got: "+output)
}
