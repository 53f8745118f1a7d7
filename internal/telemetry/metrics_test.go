package telemetry

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveExport(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.ObserveExport("markdown", 2, time.Millisecond, nil)
	m.ObserveExport("markdown", 3, time.Millisecond, nil)
	m.ObserveExport("markdown", 0, time.Microsecond, errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ExportsTotal.WithLabelValues("markdown", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExportsTotal.WithLabelValues("markdown", "error")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.RowsRendered.WithLabelValues("markdown")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ExportDuration))
}

func TestNewMetrics_DoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)
	assert.Panics(t, func() { NewMetrics(reg) })
}

func TestPushMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.ObserveExport("csv", 4, time.Millisecond, nil)

	var method, path string
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	require.NoError(t, PushMetrics(context.Background(), srv.URL, "hyperbench", reg))
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/metrics/job/hyperbench", path)
	assert.Contains(t, string(body), "hyperbench_rows_rendered_total")
}

func TestPushMetrics_GatewayError(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg).ObserveExport("json", 1, time.Millisecond, nil)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := PushMetrics(context.Background(), srv.URL, "hyperbench", reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to push metrics")
}
