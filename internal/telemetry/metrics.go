package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const pushTimeout = 10 * time.Second

// Metrics holds the export counters.
type Metrics struct {
	ExportsTotal   *prometheus.CounterVec
	ExportDuration *prometheus.HistogramVec
	RowsRendered   *prometheus.CounterVec
}

// NewMetrics creates the export metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ExportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hyperbench_exports_total",
				Help: "Total number of export attempts",
			},
			[]string{"format", "status"},
		),
		ExportDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hyperbench_export_duration_seconds",
				Help:    "Time spent serializing results",
				Buckets: prometheus.ExponentialBuckets(1e-6, 10, 7),
			},
			[]string{"format"},
		),
		RowsRendered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hyperbench_rows_rendered_total",
				Help: "Total number of result rows written by successful exports",
			},
			[]string{"format"},
		),
	}

	reg.MustRegister(m.ExportsTotal, m.ExportDuration, m.RowsRendered)
	return m
}

// ObserveExport records one export attempt. Its signature matches
// export.Observer.
func (m *Metrics) ObserveExport(format string, rows int, elapsed time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.ExportsTotal.WithLabelValues(format, status).Inc()
	m.ExportDuration.WithLabelValues(format).Observe(elapsed.Seconds())
	if err == nil {
		m.RowsRendered.WithLabelValues(format).Add(float64(rows))
	}
	slog.Debug("export finished", "format", format, "rows", rows, "status", status, "elapsed", elapsed)
}

// PushMetrics sends everything gathered by g to a Prometheus Pushgateway
// under the given job, replacing that job's previous metrics.
func PushMetrics(ctx context.Context, url, job string, g prometheus.Gatherer) error {
	ctx, cancel := context.WithTimeout(ctx, pushTimeout)
	defer cancel()

	if err := push.New(url, job).Gatherer(g).PushContext(ctx); err != nil {
		return fmt.Errorf("failed to push metrics to %s: %w", url, err)
	}
	slog.Debug("Pushed metrics", "url", url, "job", job)
	return nil
}
