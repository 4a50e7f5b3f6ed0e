package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

var (
	operationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shop_admin",
			Subsystem: "service",
			Name:      "operations_total",
			Help:      "Total number of sync, export and backup runs",
		},
		[]string{"operation", "status"},
	)

	operationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "shop_admin",
			Subsystem: "service",
			Name:      "operation_duration_seconds",
			Help:      "Histogram of sync, export and backup durations in seconds",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"operation"},
	)

	documentsWritten = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shop_admin",
			Subsystem: "catalog",
			Name:      "documents_written_total",
			Help:      "Total number of catalog documents written by sync",
		},
		[]string{"collection"},
	)

	tabsSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shop_admin",
			Subsystem: "catalog",
			Name:      "tabs_skipped_total",
			Help:      "Total number of spreadsheet tabs without an id rule",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		operationsTotal,
		operationDuration,
		documentsWritten,
		tabsSkipped,
	)
}

// observe records one run of operation that started at start.
func observe(operation string, start time.Time, err error) {
	status := statusOK
	if err != nil {
		status = statusError
	}
	operationsTotal.WithLabelValues(operation, status).Inc()
	operationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
