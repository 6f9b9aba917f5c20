// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OperationsDispatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "runner_operations_dispatched_total",
			Help: "Total number of operations dispatched",
		},
		[]string{"operation"},
	)

	OperationsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "runner_operations_failed_total",
			Help: "Total number of invocations rejected at the boundary",
		},
		[]string{"error_code"},
	)

	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "runner_operation_duration_seconds",
			Help: "Duration of operation dispatch in seconds",
		},
		[]string{"operation"},
	)

	OperationFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "runner_operation_fallbacks_total",
			Help: "Number of unknown operation names degraded to the fallback operation",
		},
	)

	OutputRecordsWritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "runner_output_records_written_total",
			Help: "Output records appended to the caller-provided sink",
		},
		[]string{"sink"},
	)
)
