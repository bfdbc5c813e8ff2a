package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	workItemSourceRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "workitem_source",
		Name:      "operations_total",
		Help:      "Count of work-item source operations.",
	}, []string{"operation", "backend", "status"})
	workItemSourceRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "workitem_source",
		Name:      "operation_duration_seconds",
		Help:      "Duration of work-item source operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "backend", "status"})
)

// WorkItemSource tracks metrics for a work-item source backend.
type WorkItemSource struct {
	backend string
}

// NewWorkItemSource creates a WorkItemSource metrics collector for backend.
func NewWorkItemSource(backend string) *WorkItemSource {
	if backend == "" {
		backend = "unknown"
	}
	return &WorkItemSource{backend: backend}
}

// Observe records duration and status of a source operation.
func (m WorkItemSource) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	workItemSourceRequestsTotal.WithLabelValues(operation, m.backend, status).Inc()
	workItemSourceRequestDuration.WithLabelValues(operation, m.backend, status).Observe(time.Since(started).Seconds())
}
