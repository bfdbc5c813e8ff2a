package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	peerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "peer_client",
		Name:      "operations_total",
		Help:      "Count of peer protocol requests.",
	}, []string{"operation", "status"})
	peerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "peer_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of peer protocol requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// PeerClient tracks metrics for outbound peer requests.
type PeerClient struct{}

// NewPeerClient creates a PeerClient metrics collector.
func NewPeerClient() *PeerClient {
	return &PeerClient{}
}

// Observe records a single peer request outcome and duration.
func (m PeerClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	peerRequestsTotal.WithLabelValues(operation, status).Inc()
	peerRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
