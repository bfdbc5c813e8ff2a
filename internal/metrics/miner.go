// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "matchledger"

var (
	minerAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "miner",
		Name:      "attempts_total",
		Help:      "Count of mining attempts by terminal outcome.",
	}, []string{"node", "outcome"})

	minerAttemptDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "miner",
		Name:      "attempt_duration_seconds",
		Help:      "Duration of a mining attempt including reconciliation and retirement.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"node", "outcome"})

	minerRetireWarningsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "miner",
		Name:      "retire_warnings_total",
		Help:      "Count of mined blocks whose artifacts could not be retired.",
	}, []string{"node"})
)

// Miner tracks metrics for the mining orchestrator.
type Miner struct {
	node string
}

// NewMiner constructs a Miner collector labeled with the node name.
func NewMiner(node string) *Miner {
	if node == "" {
		node = "unknown"
	}
	return &Miner{node: node}
}

// ObserveAttempt records the outcome and duration of one mining attempt.
func (m Miner) ObserveAttempt(outcome string, started time.Time) {
	minerAttemptsTotal.WithLabelValues(m.node, outcome).Inc()
	minerAttemptDuration.WithLabelValues(m.node, outcome).Observe(time.Since(started).Seconds())
}

// ObserveRetireWarning records a retirement failure after a successful append.
func (m Miner) ObserveRetireWarning() {
	minerRetireWarningsTotal.WithLabelValues(m.node).Inc()
}
