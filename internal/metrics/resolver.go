package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	resolverReconcileTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "resolver",
		Name:      "reconcile_total",
		Help:      "Count of reconciliations by result.",
	}, []string{"node", "result"})

	resolverReconcileDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "resolver",
		Name:      "reconcile_duration_seconds",
		Help:      "Duration of a reconciliation round.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"node", "result"})

	resolverCandidatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "resolver",
		Name:      "candidates_total",
		Help:      "Count of fetched peer ledgers by verdict.",
	}, []string{"node", "verdict"})

	resolverLocalPopsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "resolver",
		Name:      "local_pops_total",
		Help:      "Count of corrective pops of the local head during validation.",
	}, []string{"node"})
)

// Resolver tracks metrics for the consensus resolver.
type Resolver struct {
	node string
}

// NewResolver constructs a Resolver collector labeled with the node name.
func NewResolver(node string) *Resolver {
	if node == "" {
		node = "unknown"
	}
	return &Resolver{node: node}
}

// ObserveReconcile records a reconciliation round.
func (m Resolver) ObserveReconcile(updated bool, started time.Time) {
	result := "up_to_date"
	if updated {
		result = "updated"
	}
	resolverReconcileTotal.WithLabelValues(m.node, result).Inc()
	resolverReconcileDuration.WithLabelValues(m.node, result).Observe(time.Since(started).Seconds())
}

// ObserveCandidate records what happened to one fetched peer ledger
// ("unreachable", "empty", "invalid", "accepted").
func (m Resolver) ObserveCandidate(verdict string) {
	resolverCandidatesTotal.WithLabelValues(m.node, verdict).Inc()
}

// ObserveLocalPop records a corrective pop of the local head.
func (m Resolver) ObserveLocalPop() {
	resolverLocalPopsTotal.WithLabelValues(m.node).Inc()
}
