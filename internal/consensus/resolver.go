package consensus

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/matchledger/internal/ledger"
	"github.com/goodnatureofminers/matchledger/internal/model"
	"github.com/goodnatureofminers/matchledger/pkg/workerpool"
	"go.uber.org/zap"
)

const defaultFetchWorkers = 4

// Resolver pulls every peer's ledger and adopts the best valid one.
type Resolver struct {
	ledger    *ledger.Ledger
	peers     PeerLister
	fetcher   ChainFetcher
	validator ChainValidator
	tieBreak  TieBreak
	workers   int
	metrics   Metrics
	logger    *zap.Logger
}

// ResolverOption tweaks a Resolver.
type ResolverOption func(*Resolver)

// WithTieBreak replaces the equal-length policy.
func WithTieBreak(tb TieBreak) ResolverOption {
	return func(r *Resolver) {
		if tb != nil {
			r.tieBreak = tb
		}
	}
}

// WithFetchWorkers bounds the number of concurrent peer fetches.
func WithFetchWorkers(n int) ResolverOption {
	return func(r *Resolver) {
		if n > 0 {
			r.workers = n
		}
	}
}

// NewResolver builds a Resolver.
func NewResolver(
	l *ledger.Ledger,
	peers PeerLister,
	fetcher ChainFetcher,
	validator ChainValidator,
	metrics Metrics,
	logger *zap.Logger,
	opts ...ResolverOption,
) (*Resolver, error) {
	if l == nil {
		return nil, errors.New("ledger is required")
	}
	if peers == nil || fetcher == nil || validator == nil {
		return nil, errors.New("peer lister, chain fetcher and validator are required")
	}
	if metrics == nil {
		return nil, errors.New("resolver metrics is required")
	}

	r := &Resolver{
		ledger:    l,
		peers:     peers,
		fetcher:   fetcher,
		validator: validator,
		tieBreak:  OlderHeadWins,
		workers:   defaultFetchWorkers,
		metrics:   metrics,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Reconcile fetches all peer ledgers concurrently, then evaluates them one by
// one in peer order. A strictly longer valid ledger wins; an equal-length one
// wins when the tie-break policy accepts its head. The winner replaces the
// local ledger unless it is identical to it. Peer failures only shrink the set
// of candidates; Reconcile reports whether the local ledger was replaced.
func (r *Resolver) Reconcile(ctx context.Context) (updated bool, err error) {
	started := time.Now()
	defer func() {
		r.metrics.ObserveReconcile(updated, started)
	}()

	var tracked model.Timestamp
	if last, ok := r.ledger.Last(); ok {
		tracked = last.Timestamp
	}
	bestLen := r.ledger.Len()
	var best []model.Block

	results := workerpool.Map(ctx, r.workers, r.peers.Peers(), r.fetcher.FetchChain)
	for _, res := range results {
		logger := r.logger.With(zap.String("peer", res.Item))
		if res.Err != nil {
			r.metrics.ObserveCandidate("unreachable")
			logger.Warn("peer unreachable", zap.Error(res.Err))
			continue
		}
		chain := res.Value
		if len(chain) == 0 {
			r.metrics.ObserveCandidate("empty")
			continue
		}
		if err := r.validator.Validate(ctx, chain); err != nil {
			r.metrics.ObserveCandidate("invalid")
			logger.Warn("peer chain rejected", zap.Int("length", len(chain)), zap.Error(err))
			continue
		}
		r.metrics.ObserveCandidate("accepted")

		head := chain[len(chain)-1].Timestamp
		switch {
		case len(chain) > bestLen:
		case len(chain) == bestLen && r.tieBreak(head, tracked):
		default:
			continue
		}
		best, bestLen, tracked = chain, len(chain), head
	}

	if err := ctx.Err(); err != nil {
		return false, err
	}
	if best == nil || r.ledger.Equal(best) {
		return false, nil
	}

	r.ledger.Replace(best)
	r.logger.Info("local ledger replaced", zap.Int("length", len(best)))
	return true, nil
}
