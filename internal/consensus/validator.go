package consensus

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/matchledger/internal/ledger"
	"github.com/goodnatureofminers/matchledger/internal/model"
	"go.uber.org/zap"
)

// ErrInvalidChain marks a peer ledger that must not be adopted.
var ErrInvalidChain = errors.New("invalid peer chain")

// Validator reviews a peer ledger against the local one. It never modifies the
// candidate; rejecting a candidate may pop the local head and requeue work items.
type Validator struct {
	ledger  *ledger.Ledger
	items   WorkItems
	metrics Metrics
	logger  *zap.Logger
}

// NewValidator builds a Validator over the local ledger.
func NewValidator(l *ledger.Ledger, items WorkItems, metrics Metrics, logger *zap.Logger) (*Validator, error) {
	if l == nil {
		return nil, errors.New("ledger is required")
	}
	if items == nil {
		return nil, errors.New("work items are required")
	}
	if metrics == nil {
		return nil, errors.New("resolver metrics is required")
	}
	return &Validator{
		ledger:  l,
		items:   items,
		metrics: metrics,
		logger:  logger,
	}, nil
}

// Validate walks chain from the newest block to genesis. A block carrying the
// local head's edition with a different result is a fork over the same work:
// the edition is requeued, the local head popped, and the chain rejected. A
// newest block whose edition was never retired in the store also pops the
// local head and rejects the chain. Every block must link to its predecessor.
func (v *Validator) Validate(ctx context.Context, chain []model.Block) error {
	newest := len(chain) - 1
	for i := newest; i >= 0; i-- {
		block := chain[i]

		if year, ok := model.YearToken(block.Edition); ok {
			if local, ok := v.ledger.Last(); ok && local.Edition == block.Edition && local.Result != block.Result {
				v.requeue(ctx, year)
				v.popLocal("conflicting result for " + block.Edition)
				return fmt.Errorf("%w: block %d conflicts with local head over %s", ErrInvalidChain, block.Index, block.Edition)
			}

			if i == newest {
				retired, err := v.retired(ctx, year)
				if err != nil {
					return fmt.Errorf("%w: check retirement of %s: %w", ErrInvalidChain, block.Edition, err)
				}
				if !retired {
					v.popLocal("no retirement evidence for " + block.Edition)
					return fmt.Errorf("%w: edition %s of head block was never retired", ErrInvalidChain, block.Edition)
				}
			}
		}

		if err := ledger.CheckLink(chain, i); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidChain, err)
		}
	}
	return nil
}

// retired reports whether either artifact of the edition carries a deletion marker.
func (v *Validator) retired(ctx context.Context, year string) (bool, error) {
	for _, kind := range model.ArtifactKinds {
		marked, err := v.items.HasDeletionMarker(ctx, year, kind)
		if err != nil {
			return false, err
		}
		if marked {
			return true, nil
		}
	}
	return false, nil
}

func (v *Validator) requeue(ctx context.Context, year string) {
	for _, kind := range model.ArtifactKinds {
		if err := v.items.Requeue(ctx, year, kind); err != nil {
			v.logger.Warn("requeue artifact failed",
				zap.String("year", year),
				zap.String("kind", string(kind)),
				zap.Error(err),
			)
		}
	}
}

func (v *Validator) popLocal(reason string) {
	block, err := v.ledger.PopLast()
	if err != nil {
		return
	}
	v.metrics.ObserveLocalPop()
	v.logger.Warn("local head discarded",
		zap.Int("index", block.Index),
		zap.String("edition", block.Edition),
		zap.String("reason", reason),
	)
}
