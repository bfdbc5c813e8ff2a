package mining

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/matchledger/internal/ledger"
	"github.com/goodnatureofminers/matchledger/internal/matching"
	"github.com/goodnatureofminers/matchledger/internal/model"
	"go.uber.org/zap"
)

var (
	// ErrArtifactFetch aborts an attempt whose edition could not be listed or downloaded.
	ErrArtifactFetch = errors.New("artifact fetch failed")
	// ErrOracle aborts an attempt whose matching instance has no acceptable solution.
	ErrOracle = errors.New("matching oracle failed")
)

// Outcome is the terminal state of one mining attempt.
type Outcome string

const (
	OutcomeNoWork           Outcome = "no_work"
	OutcomeFetchFailed      Outcome = "fetch_failed"
	OutcomeComputeFailed    Outcome = "compute_failed"
	OutcomeMined            Outcome = "mined"
	OutcomeMinedWithWarning Outcome = "mined_with_warning"
)

// Result describes a finished attempt. Block is set for the mined outcomes and
// RetireErr carries retirement failures that did not undo the append.
type Result struct {
	Outcome   Outcome
	Block     model.Block
	RetireErr error
}

// Orchestrator runs mining attempts against the local ledger.
type Orchestrator struct {
	ledger     *ledger.Ledger
	reconciler Reconciler
	source     WorkItemSource
	oracle     Oracle
	metrics    Metrics
	logger     *zap.Logger
}

// NewOrchestrator builds an Orchestrator with its collaborators.
func NewOrchestrator(
	l *ledger.Ledger,
	reconciler Reconciler,
	source WorkItemSource,
	oracle Oracle,
	metrics Metrics,
	logger *zap.Logger,
) (*Orchestrator, error) {
	if l == nil {
		return nil, errors.New("ledger is required")
	}
	if reconciler == nil || source == nil || oracle == nil {
		return nil, errors.New("reconciler, work item source and oracle are required")
	}
	if metrics == nil {
		return nil, errors.New("miner metrics is required")
	}
	return &Orchestrator{
		ledger:     l,
		reconciler: reconciler,
		source:     source,
		oracle:     oracle,
		metrics:    metrics,
		logger:     logger,
	}, nil
}

// Mine runs one attempt. It reconciles with peers first, then mines the first
// pending edition. If the local head already records that edition it is
// superseded instead of duplicated. Nothing is written to the ledger unless
// both artifacts were fetched and the oracle produced a valid and stable
// assignment. Callers must not run Mine concurrently with itself or with
// reconciliation.
func (o *Orchestrator) Mine(ctx context.Context) (res Result, err error) {
	started := time.Now()
	defer func() {
		o.metrics.ObserveAttempt(string(res.Outcome), started)
	}()

	if _, err := o.reconciler.Reconcile(ctx); err != nil {
		o.logger.Warn("reconcile before mining failed", zap.Error(err))
	}

	years, err := o.source.ListPendingEditions(ctx)
	if err != nil {
		return Result{Outcome: OutcomeFetchFailed}, fmt.Errorf("%w: list pending editions: %w", ErrArtifactFetch, err)
	}
	if len(years) == 0 {
		o.logger.Debug("nothing to mine")
		return Result{Outcome: OutcomeNoWork}, nil
	}

	year := years[0]
	edition := model.EditionID(year)
	logger := o.logger.With(zap.String("edition", edition))

	previousHash, supersede := o.previousHash(edition)

	artifacts := make(map[model.ArtifactKind][]byte, len(model.ArtifactKinds))
	for _, kind := range model.ArtifactKinds {
		data, err := o.source.FetchArtifact(ctx, year, kind)
		if err != nil {
			logger.Error("fetch artifact failed", zap.String("kind", string(kind)), zap.Error(err))
			return Result{Outcome: OutcomeFetchFailed}, fmt.Errorf("%w: %s %s: %w", ErrArtifactFetch, kind, year, err)
		}
		artifacts[kind] = data
	}

	payload, err := o.solve(artifacts[model.Residents], artifacts[model.Hospitals])
	if err != nil {
		logger.Error("matching failed", zap.Error(err))
		return Result{Outcome: OutcomeComputeFailed}, err
	}

	if supersede {
		if stale, err := o.ledger.PopLast(); err == nil {
			logger.Info("superseding previous attempt", zap.Int("index", stale.Index))
		}
	}
	block := o.ledger.Append(payload, previousHash, edition)
	logger.Info("block mined", zap.Int("index", block.Index))

	res = Result{Outcome: OutcomeMined, Block: block}
	if retireErr := o.retire(ctx, year); retireErr != nil {
		o.metrics.ObserveRetireWarning()
		logger.Warn("retire artifacts failed", zap.Error(retireErr))
		res.Outcome = OutcomeMinedWithWarning
		res.RetireErr = retireErr
	}
	return res, nil
}

// previousHash returns the digest the new block links to. When the local head
// already records edition, the head is to be replaced and the digest of the
// block below it is returned instead.
func (o *Orchestrator) previousHash(edition string) (model.Hash, bool) {
	chain := o.ledger.Blocks()
	n := len(chain)
	if n == 0 {
		return "", false
	}
	if chain[n-1].Edition != edition {
		return ledger.Digest(&chain[n-1]), false
	}
	if n == 1 {
		return "", true
	}
	return ledger.Digest(&chain[n-2]), true
}

func (o *Orchestrator) solve(residentsData, hospitalsData []byte) (string, error) {
	residents, err := matching.ParseResidents(residentsData)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOracle, err)
	}
	hospitals, capacities, err := matching.ParseHospitals(hospitalsData)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOracle, err)
	}

	solution, err := o.oracle.Solve(residents, hospitals, capacities)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOracle, err)
	}
	if !solution.Valid || !solution.Stable {
		return "", fmt.Errorf("%w: solution valid=%t stable=%t", ErrOracle, solution.Valid, solution.Stable)
	}
	return ledger.CanonicalObject(solution.Assignment), nil
}

// retire removes both artifacts of the edition, leaving alone any artifact
// that already carries a deletion marker. Both are attempted; failures are joined.
func (o *Orchestrator) retire(ctx context.Context, year string) error {
	var errs []error
	for _, kind := range model.ArtifactKinds {
		marked, err := o.source.HasDeletionMarker(ctx, year, kind)
		if err != nil {
			errs = append(errs, fmt.Errorf("check %s marker: %w", kind, err))
			continue
		}
		if marked {
			continue
		}
		if err := o.source.RetireArtifact(ctx, year, kind); err != nil {
			errs = append(errs, fmt.Errorf("retire %s: %w", kind, err))
		}
	}
	return errors.Join(errs...)
}
