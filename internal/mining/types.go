// Package mining produces at most one block per attempt: it picks the first
// pending edition, solves its matching instance and appends the result, then
// retires the consumed artifacts.
package mining

import (
	"context"
	"time"

	"github.com/goodnatureofminers/matchledger/internal/matching"
	"github.com/goodnatureofminers/matchledger/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Reconciler interface {
		Reconcile(ctx context.Context) (bool, error)
	}
	WorkItemSource interface {
		ListPendingEditions(ctx context.Context) ([]string, error)
		FetchArtifact(ctx context.Context, year string, kind model.ArtifactKind) ([]byte, error)
		RetireArtifact(ctx context.Context, year string, kind model.ArtifactKind) error
		HasDeletionMarker(ctx context.Context, year string, kind model.ArtifactKind) (bool, error)
	}
	Oracle interface {
		Solve(residents matching.ResidentPreferences, hospitals matching.HospitalPreferences, capacities matching.Capacities) (matching.Solution, error)
	}
	Metrics interface {
		ObserveAttempt(outcome string, started time.Time)
		ObserveRetireWarning()
	}
)
