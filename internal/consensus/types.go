// Package consensus selects the authoritative ledger among the node and its
// peers: it fetches peer ledgers, validates them against the local ledger and
// the work-item store, and adopts the best candidate wholesale.
package consensus

import (
	"context"
	"time"

	"github.com/goodnatureofminers/matchledger/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	PeerLister interface {
		Peers() []string
	}
	ChainFetcher interface {
		FetchChain(ctx context.Context, address string) ([]model.Block, error)
	}
	WorkItems interface {
		HasDeletionMarker(ctx context.Context, year string, kind model.ArtifactKind) (bool, error)
		Requeue(ctx context.Context, year string, kind model.ArtifactKind) error
	}
	ChainValidator interface {
		Validate(ctx context.Context, chain []model.Block) error
	}
	Metrics interface {
		ObserveReconcile(updated bool, started time.Time)
		ObserveCandidate(verdict string)
		ObserveLocalPop()
	}
)
