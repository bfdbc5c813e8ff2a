// Package node holds the per-process state of a ledger node and serializes the
// operations that mutate it.
package node

import (
	"context"

	"github.com/goodnatureofminers/matchledger/internal/mining"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Miner interface {
		Mine(ctx context.Context) (mining.Result, error)
	}
	Reconciler interface {
		Reconcile(ctx context.Context) (bool, error)
	}
	PeerRegistry interface {
		AddAll(raw []string) error
		Peers() []string
	}
)
