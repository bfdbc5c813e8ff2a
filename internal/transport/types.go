// Package transport serves the node's HTTP API.
package transport

import (
	"context"

	"github.com/goodnatureofminers/matchledger/internal/mining"
	"github.com/goodnatureofminers/matchledger/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Node interface {
		Mine(ctx context.Context) (mining.Result, error)
		Reconcile(ctx context.Context) (bool, error)
		Chain() []model.Block
		ConnectPeers(raw []string) ([]string, error)
	}
)
