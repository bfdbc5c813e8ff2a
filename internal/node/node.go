package node

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/goodnatureofminers/matchledger/internal/clock"
	"github.com/goodnatureofminers/matchledger/internal/ledger"
	"github.com/goodnatureofminers/matchledger/internal/mining"
	"github.com/goodnatureofminers/matchledger/internal/model"
	"go.uber.org/zap"
)

// ErrNoPeers is returned when a peer registration carries no addresses.
var ErrNoPeers = errors.New("no peer addresses given")

// Node owns the ledger and the peer set. Mining and reconciliation run one at
// a time; reading the chain only takes the ledger's own lock.
type Node struct {
	mu       sync.Mutex
	ledger   *ledger.Ledger
	peers    PeerRegistry
	resolver Reconciler
	miner    Miner
	sleep    func(context.Context, time.Duration) error
	logger   *zap.Logger
}

// New builds a Node.
func New(l *ledger.Ledger, peers PeerRegistry, resolver Reconciler, miner Miner, logger *zap.Logger) (*Node, error) {
	if l == nil || peers == nil {
		return nil, errors.New("ledger and peer registry are required")
	}
	if resolver == nil || miner == nil {
		return nil, errors.New("resolver and miner are required")
	}
	return &Node{
		ledger:   l,
		peers:    peers,
		resolver: resolver,
		miner:    miner,
		sleep:    clock.SleepWithContext,
		logger:   logger,
	}, nil
}

// Mine runs one mining attempt.
func (n *Node) Mine(ctx context.Context) (mining.Result, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.miner.Mine(ctx)
}

// Reconcile adopts the best peer ledger and reports whether the local one changed.
func (n *Node) Reconcile(ctx context.Context) (bool, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.resolver.Reconcile(ctx)
}

// Chain returns a snapshot of the local ledger.
func (n *Node) Chain() []model.Block {
	return n.ledger.Blocks()
}

// ConnectPeers registers peer addresses. Either all of them are added or,
// when one is malformed, none is. It returns the whole peer set.
func (n *Node) ConnectPeers(raw []string) ([]string, error) {
	if len(raw) == 0 {
		return nil, ErrNoPeers
	}
	if err := n.peers.AddAll(raw); err != nil {
		return nil, err
	}
	peers := n.peers.Peers()
	n.logger.Info("peers connected", zap.Int("added", len(raw)), zap.Int("total", len(peers)))
	return peers, nil
}

// Run mines once per interval until ctx is canceled.
func (n *Node) Run(ctx context.Context, interval time.Duration) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		n.tick(ctx)
		if err := n.sleep(ctx, interval); err != nil {
			return err
		}
	}
}

func (n *Node) tick(ctx context.Context) {
	res, err := n.Mine(ctx)
	if err != nil {
		n.logger.Warn("scheduled mining attempt failed", zap.String("outcome", string(res.Outcome)), zap.Error(err))
		return
	}
	if res.Outcome == mining.OutcomeNoWork {
		n.logger.Debug("scheduled mining found no work")
		return
	}
	n.logger.Info("scheduled mining produced a block",
		zap.Int("index", res.Block.Index),
		zap.String("edition", res.Block.Edition),
		zap.String("outcome", string(res.Outcome)),
	)
}
