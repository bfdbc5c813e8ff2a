// Package ledger holds the append-only sequence of blocks owned by one node.
package ledger

import (
	"errors"
	"fmt"
	"sync"

	"github.com/goodnatureofminers/matchledger/internal/clock"
	"github.com/goodnatureofminers/matchledger/internal/model"
)

// ErrEmpty is returned by PopLast on an empty ledger.
var ErrEmpty = errors.New("ledger is empty")

// Ledger is an ordered, append-only block sequence. Besides Append, the only
// mutations are PopLast and wholesale Replace during reconciliation.
type Ledger struct {
	mu     sync.RWMutex
	blocks []model.Block
	now    func() model.Timestamp
}

// New returns an empty ledger stamping blocks with the wall clock.
func New() *Ledger {
	return NewWithClock(clock.Now)
}

// NewWithClock returns an empty ledger stamping blocks with now.
func NewWithClock(now func() model.Timestamp) *Ledger {
	return &Ledger{now: now}
}

// Append creates the next block and appends it. previousHash is trusted as given.
func (l *Ledger) Append(result string, previousHash model.Hash, edition string) model.Block {
	l.mu.Lock()
	defer l.mu.Unlock()

	block := model.Block{
		Index:        len(l.blocks) + 1,
		Timestamp:    l.now(),
		PreviousHash: previousHash,
		Edition:      edition,
		Result:       result,
	}
	l.blocks = append(l.blocks, block)
	return block
}

// Last returns the most recent block.
func (l *Ledger) Last() (model.Block, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.blocks) == 0 {
		return model.Block{}, false
	}
	return l.blocks[len(l.blocks)-1], true
}

// LastDigest returns Digest of the last block, or the empty hash on an empty ledger.
func (l *Ledger) LastDigest() model.Hash {
	last, ok := l.Last()
	if !ok {
		return ""
	}
	return Digest(&last)
}

// PopLast removes the last block.
func (l *Ledger) PopLast() (model.Block, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.blocks) == 0 {
		return model.Block{}, ErrEmpty
	}
	last := l.blocks[len(l.blocks)-1]
	l.blocks = l.blocks[:len(l.blocks)-1]
	return last, nil
}

// Len returns the number of blocks.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.blocks)
}

// Blocks returns a copy of the chain.
func (l *Ledger) Blocks() []model.Block {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.Block, len(l.blocks))
	copy(out, l.blocks)
	return out
}

// Replace swaps the whole chain for blocks.
func (l *Ledger) Replace(blocks []model.Block) {
	cp := make([]model.Block, len(blocks))
	copy(cp, blocks)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.blocks = cp
}

// Equal reports whether blocks has the same length and digests as the ledger.
func (l *Ledger) Equal(blocks []model.Block) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(blocks) != len(l.blocks) {
		return false
	}
	for i := range blocks {
		if Digest(&blocks[i]) != Digest(&l.blocks[i]) {
			return false
		}
	}
	return true
}

// CheckLink verifies the block at position i of chain: its index must be i+1
// and, above genesis, its previous hash must be the digest of chain[i-1].
func CheckLink(chain []model.Block, i int) error {
	if chain[i].Index != i+1 {
		return &LinkError{Position: i, Reason: "index out of sequence"}
	}
	if i > 0 && chain[i].PreviousHash != Digest(&chain[i-1]) {
		return &LinkError{Position: i, Reason: "previous hash mismatch"}
	}
	return nil
}

// LinkError reports a broken link found by CheckLink.
type LinkError struct {
	Position int
	Reason   string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("block %d: %s", e.Position+1, e.Reason)
}
