package consensus

import (
	"fmt"

	"github.com/goodnatureofminers/matchledger/internal/model"
)

// TieBreak decides whether an equal-length candidate whose head was stamped at
// candidate replaces the best so far, given the tracked head timestamp. tracked
// is zero when the local ledger is empty and no candidate was taken yet.
type TieBreak func(candidate, tracked model.Timestamp) bool

// OlderHeadWins prefers the candidate whose head is strictly older than the
// tracked head. It is the default policy.
func OlderHeadWins(candidate, tracked model.Timestamp) bool {
	if tracked.IsZero() {
		return false
	}
	return candidate.Before(tracked.Time)
}

// NewerHeadWins prefers the candidate whose head is strictly newer than the
// tracked head.
func NewerHeadWins(candidate, tracked model.Timestamp) bool {
	return candidate.After(tracked.Time)
}

// ParseTieBreak resolves a policy by name.
func ParseTieBreak(name string) (TieBreak, error) {
	switch name {
	case "", "older-head":
		return OlderHeadWins, nil
	case "newer-head":
		return NewerHeadWins, nil
	default:
		return nil, fmt.Errorf("unknown tie-break policy %q", name)
	}
}
