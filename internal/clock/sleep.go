// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"

	"github.com/goodnatureofminers/matchledger/internal/model"
)

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Now returns the current wall-clock instant as a block timestamp.
func Now() model.Timestamp {
	return model.NewTimestamp(time.Now())
}

// Fixed returns a clock function that always reports ts. Useful for deterministic ledgers.
func Fixed(ts model.Timestamp) func() model.Timestamp {
	return func() model.Timestamp {
		return ts
	}
}
