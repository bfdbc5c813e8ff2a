package consensus

import (
	"time"

	"github.com/goodnatureofminers/matchledger/internal/ledger"
	"github.com/goodnatureofminers/matchledger/internal/model"
)

var baseTime = time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)

type entry struct {
	edition string
	result  string
}

// chainFrom builds a correctly linked chain whose blocks are stamped one minute
// apart starting one minute after start.
func chainFrom(start time.Time, entries ...entry) []model.Block {
	tick := 0
	l := ledger.NewWithClock(func() model.Timestamp {
		tick++
		return model.NewTimestamp(start.Add(time.Duration(tick) * time.Minute))
	})
	for _, e := range entries {
		l.Append(e.result, l.LastDigest(), e.edition)
	}
	return l.Blocks()
}

func ledgerWith(chain []model.Block) *ledger.Ledger {
	l := ledger.New()
	l.Replace(chain)
	return l
}
