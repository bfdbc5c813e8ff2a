// Package model defines the ledger domain types shared between node components.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout is the wire and hashing format of block timestamps.
const TimestampLayout = "2006-01-02 15:04:05.000000"

// Hash is a lowercase hex SHA-256 digest. The zero value stands for "no hash"
// (the genesis predecessor) and is encoded as JSON null.
type Hash string

// Empty reports whether the hash is the genesis predecessor placeholder.
func (h Hash) Empty() bool {
	return h == ""
}

// MarshalJSON encodes an empty hash as null.
func (h Hash) MarshalJSON() ([]byte, error) {
	if h.Empty() {
		return []byte("null"), nil
	}
	return json.Marshal(string(h))
}

// UnmarshalJSON accepts a string or null.
func (h *Hash) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*h = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decode hash: %w", err)
	}
	*h = Hash(s)
	return nil
}

// Timestamp is a wall-clock instant with microsecond precision rendered in TimestampLayout.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to microseconds so it survives a round trip through the wire format.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Microsecond)}
}

// ParseTimestamp parses a timestamp in the exact TimestampLayout.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return Timestamp{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return Timestamp{Time: t}, nil
}

// String renders the timestamp in TimestampLayout.
func (t Timestamp) String() string {
	return t.Time.Format(TimestampLayout)
}

// MarshalJSON encodes the timestamp as a TimestampLayout string.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a TimestampLayout string.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decode timestamp: %w", err)
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Block is one ledger entry recording the matching result of one edition.
type Block struct {
	Index        int       `json:"index"`
	Timestamp    Timestamp `json:"timestamp"`
	PreviousHash Hash      `json:"previous_hash"`
	Edition      string    `json:"edition"`
	Result       string    `json:"result"`
}

// ChainResponse is the ledger-fetch protocol payload.
type ChainResponse struct {
	Chain  []Block `json:"chain"`
	Length int     `json:"length"`
}
