// Package store persists the calculation history log and small preference blobs.
package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/multicalc/loancalc/internal/domain"
)

// MaxHistoryEntries is the number of most recent calculations kept in the log.
const MaxHistoryEntries = 50

// HistoryEntry is one recorded calculation.
type HistoryEntry struct {
	ID        string          `json:"id"`
	Kind      domain.Kind     `json:"kind"`
	Inputs    json.RawMessage `json:"inputs"`
	Outputs   json.RawMessage `json:"outputs"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewHistoryEntry serializes the inputs and outputs of a calculation.
func NewHistoryEntry(kind domain.Kind, inputs, outputs any) (HistoryEntry, error) {
	in, err := json.Marshal(inputs)
	if err != nil {
		return HistoryEntry{}, err
	}
	out, err := json.Marshal(outputs)
	if err != nil {
		return HistoryEntry{}, err
	}
	return HistoryEntry{Kind: kind, Inputs: in, Outputs: out}, nil
}

// KV stores opaque blobs by key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

var (
	_ KV = (*SQLiteStore)(nil)
	_ KV = (*RedisKV)(nil)
)
