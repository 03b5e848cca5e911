package config

import (
	"context"
	"fmt"
	"time"
)

// PreferencesKey is the storage key of the preferences blob.
const PreferencesKey = "loan_calculator_preferences"

// BlobStore is the subset of a key-value store needed to persist preferences.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// LoadPreferences reads and decodes the stored preferences. A missing blob yields
// an empty current-schema record.
func LoadPreferences(ctx context.Context, kv BlobStore) (Preferences, error) {
	data, ok, err := kv.Get(ctx, PreferencesKey)
	if err != nil {
		return Preferences{}, fmt.Errorf("reading preferences: %w", err)
	}
	if !ok {
		return Preferences{SchemaVersion: CurrentPreferencesSchema}, nil
	}
	return DecodePreferences(data)
}

// SavePreferences stamps UpdatedAt and writes the encoded preferences.
func SavePreferences(ctx context.Context, kv BlobStore, p Preferences) error {
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now().UTC()
	}
	data, err := EncodePreferences(p)
	if err != nil {
		return err
	}
	if err := kv.Set(ctx, PreferencesKey, data); err != nil {
		return fmt.Errorf("writing preferences: %w", err)
	}
	return nil
}
