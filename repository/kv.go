package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Logical keys of the persisted state. They match the keys the browser
// client used, so exported data can be imported unchanged.
const (
	KeyTasks         = "tasks"
	KeyNotes         = "notes"
	KeyUserProfile   = "userProfile"
	KeyCustomRewards = "customRewards"
	KeyTheme         = "theme"
	KeyAPIKey        = "gemini-api-key"
)

var Keys = []string{KeyTasks, KeyNotes, KeyUserProfile, KeyCustomRewards, KeyTheme, KeyAPIKey}

// KVStore is the persistence collaborator. Values are opaque JSON documents.
type KVStore interface {
	// Get reports found=false for a key that was never set.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}

// GetJSON decodes the value under key, returning def when the key is absent.
// A value that no longer decodes is treated as absent and logged.
func GetJSON[T any](ctx context.Context, store KVStore, key string, def T) (T, error) {
	raw, found, err := store.Get(ctx, key)
	if err != nil {
		return def, fmt.Errorf("reading %s: %w", key, err)
	}
	if !found {
		return def, nil
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		slog.Warn("stored value is not valid JSON, using default", "key", key, "error", err)
		return def, nil
	}
	return value, nil
}

func SetJSON(ctx context.Context, store KVStore, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}
