package services

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real server only when TEST_REDIS_URL is set.
func setupRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}

	prefix := "tostreak_test_" + uuid.New().String()[:8] + ":"
	store, err := NewRedisStore(url, prefix)
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx := context.Background()
		keys, err := store.client.Keys(ctx, prefix+"*").Result()
		if err == nil && len(keys) > 0 {
			store.client.Del(ctx, keys...)
		}
		_ = store.Close()
	})
	return store
}

func TestRedisStore(t *testing.T) {
	store := setupRedisStore(t)
	ctx := context.Background()

	_, found, err := store.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "tasks", []byte(`[{"id":"a"}]`)))

	value, found, err := store.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `[{"id":"a"}]`, string(value))

	ttl, err := store.client.TTL(ctx, store.key("tasks")).Result()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(-1), ttl, "keys must not expire")
}

func TestNewRedisStoreBadURL(t *testing.T) {
	_, err := NewRedisStore("not a url", "x:")
	assert.Error(t, err)
}
