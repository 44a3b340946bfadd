package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tostreak/utils"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a key-value store over plain Redis strings. Keys are stored
// as <prefix><logical key> and never expire.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore parses redisURL, connects and pings before returning.
func NewRedisStore(redisURL, prefix string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisStoreFromClient(client, prefix), nil
}

func NewRedisStoreFromClient(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(key string) string {
	return s.prefix + key
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	timer := utils.TrackStoreOperation("redis", "get", key)
	defer timer.ObserveDuration()

	data, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		utils.TrackError("store", "redis_get_failed")
		return nil, false, fmt.Errorf("failed to get %s from redis: %w", key, err)
	}
	return data, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	timer := utils.TrackStoreOperation("redis", "set", key)
	defer timer.ObserveDuration()

	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		utils.TrackError("store", "redis_set_failed")
		return fmt.Errorf("failed to set %s in redis: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
