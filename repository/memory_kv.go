package repository

import (
	"context"
	"sync"

	"tostreak/utils"
)

type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string][]byte),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	timer := utils.TrackStoreOperation("memory", "get", key)
	defer timer.ObserveDuration()

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, exists := s.values[key]
	if !exists {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	timer := utils.TrackStoreOperation("memory", "set", key)
	defer timer.ObserveDuration()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = append([]byte(nil), value...)
	return nil
}

// Snapshot returns a copy of every stored value.
func (s *MemoryStore) Snapshot() map[string][]byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]byte, len(s.values))
	for k, v := range s.values {
		out[k] = append([]byte(nil), v...)
	}
	return out
}
