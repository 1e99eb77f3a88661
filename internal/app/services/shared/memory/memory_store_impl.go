package memory

import (
	"context"
	"medibook-service/internal/app/contracts"
	"sync"
)

type memoryStore struct {
	mu    sync.RWMutex
	slots map[string]string
}

// NewMemoryStore returns a process-local store. Contents vanish with the
// process, like a cleared browser profile.
func NewMemoryStore() contracts.KeyValueStore {
	return &memoryStore{slots: make(map[string]string)}
}

func (s *memoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, found := s.slots[key]
	return value, found, nil
}

func (s *memoryStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = value
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, key)
	return nil
}
