package contributor

import (
	"context"
	"sync"
)

// MemoryStore implements Store with an in-memory slice, used when no
// database path is configured and in tests.
type MemoryStore struct {
	mu    sync.RWMutex
	items []Contributor
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save appends the contributor.
func (s *MemoryStore) Save(_ context.Context, c Contributor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, c)
	return nil
}

// List returns all contributors, newest first.
func (s *MemoryStore) List(_ context.Context) ([]Contributor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copied := make([]Contributor, len(s.items))
	for i, item := range s.items {
		copied[len(s.items)-1-i] = item
	}
	return copied, nil
}
