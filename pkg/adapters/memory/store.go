package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/extrude/pkg/domain"
)

// Store implements ports.ResultStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Result
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Result),
	}
}

// Save persists a copy of the result in memory.
func (s *Store) Save(ctx context.Context, result *domain.Result) error {
	copied := result.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[result.ID] = copied
	return nil
}

// Load retrieves a copy of the result, so callers can't mutate the store
// through the returned pointer.
func (s *Store) Load(ctx context.Context, id string) (*domain.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, ok := s.data[id]
	if !ok {
		return nil, domain.ErrResultNotFound
	}
	return result.Clone(), nil
}

// Delete removes the result.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[id]; !ok {
		return domain.ErrResultNotFound
	}
	delete(s.data, id)
	return nil
}

// List returns stored result IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
