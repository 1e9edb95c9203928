package storage

import (
	"context"
	"sync"

	"github.com/TangilJ/litama/internal/match"
)

// MemoryStore keeps matches in a process-local map. It backs the server when
// no database DSN is configured, and the tests.
type MemoryStore struct {
	mu      sync.RWMutex
	matches map[string]*match.Match
}

// NewMemoryStore creates an empty in-memory match store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{matches: make(map[string]*match.Match)}
}

// Insert stores a copy of a freshly created match.
func (s *MemoryStore) Insert(_ context.Context, m *match.Match) error {
	s.mu.Lock()
	s.matches[m.ID] = m.Clone()
	s.mu.Unlock()
	return nil
}

// Get returns an independent copy of the stored match.
func (s *MemoryStore) Get(_ context.Context, id string) (*match.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.matches[id]
	if !ok {
		return nil, match.ErrNotFound
	}
	return m.Clone(), nil
}

// Update replaces the stored match with a copy of m in one step, so readers
// see either the old snapshot or the new one, never a mix.
func (s *MemoryStore) Update(_ context.Context, m *match.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.matches[m.ID]; !ok {
		return match.ErrNotFound
	}
	s.matches[m.ID] = m.Clone()
	return nil
}
