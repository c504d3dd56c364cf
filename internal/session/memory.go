package session

import (
	"context"
	"sync"
)

// MemoryStore keeps sessions in a synchronized process-local map.
// Sessions live until logout or process restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Identity
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Identity)}
}

func (s *MemoryStore) Put(ctx context.Context, token string, id Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = id
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, token string) (Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.sessions[token]
	if !ok {
		return Identity{}, ErrNoSession
	}
	return id, nil
}

func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

var _ Store = (*MemoryStore)(nil)
