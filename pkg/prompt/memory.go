package prompt

import (
	"context"
	"sync"
)

// MemoryStore is a process-local Repository.
type MemoryStore struct {
	mu   sync.RWMutex
	vals map[string]string
}

func NewMemoryStore(seed map[string]string) *MemoryStore {
	vals := make(map[string]string, len(seed))
	for k, v := range seed {
		vals[k] = v
	}
	return &MemoryStore{vals: vals}
}

func (s *MemoryStore) Get(_ context.Context, name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vals[name]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *MemoryStore) Set(_ context.Context, name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vals[name] = value
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.vals[name]; !ok {
		return ErrNotFound
	}
	delete(s.vals, name)
	return nil
}
