package index

import (
	"context"
	"sort"
	"sync"
)

// MemStore is an ephemeral, thread-safe, in-memory implementation of Store.
// It is suitable for tests and for hosts that manage fact persistence
// themselves; nothing written to it survives the process.
type MemStore struct {
	mu         sync.RWMutex
	namespaces map[string]map[string]struct{}
}

// NewMemStore creates a new, empty in-memory fact store.
func NewMemStore() *MemStore {
	return &MemStore{namespaces: make(map[string]map[string]struct{})}
}

// WriteFact records the fact in memory. Duplicate writes are no-ops.
func (s *MemStore) WriteFact(ctx context.Context, namespace, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	facts, ok := s.namespaces[namespace]
	if !ok {
		facts = make(map[string]struct{})
		s.namespaces[namespace] = facts
	}
	facts[name] = struct{}{}
	return nil
}

// Facts returns the sorted fact names recorded in the namespace.
func (s *MemStore) Facts(ctx context.Context, namespace string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.namespaces[namespace]))
	for name := range s.namespaces[namespace] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
