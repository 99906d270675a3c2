package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/revsight/revsight/blob"
)

// Store is an in-process blob.Store double for tests and local runs.
type Store struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

var _ blob.Store = (*Store)(nil)

// NewStore creates an empty in-memory store.
// Note: Returns concrete type so tests can preload objects via Upload.
func NewStore() *Store {
	return &Store{objects: make(map[string][]byte)}
}

// List returns all keys under the given prefix in sorted order.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string
	for key := range s.objects {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Download fetches the object stored at key.
func (s *Store) Download(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.objects[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", blob.ErrNotFound, key)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Upload stores data at key, overwriting any existing object.
func (s *Store) Upload(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.objects[key] = stored
	return nil
}
