package unique

import "sync"

// Store is a mutable set of normalized keys for previously accepted values.
// Generators insert into it on every successful call; callers may pre-seed
// it to forbid values up front, inspect it, or Clear it to start over.
// External mutation takes effect on the very next generation attempt.
//
// All methods are safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	keys map[string]struct{}
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{keys: make(map[string]struct{})}
}

// Has reports whether key is a member of the store.
func (s *Store) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.keys[key]
	return ok
}

// Add ensures key is a member of the store.
func (s *Store) Add(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[key] = struct{}{}
}

// TryAdd ensures key is a member of the store. It returns true if key was
// added, or false if it was already a member. The membership test and
// insertion are a single atomic step.
func (s *Store) TryAdd(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.keys[key]; ok {
		return false
	}
	s.keys[key] = struct{}{}
	return true
}

// Remove ensures key is not a member of the store. It returns true if key
// was removed, or false if it was not a member.
func (s *Store) Remove(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.keys[key]; !ok {
		return false
	}
	delete(s.keys, key)
	return true
}

// Len returns the number of keys in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.keys)
}

// Clear removes every key. Subsequent generation may repeat values accepted
// before the clear.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.keys)
}

// Keys returns a snapshot of the stored keys in no particular order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.keys))
	for k := range s.keys {
		out = append(out, k)
	}
	return out
}
