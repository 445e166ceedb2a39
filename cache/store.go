package cache

import "github.com/puzpuzpuz/xsync/v3"

// Store is the per-instance cache slot. Each memoized instance owns one
// Store; memoized members read and write their entries through it. A Store
// lives as long as the instance that holds it and needs no separate cleanup.
//
// Store implementations make no compute-once promise under concurrency: two
// goroutines racing on a first access may both run the underlying
// computation, with the last Set winning. Callers that need compute-once
// across goroutines must synchronize externally.
type Store interface {
	// Get returns the stored value for key and whether an entry exists.
	Get(key string) (any, bool)

	// Set stores value under key, replacing any previous entry.
	Set(key string, value any)

	// Delete removes the entry for key, if any.
	Delete(key string)

	// Keys returns the keys of all stored entries.
	Keys() []string

	// Clear removes every entry.
	Clear()
}

// mapStore is the default Store: a plain unsynchronized map. It matches the
// single-threaded usage model and adds zero overhead for it.
type mapStore struct {
	entries map[string]any
}

// NewMapStore creates the default unsynchronized Store.
func NewMapStore() Store {
	return &mapStore{entries: make(map[string]any)}
}

func (s *mapStore) Get(key string) (any, bool) {
	v, ok := s.entries[key]
	return v, ok
}

func (s *mapStore) Set(key string, value any) {
	s.entries[key] = value
}

func (s *mapStore) Delete(key string) {
	delete(s.entries, key)
}

func (s *mapStore) Keys() []string {
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	return keys
}

func (s *mapStore) Clear() {
	clear(s.entries)
}

// syncStore backs the slot with an xsync map so individual store operations
// are safe when an instance is shared across goroutines. It does not add a
// compute-once guarantee; see the Store contract.
type syncStore struct {
	entries *xsync.MapOf[string, any]
}

// NewSyncStore creates a Store safe for concurrent use of individual
// operations.
func NewSyncStore() Store {
	return &syncStore{entries: xsync.NewMapOf[string, any]()}
}

func (s *syncStore) Get(key string) (any, bool) {
	return s.entries.Load(key)
}

func (s *syncStore) Set(key string, value any) {
	s.entries.Store(key, value)
}

func (s *syncStore) Delete(key string) {
	s.entries.Delete(key)
}

func (s *syncStore) Keys() []string {
	keys := make([]string, 0, s.entries.Size())
	s.entries.Range(func(k string, _ any) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

func (s *syncStore) Clear() {
	s.entries.Clear()
}
