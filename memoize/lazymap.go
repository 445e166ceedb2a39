package memoize

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownKey is returned by LazyMap.Get for a key outside the fixed key
// set the map was created with.
var ErrUnknownKey = errors.New("memoize: unknown key")

// LazyMap is a fixed set of keys whose values are expensive to fetch: the
// key set is known up front, each value is computed on first access and
// served from storage afterwards.
type LazyMap[K comparable, V any] struct {
	cache  *Cache
	member string
	keys   map[K]struct{}
	order  []K
	fetch  func(ctx context.Context, key K) (V, error)
}

// NewLazyMap creates a LazyMap over the given key set. Options configure
// the private Cache backing it.
func NewLazyMap[K comparable, V any](keys []K, fetch func(ctx context.Context, key K) (V, error), opts ...Option) *LazyMap[K, V] {
	known := make(map[K]struct{}, len(keys))
	order := make([]K, 0, len(keys))
	for _, k := range keys {
		if _, seen := known[k]; seen {
			continue
		}
		known[k] = struct{}{}
		order = append(order, k)
	}

	return &LazyMap[K, V]{
		cache:  New(opts...),
		member: memberName("lazymap"),
		keys:   known,
		order:  order,
		fetch:  fetch,
	}
}

// Get returns the value for key, computing it on first access. Keys outside
// the fixed set fail with ErrUnknownKey. A failed computation stores
// nothing; the next Get for that key retries.
func (m *LazyMap[K, V]) Get(ctx context.Context, key K) (V, error) {
	var zero V
	if _, ok := m.keys[key]; !ok {
		return zero, fmt.Errorf("%w: %v", ErrUnknownKey, key)
	}

	entry := m.cache.serializer.SerializeKey(m.member, key)

	if Bypassed(ctx) {
		return m.fetch(ctx, key)
	}

	if stored, ok := m.cache.store.Get(entry); ok {
		// Comma-ok keeps a stored nil interface value from panicking
		// when V is an interface type.
		if value, ok := stored.(V); ok {
			return value, nil
		}
		return zero, nil
	}

	value, err := m.fetch(ctx, key)
	if err != nil {
		return zero, err
	}

	m.cache.store.Set(entry, value)
	return value, nil
}

// Keys returns the fixed key set in registration order.
func (m *LazyMap[K, V]) Keys() []K {
	return append([]K(nil), m.order...)
}

// Len returns the number of values computed so far.
func (m *LazyMap[K, V]) Len() int {
	return m.cache.Len()
}

// Clear drops every computed value; the key set is unchanged.
func (m *LazyMap[K, V]) Clear() {
	m.cache.Clear()
}

// Prime computes every known key now, implementing Primer. Failures are
// collected per key and joined; keys that already have values are not
// recomputed.
func (m *LazyMap[K, V]) Prime(ctx context.Context) error {
	var errs []error
	for _, key := range m.order {
		if _, err := m.Get(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
