package memoize

import "github.com/puzpuzpuz/xsync/v3"

// Table is a side-table mapping an owner key to that owner's Cache. It is
// the escape hatch for decorating instances whose type cannot carry a Cache
// field: entries are scoped per owner exactly as if the owner held the
// Cache itself, and the caller drives entry lifetime by dropping owners it
// is done with.
type Table[K comparable] struct {
	caches  *xsync.MapOf[K, *Cache]
	factory func() *Cache
}

// NewTable creates a side-table. The factory builds the Cache for each new
// owner; a nil factory builds default Caches. Factories must return a fresh
// Cache per call so owners never share a store.
func NewTable[K comparable](factory func() *Cache) *Table[K] {
	if factory == nil {
		factory = func() *Cache { return New() }
	}
	return &Table[K]{
		caches:  xsync.NewMapOf[K, *Cache](),
		factory: factory,
	}
}

// For returns the Cache for owner, creating it on first use.
func (t *Table[K]) For(owner K) *Cache {
	c, _ := t.caches.LoadOrCompute(owner, t.factory)
	return c
}

// Drop ends the cache lifetime for owner; a later For starts fresh.
func (t *Table[K]) Drop(owner K) {
	t.caches.Delete(owner)
}

// Len returns the number of owners currently tracked.
func (t *Table[K]) Len() int {
	return t.caches.Size()
}

// Clear drops every owner.
func (t *Table[K]) Clear() {
	t.caches.Clear()
}
