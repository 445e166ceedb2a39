package memoize

import (
	"strconv"
	"sync/atomic"

	"github.com/goliatone/go-memoize/cache"
)

// memberIDs allocates process-unique ids for memoized members. The id
// namespaces every key a member writes, so two members registered under the
// same name on the same Cache can never collide.
var memberIDs atomic.Uint64

// Option configures a Cache.
type Option func(*Cache)

// WithStore sets the store backing the Cache. The default is an
// unsynchronized map store.
func WithStore(store cache.Store) Option {
	return func(c *Cache) {
		c.store = store
	}
}

// WithSerializer sets the key serializer used for method argument
// signatures. The default is the reflection-based serializer.
func WithSerializer(serializer cache.KeySerializer) Option {
	return func(c *Cache) {
		c.serializer = serializer
	}
}

// Cache is the per-instance cache slot. An instance that wants memoized
// members holds one Cache and binds each Property, Method, or LazyMap to it;
// all of their entries share the Cache's store, namespaced per member.
//
// Two instances of the same type hold two Caches and therefore two fully
// independent sets of entries.
type Cache struct {
	store      cache.Store
	serializer cache.KeySerializer
}

// New creates a per-instance Cache. With no options it uses an
// unsynchronized map store and the default key serializer.
func New(opts ...Option) *Cache {
	c := &Cache{}
	for _, opt := range opts {
		opt(c)
	}
	if c.store == nil {
		c.store = cache.NewMapStore()
	}
	if c.serializer == nil {
		c.serializer = cache.NewDefaultKeySerializer()
	}
	return c
}

// Clear removes every stored entry, returning all members bound to this
// Cache to the uncomputed state. The next access to each member recomputes.
func (c *Cache) Clear() {
	c.store.Clear()
}

// Len returns the number of stored entries across all members.
func (c *Cache) Len() int {
	return len(c.store.Keys())
}

// Store returns the store backing this Cache.
func (c *Cache) Store() cache.Store {
	return c.store
}

// Serializer returns the key serializer used by this Cache.
func (c *Cache) Serializer() cache.KeySerializer {
	return c.serializer
}

// memberName builds the namespaced member segment used as the key prefix
// for everything a member stores.
func memberName(name string) string {
	return strconv.FormatUint(memberIDs.Add(1), 10) + "#" + name
}
