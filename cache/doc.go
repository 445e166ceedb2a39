// Package cache provides key serialization and the per-instance store
// contract used by the memoize package.
//
// # Overview
//
// This package exports two main interfaces and their default implementations:
//
//   - Store: the per-instance cache slot holding computed values
//   - KeySerializer: builds stable cache keys from member names and arguments
//
// The memoize package binds one Store and one KeySerializer per memoized
// instance; this package only defines how values are stored and how argument
// signatures become keys.
//
// # Basic Usage
//
// The simplest way to use the package is with the defaults:
//
//	serializer := cache.NewDefaultKeySerializer()
//	key := serializer.SerializeKey("GetByID", "user-123")
//
//	store := cache.NewMapStore()
//	store.Set(key, user)
//
// # Key Serialization Strategy
//
// The default key serializer uses reflection to handle various Go types:
//
//   - Function pointers: %p formatting, stable within a process
//   - Numeric and boolean types: direct string representation
//   - Strings: quoted as str:"..." so a string containing the key
//     separator or the rendering of another value stays distinct
//   - Slices/arrays: recursive serialization of elements
//   - Maps: sorted key-value pairs for deterministic output
//   - Structs: exported fields with name:value pairs
//   - Complex types: JSON fallback with error handling
//
// Named arguments are canonicalized by sorting them bytewise by name and
// appending them after all positional segments as n:"name"=value. Two calls
// that differ only in the order of their named arguments therefore produce
// the same key, while a named argument never collides with an equal
// positional one.
//
// Keys longer than an internal threshold are collapsed to
// "member::xx64:<digest>" using xxhash, preserving the member prefix so
// prefix-scoped clearing still works.
//
// # Store Implementations
//
// Three stores are provided:
//
//   - NewMapStore: plain unsynchronized map, the default. Matches the
//     single-threaded usage model of the memoize wrappers.
//   - NewSyncStore: xsync-backed map, safe for concurrent use of individual
//     operations when an instance is shared across goroutines.
//   - NewBoundedStore: sturdyc-backed store with capacity limits and TTL
//     expiry, for long-lived instances whose argument space is unbounded.
//
// None of the stores turns the memoize wrappers into a compute-once
// mechanism under concurrency: two goroutines racing on a first access may
// both run the computation, and the last store wins.
//
// # Important Warnings for Argument Types
//
// Keys are only as good as the arguments they are built from:
//
//   - Function and channel arguments serialize by pointer; keys involving
//     them are stable only within a single process lifetime
//   - Arguments mutated after a call can produce surprising hits or misses
//   - Closures capturing different variables have different pointers
//
// # Error Handling
//
// The package prioritizes stability over perfection. When JSON marshaling
// fails, the key serializer falls back to type information and memory
// addresses rather than panicking, so cache operations continue even with
// problematic argument types.
//
// # See Also
//
// For the memoization wrappers built on these contracts, see the memoize
// package.
package cache
