package memoize

import (
	"context"
	"strings"

	"github.com/goliatone/go-memoize/cache"
)

// Args carries a call's arguments to the wrapped computation. Positional
// arguments are order-sensitive; named arguments are order-insensitive among
// themselves but always distinct from equal positional ones.
type Args struct {
	Positional []any
	Named      map[string]any
}

// MethodFn is the computation signature a Method wraps.
type MethodFn[T any] func(ctx context.Context, args Args) (T, error)

// Method is a memoized instance method. Each call's arguments are
// canonicalized into a signature key scoped to this member; a call with a
// previously seen signature returns the stored result without re-invoking
// the computation.
//
// Signature keys are only as reliable as the arguments they are built from:
// arguments that rely on pointer identity (functions, channels) or that are
// mutated between calls can produce surprising hits or misses. That is a
// documented property of the mechanism, not something it defends against.
type Method[T any] struct {
	cache  *Cache
	member string
	fn     MethodFn[T]
}

// NewMethod binds a memoized method to the instance Cache c. As with
// properties, the name is decorative; an internal member id keeps same-named
// methods from colliding.
func NewMethod[T any](c *Cache, name string, fn MethodFn[T]) *Method[T] {
	return &Method[T]{
		cache:  c,
		member: memberName(name),
		fn:     fn,
	}
}

// Call invokes the method with positional arguments, memoizing per unique
// argument signature. A failed computation stores nothing and propagates its
// error; a later call with the same arguments retries.
func (m *Method[T]) Call(ctx context.Context, args ...any) (T, error) {
	key := m.cache.serializer.SerializeKey(m.member, args...)
	return m.compute(ctx, key, Args{Positional: args})
}

// CallNamed invokes the method with positional and named arguments. Named
// arguments are canonicalized order-insensitively, so CallNamed with
// {a: 1, b: 2} and {b: 2, a: 1} hit the same entry, while a named argument
// never aliases an equal positional one.
func (m *Method[T]) CallNamed(ctx context.Context, args []any, named map[string]any) (T, error) {
	key := m.cache.serializer.SerializeKeyNamed(m.member, args, named)
	return m.compute(ctx, key, Args{Positional: args, Named: named})
}

func (m *Method[T]) compute(ctx context.Context, key string, args Args) (T, error) {
	if Bypassed(ctx) {
		return m.fn(ctx, args)
	}

	if stored, ok := m.cache.store.Get(key); ok {
		// Comma-ok keeps a stored nil interface value from panicking
		// when T is an interface type.
		if value, ok := stored.(T); ok {
			return value, nil
		}
		var zero T
		return zero, nil
	}

	value, err := m.fn(ctx, args)
	if err != nil {
		var zero T
		return zero, err
	}

	m.cache.store.Set(key, value)
	return value, nil
}

// Forget drops the entry for one positional argument signature, if present.
func (m *Method[T]) Forget(args ...any) {
	m.cache.store.Delete(m.cache.serializer.SerializeKey(m.member, args...))
}

// ForgetNamed drops the entry for one positional+named argument signature.
func (m *Method[T]) ForgetNamed(args []any, named map[string]any) {
	m.cache.store.Delete(m.cache.serializer.SerializeKeyNamed(m.member, args, named))
}

// Clear drops every signature stored for this method. Entries of other
// members on the same Cache are untouched.
func (m *Method[T]) Clear() {
	prefix := m.member + cache.KeySeparator
	for _, key := range m.cache.store.Keys() {
		if key == m.member || strings.HasPrefix(key, prefix) {
			m.cache.store.Delete(key)
		}
	}
}

// Prime runs a zero-argument call so the method can participate in
// Populate. A wrapped computation that requires arguments should return
// ErrNeedsArgs when called with none; Populate skips such members.
func (m *Method[T]) Prime(ctx context.Context) error {
	_, err := m.Call(ctx)
	return err
}
