package memoize

import "context"

// FetchFn is the computation signature a Property wraps: a zero-argument
// function of the owning instance.
type FetchFn[T any] func(ctx context.Context) (T, error)

// Property is a memoized zero-argument computation exposed through an
// explicit accessor. The first Get for the owning instance runs the
// computation and stores the result in the instance's Cache; later Gets
// return the stored value without re-invoking it.
type Property[T any] struct {
	cache  *Cache
	member string
	fetch  FetchFn[T]
}

// NewProperty binds a memoized property to the instance Cache c. The name
// appears in stored keys for readability; uniqueness is guaranteed by an
// internal member id, so two properties sharing a name never collide.
func NewProperty[T any](c *Cache, name string, fetch FetchFn[T]) *Property[T] {
	return &Property[T]{
		cache:  c,
		member: memberName(name),
		fetch:  fetch,
	}
}

// Get returns the property value, computing it on first access. A failed
// computation stores nothing and propagates its error; the next Get
// retries. When ctx carries the bypass flag, Get invokes the computation
// directly and neither reads nor writes the store.
func (p *Property[T]) Get(ctx context.Context) (T, error) {
	if Bypassed(ctx) {
		return p.fetch(ctx)
	}

	if stored, ok := p.cache.store.Get(p.member); ok {
		// Comma-ok keeps a stored nil interface value from panicking
		// when T is an interface type.
		if value, ok := stored.(T); ok {
			return value, nil
		}
		var zero T
		return zero, nil
	}

	value, err := p.fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	p.cache.store.Set(p.member, value)
	return value, nil
}

// Clear removes this property's stored value, if any. Entries of other
// members on the same Cache are untouched.
func (p *Property[T]) Clear() {
	p.cache.store.Delete(p.member)
}

// Prime computes and stores the value now. It implements Primer so the
// property can participate in Populate.
func (p *Property[T]) Prime(ctx context.Context) error {
	_, err := p.Get(ctx)
	return err
}
