package memoize

import "context"

type bypassContextKey struct{}

// WithBypass returns a context under which memoized accessors invoke their
// computation directly: the store is neither read nor written, so a
// bypassed call cannot consume or pollute cached state. Use it when a
// caller needs a fresh value without disturbing what other callers see.
func WithBypass(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if Bypassed(ctx) {
		return ctx
	}
	return context.WithValue(ctx, bypassContextKey{}, true)
}

// Bypassed reports whether ctx carries the bypass flag.
func Bypassed(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	bypassed, ok := ctx.Value(bypassContextKey{}).(bool)
	return ok && bypassed
}
