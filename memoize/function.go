package memoize

import "context"

// Func is a memoized package-level function. Unlike Method it is not bound
// to an instance Cache; it owns a private one, so its entries live for the
// lifetime of the Func value itself.
type Func[T any] struct {
	method *Method[T]
}

// NewFunc creates a memoized function. Options configure the private Cache,
// e.g. WithStore(cache.NewSyncStore()) when the function is called from
// multiple goroutines.
func NewFunc[T any](name string, fn MethodFn[T], opts ...Option) *Func[T] {
	c := New(opts...)
	return &Func[T]{method: NewMethod(c, name, fn)}
}

// Call invokes the function with positional arguments, memoizing per unique
// argument signature.
func (f *Func[T]) Call(ctx context.Context, args ...any) (T, error) {
	return f.method.Call(ctx, args...)
}

// CallNamed invokes the function with positional and named arguments.
func (f *Func[T]) CallNamed(ctx context.Context, args []any, named map[string]any) (T, error) {
	return f.method.CallNamed(ctx, args, named)
}

// Forget drops the entry for one positional argument signature.
func (f *Func[T]) Forget(args ...any) {
	f.method.Forget(args...)
}

// ForgetNamed drops the entry for one positional+named argument signature.
func (f *Func[T]) ForgetNamed(args []any, named map[string]any) {
	f.method.ForgetNamed(args, named)
}

// Clear drops every stored signature.
func (f *Func[T]) Clear() {
	f.method.cache.Clear()
}

// Len returns the number of stored signatures.
func (f *Func[T]) Len() int {
	return f.method.cache.Len()
}

// Prime runs a zero-argument call; see Method.Prime.
func (f *Func[T]) Prime(ctx context.Context) error {
	return f.method.Prime(ctx)
}
