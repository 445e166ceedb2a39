package memoize

import (
	"context"
	"errors"
)

// ErrNeedsArgs is returned by a wrapped computation when it is invoked
// without the arguments it requires. Populate treats it as "skip this
// member" rather than a failure.
var ErrNeedsArgs = errors.New("memoize: member requires arguments")

// Primer is a memoized member that can compute its value eagerly.
// Property, Method, Func, and LazyMap implement it.
type Primer interface {
	Prime(ctx context.Context) error
}

// Populate eagerly computes the given members, warming their caches in one
// pass. Members whose computation reports ErrNeedsArgs are skipped; every
// other failure is collected, and the joined error is returned after all
// members have been attempted.
func Populate(ctx context.Context, members ...Primer) error {
	var errs []error
	for _, member := range members {
		if err := member.Prime(ctx); err != nil {
			if errors.Is(err, ErrNeedsArgs) {
				continue
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
