// Package memoize provides per-instance memoization wrappers: cached
// properties, cached methods, and cached functions.
//
// # Overview
//
// A memoized instance holds one Cache (its per-instance cache slot) and
// binds each memoized member to it:
//
//   - Property[T]: a zero-argument computation, computed once per instance
//     and read through Get
//   - Method[T]: a computation over arbitrary arguments, memoized per unique
//     argument signature and invoked through Call or CallNamed
//   - Func[T]: a memoized package-level function owning a private Cache
//   - LazyMap[K, V]: a fixed key set whose values are computed on first
//     access
//
// # Basic Usage
//
// Bind members to an instance Cache in the constructor:
//
//	type Server struct {
//		cache  *memoize.Cache
//		config *memoize.Property[Config]
//		lookup *memoize.Method[string]
//	}
//
//	func NewServer() *Server {
//		s := &Server{cache: memoize.New()}
//		s.config = memoize.NewProperty(s.cache, "config", func(ctx context.Context) (Config, error) {
//			return loadConfig(ctx)
//		})
//		s.lookup = memoize.NewMethod(s.cache, "lookup", func(ctx context.Context, args memoize.Args) (string, error) {
//			return resolve(ctx, args.Positional[0].(string))
//		})
//		return s
//	}
//
// The first s.config.Get(ctx) runs loadConfig and stores the result; later
// Gets return it directly. s.lookup.Call(ctx, "host-a") memoizes per
// argument signature: a repeated "host-a" is served from storage, "host-b"
// computes its own entry. Two Server values hold two Caches and never share
// entries.
//
// # Compute-Once Contract
//
// For every member the per-entry lifecycle is uncomputed, computing, cached:
//
//   - A successful computation stores its result; the entry stays cached
//     until explicitly cleared
//   - A failed computation stores nothing and propagates its error
//     unchanged; the next access retries
//   - Errors are never cached and never transformed
//
// The contract is defined for single-threaded use. Nothing in the default
// path locks: two goroutines racing on a first access may both run the
// computation, with the last store winning. Callers sharing an instance
// across goroutines can swap in cache.NewSyncStore via WithStore to make
// individual store operations safe, but compute-once under concurrency
// still requires external synchronization.
//
// # Clearing
//
// Cached state can be reset at three granularities:
//
//	instance.cache.Clear()      // whole instance slot
//	instance.lookup.Clear()     // one method, all signatures
//	instance.lookup.Forget("host-a") // one signature
//
// # Bypassing
//
// WithBypass marks a context so accessors invoke their computation directly,
// neither reading nor writing the store:
//
//	fresh, err := s.config.Get(memoize.WithBypass(ctx))
//
// # Warming
//
// Populate eagerly computes a set of members:
//
//	err := memoize.Populate(ctx, s.config, s.lookup)
//
// Methods are primed with a zero-argument call; computations that need
// arguments should return ErrNeedsArgs in that case, which Populate treats
// as "skip".
//
// # Side Tables
//
// When the owning type cannot carry a Cache field, Table maps an owner key
// to its Cache:
//
//	table := memoize.NewTable[string](nil)
//	c := table.For("instance-17")
//
// Dropping an owner from the table ends that owner's cache lifetime.
//
// # See Also
//
// For key canonicalization rules and store backends, see the cache package.
// For container-based wiring, see pkg/di.
package memoize
