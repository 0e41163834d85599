package unique

// generator holds the per-factory state shared by every call of the wrapped
// function: the store, the pre-normalized exclusion set, and the config.
// Attempt counters and start times are deliberately NOT here; they are
// local to one call of the wrapped function.
type generator[T any] struct {
	cfg      *config[T]
	store    *Store
	excluded map[string]struct{}
}

func newGenerator[T any](opts []Option[T]) *generator[T] {
	cfg := newConfig[T]()
	for _, opt := range opts {
		opt(cfg)
	}

	store := cfg.store
	if store == nil {
		store = NewStore()
	}

	// The exclusion list is normalized once, here, with the same normalizer
	// the store uses.
	excluded := make(map[string]struct{}, len(cfg.exclude))
	for _, v := range cfg.exclude {
		excluded[cfg.normalize(v)] = struct{}{}
	}

	return &generator[T]{
		cfg:      cfg,
		store:    store,
		excluded: excluded,
	}
}

// next runs one retry-until-unique cycle. The checks run in a fixed order
// every iteration: time budget, then retry budget, then produce-and-test.
// A produced value is discarded when its key is excluded or already stored;
// otherwise the key is recorded and the raw value returned.
func (g *generator[T]) next(produce func() (T, error)) (T, error) {
	var zero T
	start := g.cfg.clock()
	attempts := 0

	for {
		elapsed := g.cfg.clock().Sub(start)
		if elapsed >= g.cfg.maxTime {
			return zero, &TimeBudgetError{
				MaxTime:   g.cfg.maxTime,
				Attempts:  attempts,
				StoreSize: g.store.Len(),
				Elapsed:   elapsed,
			}
		}

		if attempts >= g.cfg.maxRetries {
			return zero, &RetryBudgetError{
				MaxRetries: g.cfg.maxRetries,
				Attempts:   attempts,
				StoreSize:  g.store.Len(),
				Elapsed:    elapsed,
			}
		}

		value, err := produce()
		attempts++
		if err != nil {
			// Generator faults are not retried or wrapped.
			return zero, err
		}

		key := g.cfg.normalize(value)
		if _, skip := g.excluded[key]; skip {
			continue
		}
		if !g.store.TryAdd(key) {
			continue
		}
		return value, nil
	}
}

// Make wraps fn in a retry loop that only returns values fn has not
// produced before. The returned function has the same signature as fn; each
// of its calls keeps invoking fn until a value is found whose normalized
// key is neither in the store nor excluded, or until a budget runs out.
//
// Accepted values are recorded in the configured store, which defaults to a
// fresh store private to this Make call: two generators built by separate
// Make calls do not observe each other unless given the same store
// explicitly.
//
// On success the raw value is returned and the store has grown by exactly
// one key. On failure (*RetryBudgetError, *TimeBudgetError, or an error
// from fn itself) the store is unchanged by that call.
//
// Example:
//
//	roll := unique.Make(func() (int, error) {
//	    return rand.Intn(6) + 1, nil
//	})
//	// roll() can succeed at most six times; the seventh call fails
//	// with *RetryBudgetError.
func Make[T any](fn Func[T], opts ...Option[T]) Func[T] {
	g := newGenerator(opts)
	return func() (T, error) {
		return g.next(fn)
	}
}

// MakeIn is Make for operations taking one argument. The argument of each
// call of the wrapped function is passed through to every invocation of fn
// within that call's retry loop. All calls share one store regardless of
// argument, so fn(a) and fn(b) colliding on the same value counts as a
// duplicate.
//
// Example:
//
//	handle := unique.MakeIn(func(base string) (string, error) {
//	    return fmt.Sprintf("%s%d", base, rand.Intn(10)), nil
//	})
//	h1, _ := handle("dev") // e.g. "dev7"
//	h2, _ := handle("dev") // retries past "dev7" if produced again
func MakeIn[A, T any](fn FuncIn[A, T], opts ...Option[T]) FuncIn[A, T] {
	g := newGenerator(opts)
	return func(arg A) (T, error) {
		return g.next(func() (T, error) {
			return fn(arg)
		})
	}
}
