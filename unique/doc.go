// Package unique turns any value-producing function into one that never
// repeats itself.
//
// The primary entry point is Make, which wraps a generator function of type
// Func[T] in a retry loop: each call of the wrapped function keeps invoking
// the underlying generator until it produces a value that has not been seen
// before (and is not on an exclusion list), or until an attempt or time
// budget runs out. Previously accepted values are tracked in a Store, which
// can be private to one generator, shared between several, or the
// process-wide Shared store.
//
// # Basic Usage
//
//	next := unique.Make(func() (int, error) {
//	    return rand.Intn(100), nil
//	})
//	n, err := next() // a value never returned by next before
//
// Each call to Make creates a fresh private Store, so independently built
// generators never see each other's values. Pass WithStore to share one.
//
// # One-shot Generation
//
// Generate is a convenience for callers who want a single unique value
// without holding on to a generator. Unlike Make, it defaults to the
// process-wide Shared store, so repeated calls anywhere in the process
// observe each other's results:
//
//	word, err := unique.Generate(randomWord)
//
// Callers that need isolation between unrelated call sites should pass
// their own store with WithStore, or use Make.
//
// # Normalization
//
// Values are compared and stored by a normalized string key, not by the raw
// value. The default normalizer, JSONKey, encodes the value structurally,
// so two struct results with equal fields count as duplicates. A custom
// Normalizer can widen or narrow what "the same value" means:
//
//	next := unique.Make(randomName,
//	    unique.WithNormalizer(strings.ToLower), // case-insensitive
//	)
//
// Normalizers must be deterministic: the same logical value has to map to
// the same key for the lifetime of the generator, or duplicate detection
// becomes unsound. The successful call always returns the raw value; only
// the key is stored.
//
// # Budgets
//
// Two independent ceilings bound every call of a wrapped function: a retry
// count (default 50 attempts) and a wall-clock budget (default 50ms). They
// are checked in that fixed order, time first, before every attempt.
// Whichever is hit first fails the call with *TimeBudgetError or
// *RetryBudgetError; both carry the attempts made, elapsed time, and store
// size so callers can tell a too-small value space from a too-tight budget.
// A budget of zero fails before the generator is ever invoked. Budgets are
// local to one call: the next call of the same wrapped function starts
// fresh.
//
// # Exclusion
//
//	coupon := unique.Make(randomCode,
//	    unique.WithExclude("ADMIN", "TEST"), // never returned, never stored
//	)
//
// Excluded values are normalized once, with the same normalizer as the
// store, and are rejected before store insertion.
//
// # Concurrency
//
// The retry loop is synchronous and blocking: the generator function is
// invoked and waited on, one attempt at a time, and the time budget is only
// checked between attempts, so a generator that blocks forever blocks its
// caller. Store is safe for concurrent use and its check-and-insert is
// atomic, but goroutines hammering one store still contend for the same
// shrinking value space; prefer per-goroutine stores unless process-wide
// uniqueness is the point.
package unique
