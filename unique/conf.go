package unique

import (
	"time"
)

const (
	// DefaultMaxRetries is the attempt ceiling used when WithMaxRetries is
	// not supplied.
	DefaultMaxRetries = 50

	// DefaultMaxTime is the wall-clock ceiling used when WithMaxTime is not
	// supplied.
	DefaultMaxTime = 50 * time.Millisecond
)

// Option is a functional option for configuring a generator built by Make,
// MakeIn, Generate or GenerateIn.
type Option[T any] func(*config[T])

type config[T any] struct {
	store      *Store
	maxRetries int
	maxTime    time.Duration
	exclude    []T
	normalize  Normalizer[T]
	clock      func() time.Time
}

func newConfig[T any]() *config[T] {
	return &config[T]{
		maxRetries: DefaultMaxRetries,
		maxTime:    DefaultMaxTime,
		normalize:  JSONKey[T],
		clock:      time.Now,
	}
}

// WithStore sets the tracking set the generator records accepted values in.
// If not specified, Make and MakeIn create a fresh private store, while
// Generate and GenerateIn default to the process-wide Shared store.
// Several generators given the same store are mutually unique.
func WithStore[T any](s *Store) Option[T] {
	return func(cfg *config[T]) {
		if s != nil {
			cfg.store = s
		}
	}
}

// WithMaxRetries sets the ceiling on generator invocations per call of the
// wrapped function. Zero makes every call fail before the generator is
// invoked at all. Negative values are ignored. If not specified, defaults
// to DefaultMaxRetries.
func WithMaxRetries[T any](n int) Option[T] {
	return func(cfg *config[T]) {
		if n >= 0 {
			cfg.maxRetries = n
		}
	}
}

// WithMaxTime sets the ceiling on wall-clock time per call of the wrapped
// function. The budget is only checked between generator invocations, so a
// single slow invocation can overrun it. Zero makes every call fail
// immediately. Negative values are ignored. If not specified, defaults to
// DefaultMaxTime.
func WithMaxTime[T any](d time.Duration) Option[T] {
	return func(cfg *config[T]) {
		if d >= 0 {
			cfg.maxTime = d
		}
	}
}

// WithExclude forbids the given values as results. They are normalized once,
// at construction time, with the same normalizer the store uses, and are
// rejected before store insertion: an excluded value is never returned and
// never recorded, even when it would otherwise be unique.
func WithExclude[T any](values ...T) Option[T] {
	return func(cfg *config[T]) {
		cfg.exclude = append(cfg.exclude, values...)
	}
}

// WithNormalizer sets the function that maps raw results to comparison
// keys. It governs both store membership and the exclusion list, so the two
// can never disagree. If not specified, defaults to JSONKey.
func WithNormalizer[T any](fn Normalizer[T]) Option[T] {
	return func(cfg *config[T]) {
		if fn != nil {
			cfg.normalize = fn
		}
	}
}

// withClock swaps the time source. Used by tests to advance simulated time
// deterministically.
func withClock[T any](now func() time.Time) Option[T] {
	return func(cfg *config[T]) {
		if now != nil {
			cfg.clock = now
		}
	}
}
