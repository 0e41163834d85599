package unique

// Func is a value-producing operation with no arguments. A non-nil error
// aborts the surrounding retry loop immediately and propagates to the
// caller unchanged; nothing is recorded for that attempt.
//
// Type parameters:
//   - T: The type of value produced
type Func[T any] func() (T, error)

// FuncIn is a value-producing operation taking one argument. Operations
// needing several arguments pass a struct, or close over them and use Func.
//
// Type parameters:
//   - A: The argument type
//   - T: The type of value produced
type FuncIn[A, T any] func(A) (T, error)

// Normalizer maps a raw value to the string key used for duplicate
// detection and storage. It must be deterministic and side-effect free.
type Normalizer[T any] func(T) string

// Of wraps a plain value as a constant-returning Func, for callers that
// have a candidate value rather than a generator:
//
//	name, err := unique.Generate(unique.Of("alice"))
//
// succeeds the first time and fails with a budget error once "alice" is
// taken, since the constant can never produce anything new.
func Of[T any](v T) Func[T] {
	return func() (T, error) {
		return v, nil
	}
}
