package unique

// Shared is the process-wide tracking set used by Generate and GenerateIn
// when no store is supplied. It is created at process start, lives for the
// lifetime of the process, and is never reset automatically; any holder of
// the package may inspect it, pre-seed it, or Clear it, and doing so
// changes subsequent uniqueness outcomes immediately.
//
// Because every defaulting call site in the process accumulates into it,
// unrelated callers can exhaust each other's value spaces. Callers that
// need isolation should pass their own store via WithStore, or use Make.
var Shared = NewStore()

// Generate invokes fn repeatedly until it produces a value not seen before,
// following the same algorithm and options as Make, except that the store
// defaults to Shared instead of a fresh private one. An explicit WithStore
// still wins over the default.
//
// Example:
//
//	color1, _ := unique.Generate(randomColor)
//	color2, _ := unique.Generate(randomColor) // never equal to color1
func Generate[T any](fn Func[T], opts ...Option[T]) (T, error) {
	merged := make([]Option[T], 0, len(opts)+1)
	merged = append(merged, WithStore[T](Shared))
	merged = append(merged, opts...)
	return Make(fn, merged...)()
}

// GenerateIn is Generate for operations taking one argument.
func GenerateIn[A, T any](fn FuncIn[A, T], arg A, opts ...Option[T]) (T, error) {
	merged := make([]Option[T], 0, len(opts)+1)
	merged = append(merged, WithStore[T](Shared))
	merged = append(merged, opts...)
	return MakeIn(fn, merged...)(arg)
}
