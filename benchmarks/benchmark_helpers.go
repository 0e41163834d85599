package benchmarks

import (
	"fmt"
	"math/rand"

	"github.com/utkarsh5026/uniqueme/unique"
)

// =============================================================================
// Benchmark Workload Generators
// =============================================================================

// sequentialInts produces a fresh value on every invocation, so the retry
// loop accepts on the first attempt and the store only ever grows.
func sequentialInts() unique.Func[int] {
	n := 0
	return func() (int, error) {
		n++
		return n, nil
	}
}

// randomInts produces values from a bounded space, so the duplicate rate
// climbs as the store fills. Seeded for run-to-run comparability.
func randomInts(space int) unique.Func[int] {
	rng := rand.New(rand.NewSource(42))
	return func() (int, error) {
		return rng.Intn(space), nil
	}
}

// randomUsers produces small struct values to exercise the structural
// normalizer rather than plain-integer keys.
func randomUsers(space int) unique.Func[benchUser] {
	rng := rand.New(rand.NewSource(42))
	return func() (benchUser, error) {
		n := rng.Intn(space)
		return benchUser{
			Name: fmt.Sprintf("user-%d", n),
			Age:  20 + n%60,
		}, nil
	}
}

type benchUser struct {
	Name string
	Age  int
}
