package unique

import (
	"errors"
	"fmt"
	"time"
)

// RetryBudgetError is returned when the attempt ceiling is reached before a
// unique, non-excluded value is found. The fields describe the state of the
// failed call so callers can tell a too-small value space (store size close
// to the space) from a too-tight budget.
type RetryBudgetError struct {
	MaxRetries int           // configured attempt ceiling
	Attempts   int           // generator invocations made
	StoreSize  int           // values in the store at failure
	Elapsed    time.Duration // wall-clock time spent in the call
}

func (e *RetryBudgetError) Error() string {
	return fmt.Sprintf("unique: no unused value after %d/%d attempts in %v (store holds %d values)",
		e.Attempts, e.MaxRetries, e.Elapsed, e.StoreSize)
}

// TimeBudgetError is returned when the wall-clock ceiling is reached before
// a unique, non-excluded value is found.
type TimeBudgetError struct {
	MaxTime   time.Duration // configured wall-clock ceiling
	Attempts  int           // generator invocations made
	StoreSize int           // values in the store at failure
	Elapsed   time.Duration // wall-clock time spent in the call
}

func (e *TimeBudgetError) Error() string {
	return fmt.Sprintf("unique: no unused value within %v (spent %v over %d attempts, store holds %d values)",
		e.MaxTime, e.Elapsed, e.Attempts, e.StoreSize)
}

// RetriesExhausted returns true if the error is a *RetryBudgetError.
func RetriesExhausted(err error) bool {
	var e *RetryBudgetError
	return errors.As(err, &e)
}

// TimedOut returns true if the error is a *TimeBudgetError.
func TimedOut(err error) bool {
	var e *TimeBudgetError
	return errors.As(err, &e)
}
