// Package timing wraps a computation and measures its wall-clock duration,
// so two implementations of the same query can be compared on equal footing.
package timing

import "time"

// Sample pairs a computation's result with the time it took to produce it.
type Sample[T any] struct {
	Result  T
	Elapsed time.Duration
}

// Seconds reports the elapsed time as a float, for display.
func (s Sample[T]) Seconds() float64 {
	return s.Elapsed.Seconds()
}

// Timed runs fn exactly once and captures how long the call took. The
// result and error come back from fn unchanged; fn is never retried.
func Timed[T any](fn func() (T, error)) (Sample[T], error) {
	start := time.Now()
	result, err := fn()
	return Sample[T]{Result: result, Elapsed: time.Since(start)}, err
}
