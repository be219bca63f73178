package failable

import "github.com/matthiasbeyer/filters/pkg/filter"

// Adapter presents a pure filter through the failable protocol. Evaluation
// always succeeds with the inner filter's verdict; no error value is ever
// constructed.
type Adapter[T any] struct {
	inner filter.Filter[T]
}

// ToFailable lifts a pure filter into a failable chain. The conversion is
// deliberately explicit: an implicit one would stop both capabilities from
// being usable as plain interface values.
func ToFailable[T any](f filter.Filter[T]) Chain[T] {
	return Chain[T]{Adapter[T]{inner: f}}
}

// Evaluate implements Filter.
func (a Adapter[T]) Evaluate(v T) (bool, error) {
	return a.inner.Evaluate(v), nil
}
