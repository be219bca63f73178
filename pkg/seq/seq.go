package seq

import (
	"iter"

	"github.com/matthiasbeyer/filters/pkg/filter"
)

// Filter yields only the values of src for which f evaluates to true,
// preserving order. The result is as lazy as src: finite when src is finite,
// infinite when it is infinite.
func Filter[T any](src iter.Seq[T], f filter.Filter[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range src {
			if f.Evaluate(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// FilterOks filters only the successful values of a fallible sequence;
// error entries pass through untouched.
func FilterOks[T any](src iter.Seq2[T, error], f filter.Filter[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for v, err := range src {
			if err == nil && !f.Evaluate(v) {
				continue
			}
			if !yield(v, err) {
				return
			}
		}
	}
}

// FilterErrs filters only the error entries of a fallible sequence;
// successful values pass through untouched.
func FilterErrs[T any](src iter.Seq2[T, error], f filter.Filter[error]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for v, err := range src {
			if err != nil && !f.Evaluate(err) {
				continue
			}
			if !yield(v, err) {
				return
			}
		}
	}
}
