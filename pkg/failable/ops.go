package failable

// And evaluates to true when both child filters evaluate to true. A failure
// of the left child propagates without touching the right child, as does a
// false verdict.
type And[T any] struct {
	left, right Filter[T]
}

// NewAnd combines two failable filters via logical AND.
func NewAnd[T any](left, right Filter[T]) And[T] {
	return And[T]{left: left, right: right}
}

// Evaluate implements Filter.
func (f And[T]) Evaluate(v T) (bool, error) {
	ok, err := f.left.Evaluate(v)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	return f.right.Evaluate(v)
}

// Or evaluates to true when either child filter evaluates to true. A failure
// of the left child propagates without touching the right child, as does a
// true verdict.
type Or[T any] struct {
	left, right Filter[T]
}

// NewOr combines two failable filters via logical OR.
func NewOr[T any](left, right Filter[T]) Or[T] {
	return Or[T]{left: left, right: right}
}

// Evaluate implements Filter.
func (f Or[T]) Evaluate(v T) (bool, error) {
	ok, err := f.left.Evaluate(v)
	if err != nil {
		return false, err
	}
	if ok {
		return true, nil
	}
	return f.right.Evaluate(v)
}

// XOr evaluates to true when exactly one child filter evaluates to true.
// The left child is evaluated first and its failure preempts evaluating the
// right child; in the success case both sides are always evaluated.
type XOr[T any] struct {
	left, right Filter[T]
}

// NewXOr combines two failable filters via logical XOR.
func NewXOr[T any](left, right Filter[T]) XOr[T] {
	return XOr[T]{left: left, right: right}
}

// Evaluate implements Filter.
func (f XOr[T]) Evaluate(v T) (bool, error) {
	l, err := f.left.Evaluate(v)
	if err != nil {
		return false, err
	}
	r, err := f.right.Evaluate(v)
	if err != nil {
		return false, err
	}
	return l != r, nil
}

// Not inverts its child filter. Failures propagate unchanged.
type Not[T any] struct {
	inner Filter[T]
}

// NewNot inverts a failable filter.
func NewNot[T any](inner Filter[T]) Not[T] {
	return Not[T]{inner: inner}
}

// Evaluate implements Filter.
func (f Not[T]) Evaluate(v T) (bool, error) {
	ok, err := f.inner.Evaluate(v)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

// Bool is a constant filter that ignores its input and never fails.
type Bool[T any] struct {
	b bool
}

// NewBool returns a failable filter with a fixed verdict.
func NewBool[T any](b bool) Bool[T] {
	return Bool[T]{b: b}
}

// Evaluate implements Filter.
func (f Bool[T]) Evaluate(T) (bool, error) { return f.b, nil }

// MapErr translates the errors of its child filter into a different error
// domain. Successful verdicts pass through untouched.
type MapErr[T any] struct {
	inner Filter[T]
	m     func(error) error
}

// NewMapErr wraps a failable filter with an error transformation.
func NewMapErr[T any](inner Filter[T], m func(error) error) MapErr[T] {
	return MapErr[T]{inner: inner, m: m}
}

// Evaluate implements Filter.
func (f MapErr[T]) Evaluate(v T) (bool, error) {
	ok, err := f.inner.Evaluate(v)
	if err != nil {
		return false, f.m(err)
	}
	return ok, nil
}

// MapInput adapts a failable filter over T to accept values of type U by
// running each input through a mapping function first.
type MapInput[U, T any] struct {
	inner Filter[T]
	m     func(U) T
}

// NewMapInput wraps a failable filter with an input transformation.
func NewMapInput[U, T any](inner Filter[T], m func(U) T) MapInput[U, T] {
	return MapInput[U, T]{inner: inner, m: m}
}

// Evaluate implements Filter.
func (f MapInput[U, T]) Evaluate(v U) (bool, error) {
	return f.inner.Evaluate(f.m(v))
}
