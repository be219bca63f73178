package filter

// And evaluates to true when both child filters evaluate to true. The right
// child is skipped when the left already evaluated to false.
type And[T any] struct {
	left, right Filter[T]
}

// NewAnd combines two filters via logical AND.
func NewAnd[T any](left, right Filter[T]) And[T] {
	return And[T]{left: left, right: right}
}

// Evaluate implements Filter.
func (f And[T]) Evaluate(v T) bool {
	return f.left.Evaluate(v) && f.right.Evaluate(v)
}

// Or evaluates to true when either child filter evaluates to true. The right
// child is skipped when the left already evaluated to true.
type Or[T any] struct {
	left, right Filter[T]
}

// NewOr combines two filters via logical OR.
func NewOr[T any](left, right Filter[T]) Or[T] {
	return Or[T]{left: left, right: right}
}

// Evaluate implements Filter.
func (f Or[T]) Evaluate(v T) bool {
	return f.left.Evaluate(v) || f.right.Evaluate(v)
}

// XOr evaluates to true when exactly one child filter evaluates to true.
// Both children are always evaluated.
type XOr[T any] struct {
	left, right Filter[T]
}

// NewXOr combines two filters via logical XOR.
func NewXOr[T any](left, right Filter[T]) XOr[T] {
	return XOr[T]{left: left, right: right}
}

// Evaluate implements Filter.
func (f XOr[T]) Evaluate(v T) bool {
	return f.left.Evaluate(v) != f.right.Evaluate(v)
}

// Not inverts its child filter.
type Not[T any] struct {
	inner Filter[T]
}

// NewNot inverts a filter.
func NewNot[T any](inner Filter[T]) Not[T] {
	return Not[T]{inner: inner}
}

// Evaluate implements Filter.
func (f Not[T]) Evaluate(v T) bool {
	return !f.inner.Evaluate(v)
}

// Bool is a constant filter that ignores its input. It exists so a fixed
// boolean can be folded into a combinator chain.
type Bool[T any] struct {
	b bool
}

// NewBool returns a filter with a fixed verdict.
func NewBool[T any](b bool) Bool[T] {
	return Bool[T]{b: b}
}

// Evaluate implements Filter.
func (f Bool[T]) Evaluate(T) bool { return f.b }

// MapInput adapts a filter over T to accept values of type U by running each
// input through a mapping function first.
type MapInput[U, T any] struct {
	inner Filter[T]
	m     func(U) T
}

// NewMapInput wraps a filter with an input transformation.
func NewMapInput[U, T any](inner Filter[T], m func(U) T) MapInput[U, T] {
	return MapInput[U, T]{inner: inner, m: m}
}

// Evaluate implements Filter.
func (f MapInput[U, T]) Evaluate(v U) bool {
	return f.inner.Evaluate(f.m(v))
}
