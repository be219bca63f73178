package failable

// Filter evaluates a value of type T to a boolean verdict, or reports why
// the verdict could not be computed.
//
// A non-nil error means the boolean result is meaningless and must be
// ignored. Error values are owned entirely by filter authors; combinators
// only propagate or, via MapErr, translate them.
type Filter[T any] interface {
	Evaluate(v T) (bool, error)
}

// Func adapts a plain fallible predicate function to the Filter interface.
type Func[T any] func(T) (bool, error)

// Evaluate implements Filter by calling the function itself.
func (f Func[T]) Evaluate(v T) (bool, error) { return f(v) }

// Chain wraps any failable Filter with fluent combinator methods. The zero
// value is not usable; construct chains with From, FuncOf or ToFailable.
type Chain[T any] struct {
	Filter[T]
}

// From lifts an existing failable Filter into a Chain.
func From[T any](f Filter[T]) Chain[T] { return Chain[T]{f} }

// FuncOf lifts a fallible predicate function into a Chain.
func FuncOf[T any](f func(T) (bool, error)) Chain[T] { return Chain[T]{Func[T](f)} }

// And combines with another filter via logical AND. A failure of the
// receiver propagates without evaluating the other filter; a false verdict
// of the receiver short-circuits the same way.
func (c Chain[T]) And(other Filter[T]) Chain[T] {
	return Chain[T]{NewAnd[T](c.Filter, other)}
}

// And3 combines with two more filters via logical AND.
func (c Chain[T]) And3(second, third Filter[T]) Chain[T] {
	return c.And(NewAnd(second, third))
}

// AndNot combines with the negation of another filter via logical AND.
func (c Chain[T]) AndNot(other Filter[T]) Chain[T] {
	return c.And(NewNot(other))
}

// Nand negates the AND of the receiver and another filter.
func (c Chain[T]) Nand(other Filter[T]) Chain[T] {
	return c.And(other).Not()
}

// Or combines with another filter via logical OR. A failure of the receiver
// propagates without evaluating the other filter; a true verdict of the
// receiver short-circuits the same way.
func (c Chain[T]) Or(other Filter[T]) Chain[T] {
	return Chain[T]{NewOr[T](c.Filter, other)}
}

// Or3 combines with two more filters via logical OR.
func (c Chain[T]) Or3(second, third Filter[T]) Chain[T] {
	return c.Or(NewOr(second, third))
}

// OrNot combines with the negation of another filter via logical OR.
func (c Chain[T]) OrNot(other Filter[T]) Chain[T] {
	return c.Or(NewNot(other))
}

// Nor negates the OR of the receiver and another filter.
func (c Chain[T]) Nor(other Filter[T]) Chain[T] {
	return c.Or(other).Not()
}

// XOr combines with another filter via logical XOR. The receiver is
// evaluated first; its failure preempts evaluating the other filter.
func (c Chain[T]) XOr(other Filter[T]) Chain[T] {
	return Chain[T]{NewXOr[T](c.Filter, other)}
}

// Not inverts the chain. Failures propagate unchanged.
func (c Chain[T]) Not() Chain[T] {
	return Chain[T]{NewNot[T](c.Filter)}
}

// BoolAnd combines with a fixed boolean via logical AND.
func (c Chain[T]) BoolAnd(b bool) Chain[T] {
	return c.And(NewBool[T](b))
}

// BoolOr combines with a fixed boolean via logical OR.
func (c Chain[T]) BoolOr(b bool) Chain[T] {
	return c.Or(NewBool[T](b))
}

// MapErr translates errors reported by the chain through m, leaving
// successful verdicts untouched. Use it to reconcile two filters with
// different error domains before combining them.
func (c Chain[T]) MapErr(m func(error) error) Chain[T] {
	return Chain[T]{NewMapErr[T](c.Filter, m)}
}
