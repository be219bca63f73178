package filter

// Filter evaluates a value of type T to a boolean verdict.
//
// Implementations are expected to be deterministic for a given input within a
// single evaluation and to carry no evaluation state of their own; whether a
// filter is free of side effects is a convention of its author, not something
// the combinator layer enforces or relies on.
type Filter[T any] interface {
	Evaluate(v T) bool
}

// Func adapts a plain predicate function to the Filter interface, so
// closures can join combinator chains without a wrapper struct.
type Func[T any] func(T) bool

// Evaluate implements Filter by calling the function itself.
func (f Func[T]) Evaluate(v T) bool { return f(v) }

// Chain wraps any Filter with fluent combinator methods. The zero value is
// not usable; construct chains with From or FuncOf.
type Chain[T any] struct {
	Filter[T]
}

// From lifts an existing Filter into a Chain.
func From[T any](f Filter[T]) Chain[T] { return Chain[T]{f} }

// FuncOf lifts a predicate function into a Chain.
func FuncOf[T any](f func(T) bool) Chain[T] { return Chain[T]{Func[T](f)} }

// And combines with another filter via logical AND. The other filter is not
// evaluated when the receiver already evaluated to false.
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

// Or combines with another filter via logical OR. The other filter is not
// evaluated when the receiver already evaluated to true.
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

// XOr combines with another filter via logical XOR. Both sides are always
// evaluated; exclusive-or cannot short-circuit.
func (c Chain[T]) XOr(other Filter[T]) Chain[T] {
	return Chain[T]{NewXOr[T](c.Filter, other)}
}

// Not inverts the chain.
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
