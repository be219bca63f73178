// Package filter provides composable boolean predicates over arbitrary value
// types, so filtering logic can be assembled from small named pieces with
// logical operators instead of hand-written nested closures.
//
// The core abstraction is the Filter interface: anything that can evaluate a
// value to a boolean. Plain functions participate through the Func adapter,
// and the Chain wrapper adds fluent combinators (And, Or, XOr, Not and
// friends) on top of any Filter. Combinators own their children by value and
// are immutable after construction, so a built filter tree can be evaluated
// freely, including from the standard iterator helpers in pkg/seq.
//
// Filters that may fail during evaluation live in pkg/failable; a pure
// Filter joins such chains through the explicit failable.ToFailable adapter.
package filter
