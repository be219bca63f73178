// Package filters builds boolean predicates from combinators instead of
// hand-written nested closures.
//
// The library is split into three packages: pkg/filter holds the pure
// Filter capability and its logical combinators, pkg/failable holds the
// variant whose evaluation may report an error, and pkg/seq applies built
// filters to standard iterators.
//
// A typical chain:
//
//	f := filter.FuncOf(func(a int) bool { return a > 5 }).
//		AndNot(filter.Func[int](func(a int) bool { return a < 20 })).
//		Or(filter.Func[int](func(a int) bool { return a == 10 }))
//
//	f.Evaluate(21) // true
//	f.Evaluate(10) // true
//	f.Evaluate(11) // false
package filters
