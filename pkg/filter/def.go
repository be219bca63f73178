package filter

// Def is a named filter built from a predicate plus a set of captured
// parameters, replacing the boilerplate of declaring a struct and its
// Evaluate method for every small parameterized filter. Use struct{} as P
// for filters that capture nothing.
type Def[P, T any] struct {
	// Params holds the values the predicate closes over.
	Params P

	pred func(P, T) bool
}

// Define builds a parameterized filter from captured values and a predicate.
func Define[P, T any](params P, pred func(P, T) bool) Def[P, T] {
	return Def[P, T]{Params: params, pred: pred}
}

// Evaluate implements Filter by applying the predicate to the captured
// parameters and the input value.
func (d Def[P, T]) Evaluate(v T) bool {
	return d.pred(d.Params, v)
}
