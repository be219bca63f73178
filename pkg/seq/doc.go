// Package seq connects filters to the standard iterator types, so a lazy
// sequence can be filtered by a built filter tree instead of an inline
// predicate closure.
package seq
