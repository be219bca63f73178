// Package failable mirrors pkg/filter for predicates whose evaluation can
// itself fail, for example because deciding the verdict requires fallible
// work on the caller's side.
//
// A failable Filter reports (bool, error); combinators propagate the first
// error observed in left-to-right, short-circuit-aware order and never
// aggregate failures. The library manufactures no errors of its own: every
// error a chain reports originates in a leaf filter, optionally translated
// through MapErr. Mixed chains of pure and failable filters are built by
// lifting the pure side with ToFailable, an explicit conversion that always
// succeeds.
package failable
