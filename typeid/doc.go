// Package typeid provides interned runtime type identities tagged with a
// mutability capability.
//
// An Identity is a single pointer to a process-wide record describing a Go
// type, whether values recorded under it may be mutated, and whether any type
// was recorded at all. Records are created lazily, exactly once per
// (type, mutability) pair, and live for the life of the process:
//
//	a := typeid.Make[Config](typeid.Mutable)
//	b := typeid.Make[Config](typeid.Mutable)
//	a.Equals(b) // true, and both point at the same record
//
// Go has no const qualifier, so Const[T] stands in for "const T". It resolves
// to the identity of T and forces the mutability to NonMutable:
//
//	typeid.Make[typeid.Const[Config]](typeid.Mutable).IsMutable() // false
//
// Equals is exact. The package-level Equal and Compare only look at the
// recorded type, the same way two type tokens would compare.
package typeid
