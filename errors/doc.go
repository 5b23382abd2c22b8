// Package errors provides the error types reported by handle casts.
//
// Casts fail for one of three reasons, checked in this order:
//
//	KindEmptySource          the handle records no type
//	KindBadSourceType        the handle records a different type
//	KindBadSourceMutability  a mutable cast of a handle that is not mutable
//
// The non-raising casts report the reason as a CastError code. The raising
// casts report an *Error carrying the actual and expected (type, mutability)
// pairs:
//
//	err := errors.New(errors.PhaseMutableCast, errors.KindBadSourceMutability).
//		Actual(reflect.TypeFor[Config](), false).
//		Expected(reflect.TypeFor[Config](), true).
//		Build()
//
// Both forms interoperate with the standard errors.Is:
//
//	errors.Is(err, errors.ErrBadSourceMutability) // true
package errors
