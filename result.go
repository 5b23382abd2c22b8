package anyhandle

import (
	"github.com/wippyai/anyhandle/errors"
	"github.com/wippyai/anyhandle/shared"
)

// Result is the outcome of a cast: either a pointer or an error code, never
// both. Results are only built by the casts; the zero Result reports an
// undefined error.
type Result[P any] struct {
	value P
	err   errors.CastError
	ok    bool
}

// CastResult is the outcome of Cast.
type CastResult[T any] = Result[shared.ConstPtr[T]]

// MutableCastResult is the outcome of MutableCast.
type MutableCastResult[T any] = Result[shared.Ptr[T]]

func success[P any](v P) Result[P] {
	return Result[P]{value: v, ok: true}
}

func failure[P any](code errors.Kind) Result[P] {
	return Result[P]{err: errors.NewCastError(code)}
}

// HasValue reports whether the cast succeeded.
func (r Result[P]) HasValue() bool {
	return r.ok
}

// HasError reports whether the cast failed.
func (r Result[P]) HasError() bool {
	return !r.ok
}

// Value returns the pointer. It is the zero pointer if the cast failed.
func (r Result[P]) Value() P {
	return r.value
}

// MoveValue transfers the pointer out of r, leaving r's value zero.
func (r *Result[P]) MoveValue() P {
	v := r.value
	var zero P
	r.value = zero
	return v
}

// CastError returns the error value. Its code is KindUndefined on success.
func (r Result[P]) CastError() errors.CastError {
	return r.err
}

// Code returns the failure reason, or KindUndefined on success.
func (r Result[P]) Code() errors.Kind {
	return r.err.Code()
}

// Err returns the failure as an error, or nil on success.
func (r Result[P]) Err() error {
	if r.ok {
		return nil
	}
	return r.err
}

// Get returns the pointer and the failure as an error.
func (r Result[P]) Get() (P, error) {
	return r.value, r.Err()
}
