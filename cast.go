package anyhandle

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/wippyai/anyhandle/errors"
	"github.com/wippyai/anyhandle/shared"
	"github.com/wippyai/anyhandle/typeid"
)

// check decides whether h can be cast to want with the given mutability.
// Empty source wins over type, and type over mutability.
func check(h Handle, want reflect.Type, m typeid.Mutability) errors.Kind {
	switch {
	case h.Empty():
		return errors.KindEmptySource
	case h.Type() != want:
		return errors.KindBadSourceType
	case m.Bool() && !h.IsMutable():
		return errors.KindBadSourceMutability
	}
	return errors.KindUndefined
}

// Cast returns a new read-only reference to the value in h if h records T.
// The handle's mutability is not consulted, and Cast[typeid.Const[T]] is the
// same cast as Cast[T] viewed through the qualifier.
func Cast[T any](h Handle) CastResult[T] {
	if code := check(h, typeid.TypeOf[T](), typeid.NonMutable); code != errors.KindUndefined {
		return failure[shared.ConstPtr[T]](code)
	}
	p := downcast[T](h.ptr)
	return success(p.MoveConst())
}

// MutableCast returns a new reference to the value in h if h records T and is
// mutable.
func MutableCast[T any](h Handle) MutableCastResult[T] {
	if code := check(h, typeid.TypeOf[T](), typeid.Mutable); code != errors.KindUndefined {
		return failure[shared.Ptr[T]](code)
	}
	return success(downcast[T](h.ptr))
}

// downcast returns a *T aliasing the payload of a handle that passed check.
// The payload is a pointer to the recorded type; T differs from it only by
// Const qualifiers or, for erased payloads, is typeid.Void. Both share the
// payload's address, so the view is taken in place.
func downcast[T any](e shared.Erased) shared.Ptr[T] {
	if _, ok := e.Value().(*T); ok {
		return shared.Downcast[T](e)
	}
	view := e.Clone()
	defer view.Release()
	view.Retype(reflect.TypeFor[T]())
	return shared.Downcast[T](view)
}

// CastOrError is Cast reporting failure as an *errors.Error.
func CastOrError[T any](h Handle) (shared.ConstPtr[T], error) {
	r := Cast[T](h)
	if r.HasError() {
		return shared.ConstPtr[T]{}, badCast[T](h, errors.PhaseCast, typeid.NonMutable, r.Code())
	}
	return r.MoveValue(), nil
}

// MutableCastOrError is MutableCast reporting failure as an *errors.Error.
func MutableCastOrError[T any](h Handle) (shared.Ptr[T], error) {
	r := MutableCast[T](h)
	if r.HasError() {
		return shared.Ptr[T]{}, badCast[T](h, errors.PhaseMutableCast, typeid.Mutable, r.Code())
	}
	return r.MoveValue(), nil
}

// MustCast is Cast that panics with an *errors.Error on failure.
func MustCast[T any](h Handle) shared.ConstPtr[T] {
	p, err := CastOrError[T](h)
	if err != nil {
		panic(err)
	}
	return p
}

// MustMutableCast is MutableCast that panics with an *errors.Error on
// failure.
func MustMutableCast[T any](h Handle) shared.Ptr[T] {
	p, err := MutableCastOrError[T](h)
	if err != nil {
		panic(err)
	}
	return p
}

func badCast[T any](h Handle, phase errors.Phase, m typeid.Mutability, code errors.Kind) *errors.Error {
	err := errors.New(phase, code).
		Actual(h.Type(), h.IsMutable()).
		Expected(typeid.TypeOf[T](), m.Bool()).
		Build()

	Logger().Debug("any handle cast failed",
		zap.String("phase", string(phase)),
		zap.String("kind", string(code)),
		zap.Stringer("actual", err.Actual),
		zap.Stringer("expected", err.Expected))

	return err
}
