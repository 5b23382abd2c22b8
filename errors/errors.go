package errors

import (
	stderrors "errors"
	"reflect"
	"strings"

	"github.com/wippyai/anyhandle/typeid"
)

// Phase indicates which cast family reported the error
type Phase string

const (
	PhaseCast        Phase = "cast"         // non-mutable cast
	PhaseMutableCast Phase = "mutable_cast" // mutable cast
)

// Kind categorizes the error
type Kind string

const (
	KindUndefined           Kind = ""
	KindEmptySource         Kind = "empty_source"
	KindBadSourceType       Kind = "bad_source_type"
	KindBadSourceMutability Kind = "bad_source_mutability"
)

// Message returns the human-readable form of the kind.
func (k Kind) Message() string {
	switch k {
	case KindEmptySource:
		return "empty source"
	case KindBadSourceType:
		return "bad source type"
	case KindBadSourceMutability:
		return "bad source mutability"
	default:
		return "undefined"
	}
}

// CastError is the error value carried by a failed cast outcome.
type CastError struct {
	code Kind
}

// NewCastError returns a cast error with the given code.
func NewCastError(code Kind) CastError {
	return CastError{code: code}
}

var (
	ErrEmptySource         = NewCastError(KindEmptySource)
	ErrBadSourceType       = NewCastError(KindBadSourceType)
	ErrBadSourceMutability = NewCastError(KindBadSourceMutability)
)

// Code returns the failure reason.
func (e CastError) Code() Kind {
	return e.code
}

// Error implements the error interface
func (e CastError) Error() string {
	return "any handle cast: " + e.code.Message()
}

// Is reports whether target carries the same code
func (e CastError) Is(target error) bool {
	switch t := target.(type) {
	case CastError:
		return e.code == t.code
	case *CastError:
		return t != nil && e.code == t.code
	}
	return false
}

// CastInfo is a (type, mutability) pair.
type CastInfo struct {
	Type    reflect.Type
	Mutable bool
}

func (c CastInfo) String() string {
	return typeid.TypeName(c.Type) + "@" + typeid.FromBool(c.Mutable).String()
}

// Error is raised by the casts that do not return an outcome
type Error struct {
	Actual   CastInfo
	Expected CastInfo
	Phase    Phase
	Kind     Kind
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString("bad any handle cast : { actual={")
	b.WriteString(e.Actual.String())
	b.WriteString("}, expected={")
	b.WriteString(e.Expected.String())
	b.WriteString("} }")

	if e.Kind != KindUndefined {
		b.WriteString(": ")
		b.WriteString(e.Kind.Message())
	}

	return b.String()
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case *Error:
		return e.Phase == t.Phase && e.Kind == t.Kind
	case CastError:
		return e.Kind == t.code
	case *CastError:
		return t != nil && e.Kind == t.code
	}
	return false
}

// CastError returns the outcome code matching this error.
func (e *Error) CastError() CastError {
	return NewCastError(e.Kind)
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Actual sets what the handle held
func (b *Builder) Actual(t reflect.Type, mutable bool) *Builder {
	b.err.Actual = CastInfo{Type: t, Mutable: mutable}
	return b
}

// Expected sets what the caller requested
func (b *Builder) Expected(t reflect.Type, mutable bool) *Builder {
	b.err.Expected = CastInfo{Type: t, Mutable: mutable}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// IsEmptySource reports whether err is an empty source failure
func IsEmptySource(err error) bool {
	return stderrors.Is(err, ErrEmptySource)
}

// IsBadSourceType reports whether err is a type mismatch failure
func IsBadSourceType(err error) bool {
	return stderrors.Is(err, ErrBadSourceType)
}

// IsBadSourceMutability reports whether err is a mutability failure
func IsBadSourceMutability(err error) bool {
	return stderrors.Is(err, ErrBadSourceMutability)
}
