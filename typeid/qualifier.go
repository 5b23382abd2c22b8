package typeid

import "reflect"

// Void is the recorded type of an empty identity and of payloads whose type
// was erased before they were recorded.
type Void struct{}

// Const is a read-only T. Make[Const[T]] records T and is never mutable.
//
// Const[T] has the memory layout of T, so a *T may be viewed as a *Const[T]
// and back without copying.
type Const[T any] struct {
	v T
}

// ConstOf wraps v as read-only.
func ConstOf[T any](v T) Const[T] {
	return Const[T]{v: v}
}

// Value returns a copy of the wrapped value.
func (c Const[T]) Value() T {
	return c.v
}

type qualified interface {
	unqualified() reflect.Type
}

func (Const[T]) unqualified() reflect.Type {
	return resolve[T]()
}

func (Const[T]) isConst() {}

// resolve strips Const qualifiers from T.
func resolve[T any]() reflect.Type {
	var zero T
	if q, ok := any(zero).(qualified); ok {
		return q.unqualified()
	}
	return reflect.TypeFor[T]()
}

// IsConst reports whether T is a Const qualifier.
func IsConst[T any]() bool {
	var zero T
	_, ok := any(zero).(interface{ isConst() })
	return ok
}

// TypeOf returns the type recorded for T, with Const qualifiers removed.
func TypeOf[T any]() reflect.Type {
	return resolve[T]()
}
