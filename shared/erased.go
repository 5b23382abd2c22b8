package shared

import (
	"reflect"
	"unsafe"
)

// Erased is a reference-counted pointer whose static type has been removed.
// The payload is always a *T for the T it was erased from, or nil.
type Erased struct {
	v  any
	cb *block
}

// Value returns the stored *T as an interface value.
func (e Erased) Value() any {
	return e.v
}

// IsNil reports whether the stored pointer is nil.
func (e Erased) IsNil() bool {
	return e.Addr() == 0
}

// Addr returns the stored address for identity comparisons.
func (e Erased) Addr() uintptr {
	if e.v == nil {
		return 0
	}
	return reflect.ValueOf(e.v).Pointer()
}

// Key identifies the owned value for equality and ordering. It is the stored
// address, except for zero-size payloads: Go may place every zero-size value
// at the same address, so those are keyed by their control block. A nil
// pointer has key 0.
func (e Erased) Key() uintptr {
	addr := e.Addr()
	if addr == 0 || e.cb == nil {
		return addr
	}
	if reflect.TypeOf(e.v).Elem().Size() == 0 {
		return uintptr(unsafe.Pointer(e.cb))
	}
	return addr
}

// Retype reinterprets the payload in place as a *t at the same address,
// keeping ownership. t must share the layout of the payload's element type
// or be zero-size. A nil payload becomes a nil *t.
func (e *Erased) Retype(t reflect.Type) {
	var at unsafe.Pointer
	if e.v != nil {
		v := reflect.ValueOf(e.v)
		if t.Size() > v.Type().Elem().Size() {
			panic("shared: retype to a larger type")
		}
		at = v.UnsafePointer()
	}
	e.v = reflect.NewAt(t, at).Interface()
}

// UseCount returns the number of owners sharing the control block.
func (e Erased) UseCount() int64 {
	return e.cb.count()
}

// Clone returns a new owner of the same value.
func (e Erased) Clone() Erased {
	if e.cb != nil {
		e.cb.retain()
	}
	return e
}

// Move transfers ownership to the returned pointer and leaves e nil.
func (e *Erased) Move() Erased {
	out := *e
	*e = Erased{}
	return out
}

// Release gives up this owner's reference and leaves e nil.
func (e *Erased) Release() {
	if e.cb != nil {
		e.cb.release()
	}
	*e = Erased{}
}

// Const returns a new read-only owner of the same value.
func (e Erased) Const() ConstErased {
	return ConstErased{e: e.Clone()}
}

// Downcast returns a typed owner of the erased value. A payload that is not
// a *T yields a nil pointer that still shares ownership.
func Downcast[T any](e Erased) Ptr[T] {
	p, _ := e.v.(*T)
	if e.cb != nil {
		e.cb.retain()
	}
	return Ptr[T]{p: p, cb: e.cb}
}

// ConstErased is a read-only, type-erased owner. It exposes identity and
// ownership but never the pointee.
type ConstErased struct {
	e Erased
}

func (c ConstErased) IsNil() bool     { return c.e.IsNil() }
func (c ConstErased) Addr() uintptr   { return c.e.Addr() }
func (c ConstErased) UseCount() int64 { return c.e.UseCount() }
func (c ConstErased) Key() uintptr    { return c.e.Key() }

// Clone returns a new owner of the same value.
func (c ConstErased) Clone() ConstErased {
	return ConstErased{e: c.e.Clone()}
}

// Release gives up this owner's reference and leaves c nil.
func (c *ConstErased) Release() {
	c.e.Release()
}

// DowncastConst returns a typed read-only owner of the erased value.
func DowncastConst[T any](c ConstErased) ConstPtr[T] {
	return ConstPtr[T]{ptr: Downcast[T](c.e)}
}
