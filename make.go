package anyhandle

import (
	"github.com/wippyai/anyhandle/shared"
	"github.com/wippyai/anyhandle/typeid"
)

// Make records p under the identity of T. The caller keeps its own reference
// to p. A mutable pointer may be recorded as NonMutable, in which case
// MutablePointer and mutable casts are refused. A Const[X] pointer is
// recorded as a non-mutable X.
func Make[T any](p shared.Ptr[T], m typeid.Mutability) Handle {
	e := erase(p)
	defer e.Release()
	return newHandle(typeid.Make[T](m), e)
}

// MakeConst records a read-only pointer under the identity of T. The handle
// is never mutable.
func MakeConst[T any](p shared.ConstPtr[T]) Handle {
	e := p.Erase()
	unqualify[T](&e)
	defer e.Release()
	return newHandle(typeid.Make[typeid.Const[T]](typeid.Mutable), e)
}

// MakeErased records an already erased pointer. The recorded type is
// typeid.Void since the payload type is unknown here.
func MakeErased(p shared.Erased, m typeid.Mutability) Handle {
	return newHandle(typeid.Make[typeid.Void](m), p)
}

// MakeErasedMove is MakeErased that takes over the caller's reference. p is
// left nil.
func MakeErasedMove(p *shared.Erased, m typeid.Mutability) Handle {
	return newHandleMove(typeid.Make[typeid.Void](m), p)
}

// MakeWithFinalizer takes ownership of p; finalize runs with p when the last
// reference is released.
func MakeWithFinalizer[T any](p *T, finalize func(*T), m typeid.Mutability) Handle {
	sp := shared.Adopt(p, finalize)
	return handleFromOwned(typeid.Make[T](m), &sp)
}

// MakeObserver records a pointer whose lifetime is managed elsewhere.
// Releasing the handle never affects the pointee.
func MakeObserver[T any](p *T, m typeid.Mutability) Handle {
	sp := shared.Observe(p)
	return handleFromOwned(typeid.Make[T](m), &sp)
}

// Emplace records a freshly built value under the identity of T. ctor may
// build any concrete value assignable to T, so an implementation can be stored
// under the identity of the interface it satisfies:
//
//	h := anyhandle.Emplace(typeid.Mutable, func() Shape { return &Circle{R: 2} })
func Emplace[T any](m typeid.Mutability, ctor func() T) Handle {
	sp := shared.New(ctor())
	return handleFromOwned(typeid.Make[T](m), &sp)
}

// New records a freshly allocated copy of v under the identity of T.
func New[T any](v T, m typeid.Mutability) Handle {
	sp := shared.New(v)
	return handleFromOwned(typeid.Make[T](m), &sp)
}

// handleFromOwned moves a pointer the caller created for the handle alone.
func handleFromOwned[T any](id typeid.Identity, sp *shared.Ptr[T]) Handle {
	e := erase(*sp)
	sp.Release()
	h := newHandleMove(id, &e)
	e.Release()
	return h
}

// erase returns a new erased owner of p whose payload is a pointer to the
// type recorded for T, so a Const[X] value is stored as the X it wraps.
func erase[T any](p shared.Ptr[T]) shared.Erased {
	e := p.Erase()
	unqualify[T](&e)
	return e
}

func unqualify[T any](e *shared.Erased) {
	if typeid.IsConst[T]() {
		e.Retype(typeid.TypeOf[T]())
	}
}
