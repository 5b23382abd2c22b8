package shared

import "unsafe"

// Ptr is a reference-counted pointer to a T.
// The zero value is a nil pointer with no owner.
type Ptr[T any] struct {
	p  *T
	cb *block
}

// New allocates a T holding v and returns the only owner of it.
// The default finalizer calls Drop if *T or T implements Dropper.
func New[T any](v T) Ptr[T] {
	p := new(T)
	*p = v
	return Adopt(p, nil)
}

// Adopt takes shared ownership of p. The finalizer receives p when the last
// owner releases it; a nil finalizer selects the default one.
func Adopt[T any](p *T, finalize func(*T)) Ptr[T] {
	if finalize == nil {
		finalize = dropValue[T]
	}
	return Ptr[T]{
		p:  p,
		cb: newBlock(func() { finalize(p) }),
	}
}

// Observe wraps a pointer whose lifetime is managed elsewhere.
// Releasing the last owner does nothing to the pointee.
func Observe[T any](p *T) Ptr[T] {
	return Adopt(p, func(*T) {})
}

// Alias returns a pointer to p that shares ownership with owner.
func Alias[U, T any](owner Ptr[T], p *U) Ptr[U] {
	if owner.cb != nil {
		owner.cb.retain()
	}
	return Ptr[U]{p: p, cb: owner.cb}
}

// Get returns the raw pointer.
func (p Ptr[T]) Get() *T {
	return p.p
}

// IsNil reports whether the stored pointer is nil.
func (p Ptr[T]) IsNil() bool {
	return p.p == nil
}

// UseCount returns the number of owners sharing the control block.
func (p Ptr[T]) UseCount() int64 {
	return p.cb.count()
}

// Addr returns the stored address for identity comparisons.
func (p Ptr[T]) Addr() uintptr {
	return uintptr(unsafe.Pointer(p.p))
}

// Clone returns a new owner of the same value.
func (p Ptr[T]) Clone() Ptr[T] {
	if p.cb != nil {
		p.cb.retain()
	}
	return p
}

// Move transfers ownership to the returned pointer and leaves p nil.
func (p *Ptr[T]) Move() Ptr[T] {
	out := *p
	*p = Ptr[T]{}
	return out
}

// Release gives up this owner's reference and leaves p nil.
func (p *Ptr[T]) Release() {
	if p.cb != nil {
		p.cb.release()
	}
	*p = Ptr[T]{}
}

// Swap exchanges the contents of p and o.
func (p *Ptr[T]) Swap(o *Ptr[T]) {
	*p, *o = *o, *p
}

// Erase returns a new owner with the static type removed.
func (p Ptr[T]) Erase() Erased {
	c := p.Clone()
	return Erased{v: c.p, cb: c.cb}
}

// Const returns a new read-only owner of the same value.
func (p Ptr[T]) Const() ConstPtr[T] {
	return ConstPtr[T]{ptr: p.Clone()}
}

// MoveConst transfers ownership to a read-only pointer and leaves p nil.
func (p *Ptr[T]) MoveConst() ConstPtr[T] {
	return ConstPtr[T]{ptr: p.Move()}
}

// ConstPtr is a reference-counted pointer that only exposes reads.
type ConstPtr[T any] struct {
	ptr Ptr[T]
}

// NewConst allocates a T holding v behind a read-only pointer.
func NewConst[T any](v T) ConstPtr[T] {
	return ConstPtr[T]{ptr: New(v)}
}

// Load returns a copy of the pointee. It panics if the pointer is nil.
func (c ConstPtr[T]) Load() T {
	return *c.ptr.p
}

func (c ConstPtr[T]) IsNil() bool     { return c.ptr.IsNil() }
func (c ConstPtr[T]) UseCount() int64 { return c.ptr.UseCount() }
func (c ConstPtr[T]) Addr() uintptr   { return c.ptr.Addr() }

// Clone returns a new read-only owner of the same value.
func (c ConstPtr[T]) Clone() ConstPtr[T] {
	return ConstPtr[T]{ptr: c.ptr.Clone()}
}

// Move transfers ownership to the returned pointer and leaves c nil.
func (c *ConstPtr[T]) Move() ConstPtr[T] {
	return ConstPtr[T]{ptr: c.ptr.Move()}
}

// Release gives up this owner's reference and leaves c nil.
func (c *ConstPtr[T]) Release() {
	c.ptr.Release()
}

// Erase returns a new owner with the static type removed. The erased form
// does not remember that the value was read-only; callers that need it record
// it separately.
func (c ConstPtr[T]) Erase() Erased {
	return c.ptr.Erase()
}
