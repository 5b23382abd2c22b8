package anyhandle

import (
	"fmt"
	"reflect"

	"github.com/wippyai/anyhandle/shared"
	"github.com/wippyai/anyhandle/typeid"
)

// Handle owns a type-erased value together with the identity it was recorded
// under. The zero value is an empty handle.
type Handle struct {
	id  typeid.Identity
	ptr shared.Erased
}

// newHandle takes a new reference to p unless id is empty.
func newHandle(id typeid.Identity, p shared.Erased) Handle {
	if id.IsEmpty() {
		return Handle{id: id}
	}
	return Handle{id: id, ptr: p.Clone()}
}

// newHandleMove takes over p unless id is empty, in which case p is left
// untouched.
func newHandleMove(id typeid.Identity, p *shared.Erased) Handle {
	if id.IsEmpty() {
		return Handle{id: id}
	}
	return Handle{id: id, ptr: p.Move()}
}

// Swap exchanges the contents of h and other.
func (h *Handle) Swap(other *Handle) {
	*h, *other = *other, *h
}

// Clone returns a handle sharing ownership with h.
func (h Handle) Clone() Handle {
	return Handle{id: h.id, ptr: h.ptr.Clone()}
}

// Move transfers ownership to the returned handle. h keeps its identity but
// no longer holds a pointer.
func (h *Handle) Move() Handle {
	return Handle{id: h.id, ptr: h.ptr.Move()}
}

// Reset releases the value and leaves h empty.
func (h *Handle) Reset() {
	h.ptr.Release()
	h.id = typeid.Identity{}
}

// Empty reports whether no type is recorded.
func (h Handle) Empty() bool {
	return h.id.IsEmpty()
}

// HasValue reports whether a type is recorded and the pointer is not nil.
func (h Handle) HasValue() bool {
	return !h.Empty() && !h.ptr.IsNil()
}

// IsMutable reports whether mutable casts are permitted.
func (h Handle) IsMutable() bool {
	return h.id.IsMutable()
}

// Type returns the recorded type.
func (h Handle) Type() reflect.Type {
	return h.id.Type()
}

// Identity returns the recorded identity.
func (h Handle) Identity() typeid.Identity {
	return h.id
}

// UseCount returns the number of owners of the value, or 0 if the pointer is
// nil.
func (h Handle) UseCount() int64 {
	if h.ptr.IsNil() {
		return 0
	}
	return h.ptr.UseCount()
}

// Addr returns the stored address.
func (h Handle) Addr() uintptr {
	return h.ptr.Addr()
}

// Pointer returns a new read-only reference to the value, which may be nil.
func (h Handle) Pointer() shared.ConstErased {
	return h.ptr.Const()
}

// MutablePointer returns a new reference to the value if the handle is
// mutable, and a nil pointer otherwise.
func (h Handle) MutablePointer() shared.Erased {
	if !h.id.IsMutable() {
		return shared.Erased{}
	}
	return h.ptr.Clone()
}

// Equals compares identities exactly and the owned values. Values are told
// apart by address, and zero-size values by their owner.
func (h Handle) Equals(other Handle) bool {
	return h.id.Equals(other.id) && h.key() == other.key()
}

func (h Handle) key() uintptr {
	return h.ptr.Key()
}

// String renders the handle as address(type@mutability@emptiness).
func (h Handle) String() string {
	return fmt.Sprintf("%#x(%s)", h.Addr(), h.id)
}
