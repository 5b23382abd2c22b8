package typeid

import (
	"cmp"
	"reflect"
	"strings"
)

type info struct {
	native   reflect.Type
	mutable  bool
	nonEmpty bool
}

var (
	voidType  = reflect.TypeFor[Void]()
	emptyInfo = &info{native: voidType}
)

// Identity is an interned (type, mutability) record. It is one pointer wide
// and cheap to copy. The zero value is the empty identity.
type Identity struct {
	info *info
}

// Empty returns the identity that records no type.
func Empty() Identity {
	return Identity{info: emptyInfo}
}

// Make returns the identity for T. Const-qualified types are never mutable.
func Make[T any](m Mutability) Identity {
	if IsConst[T]() {
		m = NonMutable
	}
	return Lookup(resolve[T](), m)
}

func (id Identity) get() *info {
	if id.info == nil {
		return emptyInfo
	}
	return id.info
}

// Type returns the recorded type. The empty identity records Void.
func (id Identity) Type() reflect.Type {
	return id.get().native
}

// IsMutable reports whether values recorded under id may be mutated.
func (id Identity) IsMutable() bool {
	return id.get().mutable
}

// IsEmpty reports whether no type was recorded.
func (id Identity) IsEmpty() bool {
	return !id.get().nonEmpty
}

// Mutability returns the mutability flag.
func (id Identity) Mutability() Mutability {
	return FromBool(id.IsMutable())
}

// Equals compares type, emptiness and mutability.
func (id Identity) Equals(other Identity) bool {
	a, b := id.get(), other.get()
	return a.native == b.native && a.nonEmpty == b.nonEmpty && a.mutable == b.mutable
}

// String renders the identity as type@mutability@emptiness.
func (id Identity) String() string {
	var b strings.Builder
	b.WriteString(TypeName(id.Type()))
	b.WriteByte('@')
	b.WriteString(id.Mutability().String())
	b.WriteByte('@')
	if id.IsEmpty() {
		b.WriteString("empty")
	} else {
		b.WriteString("non-empty")
	}
	return b.String()
}

// Equal compares the recorded types only.
func Equal(a, b Identity) bool {
	return a.Type() == b.Type()
}

// Compare orders identities by recorded type only.
func Compare(a, b Identity) int {
	return CompareTypes(a.Type(), b.Type())
}

// CompareTypes orders types by name, then package path. Distinct types with
// the same name and path, such as two local types, compare equal.
func CompareTypes(a, b reflect.Type) int {
	if a == b {
		return 0
	}
	if c := cmp.Compare(a.String(), b.String()); c != 0 {
		return c
	}
	return cmp.Compare(a.PkgPath(), b.PkgPath())
}

// TypeName returns a readable name for t.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if t == voidType {
		return "void"
	}
	return t.String()
}
