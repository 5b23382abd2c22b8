package table

import (
	"github.com/wippyai/anyhandle"
	"github.com/wippyai/anyhandle/shared"
	"github.com/wippyai/anyhandle/typeid"
)

// Typed inserts and retrieves values of type T in a Table.
type Typed[T any] struct {
	table      *Table
	mutability typeid.Mutability
}

// NewTyped returns a typed view of t. Values are inserted with mutability m.
func NewTyped[T any](t *Table, m typeid.Mutability) *Typed[T] {
	return &Typed[T]{table: t, mutability: m}
}

// Insert records p and returns its key. The caller keeps its own reference.
func (v *Typed[T]) Insert(p shared.Ptr[T]) (Key, error) {
	h := anyhandle.Make(p, v.mutability)
	key, err := v.table.Insert(h)
	if err != nil {
		h.Reset()
		return 0, err
	}
	return key, nil
}

// Get casts the handle stored under key to a read-only T.
func (v *Typed[T]) Get(key Key) anyhandle.CastResult[T] {
	h, _ := v.table.Get(key)
	defer h.Reset()
	return anyhandle.Cast[T](h)
}

// GetMutable casts the handle stored under key to a mutable T.
func (v *Typed[T]) GetMutable(key Key) anyhandle.MutableCastResult[T] {
	h, _ := v.table.Get(key)
	defer h.Reset()
	return anyhandle.MutableCast[T](h)
}

// Remove drops the entry stored under key.
func (v *Typed[T]) Remove(key Key) bool {
	return v.table.Remove(key)
}

// Each iterates over entries whose recorded type is T.
func (v *Typed[T]) Each(fn func(Key, shared.ConstPtr[T]) bool) {
	v.table.Each(func(k Key, h anyhandle.Handle) bool {
		r := anyhandle.Cast[T](h)
		if r.HasError() {
			return true
		}
		p := r.Value()
		defer p.Release()
		return fn(k, p)
	})
}

// Table returns the underlying table.
func (v *Typed[T]) Table() *Table {
	return v.table
}
