// Package shared provides reference-counted shared ownership of Go values.
//
// Go values are garbage collected, but some values own resources that must be
// released deterministically when the last owner lets go. A Ptr carries a
// pointer together with a control block holding an atomic reference count and
// a finalizer. The finalizer runs exactly once, when the count drops to zero.
//
//	p := shared.New(conn)    // count 1
//	q := p.Clone()           // count 2
//	q.Release()              // count 1
//	p.Release()              // count 0, conn.Drop() is called
//
// Copying a Ptr by assignment does not take a reference. Use Clone to share
// ownership and Move to transfer it.
//
// # Type Erasure
//
// Erased holds the same ownership with the static type removed:
//
//	e := p.Erase()                 // count+1, type erased
//	back := shared.Downcast[Conn](e) // count+1, typed again
//
// Downcast never panics. If the payload is not a *T the returned Ptr is nil
// but still shares ownership of the block, mirroring an aliasing pointer.
package shared
