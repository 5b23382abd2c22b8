// Package table keeps handles under small integer keys.
//
// A Table owns a reference to every handle inserted into it and gives that
// reference up when the entry is removed, so values stay alive for as long as
// the table refers to them:
//
//	t := table.New()
//	defer t.Close()
//
//	key, err := t.Insert(anyhandle.New(conn, typeid.Mutable))
//	if err != nil {
//	    return err // table.ErrClosed
//	}
//
//	h, ok := t.Get(key) // h is a new reference
//	defer h.Reset()
//
//	t.Remove(key)
//
// # Typed Access
//
// Typed wraps a table and inserts and retrieves values of one type through
// the cast protocol, so lookups report the same error codes as a cast:
//
//	conns := table.NewTyped[Conn](t, typeid.Mutable)
//	key, _ := conns.Insert(shared.New(conn))
//	r := conns.GetMutable(key) // anyhandle.MutableCastResult[Conn]
//
// A key that is not in the table behaves as an empty handle.
//
// # Observers
//
// Register observers to track lifecycle events:
//
//	type auditLog struct{ log *zap.Logger }
//
//	func (a *auditLog) OnTableEvent(e table.Event) {
//	    a.log.Info("table event", zap.Stringer("type", e.Type), zap.Stringer("handle", e.Handle))
//	}
//
//	t.Subscribe(&auditLog{log: logger})
//
// Each event's Handle holds a reference until the observer returns.
//
// Key 0 is reserved and always invalid. Keys of removed entries are reused.
package table
