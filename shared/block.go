package shared

import "sync/atomic"

// Dropper is optionally implemented by values that need cleanup when the
// last owner releases them.
type Dropper interface {
	Drop()
}

type block struct {
	finalize func()
	refs     atomic.Int64
}

func newBlock(finalize func()) *block {
	b := &block{finalize: finalize}
	b.refs.Store(1)
	return b
}

func (b *block) retain() {
	b.refs.Add(1)
}

func (b *block) release() {
	n := b.refs.Add(-1)
	switch {
	case n == 0:
		if b.finalize != nil {
			b.finalize()
		}
	case n < 0:
		panic("shared: negative reference count")
	}
}

func (b *block) count() int64 {
	if b == nil {
		return 0
	}
	return b.refs.Load()
}

// dropValue is the default finalizer.
func dropValue[T any](p *T) {
	if p == nil {
		return
	}
	if d, ok := any(p).(Dropper); ok {
		d.Drop()
		return
	}
	if d, ok := any(*p).(Dropper); ok {
		d.Drop()
	}
}
