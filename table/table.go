package table

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/anyhandle"
)

var ErrClosed = errors.New("handle table closed")

type entry struct {
	handle anyhandle.Handle
	valid  bool
}

// Table stores handles under integer keys.
type Table struct {
	entries   []entry
	freeList  []Key
	observers []Observer
	mu        sync.RWMutex
	obsMu     sync.RWMutex
	closed    bool
}

// New creates an empty table.
func New() *Table {
	return &Table{
		entries:  make([]entry, 0, 64),
		freeList: make([]Key, 0, 16),
	}
}

// Insert takes over h and returns its key. Once the table is closed it
// returns ErrClosed and leaves h untouched.
func (t *Table) Insert(h anyhandle.Handle) (Key, error) {
	// Observers get their own reference; a concurrent Remove may release the
	// table's before they run.
	seen := h.Clone()
	defer seen.Reset()

	key, err := t.insert(h)
	if err != nil {
		return 0, err
	}

	t.notify(Event{Type: EventInserted, Key: key, Handle: seen})
	return key, nil
}

func (t *Table) insert(h anyhandle.Handle) (Key, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return 0, ErrClosed
	}

	e := entry{handle: h, valid: true}

	if len(t.freeList) > 0 {
		key := t.freeList[len(t.freeList)-1]
		t.freeList = t.freeList[:len(t.freeList)-1]
		t.entries[key-1] = e
		return key, nil
	}

	t.entries = append(t.entries, e)
	return Key(len(t.entries)), nil
}

// Get returns a new reference to the handle stored under key.
func (t *Table) Get(key Key) (anyhandle.Handle, bool) {
	if key == 0 {
		return anyhandle.Handle{}, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	idx := key - 1
	if int(idx) >= len(t.entries) {
		return anyhandle.Handle{}, false
	}

	e := t.entries[idx]
	if !e.valid {
		return anyhandle.Handle{}, false
	}
	return e.handle.Clone(), true
}

// Remove drops the entry and releases the table's reference.
func (t *Table) Remove(key Key) bool {
	h, ok := t.take(key)
	if !ok {
		return false
	}

	t.notify(Event{Type: EventRemoved, Key: key, Handle: h})

	Logger().Debug("handle removed",
		zap.Uint32("key", uint32(key)),
		zap.Stringer("handle", h),
		zap.Int64("use_count", h.UseCount()))

	h.Reset()
	return true
}

func (t *Table) take(key Key) (anyhandle.Handle, bool) {
	if key == 0 {
		return anyhandle.Handle{}, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	idx := key - 1
	if int(idx) >= len(t.entries) {
		return anyhandle.Handle{}, false
	}

	e := &t.entries[idx]
	if !e.valid {
		return anyhandle.Handle{}, false
	}

	h := e.handle.Move()
	e.handle = anyhandle.Handle{}
	e.valid = false
	t.freeList = append(t.freeList, key)
	return h, true
}

// Len returns the number of stored handles.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	for _, e := range t.entries {
		if e.valid {
			count++
		}
	}
	return count
}

// Each iterates over all stored handles. The handles passed to fn are only
// valid during the call; Clone them to keep them.
func (t *Table) Each(fn func(Key, anyhandle.Handle) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for i, e := range t.entries {
		if e.valid {
			if !fn(Key(i+1), e.handle) {
				break
			}
		}
	}
}

// Clear removes all entries.
func (t *Table) Clear() {
	// Collect keys first to avoid holding the lock during Remove
	var keys []Key
	t.Each(func(k Key, _ anyhandle.Handle) bool {
		keys = append(keys, k)
		return true
	})
	for _, k := range keys {
		t.Remove(k)
	}
}

// Close removes all entries and stops accepting new ones.
func (t *Table) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	t.mu.Unlock()

	t.Clear()

	t.mu.Lock()
	t.entries = nil
	t.freeList = nil
	t.mu.Unlock()
	return nil
}

// Subscribe adds an observer for lifecycle events.
func (t *Table) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Table) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

func (t *Table) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnTableEvent(e)
	}
}
