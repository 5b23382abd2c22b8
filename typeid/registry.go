package typeid

import (
	"reflect"
	"slices"
	"sync"

	"go.uber.org/zap"
)

type registryKey struct {
	native  reflect.Type
	mutable bool
}

var registry = struct {
	entries map[registryKey]*info
	mu      sync.RWMutex
}{
	entries: make(map[registryKey]*info),
}

// Lookup returns the interned identity for t. The record is created on first
// use; concurrent first uses observe the same record. A nil type yields the
// empty identity.
func Lookup(t reflect.Type, m Mutability) Identity {
	if t == nil {
		return Empty()
	}
	key := registryKey{native: t, mutable: m.Bool()}

	registry.mu.RLock()
	rec, ok := registry.entries[key]
	registry.mu.RUnlock()
	if ok {
		return Identity{info: rec}
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if rec, ok := registry.entries[key]; ok {
		return Identity{info: rec}
	}

	rec = &info{native: t, mutable: key.mutable, nonEmpty: true}
	registry.entries[key] = rec

	Logger().Debug("interned type identity",
		zap.String("type", TypeName(t)),
		zap.Bool("mutable", key.mutable),
		zap.Int("registered", len(registry.entries)))

	return Identity{info: rec}
}

// Len returns the number of interned identities, excluding the empty one.
func Len() int {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return len(registry.entries)
}

// Entries returns a snapshot of the interned identities ordered by type, then
// with non-mutable before mutable.
func Entries() []Identity {
	registry.mu.RLock()
	out := make([]Identity, 0, len(registry.entries))
	for _, rec := range registry.entries {
		out = append(out, Identity{info: rec})
	}
	registry.mu.RUnlock()

	slices.SortFunc(out, func(a, b Identity) int {
		if c := Compare(a, b); c != 0 {
			return c
		}
		switch {
		case a.IsMutable() == b.IsMutable():
			return 0
		case b.IsMutable():
			return -1
		default:
			return 1
		}
	})
	return out
}
