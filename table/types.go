package table

import "github.com/wippyai/anyhandle"

// Key identifies an entry in a table.
// Key 0 is reserved and always invalid.
type Key uint32

// Event types for table lifecycle notifications.
type EventType uint8

const (
	EventInserted EventType = iota
	EventRemoved
)

func (t EventType) String() string {
	switch t {
	case EventInserted:
		return "inserted"
	case EventRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Event represents a table lifecycle event. Handle holds a reference for the
// duration of the notification; Clone it to keep the value longer.
type Event struct {
	Handle anyhandle.Handle
	Key    Key
	Type   EventType
}

// Observer receives notifications about table lifecycle events.
type Observer interface {
	OnTableEvent(Event)
}
