package meta

// Cursor is a snapshot of an EventBuffer's length, taken before a
// branch that might fail and restored via Truncate if it does. It
// carries no information beyond the length; callers never inspect it.
type Cursor int

// EventBuffer accumulates the flat MetaData event stream a parse
// produces. Rules append to it as they match and roll back to an
// earlier Cursor when a sub-parse fails, which is how backtracking
// works without ever unwinding via panic/recover: failed branches
// simply leave no trace in the buffer.
type EventBuffer struct {
	events []Event
}

// NewEventBuffer returns an empty buffer ready to record events.
func NewEventBuffer() *EventBuffer {
	return &EventBuffer{}
}

// Snapshot returns a Cursor marking the current end of the buffer.
func (b *EventBuffer) Snapshot() Cursor {
	return Cursor(len(b.events))
}

// Truncate discards every event appended since c was taken.
func (b *EventBuffer) Truncate(c Cursor) {
	b.events = b.events[:c]
}

// Push appends a single event.
func (b *EventBuffer) Push(rg Range, data MetaData) {
	b.events = append(b.events, Event{Range: rg, Data: data})
}

// Len returns the number of events currently recorded.
func (b *EventBuffer) Len() int {
	return len(b.events)
}

// Events returns the recorded events. The returned slice aliases the
// buffer's backing array and must not be mutated by the caller.
func (b *EventBuffer) Events() []Event {
	return b.events
}
