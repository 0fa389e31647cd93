package event

// Buffer holds the collision events produced during one tick
// Filled by the collision system, drained exactly once by the resolver
// Not safe for concurrent use; the tick loop is the only writer and reader
type Buffer struct {
	items []CollisionEvent
}

// NewBuffer creates an empty buffer
func NewBuffer() *Buffer {
	return &Buffer{items: make([]CollisionEvent, 0, 16)}
}

// Push appends events in emission order
func (b *Buffer) Push(events ...CollisionEvent) {
	if b == nil {
		return
	}
	b.items = append(b.items, events...)
}

// Len returns the number of pending events
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.items)
}

// Drain returns all pending events in FIFO order and empties the buffer
// The returned slice is owned by the caller
func (b *Buffer) Drain() []CollisionEvent {
	if b == nil || len(b.items) == 0 {
		return nil
	}
	out := b.items
	b.items = make([]CollisionEvent, 0, cap(out))
	return out
}
