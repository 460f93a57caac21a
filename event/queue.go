package event

import (
	"sync"
)

// DefaultCapacity matches the queue size the game uses when none is configured.
const DefaultCapacity = 1024

// Queue is a bounded, mutex-guarded event queue. Producers push from the
// windowing thread; the simulation loop drains everything once per frame.
//
// Pushes beyond capacity are dropped silently: input events at human
// timescales never fill the queue unless the consumer has stalled.
type Queue struct {
	mu       sync.Mutex
	events   []Event
	capacity int
}

// NewQueue returns an empty queue holding at most capacity events.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Queue{
		events:   make([]Event, 0, capacity),
		capacity: capacity,
	}
}

// Push enqueues e. Current-state kinds (window moved, window resized)
// overwrite a pending event of the same kind instead of accumulating;
// discrete occurrences are always appended.
func (q *Queue) Push(e Event) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if coalesces(e.Kind()) {
		for i := range q.events {
			if q.events[i].Kind() == e.Kind() {
				q.events[i] = e
				return
			}
		}
	}

	if len(q.events) >= q.capacity {
		return
	}
	q.events = append(q.events, e)
}

// Drain returns all pending events in arrival order and clears the queue.
// It returns nil when the queue is empty.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
