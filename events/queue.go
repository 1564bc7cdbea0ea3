package events

import (
	"sync/atomic"
)

// QueueSize is the ring capacity. Must stay a power of two for the
// index mask.
const QueueSize = 256

const bufferMask = QueueSize - 1

// EventQueue is a lock-free MPSC ring buffer for game events.
//
// Thread-safety:
//   - Push: lock-free CAS, multiple producers OK
//   - Consume: single consumer (the scene loop)
//   - Published flags prevent reading partial writes
//
// In this program producers and consumer share the simulation
// goroutine; the bounded, allocation-free structure is what the loop
// wants from it. Overflow overwrites the oldest events.
type EventQueue struct {
	events    [QueueSize]GameEvent
	published [QueueSize]atomic.Bool // true = slot fully written
	head      atomic.Uint64          // read index
	tail      atomic.Uint64          // write index
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push adds an event using CAS with the published-flag pattern.
// Safe for concurrent producers, O(1) amortized.
func (eq *EventQueue) Push(event GameEvent) {
	for {
		currentTail := eq.tail.Load()
		nextTail := currentTail + 1

		if eq.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & bufferMask

			eq.events[idx] = event
			eq.published[idx].Store(true) // must follow the slot write

			// Advance head when overwriting unread events
			currentHead := eq.head.Load()
			if nextTail-currentHead > QueueSize {
				eq.head.CompareAndSwap(currentHead, nextTail-QueueSize)
			}
			return
		}
	}
}

// Consume returns all pending events in FIFO order and advances the
// read index. Single-consumer design; checks published flags so a
// half-written slot ends the batch early rather than surfacing garbage.
func (eq *EventQueue) Consume() []GameEvent {
	for {
		currentHead := eq.head.Load()
		currentTail := eq.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > QueueSize {
			maxAvailable = QueueSize
			currentHead = currentTail - QueueSize
		}

		result := make([]GameEvent, 0, maxAvailable)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & bufferMask

			if !eq.published[idx].Load() {
				break // writer incomplete
			}

			result = append(result, eq.events[idx])
			eq.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if eq.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}
