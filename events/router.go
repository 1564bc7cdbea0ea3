package events

// Handler processes specific event types within a context T.
// Feedback consumers implement this to receive routed events.
type Handler[T any] interface {
	// HandleEvent processes a single event, synchronously during
	// the dispatch phase.
	HandleEvent(ctx T, event GameEvent)

	// EventTypes returns the event types this handler processes.
	// The router uses this for registration.
	EventTypes() []EventType
}

// Router dispatches queued events to registered handlers.
// Single-threaded dispatch; multiple handlers may register for the
// same type and are invoked in registration order.
type Router[T any] struct {
	handlers map[EventType][]Handler[T]
	queue    *EventQueue
}

// NewRouter creates a router attached to the given queue.
func NewRouter[T any](queue *EventQueue) *Router[T] {
	return &Router[T]{
		handlers: make(map[EventType][]Handler[T]),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types.
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events and routes them to handlers
// in FIFO order.
func (r *Router[T]) DispatchAll(ctx T) {
	for _, ev := range r.queue.Consume() {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ctx, ev)
		}
	}
}

// HasHandlers reports whether any handler is registered for t.
func (r *Router[T]) HasHandlers(t EventType) bool {
	return len(r.handlers[t]) > 0
}

// HandlerCount returns the number of handlers registered for t.
func (r *Router[T]) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
