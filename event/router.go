package event

// Handler processes specific event types within a context T
// Systems implement this interface to receive routed events
type Handler[T any] interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase
	HandleEvent(ctx T, event GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// Router dispatches events to registered handlers
// Handlers for one type are invoked in registration order
type Router[T any] struct {
	handlers map[EventType][]Handler[T]
}

// NewRouter creates an empty router
func NewRouter[T any]() *Router[T] {
	return &Router[T]{
		handlers: make(map[EventType][]Handler[T]),
	}
}

// Register adds a handler for its declared event types
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// Dispatch routes one event to every handler registered for its type
func (r *Router[T]) Dispatch(ctx T, ev GameEvent) {
	for _, h := range r.handlers[ev.Type] {
		h.HandleEvent(ctx, ev)
	}
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router[T]) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
