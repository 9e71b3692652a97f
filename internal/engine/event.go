package engine

// EventWithArg is a multicast event carrying one value, such as a scene index.
// Listeners run in the order they were added, on the invoking goroutine.
type EventWithArg[T any] struct {
	listeners []func(T)
}

// AddListener registers fn. A nil fn is ignored.
func (e *EventWithArg[T]) AddListener(fn func(T)) {
	if fn != nil {
		e.listeners = append(e.listeners, fn)
	}
}

func (e *EventWithArg[T]) RemoveAllListeners() { e.listeners = nil }

func (e *EventWithArg[T]) ListenerCount() int { return len(e.listeners) }

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, fn := range e.listeners {
		fn(arg)
	}
}

// Event is an EventWithArg without a payload.
type Event struct {
	inner EventWithArg[struct{}]
}

func (e *Event) AddListener(fn func()) {
	if fn != nil {
		e.inner.AddListener(func(struct{}) { fn() })
	}
}

func (e *Event) RemoveAllListeners() { e.inner.RemoveAllListeners() }

func (e *Event) ListenerCount() int { return e.inner.ListenerCount() }

func (e *Event) Invoke() { e.inner.Invoke(struct{}{}) }
