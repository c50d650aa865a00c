package engine

// EventWithArg is a multi-cast event carrying one argument.
// Listeners run synchronously, in subscription order, on the goroutine that invokes it.
type EventWithArg[T any] struct {
	listeners []func(T)
}

// AddListener adds a callback to be invoked when the event fires. Nil callbacks are ignored.
func (e *EventWithArg[T]) AddListener(callback func(T)) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

// Invoke calls all registered listeners
func (e *EventWithArg[T]) Invoke(arg T) {
	for _, listener := range e.listeners {
		listener(arg)
	}
}
