package observable

import (
	"slices"
	"sync"
)

// Observable holds a value of type T and notifies listeners whenever it
// changes. It is thread-safe and can be shared across goroutines; to
// drive UI updates from an Observable, subscribe on the UI thread.
type Observable[T any] struct {
	mu             sync.RWMutex
	value          T
	listeners      map[int]func(T)
	nextListenerID int
	equals         func(a, b T) bool
}

// NewObservable creates an observable with an initial value.
// Every Set notifies listeners, even when the new value equals the old
// one. Use NewObservableWithEquality to suppress redundant updates.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// NewObservableWithEquality creates an observable that skips
// notification when equals reports the new value equal to the current
// one.
func NewObservableWithEquality[T any](initial T, equals func(a, b T) bool) *Observable[T] {
	return &Observable[T]{value: initial, equals: equals}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value
}

// Set stores a new value and notifies all registered listeners with it.
// Listeners fire synchronously on the calling goroutine, in
// registration order, outside the internal lock.
func (o *Observable[T]) Set(value T) {
	o.mu.Lock()
	if o.equals != nil && o.equals(o.value, value) {
		o.mu.Unlock()
		return
	}
	o.value = value
	listeners := snapshot(o.listeners)
	o.mu.Unlock()

	for _, fn := range listeners {
		fn(value)
	}
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function. Unsubscribing twice is a no-op.
func (o *Observable[T]) AddListener(fn func(T)) func() {
	if fn == nil {
		return func() {}
	}

	o.mu.Lock()
	if o.listeners == nil {
		o.listeners = make(map[int]func(T))
	}
	id := o.nextListenerID
	o.nextListenerID++
	o.listeners[id] = fn
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		delete(o.listeners, id)
		o.mu.Unlock()
	}
}

// ListenerCount returns the number of registered listeners.
func (o *Observable[T]) ListenerCount() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.listeners)
}

// snapshot copies the listener map into a slice ordered by listener id,
// which is registration order. Notifying from the snapshot lets
// listeners unsubscribe themselves mid-pass without corrupting the map.
func snapshot[F any](listeners map[int]F) []F {
	if len(listeners) == 0 {
		return nil
	}
	ids := make([]int, 0, len(listeners))
	for id := range listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]F, len(ids))
	for i, id := range ids {
		out[i] = listeners[id]
	}
	return out
}
