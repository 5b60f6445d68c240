package observable

import "sync"

// Listenable is a notification source with no carried value. Anything
// that can register a zero-argument listener and hand back an
// unsubscribe function satisfies it: Notifier, ControllerBase, merged
// listenables, and framework controllers.
type Listenable interface {
	// AddListener registers a callback that fires on every
	// notification. Returns an unsubscribe function; unsubscribing
	// twice is a no-op.
	AddListener(fn func()) func()
}

// Disposable is anything that releases its resources via Dispose.
type Disposable interface {
	Dispose()
}

// Notifier broadcasts value-less change notifications to listeners.
// The zero value is ready to use; NewNotifier exists for symmetry with
// the other constructors. Notifier is thread-safe.
type Notifier struct {
	mu             sync.RWMutex
	listeners      map[int]func()
	nextListenerID int
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// AddListener adds a callback that fires on every Notify.
// Returns an unsubscribe function.
func (n *Notifier) AddListener(fn func()) func() {
	if fn == nil {
		return func() {}
	}

	n.mu.Lock()
	if n.listeners == nil {
		n.listeners = make(map[int]func())
	}
	id := n.nextListenerID
	n.nextListenerID++
	n.listeners[id] = fn
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		delete(n.listeners, id)
		n.mu.Unlock()
	}
}

// Notify fires all registered listeners synchronously, in registration
// order, on the calling goroutine.
func (n *Notifier) Notify() {
	n.mu.RLock()
	listeners := snapshot(n.listeners)
	n.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}

// ListenerCount returns the number of registered listeners.
func (n *Notifier) ListenerCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.listeners)
}
