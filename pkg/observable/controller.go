package observable

import "sync"

// ControllerBase provides listener management for controllers.
// Embed it in a controller struct to get AddListener, NotifyListeners,
// and Dispose without boilerplate. The zero value is ready to use.
//
// Example:
//
//	type CounterController struct {
//	    observable.ControllerBase
//	    count int
//	}
//
//	func (c *CounterController) Increment() {
//	    c.count++
//	    c.NotifyListeners()
//	}
type ControllerBase struct {
	mu             sync.Mutex
	listeners      map[int]func()
	nextListenerID int
	disposed       bool
}

// AddListener adds a callback that fires on every NotifyListeners.
// Returns an unsubscribe function. After Dispose, AddListener is a
// no-op and returns a no-op unsubscribe.
func (c *ControllerBase) AddListener(fn func()) func() {
	if fn == nil {
		return func() {}
	}

	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return func() {}
	}
	if c.listeners == nil {
		c.listeners = make(map[int]func())
	}
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// NotifyListeners fires all registered listeners synchronously, in
// registration order, on the calling goroutine.
func (c *ControllerBase) NotifyListeners() {
	c.mu.Lock()
	listeners := snapshot(c.listeners)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// ListenerCount returns the number of registered listeners.
func (c *ControllerBase) ListenerCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.listeners)
}

// Dispose drops all listeners. Further notifications are no-ops.
func (c *ControllerBase) Dispose() {
	c.mu.Lock()
	c.listeners = nil
	c.disposed = true
	c.mu.Unlock()
}

// IsDisposed reports whether Dispose has been called.
func (c *ControllerBase) IsDisposed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disposed
}
