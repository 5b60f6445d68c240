// Package observable provides the reactive value primitives used by the
// Drift framework: value containers that notify listeners on change,
// value-less notification sources, and a fan-in combinator.
//
// # Core Types
//
// Observable is a thread-safe container for a value of type T. Setting
// the value notifies every registered listener with the new value:
//
//	counter := observable.NewObservable(0)
//	unsub := counter.AddListener(func(value int) {
//	    fmt.Println("changed to", value)
//	})
//	counter.Set(5) // fires the listener
//	unsub()
//
// Notifier is a Listenable that carries no value. It broadcasts a pure
// "something changed" signal:
//
//	refresh := observable.NewNotifier()
//	refresh.AddListener(func() { reload() })
//	refresh.Notify()
//
// Merge combines several Listenables into one that fires whenever any
// constituent fires.
//
// # Controllers
//
// ControllerBase is the embeddable listener-management base used by
// framework controllers. Embed it to get AddListener, NotifyListeners,
// and Dispose for free:
//
//	type ScrollController struct {
//	    observable.ControllerBase
//	    offset float64
//	}
//
//	func (c *ScrollController) SetOffset(offset float64) {
//	    c.offset = offset
//	    c.NotifyListeners()
//	}
//
// # Listener Semantics
//
// Every AddListener returns an unsubscribe function. Unsubscribe
// functions are idempotent: calling one after its listener is already
// removed is a no-op. Listeners fire in registration order, and the
// listener set may be mutated during a notification pass (a listener
// that removes itself is safe).
//
// Listeners run synchronously on the goroutine that triggered the
// notification, outside any internal lock. A listener that mutates the
// same source during its own notification produces a nested,
// synchronous notification pass.
package observable
