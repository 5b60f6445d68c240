// Package binding provides convenience operations layered on top of the
// observable primitives: value assignment and transformation shorthand,
// subscription with cleanup, listenable composition, and one-way
// mirroring between observables.
//
// Assign and Update return the observable they operated on, so calls
// chain:
//
//	count := observable.NewObservable(0)
//	binding.Update(binding.Assign(count, 10), func(v int) int { return v * 2 })
//	// count.Value() == 20
//
// Listen subscribes to an observable and returns a cancel function:
//
//	cancel := binding.Listen(count, func(v int) {
//	    fmt.Println("count is now", v)
//	})
//	defer cancel()
//
// Mirror keeps a target observable in sync with a source:
//
//	cancel := binding.Mirror(displayed, actual)
//
// All cancel functions are idempotent.
package binding
