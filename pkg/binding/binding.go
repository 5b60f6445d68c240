package binding

import "github.com/go-drift/reactive/pkg/observable"

// Combine returns a listenable that fires whenever a or b fires.
// Each source firing reaches the combined listenable's listeners as a
// separate notification.
func Combine(a, b observable.Listenable) observable.Listenable {
	return observable.Merge(a, b)
}

// Assign sets the observable's value, notifying its listeners, and
// returns the same observable so calls can chain.
func Assign[T any](o *observable.Observable[T], value T) *observable.Observable[T] {
	o.Set(value)
	return o
}

// Update replaces the observable's value with transform applied to the
// current value, notifying listeners, and returns the same observable.
// If transform panics, the panic propagates and the value is unchanged.
func Update[T any](o *observable.Observable[T], transform func(T) T) *observable.Observable[T] {
	o.Set(transform(o.Value()))
	return o
}

// Listen subscribes onChange to the observable and returns a cancel
// function that removes exactly this subscription. Cancelling twice is
// a no-op.
//
// onChange receives the observable's current value, re-read at
// notification time, so it always observes the latest value even when
// a listener registered earlier mutates the observable mid-pass.
func Listen[T any](o *observable.Observable[T], onChange func(T)) func() {
	return o.AddListener(func(T) {
		onChange(o.Value())
	})
}

// ListenNow invokes onChange synchronously with the current value, then
// subscribes it as Listen does.
func ListenNow[T any](o *observable.Observable[T], onChange func(T)) func() {
	onChange(o.Value())
	return Listen(o, onChange)
}

// Mirror propagates every change of source into target, one-way.
// The returned cancel function fully detaches the mirror: after
// cancelling, changes to source no longer reach target.
func Mirror[T any](target, source *observable.Observable[T]) func() {
	return Listen(source, func(value T) {
		target.Set(value)
	})
}

// MirrorNow assigns source's current value into target immediately,
// then mirrors as Mirror does.
func MirrorNow[T any](target, source *observable.Observable[T]) func() {
	return ListenNow(source, func(value T) {
		target.Set(value)
	})
}
