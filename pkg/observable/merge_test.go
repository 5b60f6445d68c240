package observable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge_FiresForEachSource(t *testing.T) {
	a := NewNotifier()
	b := NewNotifier()

	merged := Merge(a, b)

	calls := 0
	merged.AddListener(func() { calls++ })

	a.Notify()
	assert.Equal(t, 1, calls)

	b.Notify()
	assert.Equal(t, 2, calls)
}

func TestMerge_DoesNotCoalesce(t *testing.T) {
	a := NewNotifier()
	b := NewNotifier()

	merged := Merge(a, b)

	calls := 0
	merged.AddListener(func() { calls++ })

	a.Notify()
	a.Notify()
	b.Notify()

	assert.Equal(t, 3, calls)
}

func TestMerge_RegistersOneRelayPerSource(t *testing.T) {
	a := NewNotifier()
	b := NewNotifier()

	Merge(a, b)

	assert.Equal(t, 1, a.ListenerCount())
	assert.Equal(t, 1, b.ListenerCount())
}

func TestMerge_SkipsNilSources(t *testing.T) {
	a := NewNotifier()

	merged := Merge(a, nil)

	calls := 0
	merged.AddListener(func() { calls++ })
	a.Notify()

	assert.Equal(t, 1, calls)
}

func TestMerge_UnsubscribeStopsDelivery(t *testing.T) {
	a := NewNotifier()
	b := NewNotifier()

	merged := Merge(a, b)

	calls := 0
	unsub := merged.AddListener(func() { calls++ })

	a.Notify()
	unsub()
	b.Notify()

	assert.Equal(t, 1, calls)
}

func TestMerge_MoreThanTwoSources(t *testing.T) {
	sources := []*Notifier{NewNotifier(), NewNotifier(), NewNotifier()}

	merged := Merge(sources[0], sources[1], sources[2])

	calls := 0
	merged.AddListener(func() { calls++ })

	for _, s := range sources {
		s.Notify()
	}

	assert.Equal(t, 3, calls)
}
