package observable

// Merge returns a listenable that fires whenever any source fires.
// It registers one internal relay on each source at call time and
// carries no value of its own: each source firing is forwarded to the
// merged listenable's own listeners as an independent notification,
// never coalesced. Nil sources are skipped.
//
// The relays stay registered for the lifetime of the sources; discard
// the sources to release them.
func Merge(sources ...Listenable) Listenable {
	merged := NewNotifier()
	for _, source := range sources {
		if source == nil {
			continue
		}
		source.AddListener(merged.Notify)
	}
	return merged
}
