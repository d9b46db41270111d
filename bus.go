package secondbrain

// Listener is a zero-argument callback invoked after every completed store
// write. Consumers re-query derived state from inside the callback.
type Listener func()

// Bus is the process-wide change notification registry. Dispatch is
// synchronous and in subscription order, with no batching or deduplication.
// Dispatch iterates a snapshot of the listener list, so subscribing or
// unsubscribing from within a callback takes effect on the next
// notification; a mutation triggered from within a callback re-enters
// dispatch immediately.
type Bus struct {
	nextID    int
	listeners []busEntry
}

type busEntry struct {
	id int
	fn Listener
}

// Subscribe registers a listener and returns its unsubscribe function.
func (b *Bus) Subscribe(fn Listener) (unsubscribe func()) {
	b.nextID++
	id := b.nextID
	b.listeners = append(b.listeners, busEntry{id: id, fn: fn})
	return func() {
		for i, e := range b.listeners {
			if e.id == id {
				b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}

func (b *Bus) notify() {
	snapshot := make([]busEntry, len(b.listeners))
	copy(snapshot, b.listeners)
	for _, e := range snapshot {
		e.fn()
	}
}
