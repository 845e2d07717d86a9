// Package watch provides a single slot, latest value wins broadcast
// channel. A publish overwrites the previous value and wakes every waiting
// subscriber; there is no history and no queueing, only the most recent
// value is ever observable.
package watch

import (
	"sync"
	"time"
)

// Value holds the latest published value of type T along with a version
// counter. It is safe for concurrent use by any number of publishers and
// subscribers.
type Value[T any] struct {
	mu      sync.Mutex
	val     T
	version uint64
	changed chan struct{}
}

// NewValue creates a watchable value holding initial
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{
		val:     initial,
		changed: make(chan struct{}),
	}
}

// Set publishes a new value, waking every subscriber currently waiting
func (v *Value[T]) Set(val T) {
	v.mu.Lock()
	v.val = val
	v.version++
	close(v.changed)
	v.changed = make(chan struct{})
	v.mu.Unlock()
}

// Get returns the latest value and its version
func (v *Value[T]) Get() (T, uint64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.val, v.version
}

// Subscribe creates a receiver pinned at the current version. A receiver
// is not safe for concurrent use; subscribe once per reader.
func (v *Value[T]) Subscribe() *Receiver[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return &Receiver[T]{value: v, seen: v.version}
}

// Receiver observes a Value. It remembers the last version it saw, so
// Await can tell a genuinely new publish from one it already returned.
type Receiver[T any] struct {
	value *Value[T]
	seen  uint64
}

// Latest returns the current value and marks it as seen
func (r *Receiver[T]) Latest() T {
	val, version := r.value.Get()
	r.seen = version
	return val
}

// Await blocks until a publish advances the version past what this
// receiver has seen, or until the timeout fires. Either way it returns the
// latest value; a timeout is not an error, the caller simply gets the
// current (possibly unchanged) value.
func (r *Receiver[T]) Await(timeout time.Duration) T {
	val, _ := r.AwaitChange(timeout)
	return val
}

// AwaitChange is Await that also reports whether the value actually
// changed before the timeout
func (r *Receiver[T]) AwaitChange(timeout time.Duration) (T, bool) {
	return r.AwaitChangeStop(nil, timeout)
}

// AwaitChangeStop is AwaitChange that additionally gives up as soon as
// stop closes, reporting the value unchanged. A nil stop never fires.
func (r *Receiver[T]) AwaitChangeStop(stop <-chan struct{}, timeout time.Duration) (T, bool) {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	for {
		r.value.mu.Lock()
		if r.value.version != r.seen {
			val := r.value.val
			r.seen = r.value.version
			r.value.mu.Unlock()
			return val, true
		}
		changed := r.value.changed
		r.value.mu.Unlock()

		select {
		case <-changed:
		case <-stop:
			return r.Latest(), false
		case <-deadline.C:
			// a publish may have beaten the timer; report it if so
			r.value.mu.Lock()
			val := r.value.val
			raced := r.value.version != r.seen
			r.seen = r.value.version
			r.value.mu.Unlock()
			return val, raced
		}
	}
}
