// Package eventbus provides an in-process publish/subscribe point. Each
// subscription owns a bounded channel; Publish fans an event out to every
// subscription registered at that instant without blocking on slow readers.
//
// There is no persistence and no replay: a subscription only sees events
// published after it was registered.
package eventbus

import (
	"sync"
	"sync/atomic"
)

// DefaultBufferSize is the per-subscription channel capacity used when New is
// given a non-positive size.
const DefaultBufferSize = 64

// Option configures a Bus.
type Option[E any] func(*Bus[E])

// WithDropHandler registers a callback invoked (on the publisher's goroutine)
// whenever an event is dropped because a subscription's buffer is full.
func WithDropHandler[E any](fn func(subID uint64, event E)) Option[E] {
	return func(b *Bus[E]) {
		b.onDrop = fn
	}
}

// Bus is a single-writer, multi-reader fan-out point. The zero value is not
// usable; construct with New.
type Bus[E any] struct {
	mu      sync.RWMutex
	subs    map[uint64]*Subscription[E]
	nextID  atomic.Uint64
	bufSize int
	closed  bool
	onDrop  func(subID uint64, event E)
}

// New creates a Bus whose subscriptions buffer up to bufSize events.
func New[E any](bufSize int, opts ...Option[E]) *Bus[E] {
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}
	b := &Bus[E]{
		subs:    make(map[uint64]*Subscription[E]),
		bufSize: bufSize,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscription is one registered reader. Events accepted by its predicate
// arrive on C in publish order. C is closed when the subscription ends.
type Subscription[E any] struct {
	ID uint64
	C  <-chan E

	ch     chan E
	accept func(E) bool
	bus    *Bus[E]
	once   sync.Once
}

// Close unregisters the subscription. Safe to call any number of times and
// from any goroutine.
func (s *Subscription[E]) Close() {
	if s == nil {
		return
	}
	s.bus.Unsubscribe(s.ID)
}

// Subscribe registers a new subscription. A nil accept receives every event.
// Subscribing to a closed bus returns a subscription whose channel is already
// closed.
func (b *Bus[E]) Subscribe(accept func(E) bool) *Subscription[E] {
	ch := make(chan E, b.bufSize)
	sub := &Subscription[E]{
		ID:     b.nextID.Add(1),
		C:      ch,
		ch:     ch,
		accept: accept,
		bus:    b,
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		sub.once.Do(func() { close(ch) })
		return sub
	}
	b.subs[sub.ID] = sub
	return sub
}

// Unsubscribe removes the subscription with the given token and closes its
// channel. Unknown tokens are ignored.
func (b *Bus[E]) Unsubscribe(id uint64) {
	b.mu.Lock()
	sub, ok := b.subs[id]
	if ok {
		delete(b.subs, id)
	}
	b.mu.Unlock()

	if ok {
		sub.once.Do(func() { close(sub.ch) })
	}
}

// Publish delivers event to every matching subscription registered at the
// time of the call and returns the number of subscriptions that received it.
// Subscriptions whose buffer is full miss the event; the publisher never
// blocks and never observes a subscriber failure. Publishes are serialised so
// every subscriber sees events in the same relative order.
func (b *Bus[E]) Publish(event E) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return 0
	}

	delivered := 0
	for id, sub := range b.subs {
		if sub.accept != nil && !sub.accept(event) {
			continue
		}
		select {
		case sub.ch <- event:
			delivered++
		default:
			if b.onDrop != nil {
				b.onDrop(id, event)
			}
		}
	}
	return delivered
}

// Len returns the number of active subscriptions.
func (b *Bus[E]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Close ends every subscription and rejects further publishes. Intended for
// process shutdown.
func (b *Bus[E]) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	subs := b.subs
	b.subs = make(map[uint64]*Subscription[E])
	b.mu.Unlock()

	for _, sub := range subs {
		sub.once.Do(func() { close(sub.ch) })
	}
}
