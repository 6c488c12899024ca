package notify

import (
	"sync"
	"sync/atomic"
	"time"
)

// Entities reported by a Feed.
const (
	EntityCall      = "call"
	EntityVolunteer = "volunteer"
	EntityClock     = "clock"
)

// Kinds of change reported by a Feed.
const (
	KindList   = "list"
	KindItem   = "item"
	KindClock  = "clock"
	KindConfig = "config"
)

// Change describes one observer notification.
type Change struct {
	Entity string
	ID     *int64
	Kind   string
	Clock  time.Time
}

// ClockSource is the observable part of the clock authority.
type ClockSource interface {
	Now() time.Time
	AddClockObserver(fn func()) Handle
	RemoveClockObserver(h Handle)
	AddConfigObserver(fn func()) Handle
	RemoveConfigObserver(h Handle)
}

// Feed turns registry and clock notifications into a stream of Change values
// for any number of subscribers. Slow subscribers lose changes instead of
// blocking the notifier.
type Feed struct {
	now func() time.Time

	mu     sync.Mutex
	subs   map[Handle]chan Change
	detach []func()
	closed bool

	dropped atomic.Uint64
}

// NewFeed creates a Feed stamping changes with now.
func NewFeed(now func() time.Time) *Feed {
	return &Feed{now: now, subs: make(map[Handle]chan Change)}
}

// Watch forwards list and item notifications of r as changes of entity.
func (f *Feed) Watch(entity string, r *Registry) {
	lh := r.AddListObserver(func() { f.publish(Change{Entity: entity, Kind: KindList}) })
	th := r.AddTap(func(id int64) { f.publish(Change{Entity: entity, ID: &id, Kind: KindItem}) })

	f.mu.Lock()
	defer f.mu.Unlock()
	f.detach = append(f.detach, func() {
		r.RemoveListObserver(lh)
		r.RemoveTap(th)
	})
}

// WatchClock forwards clock and configuration notifications.
func (f *Feed) WatchClock(c ClockSource) {
	ch := c.AddClockObserver(func() { f.publish(Change{Entity: EntityClock, Kind: KindClock}) })
	cfg := c.AddConfigObserver(func() { f.publish(Change{Entity: EntityClock, Kind: KindConfig}) })

	f.mu.Lock()
	defer f.mu.Unlock()
	f.detach = append(f.detach, func() {
		c.RemoveClockObserver(ch)
		c.RemoveConfigObserver(cfg)
	})
}

// Subscribe returns a channel receiving every change from now on and a
// function that ends the subscription.
func (f *Feed) Subscribe(buffer int) (<-chan Change, func()) {
	ch := make(chan Change, buffer)
	h := NewHandle()

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		close(ch)
		return ch, func() {}
	}
	f.subs[h] = ch
	return ch, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if c, ok := f.subs[h]; ok {
			delete(f.subs, h)
			close(c)
		}
	}
}

// Dropped returns how many deliveries were skipped because a subscriber was full.
func (f *Feed) Dropped() uint64 { return f.dropped.Load() }

// Close detaches from every source and closes subscriber channels.
func (f *Feed) Close() {
	f.mu.Lock()
	detach := f.detach
	f.detach = nil
	f.closed = true
	for h, ch := range f.subs {
		delete(f.subs, h)
		close(ch)
	}
	f.mu.Unlock()

	for _, fn := range detach {
		fn()
	}
}

func (f *Feed) publish(c Change) {
	c.Clock = f.now()

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.subs {
		select {
		case ch <- c:
		default:
			f.dropped.Add(1)
		}
	}
}
