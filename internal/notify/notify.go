package notify

import (
	"sync"

	"github.com/google/uuid"
)

// Handle identifies a registered observer.
type Handle = uuid.UUID

// NewHandle returns a fresh random handle.
func NewHandle() Handle { return uuid.New() }

// list keeps callbacks in registration order.
type list[F any] struct {
	mu  sync.Mutex
	fns map[Handle]F
	ord []Handle
}

func (l *list[F]) add(fn F) Handle {
	h := NewHandle()
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fns == nil {
		l.fns = make(map[Handle]F)
	}
	l.fns[h] = fn
	l.ord = append(l.ord, h)
	return h
}

func (l *list[F]) remove(h Handle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.fns[h]; !ok {
		return
	}
	delete(l.fns, h)
	for i, x := range l.ord {
		if x == h {
			l.ord = append(l.ord[:i], l.ord[i+1:]...)
			break
		}
	}
}

func (l *list[F]) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.ord)
}

// snapshot copies the callbacks so they can run without the lock and may
// add or remove observers.
func (l *list[F]) snapshot() []F {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]F, 0, len(l.ord))
	for _, h := range l.ord {
		out = append(out, l.fns[h])
	}
	return out
}

// Observers is a list of parameterless observers.
type Observers struct {
	l list[func()]
}

// Add registers fn and returns the handle used to remove it.
func (o *Observers) Add(fn func()) Handle { return o.l.add(fn) }

// Remove unregisters the observer. Unknown handles are ignored.
func (o *Observers) Remove(h Handle) { o.l.remove(h) }

// Len returns the number of registered observers.
func (o *Observers) Len() int { return o.l.len() }

// Notify invokes every observer in registration order.
func (o *Observers) Notify() {
	for _, fn := range o.l.snapshot() {
		fn()
	}
}

// Registry holds list observers and per-item observers of one entity kind.
type Registry struct {
	list Observers
	taps list[func(id int64)]

	mu    sync.Mutex
	items map[int64]*Observers
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[int64]*Observers)}
}

// AddListObserver registers fn to run whenever the collection changes.
func (r *Registry) AddListObserver(fn func()) Handle { return r.list.Add(fn) }

// RemoveListObserver unregisters a list observer.
func (r *Registry) RemoveListObserver(h Handle) { r.list.Remove(h) }

// AddItemObserver registers fn to run whenever the item with the given id changes.
func (r *Registry) AddItemObserver(id int64, fn func()) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	obs, ok := r.items[id]
	if !ok {
		obs = &Observers{}
		r.items[id] = obs
	}
	return obs.Add(fn)
}

// RemoveItemObserver unregisters an item observer.
func (r *Registry) RemoveItemObserver(id int64, h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	obs, ok := r.items[id]
	if !ok {
		return
	}
	obs.Remove(h)
	if obs.Len() == 0 {
		delete(r.items, id)
	}
}

// NotifyListChanged invokes every list observer.
func (r *Registry) NotifyListChanged() { r.list.Notify() }

// AddTap registers fn to run with the id of every item that changes.
func (r *Registry) AddTap(fn func(id int64)) Handle { return r.taps.add(fn) }

// RemoveTap unregisters a tap.
func (r *Registry) RemoveTap(h Handle) { r.taps.remove(h) }

// NotifyItemChanged invokes the observers of the item with the given id,
// then every tap.
func (r *Registry) NotifyItemChanged(id int64) {
	r.mu.Lock()
	obs, ok := r.items[id]
	r.mu.Unlock()
	if ok {
		obs.Notify()
	}
	for _, fn := range r.taps.snapshot() {
		fn(id)
	}
}
