package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"volunteer-dispatch/internal/apperr"
)

// table is an id-keyed in-memory collection. Every value crossing its
// boundary goes through clone so callers never share state with the table.
type table[T any] struct {
	name   string
	id     func(T) int64
	setID  func(*T, int64)
	clone  func(T) T
	mu     sync.RWMutex
	rows   map[int64]T
	nextID int64
}

func newTable[T any](name string, id func(T) int64, setID func(*T, int64), clone func(T) T) *table[T] {
	return &table[T]{name: name, id: id, setID: setID, clone: clone, rows: make(map[int64]T)}
}

// Create stores a copy of v under a fresh id and returns the id.
func (t *table[T]) Create(ctx context.Context, v T) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nextID++
	c := t.clone(v)
	t.setID(&c, t.nextID)
	t.rows[t.nextID] = c
	return t.nextID, nil
}

// Get returns a copy of the row with the given id.
func (t *table[T]) Get(ctx context.Context, id int64) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[id]
	if !ok {
		return zero, fmt.Errorf("%s %d: %w", t.name, id, apperr.ErrNotFound)
	}
	return t.clone(v), nil
}

// Find returns a copy of the lowest-id row matching pred, or nil.
func (t *table[T]) Find(ctx context.Context, pred func(T) bool) (*T, error) {
	rows, err := t.List(ctx, pred)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

// List returns copies of the rows matching pred ordered by id. A nil pred matches everything.
func (t *table[T]) List(ctx context.Context, pred func(T) bool) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.rows))
	for _, v := range t.rows {
		if pred == nil || pred(v) {
			out = append(out, t.clone(v))
		}
	}
	sort.Slice(out, func(i, j int) bool { return t.id(out[i]) < t.id(out[j]) })
	return out, nil
}

// Update replaces the stored row with a copy of v.
func (t *table[T]) Update(ctx context.Context, v T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.id(v)
	if _, ok := t.rows[id]; !ok {
		return fmt.Errorf("%s %d: %w", t.name, id, apperr.ErrNotFound)
	}
	t.rows[id] = t.clone(v)
	return nil
}

// Delete removes the row with the given id.
func (t *table[T]) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return fmt.Errorf("%s %d: %w", t.name, id, apperr.ErrNotFound)
	}
	delete(t.rows, id)
	return nil
}

// DeleteAll removes every row and restarts the id sequence.
func (t *table[T]) DeleteAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = make(map[int64]T)
	t.nextID = 0
	return nil
}
