package guard

import (
	"context"
	"sync"
	"sync/atomic"

	"volunteer-dispatch/internal/apperr"
)

type simulatorKey struct{}

// AsSimulator marks ctx as originating from the simulator loop.
// Mutations carrying such a context pass admission while the simulator runs.
func AsSimulator(ctx context.Context) context.Context {
	return context.WithValue(ctx, simulatorKey{}, true)
}

// IsSimulator reports whether ctx was marked by AsSimulator.
func IsSimulator(ctx context.Context) bool {
	v, _ := ctx.Value(simulatorKey{}).(bool)
	return v
}

// Guard serializes business-logic mutations and applies simulator admission control.
//
// Reads take the shared lock. Mutations take the exclusive lock and are rejected
// with apperr.ErrSimulatorRunning while the simulator owns the clock, unless the
// context belongs to the simulator. Internal work such as the expiry sweep uses
// Lock and skips admission.
type Guard struct {
	mu         sync.RWMutex
	simulating atomic.Bool
}

// New creates a Guard.
func New() *Guard { return &Guard{} }

// SetSimulating flips the simulator ownership flag.
func (g *Guard) SetSimulating(on bool) { g.simulating.Store(on) }

// Simulating reports whether the simulator currently owns the clock.
func (g *Guard) Simulating() bool { return g.simulating.Load() }

// Admit runs the admission check without taking the lock.
func (g *Guard) Admit(ctx context.Context) error {
	if g.simulating.Load() && !IsSimulator(ctx) {
		return apperr.ErrSimulatorRunning
	}
	return nil
}

// Mutate acquires the exclusive lock after admission. The check is repeated once
// the lock is held so a simulator started while waiting still wins.
func (g *Guard) Mutate(ctx context.Context) (unlock func(), err error) {
	if err := g.Admit(ctx); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.mu.Lock()
	if err := g.Admit(ctx); err != nil {
		g.mu.Unlock()
		return nil, err
	}
	return g.mu.Unlock, nil
}

// Lock acquires the exclusive lock without admission.
func (g *Guard) Lock() (unlock func()) {
	g.mu.Lock()
	return g.mu.Unlock
}

// RLock acquires the shared lock.
func (g *Guard) RLock() (unlock func()) {
	g.mu.RLock()
	return g.mu.RUnlock
}
