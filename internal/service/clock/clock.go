package clock

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"volunteer-dispatch/internal/apperr"
	"volunteer-dispatch/internal/domain"
	"volunteer-dispatch/internal/logx"
	"volunteer-dispatch/internal/metrics"
	"volunteer-dispatch/internal/notify"
)

// Unit is a calendar step the clock can be advanced by.
type Unit string

// Supported advance units.
const (
	Minute Unit = "minute"
	Hour   Unit = "hour"
	Day    Unit = "day"
	Month  Unit = "month"
	Year   Unit = "year"
)

// ParseUnit validates a unit name.
func ParseUnit(s string) (Unit, error) {
	switch u := Unit(s); u {
	case Minute, Hour, Day, Month, Year:
		return u, nil
	}
	return "", fmt.Errorf("unit %q: %w", s, apperr.ErrInvalid)
}

// Step returns t advanced by one unit.
func (u Unit) Step(t time.Time) time.Time {
	switch u {
	case Minute:
		return t.Add(time.Minute)
	case Hour:
		return t.Add(time.Hour)
	case Day:
		return t.AddDate(0, 0, 1)
	case Month:
		return t.AddDate(0, 1, 0)
	case Year:
		return t.AddDate(1, 0, 0)
	}
	return t
}

// Authority owns the virtual clock and the risk window.
//
// The configuration is guarded by its own leaf lock so readers holding the
// global business lock can still call Now and RiskWindow.
type Authority struct {
	guard   mutator
	store   configStore
	logger  logx.Logger
	metrics *metrics.Engine
	wall    func() time.Time

	mu  sync.RWMutex
	cfg domain.ClockConfig

	clockObs  notify.Observers
	configObs notify.Observers

	sweeper  Sweeper
	sweeping atomic.Bool
	dirty    atomic.Bool
	lifeMu   sync.Mutex
	closed   bool
	wg       sync.WaitGroup
	bg       context.Context
	cancel   context.CancelFunc
	timeout  time.Duration
}

// NewAuthority creates an Authority starting at the current wall-clock minute
// with the given risk window. Call Load to restore a persisted configuration.
func NewAuthority(g mutator, store configStore, logger logx.Logger, m *metrics.Engine, riskWindow, timeout time.Duration) *Authority {
	if m == nil {
		m = metrics.NewEngine()
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	bg, cancel := context.WithCancel(context.Background())
	a := &Authority{
		guard:   g,
		store:   store,
		logger:  logger,
		metrics: m,
		wall:    time.Now,
		bg:      bg,
		cancel:  cancel,
		timeout: timeout,
	}
	a.cfg = a.defaults(riskWindow)
	return a
}

func (a *Authority) defaults(riskWindow time.Duration) domain.ClockConfig {
	return domain.ClockConfig{Clock: a.wall().UTC().Truncate(time.Minute), RiskWindow: riskWindow}
}

// SetSweeper installs the background sweep run after every clock or risk window change.
func (a *Authority) SetSweeper(s Sweeper) { a.sweeper = s }

// Load restores the persisted configuration, saving the current one when the
// store is empty.
func (a *Authority) Load(ctx context.Context) error {
	cfg, ok, err := a.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load clock: %w", err)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if !ok {
		return a.store.Save(ctx, a.cfg)
	}
	a.cfg = cfg
	return nil
}

// Now returns the current virtual time.
func (a *Authority) Now() time.Time {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cfg.Clock
}

// RiskWindow returns the current risk window.
func (a *Authority) RiskWindow() time.Duration {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cfg.RiskWindow
}

// Config returns a snapshot of clock and risk window.
func (a *Authority) Config() domain.ClockConfig {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cfg
}

// AdvanceTo moves the clock to t. Moving backwards is rejected.
func (a *Authority) AdvanceTo(ctx context.Context, t time.Time) (time.Time, error) {
	return a.advance(ctx, func(cur time.Time) (time.Time, error) {
		if t.Before(cur) {
			return cur, fmt.Errorf("clock cannot move back from %s to %s: %w",
				cur.Format(time.RFC3339), t.Format(time.RFC3339), apperr.ErrInvalid)
		}
		return t, nil
	})
}

// AdvanceBy moves the clock forward by one unit.
func (a *Authority) AdvanceBy(ctx context.Context, u Unit) (time.Time, error) {
	if _, err := ParseUnit(string(u)); err != nil {
		return time.Time{}, err
	}
	return a.advance(ctx, func(cur time.Time) (time.Time, error) { return u.Step(cur), nil })
}

// AdvanceMinutes moves the clock forward by n minutes.
func (a *Authority) AdvanceMinutes(ctx context.Context, n int) (time.Time, error) {
	if n <= 0 {
		return time.Time{}, fmt.Errorf("advance by %d minutes: %w", n, apperr.ErrInvalid)
	}
	return a.advance(ctx, func(cur time.Time) (time.Time, error) {
		return cur.Add(time.Duration(n) * time.Minute), nil
	})
}

func (a *Authority) advance(ctx context.Context, next func(time.Time) (time.Time, error)) (time.Time, error) {
	unlock, err := a.guard.Mutate(ctx)
	if err != nil {
		return time.Time{}, err
	}

	a.mu.Lock()
	cfg := a.cfg
	t, err := next(cfg.Clock)
	if err == nil {
		cfg.Clock = t
		err = a.store.Save(ctx, cfg)
	}
	if err == nil {
		a.cfg = cfg
	}
	a.mu.Unlock()
	unlock()

	if err != nil {
		return time.Time{}, err
	}

	a.logger.Debug("clock advanced", logx.Time("clock", t))
	a.triggerSweep()
	a.clockObs.Notify()
	return t, nil
}

// SetRiskWindow replaces the risk window. d must be positive.
func (a *Authority) SetRiskWindow(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("risk window %s: %w", d, apperr.ErrInvalid)
	}
	unlock, err := a.guard.Mutate(ctx)
	if err != nil {
		return err
	}

	a.mu.Lock()
	cfg := a.cfg
	cfg.RiskWindow = d
	err = a.store.Save(ctx, cfg)
	if err == nil {
		a.cfg = cfg
	}
	a.mu.Unlock()
	unlock()

	if err != nil {
		return err
	}

	a.logger.Info("risk window changed", logx.Duration("risk_window", d))
	a.triggerSweep()
	a.configObs.Notify()
	return nil
}

// ResetLocked replaces the configuration. The caller must hold the global
// business lock and call Announce after releasing it.
func (a *Authority) ResetLocked(ctx context.Context, cfg domain.ClockConfig) error {
	if cfg.RiskWindow <= 0 {
		return fmt.Errorf("risk window %s: %w", cfg.RiskWindow, apperr.ErrInvalid)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.store.Save(ctx, cfg); err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// DefaultConfig returns the wall-clock configuration used on reset.
func (a *Authority) DefaultConfig(riskWindow time.Duration) domain.ClockConfig {
	return a.defaults(riskWindow)
}

// Announce notifies clock and config observers and schedules a sweep.
func (a *Authority) Announce() {
	a.triggerSweep()
	a.clockObs.Notify()
	a.configObs.Notify()
}

// AddClockObserver registers fn to run after every clock change.
func (a *Authority) AddClockObserver(fn func()) notify.Handle { return a.clockObs.Add(fn) }

// RemoveClockObserver unregisters a clock observer.
func (a *Authority) RemoveClockObserver(h notify.Handle) { a.clockObs.Remove(h) }

// AddConfigObserver registers fn to run after every risk window change.
func (a *Authority) AddConfigObserver(fn func()) notify.Handle { return a.configObs.Add(fn) }

// RemoveConfigObserver unregisters a config observer.
func (a *Authority) RemoveConfigObserver(h notify.Handle) { a.configObs.Remove(h) }

// triggerSweep starts a background sweep unless one is in flight. A trigger
// arriving during a sweep is coalesced into one more pass after it.
func (a *Authority) triggerSweep() {
	a.lifeMu.Lock()
	defer a.lifeMu.Unlock()
	if a.sweeper == nil || a.closed {
		return
	}
	if !a.sweeping.CompareAndSwap(false, true) {
		a.dirty.Store(true)
		a.metrics.SweepsCoalesced.Inc()
		return
	}
	a.wg.Add(1)
	go a.runSweeps()
}

func (a *Authority) runSweeps() {
	defer a.wg.Done()
	for {
		a.dirty.Store(false)
		a.sweepOnce()
		a.sweeping.Store(false)
		if !a.dirty.Load() || !a.sweeping.CompareAndSwap(false, true) {
			return
		}
	}
}

func (a *Authority) sweepOnce() {
	ctx, cancel := context.WithTimeout(a.bg, a.timeout)
	defer cancel()

	a.metrics.Sweeps.Inc()
	n, err := a.sweeper.ExpireOverdue(ctx)
	if err != nil {
		a.metrics.SweepErrors.Inc()
		a.logger.Error("expiry sweep failed", logx.Err(err))
		return
	}
	if n > 0 {
		a.metrics.AssignmentsExpired.Add(float64(n))
		a.logger.Info("expired overdue calls", logx.Int("count", n))
	}
}

// Close stops scheduling sweeps and waits for the one in flight.
func (a *Authority) Close() {
	a.lifeMu.Lock()
	a.closed = true
	a.lifeMu.Unlock()
	a.wg.Wait()
	a.cancel()
}
