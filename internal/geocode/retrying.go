package geocode

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"volunteer-dispatch/internal/logx"
)

type resolver interface {
	Resolve(ctx context.Context, address string) (float64, float64, error)
}

type counter interface {
	Inc()
}

// RetryConfig describes the retry behaviour of Retrying.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// ErrUnavailable is returned while the circuit breaker is open.
var ErrUnavailable = errors.New("geocoder unavailable")

// Retrying retries transient lookup failures with exponential backoff behind a
// circuit breaker. Only transient failures count against the breaker.
type Retrying struct {
	next    resolver
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
	cb      *gobreaker.CircuitBreaker
	sleep   func(context.Context, time.Duration) bool
}

// NewRetrying wraps next. It returns nil when next is nil.
func NewRetrying(next resolver, logger logx.Logger, retries counter, cfg RetryConfig) *Retrying {
	if next == nil {
		return nil
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	r := &Retrying{next: next, logger: logger, retries: retries, cfg: cfg, sleep: sleepWithContext}
	r.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "geocoder",
		MaxRequests: 1,
		Interval:    30 * time.Second,
		Timeout:     15 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !isRetryable(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				logx.String("name", name),
				logx.String("from", from.String()),
				logx.String("to", to.String()),
			)
		},
	})
	return r
}

type point struct{ lat, lon float64 }

// Resolve resolves address, retrying transient failures.
func (r *Retrying) Resolve(ctx context.Context, address string) (float64, float64, error) {
	var lastErr error
	for attempt := 1; attempt <= r.cfg.MaxAttempts; attempt++ {
		res, err := r.cb.Execute(func() (any, error) {
			lat, lon, err := r.next.Resolve(ctx, address)
			return point{lat, lon}, err
		})
		if err == nil {
			p := res.(point)
			return p.lat, p.lon, nil
		}
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return 0, 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		lastErr = err
		if ctx.Err() != nil || attempt == r.cfg.MaxAttempts || !isRetryable(err) {
			break
		}

		delay := backoff(r.cfg.BaseDelay, r.cfg.MaxDelay, attempt)
		if r.retries != nil {
			r.retries.Inc()
		}
		r.logger.Warn("geocoder retry",
			logx.String("address", address),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Err(err),
		)
		if !r.sleep(ctx, delay) {
			break
		}
	}
	return 0, 0, lastErr
}

// backoff computes the delay before the next attempt.
func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > max || d < 0 {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// Validate reports whether address resolves, retrying transient failures.
func (r *Retrying) Validate(ctx context.Context, address string) bool {
	return validate(ctx, r, address)
}
