//go:generate mockgen -source=contracts.go -destination=admin_mocks_test.go -package=admin

package admin

import (
	"context"
	"time"

	"volunteer-dispatch/internal/domain"
	"volunteer-dispatch/internal/service/clock"
)

type locker interface {
	Mutate(ctx context.Context) (unlock func(), err error)
}

type authority interface {
	Now() time.Time
	RiskWindow() time.Duration
	AdvanceBy(ctx context.Context, u clock.Unit) (time.Time, error)
	SetRiskWindow(ctx context.Context, d time.Duration) error
	DefaultConfig(riskWindow time.Duration) domain.ClockConfig
	ResetLocked(ctx context.Context, cfg domain.ClockConfig) error
	Announce()
}

type simulator interface {
	Start(intervalMinutes int) error
	Stop()
	Running() bool
}

type volunteerStore interface {
	Create(ctx context.Context, v domain.Volunteer) (int64, error)
	DeleteAll(ctx context.Context) error
}

type callStore interface {
	Create(ctx context.Context, c domain.Call) (int64, error)
	DeleteAll(ctx context.Context) error
}

type assignmentStore interface {
	Create(ctx context.Context, a domain.Assignment) (int64, error)
	DeleteAll(ctx context.Context) error
}

type notifier interface {
	NotifyListChanged()
}

// addressBook receives the seed addresses so the static geocoder can
// resolve them.
type addressBook interface {
	Add(address string, lat, lon float64)
}
