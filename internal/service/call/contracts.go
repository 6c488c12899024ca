//go:generate mockgen -source=contracts.go -destination=call_mocks_test.go -package=call

package call

import (
	"context"
	"time"

	"volunteer-dispatch/internal/domain"
)

type callStore interface {
	Create(ctx context.Context, c domain.Call) (int64, error)
	Get(ctx context.Context, id int64) (domain.Call, error)
	List(ctx context.Context, pred func(domain.Call) bool) ([]domain.Call, error)
	Update(ctx context.Context, c domain.Call) error
	Delete(ctx context.Context, id int64) error
}

type assignmentStore interface {
	List(ctx context.Context, pred func(domain.Assignment) bool) ([]domain.Assignment, error)
}

type volunteerStore interface {
	Get(ctx context.Context, id int64) (domain.Volunteer, error)
}

type geocoder interface {
	Resolve(ctx context.Context, address string) (float64, float64, error)
}

type clock interface {
	Now() time.Time
	RiskWindow() time.Duration
}

type locker interface {
	Admit(ctx context.Context) error
	Mutate(ctx context.Context) (unlock func(), err error)
	RLock() (unlock func())
}

type notifier interface {
	NotifyItemChanged(id int64)
	NotifyListChanged()
}

type validator interface {
	Struct(s any) error
}
