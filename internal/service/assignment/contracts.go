//go:generate mockgen -source=contracts.go -destination=assignment_mocks_test.go -package=assignment

package assignment

import (
	"context"
	"time"

	"volunteer-dispatch/internal/domain"
)

type volunteerStore interface {
	Get(ctx context.Context, id int64) (domain.Volunteer, error)
}

type callStore interface {
	Get(ctx context.Context, id int64) (domain.Call, error)
	List(ctx context.Context, pred func(domain.Call) bool) ([]domain.Call, error)
}

type assignmentStore interface {
	Create(ctx context.Context, a domain.Assignment) (int64, error)
	Get(ctx context.Context, id int64) (domain.Assignment, error)
	Find(ctx context.Context, pred func(domain.Assignment) bool) (*domain.Assignment, error)
	List(ctx context.Context, pred func(domain.Assignment) bool) ([]domain.Assignment, error)
	Update(ctx context.Context, a domain.Assignment) error
}

type clock interface {
	Now() time.Time
	RiskWindow() time.Duration
}

type locker interface {
	Mutate(ctx context.Context) (unlock func(), err error)
	Lock() (unlock func())
	RLock() (unlock func())
}

type notifier interface {
	NotifyItemChanged(id int64)
	NotifyListChanged()
}
