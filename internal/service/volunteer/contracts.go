//go:generate mockgen -source=contracts.go -destination=volunteer_mocks_test.go -package=volunteer

package volunteer

import (
	"context"

	"volunteer-dispatch/internal/domain"
)

type volunteerStore interface {
	Create(ctx context.Context, v domain.Volunteer) (int64, error)
	Get(ctx context.Context, id int64) (domain.Volunteer, error)
	Find(ctx context.Context, pred func(domain.Volunteer) bool) (*domain.Volunteer, error)
	List(ctx context.Context, pred func(domain.Volunteer) bool) ([]domain.Volunteer, error)
	Update(ctx context.Context, v domain.Volunteer) error
	Delete(ctx context.Context, id int64) error
}

type assignmentStore interface {
	List(ctx context.Context, pred func(domain.Assignment) bool) ([]domain.Assignment, error)
}

type callStore interface {
	Get(ctx context.Context, id int64) (domain.Call, error)
}

type geocoder interface {
	Resolve(ctx context.Context, address string) (float64, float64, error)
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
