package clock

import (
	"context"

	"volunteer-dispatch/internal/domain"
)

// configStore persists the clock singleton.
type configStore interface {
	Load(ctx context.Context) (domain.ClockConfig, bool, error)
	Save(ctx context.Context, cfg domain.ClockConfig) error
}

// mutator grants exclusive access to business state after admission control.
type mutator interface {
	Mutate(ctx context.Context) (unlock func(), err error)
}

// Sweeper retires overdue calls. It is invoked in the background after the
// clock or the risk window changes.
type Sweeper interface {
	ExpireOverdue(ctx context.Context) (int, error)
}
