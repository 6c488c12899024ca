package simulator

import (
	"context"
	"time"

	"volunteer-dispatch/internal/domain"
	"volunteer-dispatch/internal/service/volunteer"
)

type clock interface {
	AdvanceMinutes(ctx context.Context, n int) (time.Time, error)
	Now() time.Time
}

type volunteerLister interface {
	List(ctx context.Context, f volunteer.ListFilter) ([]domain.VolunteerSummary, error)
}

type callFinder interface {
	OpenForVolunteer(ctx context.Context, volunteerID int64, callType *domain.CallType) ([]domain.OpenCall, error)
}

type coordinator interface {
	SelectCall(ctx context.Context, volunteerID, callID int64) (domain.Assignment, error)
	CompleteCall(ctx context.Context, volunteerID, assignmentID int64) (domain.Assignment, error)
	CancelCall(ctx context.Context, requesterID, assignmentID int64) (domain.Assignment, error)
	Active(ctx context.Context, volunteerID int64) (*domain.Assignment, error)
}

type ownership interface {
	SetSimulating(on bool)
}
