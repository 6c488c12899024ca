package handlers

import (
	"context"
	"time"

	"volunteer-dispatch/internal/domain"
	"volunteer-dispatch/internal/notify"
	"volunteer-dispatch/internal/service/call"
	"volunteer-dispatch/internal/service/clock"
	"volunteer-dispatch/internal/service/volunteer"
)

type volunteerUsecase interface {
	Add(ctx context.Context, requesterID int64, v domain.Volunteer) (domain.Volunteer, error)
	Update(ctx context.Context, requesterID int64, u domain.PartialVolunteerUpdate) (domain.Volunteer, error)
	Delete(ctx context.Context, requesterID, id int64) error
	Get(ctx context.Context, id int64) (domain.Volunteer, error)
	List(ctx context.Context, f volunteer.ListFilter) ([]domain.VolunteerSummary, error)
	Login(ctx context.Context, id int64, password string) (domain.Role, error)
}

type callUsecase interface {
	Add(ctx context.Context, c domain.Call) (domain.Call, error)
	Update(ctx context.Context, c domain.Call) (domain.Call, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (domain.CallView, error)
	List(ctx context.Context, f call.ListFilter) ([]domain.CallView, error)
	OpenForVolunteer(ctx context.Context, volunteerID int64, callType *domain.CallType) ([]domain.OpenCall, error)
	Counts(ctx context.Context) (map[domain.Status]int, error)
}

type assignmentUsecase interface {
	SelectCall(ctx context.Context, volunteerID, callID int64) (domain.Assignment, error)
	CompleteCall(ctx context.Context, volunteerID, assignmentID int64) (domain.Assignment, error)
	CancelCall(ctx context.Context, requesterID, assignmentID int64) (domain.Assignment, error)
	ListForVolunteer(ctx context.Context, volunteerID int64) ([]domain.Assignment, error)
}

type adminUsecase interface {
	Clock() time.Time
	AdvanceClock(ctx context.Context, u clock.Unit) (time.Time, error)
	RiskWindow() time.Duration
	SetRiskWindow(ctx context.Context, d time.Duration) error
	StartSimulator(intervalMinutes int) error
	StopSimulator()
	SimulatorRunning() bool
	Reset(ctx context.Context) error
	Initialize(ctx context.Context) error
}

type changeFeed interface {
	Subscribe(buffer int) (<-chan notify.Change, func())
}
