package assignment

import (
	"context"
	"fmt"
	"sort"
	"time"

	"volunteer-dispatch/internal/apperr"
	"volunteer-dispatch/internal/domain"
	"volunteer-dispatch/internal/logx"
)

// Stores groups the record stores the coordinator works on.
type Stores struct {
	Volunteers  volunteerStore
	Calls       callStore
	Assignments assignmentStore
}

// Notifiers receive change notifications after successful mutations.
type Notifiers struct {
	Calls      notifier
	Volunteers notifier
}

// Service coordinates assignments between volunteers and calls.
// It guarantees at most one open assignment per volunteer and per call.
type Service struct {
	guard            locker
	stores           Stores
	clock            clock
	events           Notifiers
	logger           logx.Logger
	operationTimeout time.Duration
}

// NewService creates and configures an assignment Service.
func NewService(g locker, stores Stores, clk clock, events Notifiers, logger logx.Logger, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		guard:            g,
		stores:           stores,
		clock:            clk,
		events:           events,
		logger:           logger,
		operationTimeout: timeout,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// SelectCall opens an assignment of the call to the volunteer.
func (s *Service) SelectCall(ctx context.Context, volunteerID, callID int64) (domain.Assignment, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	unlock, err := s.guard.Mutate(ctx)
	if err != nil {
		return domain.Assignment{}, err
	}
	a, err := s.selectLocked(ctx, volunteerID, callID)
	unlock()
	if err != nil {
		return domain.Assignment{}, err
	}

	s.logger.Info("call selected",
		logx.Int64("assignment_id", a.ID),
		logx.Int64("call_id", callID),
		logx.Int64("volunteer_id", volunteerID),
	)
	s.announce([]int64{callID}, []int64{volunteerID})
	return a, nil
}

func (s *Service) selectLocked(ctx context.Context, volunteerID, callID int64) (domain.Assignment, error) {
	v, err := s.stores.Volunteers.Get(ctx, volunteerID)
	if err != nil {
		return domain.Assignment{}, err
	}
	if !v.Active {
		return domain.Assignment{}, fmt.Errorf("volunteer %d is inactive: %w", volunteerID, apperr.ErrInvalid)
	}
	c, err := s.stores.Calls.Get(ctx, callID)
	if err != nil {
		return domain.Assignment{}, err
	}

	now := s.clock.Now()
	if c.DeadlinePassed(now) {
		return domain.Assignment{}, fmt.Errorf("call %d deadline passed: %w", callID, apperr.ErrInvalid)
	}

	history, err := s.stores.Assignments.List(ctx, func(a domain.Assignment) bool { return a.CallID == callID })
	if err != nil {
		return domain.Assignment{}, err
	}
	for _, a := range history {
		if a.Open() {
			return domain.Assignment{}, fmt.Errorf("call %d already in treatment: %w", callID, apperr.ErrInvalid)
		}
	}
	if st := domain.DeriveStatus(c, history, now, s.clock.RiskWindow()); st.IsTerminal() {
		return domain.Assignment{}, fmt.Errorf("call %d is %s: %w", callID, st, apperr.ErrInvalid)
	}

	busy, err := s.stores.Assignments.Find(ctx, func(a domain.Assignment) bool {
		return a.VolunteerID == volunteerID && a.Open()
	})
	if err != nil {
		return domain.Assignment{}, err
	}
	if busy != nil {
		return domain.Assignment{}, fmt.Errorf("volunteer %d already handles call %d: %w",
			volunteerID, busy.CallID, apperr.ErrInvalid)
	}

	a := domain.Assignment{CallID: callID, VolunteerID: volunteerID, StartedAt: now}
	id, err := s.stores.Assignments.Create(ctx, a)
	if err != nil {
		return domain.Assignment{}, err
	}
	a.ID = id
	return a, nil
}

// CompleteCall closes the volunteer's assignment as completed.
func (s *Service) CompleteCall(ctx context.Context, volunteerID, assignmentID int64) (domain.Assignment, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	unlock, err := s.guard.Mutate(ctx)
	if err != nil {
		return domain.Assignment{}, err
	}
	a, err := s.completeLocked(ctx, volunteerID, assignmentID)
	unlock()
	if err != nil {
		return domain.Assignment{}, err
	}

	s.logger.Info("call completed", logx.Int64("assignment_id", a.ID), logx.Int64("call_id", a.CallID))
	s.announce([]int64{a.CallID}, []int64{a.VolunteerID})
	return a, nil
}

func (s *Service) completeLocked(ctx context.Context, volunteerID, assignmentID int64) (domain.Assignment, error) {
	a, err := s.stores.Assignments.Get(ctx, assignmentID)
	if err != nil {
		return domain.Assignment{}, err
	}
	if a.VolunteerID != volunteerID {
		return domain.Assignment{}, fmt.Errorf("assignment %d belongs to another volunteer: %w",
			assignmentID, apperr.ErrInvalidRole)
	}
	if !a.Open() {
		return domain.Assignment{}, fmt.Errorf("assignment %d already closed: %w", assignmentID, apperr.ErrInvalid)
	}
	a.Close(s.clock.Now(), domain.EndCompleted)
	if err := s.stores.Assignments.Update(ctx, a); err != nil {
		return domain.Assignment{}, err
	}
	return a, nil
}

// CancelCall closes an open assignment on behalf of its volunteer or an admin.
func (s *Service) CancelCall(ctx context.Context, requesterID, assignmentID int64) (domain.Assignment, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	unlock, err := s.guard.Mutate(ctx)
	if err != nil {
		return domain.Assignment{}, err
	}
	a, err := s.cancelLocked(ctx, requesterID, assignmentID)
	unlock()
	if err != nil {
		return domain.Assignment{}, err
	}

	s.logger.Info("call canceled",
		logx.Int64("assignment_id", a.ID),
		logx.Int64("requester_id", requesterID),
		logx.String("end_type", string(*a.EndType)),
	)
	s.announce([]int64{a.CallID}, []int64{a.VolunteerID})
	return a, nil
}

func (s *Service) cancelLocked(ctx context.Context, requesterID, assignmentID int64) (domain.Assignment, error) {
	a, err := s.stores.Assignments.Get(ctx, assignmentID)
	if err != nil {
		return domain.Assignment{}, err
	}
	requester, err := s.stores.Volunteers.Get(ctx, requesterID)
	if err != nil {
		return domain.Assignment{}, err
	}
	self := requester.ID == a.VolunteerID
	if !self && !requester.IsAdmin() {
		return domain.Assignment{}, fmt.Errorf("volunteer %d cannot cancel assignment %d: %w",
			requesterID, assignmentID, apperr.ErrInvalidRole)
	}
	if !a.Open() {
		return domain.Assignment{}, fmt.Errorf("assignment %d already closed: %w", assignmentID, apperr.ErrInvalid)
	}

	end := domain.EndAdminCanceled
	if self {
		end = domain.EndSelfCanceled
	}
	a.Close(s.clock.Now(), end)
	if err := s.stores.Assignments.Update(ctx, a); err != nil {
		return domain.Assignment{}, err
	}
	return a, nil
}

// ExpireOverdue retires every call whose deadline has passed and which was not
// completed or retired already. An open assignment is closed as expired; a call
// without one receives a closed expired marker with VolunteerID 0. It returns the
// number of calls retired. Admission control is skipped.
func (s *Service) ExpireOverdue(ctx context.Context) (int, error) {
	unlock := s.guard.Lock()
	calls, volunteers, err := s.expireLocked(ctx)
	unlock()
	if len(calls) > 0 {
		s.announce(calls, volunteers)
	}
	return len(calls), err
}

func (s *Service) expireLocked(ctx context.Context) (calls, volunteers []int64, err error) {
	now := s.clock.Now()
	overdue, err := s.stores.Calls.List(ctx, func(c domain.Call) bool { return c.DeadlinePassed(now) })
	if err != nil {
		return nil, nil, err
	}
	if len(overdue) == 0 {
		return nil, nil, nil
	}
	all, err := s.stores.Assignments.List(ctx, nil)
	if err != nil {
		return nil, nil, err
	}

	for _, c := range overdue {
		latest, ok := domain.LatestAssignment(c.ID, all)
		switch {
		case ok && latest.Open():
			latest.Close(now, domain.EndExpired)
			if err := s.stores.Assignments.Update(ctx, latest); err != nil {
				return calls, volunteers, fmt.Errorf("expire assignment %d: %w", latest.ID, err)
			}
			volunteers = append(volunteers, latest.VolunteerID)
		case !ok || latest.EndedAs(domain.EndSelfCanceled) || latest.EndedAs(domain.EndAdminCanceled):
			marker := domain.Assignment{CallID: c.ID, StartedAt: now}
			marker.Close(now, domain.EndExpired)
			if _, err := s.stores.Assignments.Create(ctx, marker); err != nil {
				return calls, volunteers, fmt.Errorf("expire call %d: %w", c.ID, err)
			}
		default:
			continue
		}
		calls = append(calls, c.ID)
	}
	return calls, volunteers, nil
}

// ListForVolunteer returns the volunteer's assignment history, most recent first.
func (s *Service) ListForVolunteer(ctx context.Context, volunteerID int64) ([]domain.Assignment, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	defer s.guard.RLock()()

	if _, err := s.stores.Volunteers.Get(ctx, volunteerID); err != nil {
		return nil, err
	}
	out, err := s.stores.Assignments.List(ctx, func(a domain.Assignment) bool { return a.VolunteerID == volunteerID })
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].StartedAt.After(out[j].StartedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// Active returns the volunteer's open assignment, or nil.
func (s *Service) Active(ctx context.Context, volunteerID int64) (*domain.Assignment, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	defer s.guard.RLock()()

	return s.stores.Assignments.Find(ctx, func(a domain.Assignment) bool {
		return a.VolunteerID == volunteerID && a.Open()
	})
}

func (s *Service) announce(calls, volunteers []int64) {
	for _, id := range calls {
		s.events.Calls.NotifyItemChanged(id)
	}
	s.events.Calls.NotifyListChanged()
	for _, id := range volunteers {
		s.events.Volunteers.NotifyItemChanged(id)
	}
	if len(volunteers) > 0 {
		s.events.Volunteers.NotifyListChanged()
	}
}
