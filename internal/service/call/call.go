package call

import (
	"context"
	"fmt"
	"strings"
	"time"

	"volunteer-dispatch/internal/apperr"
	"volunteer-dispatch/internal/domain"
	"volunteer-dispatch/internal/logx"
)

// Service manages calls and derives their status on read.
type Service struct {
	guard            locker
	calls            callStore
	assignments      assignmentStore
	volunteers       volunteerStore
	geo              geocoder
	clock            clock
	events           notifier
	validate         validator
	logger           logx.Logger
	operationTimeout time.Duration

	// gate serializes add/update sequences across the geocoding round trip.
	gate chan struct{}
}

// Deps groups the collaborators of Service.
type Deps struct {
	Guard       locker
	Calls       callStore
	Assignments assignmentStore
	Volunteers  volunteerStore
	Geocoder    geocoder
	Clock       clock
	Events      notifier
	Validator   validator
	Logger      logx.Logger
}

// NewService creates and configures a call Service.
func NewService(d Deps, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		guard:            d.Guard,
		calls:            d.Calls,
		assignments:      d.Assignments,
		volunteers:       d.Volunteers,
		geo:              d.Geocoder,
		clock:            d.Clock,
		events:           d.Events,
		validate:         d.Validator,
		logger:           d.Logger,
		operationTimeout: timeout,
		gate:             make(chan struct{}, 1),
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func (s *Service) acquire(ctx context.Context) (release func(), err error) {
	select {
	case s.gate <- struct{}{}:
		return func() { <-s.gate }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Service) validateInput(c *domain.Call) error {
	if c == nil {
		return apperr.ErrNullProperty
	}
	c.Address = strings.TrimSpace(c.Address)
	if err := s.validate.Struct(c); err != nil {
		return err
	}
	if !c.Type.Valid() {
		return fmt.Errorf("call type %q: %w", c.Type, apperr.ErrInvalid)
	}
	return nil
}

func validateDeadline(c domain.Call) error {
	if c.Deadline != nil && !c.Deadline.After(c.OpenedAt) {
		return fmt.Errorf("deadline must be after opening time: %w", apperr.ErrInvalid)
	}
	return nil
}

// Add geocodes and stores a new call opened at the current virtual time.
func (s *Service) Add(ctx context.Context, c domain.Call) (domain.Call, error) {
	if err := s.validateInput(&c); err != nil {
		return domain.Call{}, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	release, err := s.acquire(ctx)
	if err != nil {
		return domain.Call{}, err
	}
	defer release()

	if err := s.guard.Admit(ctx); err != nil {
		return domain.Call{}, err
	}
	lat, lon, err := s.geo.Resolve(ctx, c.Address)
	if err != nil {
		return domain.Call{}, fmt.Errorf("geocode call address: %w", err)
	}
	c.Latitude, c.Longitude = lat, lon

	unlock, err := s.guard.Mutate(ctx)
	if err != nil {
		return domain.Call{}, err
	}
	c.ID = 0
	c.OpenedAt = s.clock.Now()
	if err = validateDeadline(c); err == nil {
		c.ID, err = s.calls.Create(ctx, c)
	}
	unlock()
	if err != nil {
		return domain.Call{}, err
	}

	s.logger.Info("call added", logx.Int64("call_id", c.ID), logx.String("type", string(c.Type)))
	s.events.NotifyListChanged()
	return c, nil
}

// Update replaces the editable fields of a call that is not closed or expired.
// The address is geocoded again only when it changed.
func (s *Service) Update(ctx context.Context, c domain.Call) (domain.Call, error) {
	if err := s.validateInput(&c); err != nil {
		return domain.Call{}, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	release, err := s.acquire(ctx)
	if err != nil {
		return domain.Call{}, err
	}
	defer release()

	if err := s.guard.Admit(ctx); err != nil {
		return domain.Call{}, err
	}

	unlockRead := s.guard.RLock()
	current, err := s.calls.Get(ctx, c.ID)
	unlockRead()
	if err != nil {
		return domain.Call{}, err
	}

	lat, lon := current.Latitude, current.Longitude
	if !strings.EqualFold(current.Address, c.Address) {
		if lat, lon, err = s.geo.Resolve(ctx, c.Address); err != nil {
			return domain.Call{}, fmt.Errorf("geocode call address: %w", err)
		}
	}

	unlock, err := s.guard.Mutate(ctx)
	if err != nil {
		return domain.Call{}, err
	}
	updated, err := s.updateLocked(ctx, c, lat, lon)
	unlock()
	if err != nil {
		return domain.Call{}, err
	}

	s.logger.Info("call updated", logx.Int64("call_id", updated.ID))
	s.events.NotifyItemChanged(updated.ID)
	s.events.NotifyListChanged()
	return updated, nil
}

func (s *Service) updateLocked(ctx context.Context, in domain.Call, lat, lon float64) (domain.Call, error) {
	current, err := s.calls.Get(ctx, in.ID)
	if err != nil {
		return domain.Call{}, err
	}
	history, err := s.historyOf(ctx, in.ID)
	if err != nil {
		return domain.Call{}, err
	}
	if st := domain.DeriveStatus(current, history, s.clock.Now(), s.clock.RiskWindow()); st.IsTerminal() {
		return domain.Call{}, fmt.Errorf("call %d is %s: %w", in.ID, st, apperr.ErrInvalid)
	}

	current.Type = in.Type
	current.Description = in.Description
	current.Address = in.Address
	current.Latitude, current.Longitude = lat, lon
	current.Deadline = in.Deadline
	if err := validateDeadline(current); err != nil {
		return domain.Call{}, err
	}
	if err := s.calls.Update(ctx, current); err != nil {
		return domain.Call{}, err
	}
	return current, nil
}

// Delete removes an open call that was never assigned.
func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	unlock, err := s.guard.Mutate(ctx)
	if err != nil {
		return err
	}
	err = s.deleteLocked(ctx, id)
	unlock()
	if err != nil {
		return err
	}

	s.logger.Info("call deleted", logx.Int64("call_id", id))
	s.events.NotifyItemChanged(id)
	s.events.NotifyListChanged()
	return nil
}

func (s *Service) deleteLocked(ctx context.Context, id int64) error {
	c, err := s.calls.Get(ctx, id)
	if err != nil {
		return err
	}
	history, err := s.historyOf(ctx, id)
	if err != nil {
		return err
	}
	if st := domain.DeriveStatus(c, history, s.clock.Now(), s.clock.RiskWindow()); st != domain.StatusOpen {
		return fmt.Errorf("call %d is %s: %w", id, st, apperr.ErrInvalid)
	}
	if len(history) > 0 {
		return fmt.Errorf("call %d has assignments: %w", id, apperr.ErrDeletionImpossible)
	}
	return s.calls.Delete(ctx, id)
}

func (s *Service) historyOf(ctx context.Context, callID int64) ([]domain.Assignment, error) {
	return s.assignments.List(ctx, func(a domain.Assignment) bool { return a.CallID == callID })
}
