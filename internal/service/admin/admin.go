package admin

import (
	"context"
	"fmt"
	"time"

	"volunteer-dispatch/internal/apperr"
	"volunteer-dispatch/internal/domain"
	"volunteer-dispatch/internal/logx"
	"volunteer-dispatch/internal/seed"
	"volunteer-dispatch/internal/service/clock"
)

// Deps groups the collaborators of Service.
type Deps struct {
	Guard       locker
	Clock       authority
	Simulator   simulator
	Volunteers  volunteerStore
	Calls       callStore
	Assignments assignmentStore
	// CallEvents and VolunteerEvents receive list notifications after a reset.
	CallEvents      notifier
	VolunteerEvents notifier
	// AddressBook is optional; seed addresses are registered with it.
	AddressBook addressBook
	// Hash turns seed passwords into stored credentials.
	Hash   func(password string) (string, error)
	Seed   func() (seed.Dataset, error)
	Logger logx.Logger
	// RiskWindow is the risk window restored on reset.
	RiskWindow time.Duration
}

// Service exposes the clock, risk window, simulator and dataset controls.
type Service struct {
	d                Deps
	operationTimeout time.Duration
}

// NewService creates and configures an admin Service.
func NewService(d Deps, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if d.Seed == nil {
		d.Seed = seed.Default
	}
	return &Service{d: d, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Clock returns the current virtual time.
func (s *Service) Clock() time.Time { return s.d.Clock.Now() }

// AdvanceClock moves the clock forward by one unit.
func (s *Service) AdvanceClock(ctx context.Context, u clock.Unit) (time.Time, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.d.Clock.AdvanceBy(ctx, u)
}

// RiskWindow returns the configured risk window.
func (s *Service) RiskWindow() time.Duration { return s.d.Clock.RiskWindow() }

// SetRiskWindow replaces the risk window.
func (s *Service) SetRiskWindow(ctx context.Context, d time.Duration) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.d.Clock.SetRiskWindow(ctx, d)
}

// StartSimulator hands the clock to the simulator.
func (s *Service) StartSimulator(intervalMinutes int) error {
	return s.d.Simulator.Start(intervalMinutes)
}

// StopSimulator returns the clock to interactive use.
func (s *Service) StopSimulator() { s.d.Simulator.Stop() }

// SimulatorRunning reports whether the simulator owns the clock.
func (s *Service) SimulatorRunning() bool { return s.d.Simulator.Running() }

// Reset deletes every record and restores the default clock configuration.
func (s *Service) Reset(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	cfg := s.d.Clock.DefaultConfig(s.d.RiskWindow)
	if err := s.replace(ctx, cfg, seed.Records{}); err != nil {
		return err
	}
	s.d.Logger.Info("dataset reset", logx.Time("clock", cfg.Clock))
	return nil
}

// Initialize resets the dataset and loads the embedded seed.
func (s *Service) Initialize(ctx context.Context) error {
	if s.d.Simulator.Running() {
		return apperr.ErrSimulatorRunning
	}
	ds, err := s.d.Seed()
	if err != nil {
		return err
	}
	cfg := s.d.Clock.DefaultConfig(s.d.RiskWindow)
	recs, err := ds.Build(cfg.Clock, s.d.Hash)
	if err != nil {
		return err
	}
	if s.d.AddressBook != nil {
		for _, a := range ds.Addresses {
			s.d.AddressBook.Add(a.Address, a.Lat, a.Lon)
		}
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.replace(ctx, cfg, recs); err != nil {
		return err
	}
	s.d.Logger.Info("dataset initialized",
		logx.Int("volunteers", len(recs.Volunteers)),
		logx.Int("calls", len(recs.Calls)),
		logx.Int("assignments", len(recs.Assignments)),
	)
	return nil
}

// replace swaps the whole dataset and clock configuration under the lock and
// announces the change after releasing it.
func (s *Service) replace(ctx context.Context, cfg domain.ClockConfig, recs seed.Records) error {
	unlock, err := s.d.Guard.Mutate(ctx)
	if err != nil {
		return err
	}
	err = s.replaceLocked(ctx, cfg, recs)
	unlock()

	// observers see whatever state the store was left in
	s.d.Clock.Announce()
	s.d.CallEvents.NotifyListChanged()
	s.d.VolunteerEvents.NotifyListChanged()
	return err
}

func (s *Service) replaceLocked(ctx context.Context, cfg domain.ClockConfig, recs seed.Records) error {
	// assignments reference calls and volunteers
	if err := s.d.Assignments.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear assignments: %w", err)
	}
	if err := s.d.Calls.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear calls: %w", err)
	}
	if err := s.d.Volunteers.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear volunteers: %w", err)
	}
	if err := s.d.Clock.ResetLocked(ctx, cfg); err != nil {
		return fmt.Errorf("reset clock: %w", err)
	}

	volunteerIDs := make([]int64, len(recs.Volunteers))
	for i, v := range recs.Volunteers {
		id, err := s.d.Volunteers.Create(ctx, v)
		if err != nil {
			return fmt.Errorf("seed volunteer %d: %w", i+1, err)
		}
		volunteerIDs[i] = id
	}
	callIDs := make([]int64, len(recs.Calls))
	for i, c := range recs.Calls {
		id, err := s.d.Calls.Create(ctx, c)
		if err != nil {
			return fmt.Errorf("seed call %d: %w", i+1, err)
		}
		callIDs[i] = id
	}
	for i, a := range recs.Assignments {
		a.CallID = callIDs[a.CallID-1]
		a.VolunteerID = volunteerIDs[a.VolunteerID-1]
		if _, err := s.d.Assignments.Create(ctx, a); err != nil {
			return fmt.Errorf("seed assignment %d: %w", i+1, err)
		}
	}
	return nil
}
