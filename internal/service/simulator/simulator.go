package simulator

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"volunteer-dispatch/internal/apperr"
	"volunteer-dispatch/internal/guard"
	"volunteer-dispatch/internal/logx"
	"volunteer-dispatch/internal/metrics"
	"volunteer-dispatch/internal/service/volunteer"
)

// Options tunes the loop pacing and the synthetic volunteer behaviour.
type Options struct {
	Tick                time.Duration
	SelectProbability   float64
	CompleteProbability float64
	CancelProbability   float64
	// Seed fixes the random source; zero seeds from the wall clock.
	Seed uint64
}

// Deps groups the collaborators of Simulator.
type Deps struct {
	Guard       ownership
	Clock       clock
	Volunteers  volunteerLister
	Calls       callFinder
	Assignments coordinator
	Logger      logx.Logger
	Metrics     *metrics.Engine
}

// Simulator advances the virtual clock on a wall-clock tick and plays
// volunteers picking up, finishing and dropping calls.
type Simulator struct {
	owner       ownership
	clock       clock
	volunteers  volunteerLister
	calls       callFinder
	assignments coordinator
	logger      logx.Logger
	metrics     *metrics.Engine
	opts        Options
	rnd         *rand.Rand

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running atomic.Bool
}

// New creates a stopped Simulator.
func New(d Deps, opts Options) *Simulator {
	if opts.Tick <= 0 {
		opts.Tick = time.Second
	}
	if d.Metrics == nil {
		d.Metrics = metrics.NewEngine()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Simulator{
		owner:       d.Guard,
		clock:       d.Clock,
		volunteers:  d.Volunteers,
		calls:       d.Calls,
		assignments: d.Assignments,
		logger:      d.Logger,
		metrics:     d.Metrics,
		opts:        opts,
		rnd:         rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
}

// Start launches the loop. Starting a running simulator is a no-op.
func (s *Simulator) Start(intervalMinutes int) error {
	if intervalMinutes <= 0 {
		return fmt.Errorf("simulator interval %d: %w", intervalMinutes, apperr.ErrInvalid)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(guard.AsSimulator(context.Background()))
	s.cancel = cancel
	s.done = make(chan struct{})
	s.owner.SetSimulating(true)
	s.running.Store(true)
	s.metrics.SimulatorRunning.Set(1)

	s.logger.Info("simulator started", logx.Int("interval_minutes", intervalMinutes), logx.Duration("tick", s.opts.Tick))
	go s.loop(ctx, intervalMinutes, s.done)
	return nil
}

// Stop cancels the loop and waits for it and any activity round to finish.
func (s *Simulator) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.cancel, s.done = nil, nil

	s.owner.SetSimulating(false)
	s.running.Store(false)
	s.metrics.SimulatorRunning.Set(0)
	s.logger.Info("simulator stopped")
}

// Running reports whether the loop is active.
func (s *Simulator) Running() bool { return s.running.Load() }

func (s *Simulator) loop(ctx context.Context, intervalMinutes int, done chan<- struct{}) {
	defer close(done)

	var g errgroup.Group
	g.SetLimit(1)
	interval := time.Duration(intervalMinutes) * time.Minute

	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			_ = g.Wait()
			return
		case <-timer.C:
		}

		if _, err := s.clock.AdvanceMinutes(ctx, intervalMinutes); err != nil {
			if ctx.Err() == nil {
				s.logger.Error("simulator clock advance failed", logx.Err(err))
			}
		} else {
			s.metrics.SimulatorTicks.Inc()
		}

		// at most one round in flight; a slow round skips ticks
		g.TryGo(func() error {
			s.round(ctx, interval)
			return nil
		})
		timer.Reset(s.opts.Tick)
	}
}

func (s *Simulator) round(ctx context.Context, interval time.Duration) {
	active := true
	vs, err := s.volunteers.List(ctx, volunteer.ListFilter{Active: &active})
	if err != nil {
		s.failed(ctx, "list volunteers", 0, err)
		return
	}
	now := s.clock.Now()
	for _, v := range vs {
		if ctx.Err() != nil {
			return
		}
		if v.CurrentCallID == nil {
			if err := s.maybeSelect(ctx, v.ID); err != nil {
				s.failed(ctx, "select call", v.ID, err)
			}
			continue
		}
		if err := s.maybeFinish(ctx, v.ID, now, interval); err != nil {
			s.failed(ctx, "finish call", v.ID, err)
		}
	}
}

func (s *Simulator) maybeSelect(ctx context.Context, volunteerID int64) error {
	if s.rnd.Float64() >= s.opts.SelectProbability {
		return nil
	}
	open, err := s.calls.OpenForVolunteer(ctx, volunteerID, nil)
	if err != nil || len(open) == 0 {
		return err
	}
	pick := open[s.rnd.IntN(len(open))]
	_, err = s.assignments.SelectCall(ctx, volunteerID, pick.Call.ID)
	return err
}

// maybeFinish completes an assignment held for at least one interval, or
// drops it.
func (s *Simulator) maybeFinish(ctx context.Context, volunteerID int64, now time.Time, interval time.Duration) error {
	a, err := s.assignments.Active(ctx, volunteerID)
	if err != nil || a == nil {
		return err
	}
	if now.Sub(a.StartedAt) >= interval && s.rnd.Float64() < s.opts.CompleteProbability {
		_, err = s.assignments.CompleteCall(ctx, volunteerID, a.ID)
		return err
	}
	if s.rnd.Float64() < s.opts.CancelProbability {
		_, err = s.assignments.CancelCall(ctx, volunteerID, a.ID)
	}
	return err
}

func (s *Simulator) failed(ctx context.Context, action string, volunteerID int64, err error) {
	if ctx.Err() != nil {
		return
	}
	s.metrics.SimulatorActivityErrors.Inc()
	s.logger.Warn("simulator activity failed",
		logx.String("action", action),
		logx.Int64("volunteer_id", volunteerID),
		logx.Err(err),
	)
}
