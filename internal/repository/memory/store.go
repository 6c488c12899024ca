package memory

import (
	"context"
	"sync"

	"volunteer-dispatch/internal/domain"
)

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// VolunteerStore keeps volunteers in memory.
type VolunteerStore struct{ *table[domain.Volunteer] }

// NewVolunteerStore creates an empty VolunteerStore.
func NewVolunteerStore() *VolunteerStore {
	return &VolunteerStore{newTable("volunteer",
		func(v domain.Volunteer) int64 { return v.ID },
		func(v *domain.Volunteer, id int64) { v.ID = id },
		func(v domain.Volunteer) domain.Volunteer {
			v.Latitude = clonePtr(v.Latitude)
			v.Longitude = clonePtr(v.Longitude)
			v.MaxDistance = clonePtr(v.MaxDistance)
			return v
		},
	)}
}

// CallStore keeps calls in memory.
type CallStore struct{ *table[domain.Call] }

// NewCallStore creates an empty CallStore.
func NewCallStore() *CallStore {
	return &CallStore{newTable("call",
		func(c domain.Call) int64 { return c.ID },
		func(c *domain.Call, id int64) { c.ID = id },
		func(c domain.Call) domain.Call {
			c.Deadline = clonePtr(c.Deadline)
			return c
		},
	)}
}

// AssignmentStore keeps assignments in memory.
type AssignmentStore struct{ *table[domain.Assignment] }

// NewAssignmentStore creates an empty AssignmentStore.
func NewAssignmentStore() *AssignmentStore {
	return &AssignmentStore{newTable("assignment",
		func(a domain.Assignment) int64 { return a.ID },
		func(a *domain.Assignment, id int64) { a.ID = id },
		func(a domain.Assignment) domain.Assignment {
			a.EndedAt = clonePtr(a.EndedAt)
			a.EndType = clonePtr(a.EndType)
			return a
		},
	)}
}

// ClockConfigStore keeps the clock singleton in memory.
type ClockConfigStore struct {
	mu  sync.RWMutex
	cfg *domain.ClockConfig
}

// NewClockConfigStore creates a ClockConfigStore with nothing saved.
func NewClockConfigStore() *ClockConfigStore { return &ClockConfigStore{} }

// Load returns the saved configuration. ok is false when nothing has been saved yet.
func (s *ClockConfigStore) Load(ctx context.Context) (cfg domain.ClockConfig, ok bool, err error) {
	if err := ctx.Err(); err != nil {
		return domain.ClockConfig{}, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cfg == nil {
		return domain.ClockConfig{}, false, nil
	}
	return *s.cfg, true, nil
}

// Save replaces the configuration.
func (s *ClockConfigStore) Save(ctx context.Context, cfg domain.ClockConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg.Clock = cfg.Clock.Round(0)
	s.cfg = &cfg
	return nil
}
