package call

import (
	"context"
	"fmt"
	"sort"

	"volunteer-dispatch/internal/apperr"
	"volunteer-dispatch/internal/domain"
)

// SortKey orders call listings.
type SortKey string

// Supported sort keys.
const (
	SortByID       SortKey = "id"
	SortByOpenedAt SortKey = "opened_at"
	SortByDeadline SortKey = "deadline"
	SortByStatus   SortKey = "status"
)

// ParseSortKey validates a sort key. The empty string sorts by id.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case "":
		return SortByID, nil
	case SortByID, SortByOpenedAt, SortByDeadline, SortByStatus:
		return k, nil
	}
	return "", fmt.Errorf("sort key %q: %w", s, apperr.ErrInvalid)
}

// ListFilter narrows and orders List results. Nil fields do not filter.
type ListFilter struct {
	Type   *domain.CallType
	Status *domain.Status
	SortBy SortKey
}

func (s *Service) view(c domain.Call, all []domain.Assignment) domain.CallView {
	now := s.clock.Now()
	own := make([]domain.Assignment, 0)
	for _, a := range all {
		if a.CallID == c.ID {
			own = append(own, a)
		}
	}
	st := domain.DeriveStatus(c, own, now, s.clock.RiskWindow())
	return domain.CallView{
		Call:          c,
		Status:        st,
		Assignments:   own,
		RemainingTime: domain.RemainingTime(c, st, now),
	}
}

// Get returns the call with its derived status and assignment history.
func (s *Service) Get(ctx context.Context, id int64) (domain.CallView, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	defer s.guard.RLock()()

	c, err := s.calls.Get(ctx, id)
	if err != nil {
		return domain.CallView{}, err
	}
	history, err := s.historyOf(ctx, id)
	if err != nil {
		return domain.CallView{}, err
	}
	return s.view(c, history), nil
}

func (s *Service) views(ctx context.Context) ([]domain.CallView, error) {
	calls, err := s.calls.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	all, err := s.assignments.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	out := make([]domain.CallView, 0, len(calls))
	for _, c := range calls {
		out = append(out, s.view(c, all))
	}
	return out, nil
}

// List returns calls with derived state, filtered and sorted.
func (s *Service) List(ctx context.Context, f ListFilter) ([]domain.CallView, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	defer s.guard.RLock()()

	all, err := s.views(ctx)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, v := range all {
		if f.Type != nil && v.Type != *f.Type {
			continue
		}
		if f.Status != nil && v.Status != *f.Status {
			continue
		}
		out = append(out, v)
	}
	sortViews(out, f.SortBy)
	return out, nil
}

var statusRank = func() map[domain.Status]int {
	m := make(map[domain.Status]int)
	for i, st := range domain.Statuses() {
		m[st] = i
	}
	return m
}()

func sortViews(vs []domain.CallView, key SortKey) {
	less := func(a, b domain.CallView) bool { return a.ID < b.ID }
	switch key {
	case SortByOpenedAt:
		less = func(a, b domain.CallView) bool {
			if !a.OpenedAt.Equal(b.OpenedAt) {
				return a.OpenedAt.Before(b.OpenedAt)
			}
			return a.ID < b.ID
		}
	case SortByDeadline:
		less = func(a, b domain.CallView) bool {
			switch {
			case a.Deadline == nil && b.Deadline == nil:
				return a.ID < b.ID
			case a.Deadline == nil:
				return false
			case b.Deadline == nil:
				return true
			case !a.Deadline.Equal(*b.Deadline):
				return a.Deadline.Before(*b.Deadline)
			}
			return a.ID < b.ID
		}
	case SortByStatus:
		less = func(a, b domain.CallView) bool {
			if statusRank[a.Status] != statusRank[b.Status] {
				return statusRank[a.Status] < statusRank[b.Status]
			}
			return a.ID < b.ID
		}
	}
	sort.SliceStable(vs, func(i, j int) bool { return less(vs[i], vs[j]) })
}

// OpenForVolunteer returns open calls within the volunteer's reach, nearest first.
// A nil callType keeps every type.
func (s *Service) OpenForVolunteer(ctx context.Context, volunteerID int64, callType *domain.CallType) ([]domain.OpenCall, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	defer s.guard.RLock()()

	v, err := s.volunteers.Get(ctx, volunteerID)
	if err != nil {
		return nil, err
	}
	all, err := s.views(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.OpenCall, 0)
	for _, cv := range all {
		if !cv.Status.IsOpen() || !v.Reaches(cv.Call) {
			continue
		}
		if callType != nil && cv.Type != *callType {
			continue
		}
		d, _ := v.DistanceTo(cv.Call)
		out = append(out, domain.OpenCall{Call: cv.Call, Status: cv.Status, Distance: d})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Counts returns the number of calls per derived status. Every status is present.
func (s *Service) Counts(ctx context.Context) (map[domain.Status]int, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	defer s.guard.RLock()()

	all, err := s.views(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[domain.Status]int, len(domain.Statuses()))
	for _, st := range domain.Statuses() {
		out[st] = 0
	}
	for _, v := range all {
		out[v.Status]++
	}
	return out, nil
}
