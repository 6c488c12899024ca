package volunteer

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"volunteer-dispatch/internal/apperr"
	"volunteer-dispatch/internal/domain"
)

// SortKey orders volunteer listings.
type SortKey string

// Supported sort keys.
const (
	SortByID              SortKey = "id"
	SortByName            SortKey = "name"
	SortByCompleted       SortKey = "completed"
	SortByCanceled        SortKey = "canceled"
	SortByExpired         SortKey = "expired"
	SortByCurrentCallType SortKey = "current_call_type"
)

// ParseSortKey validates a sort key. The empty string sorts by id.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case "":
		return SortByID, nil
	case SortByID, SortByName, SortByCompleted, SortByCanceled, SortByExpired, SortByCurrentCallType:
		return k, nil
	}
	return "", fmt.Errorf("sort key %q: %w", s, apperr.ErrInvalid)
}

// ListFilter narrows and orders List results.
type ListFilter struct {
	Active *bool
	SortBy SortKey
}

// List returns volunteer summaries with assignment statistics.
func (s *Service) List(ctx context.Context, f ListFilter) ([]domain.VolunteerSummary, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	defer s.guard.RLock()()

	vs, err := s.volunteers.List(ctx, func(v domain.Volunteer) bool {
		return f.Active == nil || v.Active == *f.Active
	})
	if err != nil {
		return nil, err
	}
	all, err := s.assignments.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	byVolunteer := make(map[int64][]domain.Assignment)
	for _, a := range all {
		byVolunteer[a.VolunteerID] = append(byVolunteer[a.VolunteerID], a)
	}

	out := make([]domain.VolunteerSummary, 0, len(vs))
	for _, v := range vs {
		sum, err := s.summarize(ctx, v, byVolunteer[v.ID])
		if err != nil {
			return nil, err
		}
		out = append(out, sum)
	}
	sortSummaries(out, f.SortBy)
	return out, nil
}

func (s *Service) summarize(ctx context.Context, v domain.Volunteer, as []domain.Assignment) (domain.VolunteerSummary, error) {
	sum := domain.VolunteerSummary{ID: v.ID, FullName: v.FullName, Active: v.Active}
	for _, a := range as {
		switch {
		case a.Open():
			c, err := s.calls.Get(ctx, a.CallID)
			if err != nil {
				return sum, err
			}
			id, t := c.ID, c.Type
			sum.CurrentCallID, sum.CurrentCallType = &id, &t
		case a.EndedAs(domain.EndCompleted):
			sum.Completed++
		case a.EndedAs(domain.EndSelfCanceled):
			sum.SelfCanceled++
		case a.EndedAs(domain.EndExpired):
			sum.Expired++
		}
	}
	return sum, nil
}

func sortSummaries(out []domain.VolunteerSummary, key SortKey) {
	less := func(a, b domain.VolunteerSummary) bool { return a.ID < b.ID }
	byCount := func(get func(domain.VolunteerSummary) int) func(a, b domain.VolunteerSummary) bool {
		return func(a, b domain.VolunteerSummary) bool {
			if get(a) != get(b) {
				return get(a) > get(b)
			}
			return a.ID < b.ID
		}
	}
	switch key {
	case SortByName:
		less = func(a, b domain.VolunteerSummary) bool {
			if x, y := strings.ToLower(a.FullName), strings.ToLower(b.FullName); x != y {
				return x < y
			}
			return a.ID < b.ID
		}
	case SortByCompleted:
		less = byCount(func(s domain.VolunteerSummary) int { return s.Completed })
	case SortByCanceled:
		less = byCount(func(s domain.VolunteerSummary) int { return s.SelfCanceled })
	case SortByExpired:
		less = byCount(func(s domain.VolunteerSummary) int { return s.Expired })
	case SortByCurrentCallType:
		less = func(a, b domain.VolunteerSummary) bool {
			switch {
			case a.CurrentCallType == nil && b.CurrentCallType == nil:
				return a.ID < b.ID
			case a.CurrentCallType == nil:
				return false
			case b.CurrentCallType == nil:
				return true
			case *a.CurrentCallType != *b.CurrentCallType:
				return *a.CurrentCallType < *b.CurrentCallType
			}
			return a.ID < b.ID
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
}
