package domain

import "time"

// EndType represents how an assignment was closed.
type EndType string

// Assignment - struct representing one volunteer's handling interval for one call.
type Assignment struct {
	ID          int64
	CallID      int64
	VolunteerID int64
	StartedAt   time.Time
	EndedAt     *time.Time
	EndType     *EndType
}

// Open reports whether the assignment has not ended yet.
func (a Assignment) Open() bool {
	return a.EndedAt == nil
}

// EndedAs reports whether the assignment was closed with the given end type.
func (a Assignment) EndedAs(t EndType) bool {
	return a.EndType != nil && *a.EndType == t
}

// Close marks the assignment as ended at the given time.
func (a *Assignment) Close(at time.Time, t EndType) {
	a.EndedAt = &at
	a.EndType = &t
}

// ClockConfig is the persisted virtual clock and risk window.
type ClockConfig struct {
	Clock      time.Time
	RiskWindow time.Duration
}
