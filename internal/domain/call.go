package domain

import "time"

// CallType represents the category of a call.
type CallType string

// Call represents a unit of requested work.
type Call struct {
	ID          int64
	Type        CallType `validate:"required"`
	Description string
	Address     string `validate:"required"`
	Latitude    float64
	Longitude   float64
	OpenedAt    time.Time
	Deadline    *time.Time
}

// DeadlinePassed reports whether the call deadline is strictly before now.
func (c Call) DeadlinePassed(now time.Time) bool {
	return c.Deadline != nil && c.Deadline.Before(now)
}

// WithinRisk reports whether the deadline falls inside the risk window.
func (c Call) WithinRisk(now time.Time, riskWindow time.Duration) bool {
	return c.Deadline != nil && c.Deadline.Sub(now) <= riskWindow
}

// CallView is a call together with its derived state.
type CallView struct {
	Call
	Status        Status
	Assignments   []Assignment
	RemainingTime *time.Duration
}

// OpenCall is an open call offered to a volunteer together with its distance.
type OpenCall struct {
	Call
	Status   Status
	Distance float64
}
