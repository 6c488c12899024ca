package domain

import "time"

// DeriveStatus computes the status of a call from its assignments, the current
// virtual time and the configured risk window. It does not mutate its inputs.
// Assignments belonging to other calls are ignored.
func DeriveStatus(call Call, assignments []Assignment, now time.Time, riskWindow time.Duration) Status {
	var latest *Assignment
	for i := range assignments {
		a := &assignments[i]
		if a.CallID != call.ID {
			continue
		}
		if a.EndedAs(EndCompleted) {
			return StatusClosed
		}
		if latest == nil || newerThan(*a, *latest) {
			latest = a
		}
	}

	if latest != nil && latest.Open() {
		if call.WithinRisk(now, riskWindow) {
			return StatusInTreatmentAtRisk
		}
		return StatusInTreatment
	}

	if call.DeadlinePassed(now) {
		return StatusExpired
	}

	if latest == nil || latest.EndedAs(EndSelfCanceled) || latest.EndedAs(EndAdminCanceled) {
		if call.WithinRisk(now, riskWindow) {
			return StatusOpenAtRisk
		}
		return StatusOpen
	}

	// only an expired marker is left
	return StatusExpired
}

// LatestAssignment returns the most recent assignment of the call, if any.
func LatestAssignment(callID int64, assignments []Assignment) (Assignment, bool) {
	var (
		latest Assignment
		found  bool
	)
	for _, a := range assignments {
		if a.CallID != callID {
			continue
		}
		if !found || newerThan(a, latest) {
			latest, found = a, true
		}
	}
	return latest, found
}

// RemainingTime returns the time left until the deadline, or nil when the call
// has no deadline or is already terminal.
func RemainingTime(call Call, status Status, now time.Time) *time.Duration {
	if call.Deadline == nil || status.IsTerminal() {
		return nil
	}
	d := call.Deadline.Sub(now)
	if d < 0 {
		d = 0
	}
	return &d
}

// newerThan orders by start time, then by id as an insertion-order proxy.
func newerThan(a, b Assignment) bool {
	if !a.StartedAt.Equal(b.StartedAt) {
		return a.StartedAt.After(b.StartedAt)
	}
	return a.ID > b.ID
}
