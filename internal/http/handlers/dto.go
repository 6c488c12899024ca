package handlers

import (
	"time"

	"volunteer-dispatch/internal/domain"
)

type volunteerDTO struct {
	ID           int64               `json:"id"`
	FullName     string              `json:"full_name"`
	Phone        string              `json:"phone"`
	Email        string              `json:"email"`
	Address      string              `json:"address,omitempty"`
	Latitude     *float64            `json:"latitude,omitempty"`
	Longitude    *float64            `json:"longitude,omitempty"`
	Role         domain.Role         `json:"role"`
	Active       bool                `json:"active"`
	MaxDistance  *float64            `json:"max_distance,omitempty"`
	DistanceType domain.DistanceType `json:"distance_type"`
}

type createVolunteerRequest struct {
	FullName     string              `json:"full_name"`
	Phone        string              `json:"phone"`
	Email        string              `json:"email"`
	Password     string              `json:"password"`
	Address      string              `json:"address"`
	Role         domain.Role         `json:"role"`
	Active       *bool               `json:"active"`
	MaxDistance  *float64            `json:"max_distance"`
	DistanceType domain.DistanceType `json:"distance_type"`
}

type updateVolunteerRequest struct {
	FullName     *string              `json:"full_name,omitempty"`
	Phone        *string              `json:"phone,omitempty"`
	Email        *string              `json:"email,omitempty"`
	Password     *string              `json:"password,omitempty"`
	Address      *string              `json:"address,omitempty"`
	Role         *domain.Role         `json:"role,omitempty"`
	Active       *bool                `json:"active,omitempty"`
	MaxDistance  *float64             `json:"max_distance,omitempty"`
	DistanceType *domain.DistanceType `json:"distance_type,omitempty"`
}

type volunteerSummaryDTO struct {
	ID              int64            `json:"id"`
	FullName        string           `json:"full_name"`
	Active          bool             `json:"active"`
	Completed       int              `json:"completed"`
	SelfCanceled    int              `json:"self_canceled"`
	Expired         int              `json:"expired"`
	CurrentCallID   *int64           `json:"current_call_id,omitempty"`
	CurrentCallType *domain.CallType `json:"current_call_type,omitempty"`
}

type loginRequest struct {
	ID       int64  `json:"id"`
	Password string `json:"password"`
}

type loginResponse struct {
	ID   int64       `json:"id"`
	Role domain.Role `json:"role"`
}

type callRequest struct {
	Type        domain.CallType `json:"type"`
	Description string          `json:"description"`
	Address     string          `json:"address"`
	Deadline    *time.Time      `json:"deadline,omitempty"`
}

type callDTO struct {
	ID          int64           `json:"id"`
	Type        domain.CallType `json:"type"`
	Description string          `json:"description,omitempty"`
	Address     string          `json:"address"`
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
	OpenedAt    time.Time       `json:"opened_at"`
	Deadline    *time.Time      `json:"deadline,omitempty"`
}

type callViewDTO struct {
	callDTO
	Status           domain.Status   `json:"status"`
	RemainingSeconds *int64          `json:"remaining_seconds,omitempty"`
	Assignments      []assignmentDTO `json:"assignments,omitempty"`
}

type openCallDTO struct {
	callDTO
	Status     domain.Status `json:"status"`
	DistanceKM float64       `json:"distance_km"`
}

type assignmentDTO struct {
	ID          int64           `json:"id"`
	CallID      int64           `json:"call_id"`
	VolunteerID int64           `json:"volunteer_id,omitempty"`
	StartedAt   time.Time       `json:"started_at"`
	EndedAt     *time.Time      `json:"ended_at,omitempty"`
	EndType     *domain.EndType `json:"end_type,omitempty"`
}

type clockResponse struct {
	Clock time.Time `json:"clock"`
}

type advanceRequest struct {
	Unit string `json:"unit"`
}

type riskWindowDTO struct {
	RiskWindow string `json:"risk_window"`
}

type simulatorRequest struct {
	IntervalMinutes int `json:"interval_minutes"`
}

type simulatorResponse struct {
	Running bool `json:"running"`
}
