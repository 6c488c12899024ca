package domain

type (
	// Role represents the permission level of a volunteer.
	Role string
	// DistanceType represents how the distance to a call is measured.
	DistanceType string
)

// Volunteer represents a registered volunteer.
type Volunteer struct {
	ID           int64
	FullName     string `validate:"required"`
	Phone        string `validate:"required"`
	Email        string `validate:"required"`
	Password     string
	Address      string
	Latitude     *float64
	Longitude    *float64
	Role         Role
	Active       bool
	MaxDistance  *float64
	DistanceType DistanceType
}

// Located reports whether the volunteer address has been geocoded.
func (v Volunteer) Located() bool {
	return v.Latitude != nil && v.Longitude != nil
}

// IsAdmin reports whether the volunteer holds the admin role.
func (v Volunteer) IsAdmin() bool {
	return v.Role == RoleAdmin
}

// PartialVolunteerUpdate carries optional fields to update a volunteer.
// A nil field means “do not change” that attribute.
type PartialVolunteerUpdate struct {
	ID           int64
	FullName     *string
	Phone        *string
	Email        *string
	Password     *string
	Address      *string
	Role         *Role
	Active       *bool
	MaxDistance  *float64
	DistanceType *DistanceType
}

// VolunteerSummary is a volunteer list row with assignment statistics.
type VolunteerSummary struct {
	ID              int64
	FullName        string
	Active          bool
	Completed       int
	SelfCanceled    int
	Expired         int
	CurrentCallID   *int64
	CurrentCallType *CallType
}
