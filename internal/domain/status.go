package domain

import "regexp"

// Status is the derived state of a call.
type Status string

// List of possible call statuses
const (
	StatusOpen              Status = "open"
	StatusOpenAtRisk        Status = "open_at_risk"
	StatusInTreatment       Status = "in_treatment"
	StatusInTreatmentAtRisk Status = "in_treatment_at_risk"
	StatusClosed            Status = "closed"
	StatusExpired           Status = "expired"
)

// List of possible assignment end types
const (
	EndCompleted     EndType = "completed"
	EndSelfCanceled  EndType = "self_canceled"
	EndAdminCanceled EndType = "admin_canceled"
	EndExpired       EndType = "expired"
)

// List of volunteer roles
const (
	RoleAdmin     Role = "admin"
	RoleVolunteer Role = "volunteer"
)

// List of distance types
const (
	DistanceAir     DistanceType = "air"
	DistanceWalking DistanceType = "walking"
	DistanceDriving DistanceType = "driving"
)

// List of call types
const (
	CallFoodDelivery  CallType = "food_delivery"
	CallTransport     CallType = "transport"
	CallMedicalEscort CallType = "medical_escort"
	CallHomeRepair    CallType = "home_repair"
	CallOther         CallType = "other"
)

var allowedStatuses = [...]Status{
	StatusOpen, StatusOpenAtRisk, StatusInTreatment, StatusInTreatmentAtRisk, StatusClosed, StatusExpired,
}

var allowedEndTypes = [...]EndType{
	EndCompleted, EndSelfCanceled, EndAdminCanceled, EndExpired,
}

var allowedRoles = [...]Role{RoleAdmin, RoleVolunteer}

var allowedDistanceTypes = [...]DistanceType{DistanceAir, DistanceWalking, DistanceDriving}

var allowedCallTypes = [...]CallType{
	CallFoodDelivery, CallTransport, CallMedicalEscort, CallHomeRepair, CallOther,
}

func contains[T comparable](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// Valid checks if the Status is valid
func (s Status) Valid() bool { return contains(allowedStatuses[:], s) }

// Valid checks if the EndType is valid
func (e EndType) Valid() bool { return contains(allowedEndTypes[:], e) }

// Valid checks if the Role is valid
func (r Role) Valid() bool { return contains(allowedRoles[:], r) }

// Valid checks if the DistanceType is valid
func (d DistanceType) Valid() bool { return contains(allowedDistanceTypes[:], d) }

// Valid checks if the CallType is valid
func (c CallType) Valid() bool { return contains(allowedCallTypes[:], c) }

// CallTypes returns every known call type.
func CallTypes() []CallType {
	out := make([]CallType, len(allowedCallTypes))
	copy(out, allowedCallTypes[:])
	return out
}

// Statuses returns every derived call status.
func Statuses() []Status {
	out := make([]Status, len(allowedStatuses))
	copy(out, allowedStatuses[:])
	return out
}

// IsTerminal reports whether no further assignment can change the status.
func (s Status) IsTerminal() bool {
	return s == StatusClosed || s == StatusExpired
}

// IsOpen reports whether the call can still be picked up.
func (s Status) IsOpen() bool {
	return s == StatusOpen || s == StatusOpenAtRisk
}

// rePhone is a regex to validate phone numbers
var rePhone = regexp.MustCompile(`^\+?[0-9]{9,12}$`)

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidatePhone validates the phone number format
func ValidatePhone(s string) bool {
	return rePhone.MatchString(s)
}

// ValidateEmail validates the email format
func ValidateEmail(s string) bool {
	return reEmail.MatchString(s)
}
