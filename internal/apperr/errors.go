package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation or breaks a business rule.
var ErrInvalid = errors.New("invalid value")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists indicates a uniqueness conflict in the record store.
var ErrAlreadyExists = errors.New("already exists")

// ErrInvalidRole indicates the requester lacks permission for the mutation.
var ErrInvalidRole = errors.New("invalid role")

// ErrUnauthorized indicates a failed credential check.
var ErrUnauthorized = errors.New("unauthorized")

// ErrDeletionImpossible indicates the record is still referenced by assignment history.
var ErrDeletionImpossible = errors.New("deletion impossible")

// ErrSimulatorRunning rejects interactive mutations while the simulator owns the clock.
var ErrSimulatorRunning = errors.New("simulator is running")

// ErrNullProperty indicates a required field is missing on the input payload.
var ErrNullProperty = errors.New("null property")
