package usecase

import "carebridge_backend/internal/platform/apperr"

var (
	// ErrEmailAlreadyExists is returned when signing up with an email that
	// is already registered.
	ErrEmailAlreadyExists = apperr.E(apperr.Conflict, "user with this email already exists")

	// ErrInvalidCredentials is the generic login failure. The same message
	// covers unknown email and wrong password so neither can be enumerated.
	ErrInvalidCredentials = apperr.E(apperr.Unauthorized, "invalid email or password")

	// ErrInvalidRole is returned when the requested role is neither PATIENT
	// nor DOCTOR.
	ErrInvalidRole = apperr.E(apperr.Validation, "invalid role, must be PATIENT or DOCTOR")

	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = apperr.E(apperr.NotFound, "user not found")
)
