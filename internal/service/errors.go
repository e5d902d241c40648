package service

import "errors"

// Sentinel errors the transport layer maps to HTTP statuses. Anything else
// escaping a service is a storage failure and becomes a generic 500.
var (
	// ErrInvalidInput wraps a validation failure; the wrapped message is safe
	// to show to the caller.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmailTaken means signup hit an existing email.
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// One value so the caller cannot distinguish the two.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrUserNotFound  = errors.New("user not found")
	ErrEntryNotFound = errors.New("entry not found")
)
