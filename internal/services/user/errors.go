package user

import "errors"

// User-related errors
var (
	// Validation errors
	ErrNameTooShort     = errors.New("name must be at least 2 characters")
	ErrSurnameTooShort  = errors.New("surname must be at least 2 characters")
	ErrUsernameTooShort = errors.New("username must be at least 2 characters")
	ErrInvalidEmail     = errors.New("email is not a valid e-mail")
	ErrEmptyPassword    = errors.New("password is required")
	ErrInvalidUserID    = errors.New("invalid user ID")

	// Business logic errors
	ErrAlreadyRegistered = errors.New("already registered")
	ErrUserNotFound      = errors.New("user not found")
	ErrNoSession         = errors.New("no active session")
)
