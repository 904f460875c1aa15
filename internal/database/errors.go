package database

import "errors"

var (
	// ErrNotFound is returned when no row has the requested id
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a username or email is already used in the company
	ErrDuplicate = errors.New("username or email already registered")
)
