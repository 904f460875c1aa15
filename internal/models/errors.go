package models

import "errors"

// Domain errors for status transitions
var (
	// ErrUnknownStatus indicates a value outside the fixed status set
	ErrUnknownStatus = errors.New("unknown task status")

	// ErrAlreadyFirstColumn indicates there is no column to the left
	ErrAlreadyFirstColumn = errors.New("task is already in the first column")

	// ErrAlreadyLastColumn indicates there is no column to the right
	ErrAlreadyLastColumn = errors.New("task is already in the last column")
)
