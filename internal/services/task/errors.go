package task

import "errors"

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle      = errors.New("task title cannot be empty")
	ErrTitleTooLong    = errors.New("task title cannot exceed 255 characters")
	ErrInvalidTaskID   = errors.New("invalid task ID")
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrInvalidAssignee = errors.New("invalid assignee ID")

	// Business logic errors
	ErrTaskNotFound         = errors.New("task not found")
	ErrNoSession            = errors.New("no active session")
	ErrAlreadyInTargetState = errors.New("task already has target status")
)
