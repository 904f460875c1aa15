package board

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found on board")
	ErrNotIdle         = errors.New("board is not idle")
	ErrNotDragging     = errors.New("no drag in progress")
	ErrCommitInFlight  = errors.New("status update in flight")
	ErrNoCommit        = errors.New("no matching commit pending")
	ErrSourceMismatch  = errors.New("drag source does not match task status")
	ErrInvalidSnapshot = errors.New("snapshot contains an invalid task")
)
