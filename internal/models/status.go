package models

import (
	"fmt"
	"strings"
)

// Status is a task lifecycle state. The set is fixed and ordered; a task's
// column on the board is derived from it.
type Status string

const (
	StatusTodo  Status = "todo"
	StatusDoing Status = "doing"
	StatusDone  Status = "done"
)

// statusOrder is the left-to-right column order of the board
var statusOrder = []Status{StatusTodo, StatusDoing, StatusDone}

// statusNames maps each status to its column header
var statusNames = map[Status]string{
	StatusTodo:  "Todo",
	StatusDoing: "Doing",
	StatusDone:  "Done",
}

// Statuses returns the ordered status set. The returned slice is a copy.
func Statuses() []Status {
	out := make([]Status, len(statusOrder))
	copy(out, statusOrder)
	return out
}

// Valid reports whether s is a member of the status set
func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// DisplayName returns the column header for the status
func (s Status) DisplayName() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return string(s)
}

// Index returns the column position of the status, or -1 if it is unknown
func (s Status) Index() int {
	for i, st := range statusOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// Next returns the status of the column to the right
func (s Status) Next() (Status, error) {
	idx := s.Index()
	if idx < 0 {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, string(s))
	}
	if idx == len(statusOrder)-1 {
		return "", ErrAlreadyLastColumn
	}
	return statusOrder[idx+1], nil
}

// Prev returns the status of the column to the left
func (s Status) Prev() (Status, error) {
	idx := s.Index()
	if idx < 0 {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, string(s))
	}
	if idx == 0 {
		return "", ErrAlreadyFirstColumn
	}
	return statusOrder[idx-1], nil
}

// ParseStatus accepts a wire value ("doing") or a column header ("Doing"),
// case-insensitively. "in progress" is accepted as an alias of doing.
func ParseStatus(raw string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	switch normalized {
	case "in progress", "in-progress", "inprogress":
		return StatusDoing, nil
	}
	for _, s := range statusOrder {
		if normalized == string(s) || normalized == strings.ToLower(statusNames[s]) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
}
