package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnreachable wraps transport failures (DNS, refused connection, timeout)
var ErrUnreachable = errors.New("remote store unreachable")

// Error is a non-2xx response from the remote store
type Error struct {
	Status  int
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("remote store: %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("remote store: %d %s", e.Status, http.StatusText(e.Status))
}

// IsNotFound reports whether err is a 404 from the store
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsConflict reports whether err is a uniqueness rejection from the store
func IsConflict(err error) bool {
	return hasStatus(err, http.StatusConflict)
}

// IsValidation reports whether the store rejected the request body
func IsValidation(err error) bool {
	return hasStatus(err, http.StatusBadRequest) || hasStatus(err, http.StatusUnprocessableEntity)
}

func hasStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}
