package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/flke/flke/internal/api"
	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/permissions"
	taskservice "github.com/flke/flke/internal/services/task"
	userservice "github.com/flke/flke/internal/services/user"
	"github.com/flke/flke/internal/session"
)

// ErrUsage marks bad flags or arguments
var ErrUsage = errors.New("invalid usage")

// ExitError carries the process exit code for a failed command. The error
// has already been reported through the formatter.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps err to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return classify(err).exit
}

// Fail reports err through f and returns it wrapped with its exit code
func Fail(f *OutputFormatter, err error) error {
	c := classify(err)
	if fmtErr := f.ErrorWithSuggestion(c.code, err.Error(), c.suggestion); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return &ExitError{Code: c.exit, Err: err}
}

// Usage reports a usage problem with a fix the user can apply
func Usage(f *OutputFormatter, message, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion("USAGE", message, suggestion); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return &ExitError{Code: ExitUsage, Err: errors.New(message)}
}

type classification struct {
	code       string
	exit       int
	suggestion string
}

var validationErrors = []error{
	taskservice.ErrEmptyTitle,
	taskservice.ErrTitleTooLong,
	taskservice.ErrInvalidTaskID,
	taskservice.ErrInvalidStatus,
	taskservice.ErrInvalidAssignee,
	taskservice.ErrAlreadyInTargetState,
	userservice.ErrNameTooShort,
	userservice.ErrSurnameTooShort,
	userservice.ErrUsernameTooShort,
	userservice.ErrInvalidEmail,
	userservice.ErrEmptyPassword,
	userservice.ErrInvalidUserID,
	models.ErrUnknownStatus,
	models.ErrAlreadyFirstColumn,
	models.ErrAlreadyLastColumn,
}

func classify(err error) classification {
	switch {
	case errors.Is(err, ErrUsage):
		return classification{"USAGE", ExitUsage, "Run the command with --help to see its flags"}
	case errors.Is(err, permissions.ErrPermissionDenied):
		return classification{"PERMISSION_DENIED", ExitPermissionDenied, "Ask a company administrator to grant the capability"}
	case errors.Is(err, session.ErrNoCompany):
		return classification{"NO_COMPANY", ExitUsage, "Set a company with: eval $(flke use company <company-id>)"}
	case errors.Is(err, session.ErrUserNotFound):
		return classification{"USER_NOT_FOUND", ExitNotFound, "Check FLKE_USER_ID or run 'flke user list'"}
	case errors.Is(err, taskservice.ErrTaskNotFound), errors.Is(err, userservice.ErrUserNotFound), api.IsNotFound(err):
		return classification{"NOT_FOUND", ExitNotFound, ""}
	case errors.Is(err, userservice.ErrAlreadyRegistered), api.IsConflict(err):
		return classification{"ALREADY_REGISTERED", ExitDataErr, ""}
	case api.IsUnreachable(err):
		return classification{"STORE_UNREACHABLE", ExitFailure, "Start the development store with: flke store serve"}
	case api.IsValidation(err):
		return classification{"VALIDATION_ERROR", ExitValidation, ""}
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return classification{"VALIDATION_ERROR", ExitValidation, ""}
		}
	}
	return classification{"ERROR", ExitFailure, ""}
}
