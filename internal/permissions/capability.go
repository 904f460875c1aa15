// Package permissions centralizes role capability checks. Board, menu, user
// screen, CLI and services all ask CanPerform instead of reading role flags.
package permissions

import (
	"errors"
	"fmt"

	"github.com/flke/flke/internal/models"
)

// Action is a capability-gated operation
type Action int

const (
	ManageUsers Action = iota // Users screen and user CRUD (role.admin)
	AddTask
	EditTask
	DeleteTask
	ChangeStatus
	ChangeSettings
)

// ErrPermissionDenied is returned by Require when the role lacks the capability
var ErrPermissionDenied = errors.New("permission denied")

var actionNames = map[Action]string{
	ManageUsers:    "manage users",
	AddTask:        "add task",
	EditTask:       "edit task",
	DeleteTask:     "delete task",
	ChangeStatus:   "change status",
	ChangeSettings: "change settings",
}

// String returns a human readable action name used in notifications
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// CanPerform reports whether role grants action. A nil role grants nothing.
// Admin only unlocks ManageUsers; every other flag is independent.
func CanPerform(role *models.Role, action Action) bool {
	if role == nil {
		return false
	}
	switch action {
	case ManageUsers:
		return role.Admin
	case AddTask:
		return role.AddTask
	case EditTask:
		return role.EditTask
	case DeleteTask:
		return role.DeleteTask
	case ChangeStatus:
		return role.ChangeStatus
	case ChangeSettings:
		return role.ChangeSettings
	default:
		return false
	}
}

// Require returns ErrPermissionDenied, annotated with the action, when the
// role does not grant it
func Require(role *models.Role, action Action) error {
	if CanPerform(role, action) {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrPermissionDenied, action)
}
