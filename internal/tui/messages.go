package tui

import (
	"github.com/flke/flke/internal/board"
	"github.com/flke/flke/internal/models"
	userservice "github.com/flke/flke/internal/services/user"
	"github.com/flke/flke/internal/types"
)

// LoadedMsg carries the initial task and user snapshots
type LoadedMsg struct {
	Tasks   []*models.Task
	Records []*models.Company
	Err     error
}

// TasksLoadedMsg carries a refreshed task snapshot
type TasksLoadedMsg struct {
	Tasks []*models.Task
	Err   error
}

// UsersLoadedMsg carries a refreshed company record set
type UsersLoadedMsg struct {
	Records []*models.Company
	Err     error
}

// StatusCommittedMsg is the remote result of a drop
type StatusCommittedMsg struct {
	Commit board.Commit
	Task   *models.Task
	Err    error
}

// TaskSavedMsg is the remote result of the task modal
type TaskSavedMsg struct {
	Task    *models.Task
	Editing bool
	Err     error
}

// TaskDeletedMsg is the remote result of a confirmed task delete
type TaskDeletedMsg struct {
	TaskID types.TaskID
	Err    error
}

// UserSubmittedMsg is the remote result of an executed user plan
type UserSubmittedMsg struct {
	Plan   userservice.Plan
	Record *models.Company
	Err    error
}

// UserDeletedMsg is the remote result of a confirmed user delete
type UserDeletedMsg struct {
	Err error
}

// SettingsSavedMsg reports the config write of the settings screen
type SettingsSavedMsg struct {
	Preset string
	Err    error
}
