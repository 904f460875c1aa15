package modelops

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/flke/flke/internal/board"
	"github.com/flke/flke/internal/config"
	"github.com/flke/flke/internal/models"
	taskservice "github.com/flke/flke/internal/services/task"
	userservice "github.com/flke/flke/internal/services/user"
	"github.com/flke/flke/internal/tui"
	"github.com/flke/flke/internal/types"
)

// CommitStatus sends the status change of a drop. current is the task as it
// was before the drop.
func CommitStatus(m *tui.Model, commit board.Commit, current *models.Task) tea.Cmd {
	ctx, cancel := m.OpContext()
	a := m.App
	return func() tea.Msg {
		defer cancel()
		updated, err := a.TaskService.ChangeStatus(ctx, a.Session, current, commit.To)
		if err != nil {
			slog.Error("status update failed", "task_id", commit.TaskID, "from", commit.From, "to", commit.To, "error", err)
		}
		return tui.StatusCommittedMsg{Commit: commit, Task: updated, Err: err}
	}
}

// CreateTask sends the add form
func CreateTask(m *tui.Model, req taskservice.CreateTaskRequest) tea.Cmd {
	ctx, cancel := m.OpContext()
	a := m.App
	return func() tea.Msg {
		defer cancel()
		created, err := a.TaskService.Create(ctx, a.Session, req)
		if err != nil {
			slog.Error("task create failed", "error", err)
		}
		return tui.TaskSavedMsg{Task: created, Err: err}
	}
}

// UpdateTask sends the edit form
func UpdateTask(m *tui.Model, req taskservice.UpdateTaskRequest) tea.Cmd {
	ctx, cancel := m.OpContext()
	a := m.App
	return func() tea.Msg {
		defer cancel()
		updated, err := a.TaskService.Update(ctx, a.Session, req)
		if err != nil {
			slog.Error("task update failed", "task_id", req.TaskID, "error", err)
		}
		return tui.TaskSavedMsg{Task: updated, Editing: true, Err: err}
	}
}

// DeleteTask removes a confirmed task
func DeleteTask(m *tui.Model, id types.TaskID) tea.Cmd {
	ctx, cancel := m.OpContext()
	a := m.App
	return func() tea.Msg {
		defer cancel()
		err := a.TaskService.Delete(ctx, a.Session, id)
		if err != nil {
			slog.Error("task delete failed", "task_id", id, "error", err)
		}
		return tui.TaskDeletedMsg{TaskID: id, Err: err}
	}
}

// ExecuteUserPlan sends a resolved create or update. The manager's cached
// state is left to Complete on the update loop.
func ExecuteUserPlan(m *tui.Model, plan userservice.Plan) tea.Cmd {
	ctx, cancel := m.OpContext()
	users := m.App.Users
	return func() tea.Msg {
		defer cancel()
		rec, err := users.Execute(ctx, plan)
		return tui.UserSubmittedMsg{Plan: plan, Record: rec, Err: err}
	}
}

// DeleteUser removes a confirmed member
func DeleteUser(m *tui.Model, id types.CompanyID) tea.Cmd {
	ctx, cancel := m.OpContext()
	users := m.App.Users
	sess := m.App.Session
	return func() tea.Msg {
		defer cancel()
		return tui.UserDeletedMsg{Err: users.RemoveRemote(ctx, sess, id)}
	}
}

// saveConfig is replaced in tests to keep the user's config file untouched
var saveConfig = func(cfg *config.Config) error { return cfg.Save() }

// SaveSettings writes a copy of the config taken when the command is built.
// The settings screen keeps editing m.Config while the write runs.
func SaveSettings(m *tui.Model) tea.Cmd {
	snapshot := *m.Config
	return func() tea.Msg {
		err := saveConfig(&snapshot)
		if err != nil {
			slog.Error("failed to save config", "error", err)
		}
		return tui.SettingsSavedMsg{Preset: snapshot.ColorScheme.Preset, Err: err}
	}
}
