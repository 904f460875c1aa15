package handlers

import (
	"errors"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/flke/flke/internal/board"
	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/tui"
	"github.com/flke/flke/internal/tui/modelops"
	"github.com/flke/flke/internal/tui/state"
)

// handleResult applies the messages sent back by modelops commands
func handleResult(m *tui.Model, msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tui.LoadedMsg:
		return handleLoaded(m, msg), true
	case tui.TasksLoadedMsg:
		return handleTasksLoaded(m, msg), true
	case tui.UsersLoadedMsg:
		return handleUsersLoaded(m, msg), true
	case tui.StatusCommittedMsg:
		return handleStatusCommitted(m, msg), true
	case tui.TaskSavedMsg:
		return handleTaskSaved(m, msg), true
	case tui.TaskDeletedMsg:
		return handleTaskDeleted(m, msg), true
	case tui.UserSubmittedMsg:
		return handleUserSubmitted(m, msg), true
	case tui.UserDeletedMsg:
		return handleUserDeleted(m, msg), true
	case tui.SettingsSavedMsg:
		return handleSettingsSaved(m, msg), true
	}
	return nil, false
}

func handleLoaded(m *tui.Model, msg tui.LoadedMsg) tea.Cmd {
	m.Loaded = true
	if msg.Err != nil {
		slog.Error("initial load failed", "error", msg.Err)
		m.Notify(state.LevelError, "Failed to load the board")
		return nil
	}
	m.App.Users.SetRecords(msg.Records)
	return applySnapshot(m, msg.Tasks)
}

func handleTasksLoaded(m *tui.Model, msg tui.TasksLoadedMsg) tea.Cmd {
	if msg.Err != nil {
		slog.Error("task refresh failed", "error", msg.Err)
		m.Notify(state.LevelError, "Failed to refresh tasks")
		return nil
	}
	return applySnapshot(m, msg.Tasks)
}

// applySnapshot replaces the board tasks. While a status change is in
// flight the snapshot is dropped and fetched again after it lands.
func applySnapshot(m *tui.Model, tasks []*models.Task) tea.Cmd {
	if err := m.Board.SetTasks(tasks); err != nil {
		if errors.Is(err, board.ErrCommitInFlight) {
			m.PendingRefresh = true
			return nil
		}
		slog.Error("rejected task snapshot", "error", err)
		m.Notify(state.LevelError, "Received an invalid task list")
		return nil
	}
	if d := m.Board.Drag(); d == nil && m.UiState.KeyboardDrag() {
		m.UiState.SetKeyboardDrag(false)
	}
	ensureSelectionVisible(m)
	return nil
}

func handleUsersLoaded(m *tui.Model, msg tui.UsersLoadedMsg) tea.Cmd {
	if msg.Err != nil {
		slog.Error("user refresh failed", "error", msg.Err)
		m.Notify(state.LevelError, "Failed to load users")
		return nil
	}
	m.App.Users.SetRecords(msg.Records)
	if usersScreenOpen(m) {
		m.UsersState.ClampSelection(len(members(m)))
	}
	return nil
}

// handleStatusCommitted settles the optimistic move. A failed request
// puts the task back in its source column.
func handleStatusCommitted(m *tui.Model, msg tui.StatusCommittedMsg) tea.Cmd {
	if err := m.Board.Acknowledge(msg.Commit, msg.Task, msg.Err); err != nil {
		slog.Warn("stale status result", "task_id", msg.Commit.TaskID, "error", err)
		return nil
	}
	if msg.Err != nil {
		m.Notify(state.LevelError, "Failed to move task, it was put back in "+msg.Commit.From.DisplayName())
	}
	ensureSelectionVisible(m)

	if m.PendingRefresh {
		m.PendingRefresh = false
		return modelops.RefreshTasks(m)
	}
	return nil
}

func handleTaskSaved(m *tui.Model, msg tui.TaskSavedMsg) tea.Cmd {
	if msg.Err != nil {
		m.Notify(state.LevelError, "Failed to save task")
		return nil
	}
	m.Board.Upsert(msg.Task)
	focusTask(m, msg.Task)
	if msg.Editing {
		m.Notify(state.LevelInfo, "Task updated")
	} else {
		m.Notify(state.LevelInfo, "Task added")
	}
	return nil
}

func handleTaskDeleted(m *tui.Model, msg tui.TaskDeletedMsg) tea.Cmd {
	if msg.Err != nil {
		m.Notify(state.LevelError, "Failed to delete task")
		return nil
	}
	m.Board.Remove(msg.TaskID)
	ensureSelectionVisible(m)
	m.Notify(state.LevelInfo, "Task deleted")
	return nil
}

// handleUserSubmitted reports a user write. The list is fetched again only
// after the write succeeded.
func handleUserSubmitted(m *tui.Model, msg tui.UserSubmittedMsg) tea.Cmd {
	notice, refresh := m.App.Users.Complete(msg.Plan, msg.Record, msg.Err)
	if msg.Err != nil {
		m.App.Users.CancelEdit()
	}
	notifyNotice(m, notice)
	if refresh {
		return modelops.RefreshUsers(m)
	}
	return nil
}

func handleUserDeleted(m *tui.Model, msg tui.UserDeletedMsg) tea.Cmd {
	notice, refresh := m.App.Users.CompleteDelete(msg.Err)
	notifyNotice(m, notice)
	if refresh {
		return modelops.RefreshUsers(m)
	}
	return nil
}

func handleSettingsSaved(m *tui.Model, msg tui.SettingsSavedMsg) tea.Cmd {
	if msg.Err != nil {
		m.Notify(state.LevelError, "Failed to save settings")
		return nil
	}
	m.Notify(state.LevelInfo, "Settings saved")
	return nil
}
