package handlers

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/permissions"
	"github.com/flke/flke/internal/tui"
	"github.com/flke/flke/internal/tui/modelops"
	"github.com/flke/flke/internal/tui/state"
)

// HandleBoardKey handles keys on the task board
func HandleBoardKey(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	k := m.Keys
	switch {
	case key.Matches(msg, k.PrevColumn):
		return handleNavigateLeft(m)
	case key.Matches(msg, k.NextColumn):
		return handleNavigateRight(m)
	case key.Matches(msg, k.PrevTask):
		return handleNavigateUp(m)
	case key.Matches(msg, k.NextTask):
		return handleNavigateDown(m)
	case key.Matches(msg, k.Grab):
		return handleGrab(m)
	case key.Matches(msg, k.MoveLeft):
		return handleMoveTask(m, -1)
	case key.Matches(msg, k.MoveRight):
		return handleMoveTask(m, 1)
	case key.Matches(msg, k.AddTask):
		return handleAddTask(m)
	case key.Matches(msg, k.EditTask):
		return handleEditTask(m)
	case key.Matches(msg, k.ViewTask):
		return handleViewTask(m)
	case key.Matches(msg, k.DeleteTask):
		return handleDeleteTask(m)
	case key.Matches(msg, k.Refresh):
		return modelops.RefreshTasks(m)
	}
	return nil
}

func handleNavigateLeft(m *tui.Model) tea.Cmd {
	if m.UiState.SelectedColumn() == 0 {
		m.Notify(state.LevelInfo, "Already at the first column")
		return nil
	}
	m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() - 1)
	ensureSelectionVisible(m)
	return nil
}

func handleNavigateRight(m *tui.Model) tea.Cmd {
	if m.UiState.SelectedColumn() >= len(models.Statuses())-1 {
		m.Notify(state.LevelInfo, "Already at the last column")
		return nil
	}
	m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() + 1)
	ensureSelectionVisible(m)
	return nil
}

func handleNavigateUp(m *tui.Model) tea.Cmd {
	if m.UiState.SelectedTask() == 0 {
		return nil
	}
	m.UiState.SetSelectedTask(m.UiState.SelectedTask() - 1)
	ensureSelectionVisible(m)
	return nil
}

func handleNavigateDown(m *tui.Model) tea.Cmd {
	n := len(m.CurrentColumn())
	if m.UiState.SelectedTask() >= n-1 {
		return nil
	}
	m.UiState.SetSelectedTask(m.UiState.SelectedTask() + 1)
	ensureSelectionVisible(m)
	return nil
}

// ensureSelectionVisible clamps the task selection to the focused column
// and scrolls it into view
func ensureSelectionVisible(m *tui.Model) {
	m.UiState.ClampSelectedTask(len(m.CurrentColumn()))
	m.UiState.EnsureTaskVisible(m.UiState.SelectedStatus(), m.UiState.SelectedTask(), m.Layout().VisibleCards())
}

// focusTask moves the selection onto the task with id, wherever it is
func focusTask(m *tui.Model, t *models.Task) {
	if t == nil {
		return
	}
	for ci, s := range models.Statuses() {
		if s != t.Status {
			continue
		}
		m.UiState.SetSelectedColumn(ci)
		for i, ct := range m.Board.Column(s) {
			if ct.ID == t.ID {
				m.UiState.SetSelectedTask(i)
			}
		}
	}
	ensureSelectionVisible(m)
}

// requireAction reports whether the role holds action and raises a warning
// when it doesn't
func requireAction(m *tui.Model, action permissions.Action, message string) bool {
	if permissions.CanPerform(m.Role(), action) {
		return true
	}
	m.Notify(state.LevelWarning, message)
	return false
}

// busyTask reports whether t has a status change in flight
func busyTask(m *tui.Model, t *models.Task) bool {
	if p := m.Board.Pending(); p != nil && t != nil && p.TaskID == t.ID {
		m.Notify(state.LevelInfo, "Task is being moved, try again in a moment")
		return true
	}
	return false
}

func handleViewTask(m *tui.Model) tea.Cmd {
	task := m.CurrentTask()
	if task == nil {
		return nil
	}
	m.FormState.TaskRecord = task
	m.UiState.SetMode(state.TaskDetailMode)
	return nil
}

// HandleTaskDetail closes the read-only task view on any key. The edit key
// switches straight to the edit form.
func HandleTaskDetail(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	task := m.FormState.TaskRecord
	m.FormState.TaskRecord = nil
	m.UiState.SetMode(state.NormalMode)
	if key.Matches(msg, m.Keys.EditTask) && task != nil {
		return openEditTaskForm(m, task)
	}
	return nil
}

func handleDeleteTask(m *tui.Model) tea.Cmd {
	task := m.CurrentTask()
	if task == nil {
		m.Notify(state.LevelInfo, "No task selected")
		return nil
	}
	if !requireAction(m, permissions.DeleteTask, "You don't have permission to delete tasks") || busyTask(m, task) {
		return nil
	}
	m.FormState.TaskRecord = task
	m.UiState.SetMode(state.DeleteTaskConfirmMode)
	return nil
}
