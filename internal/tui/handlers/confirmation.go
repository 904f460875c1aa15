package handlers

import (
	tea "charm.land/bubbletea/v2"
	"github.com/flke/flke/internal/tui"
	"github.com/flke/flke/internal/tui/modelops"
	"github.com/flke/flke/internal/tui/state"
)

func confirmed(msg tea.KeyPressMsg) (yes, no bool) {
	switch msg.String() {
	case "y", "Y", "enter":
		return true, false
	case "n", "N", "esc":
		return false, true
	}
	return false, false
}

// HandleDeleteTaskConfirm handles task deletion confirmation.
func HandleDeleteTaskConfirm(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	yes, no := confirmed(msg)
	if !yes && !no {
		return nil
	}
	task := m.FormState.TaskRecord
	m.FormState.TaskRecord = nil
	m.UiState.SetMode(state.NormalMode)
	if no || task == nil {
		return nil
	}
	return modelops.DeleteTask(m, task.ID)
}

// HandleDeleteUserConfirm handles member deletion confirmation.
func HandleDeleteUserConfirm(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	yes, no := confirmed(msg)
	if !yes && !no {
		return nil
	}
	id := m.UsersState.PendingDelete
	m.UsersState.PendingDelete = 0
	m.UiState.SetMode(state.NormalMode)
	if no || !id.Valid() {
		return nil
	}
	return modelops.DeleteUser(m, id)
}
