package handlers

import (
	tea "charm.land/bubbletea/v2"
	"github.com/flke/flke/internal/tui"
	"github.com/flke/flke/internal/tui/state"
)

// Update is the main update dispatcher that handles all messages and updates the model.
// Remote results are applied in every mode; the open form gets everything else.
func Update(m *tui.Model, msg tea.Msg) tea.Cmd {
	select {
	case <-m.Ctx.Done():
		return tea.Quit
	default:
	}

	if cmd, handled := handleResult(m, msg); handled {
		return cmd
	}

	if size, ok := msg.(tea.WindowSizeMsg); ok {
		return HandleWindowResize(m, size)
	}

	if _, ok := msg.(tea.KeyPressMsg); ok {
		m.NotificationState.Clear()
	}

	switch m.UiState.Mode() {
	case state.TaskFormMode:
		return UpdateTaskForm(m, msg)
	case state.UserFormMode:
		return UpdateUserForm(m, msg)
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return HandleKeyMsg(m, msg)
	case tea.MouseClickMsg:
		return HandleMouseClick(m, msg)
	case tea.MouseMotionMsg:
		return HandleMouseMotion(m, msg)
	case tea.MouseReleaseMsg:
		return HandleMouseRelease(m, msg)
	}
	return nil
}

// HandleKeyMsg dispatches key messages to the appropriate mode handler.
func HandleKeyMsg(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	switch m.UiState.Mode() {
	case state.TaskDetailMode:
		return HandleTaskDetail(m, msg)
	case state.DeleteTaskConfirmMode:
		return HandleDeleteTaskConfirm(m, msg)
	case state.DeleteUserConfirmMode:
		return HandleDeleteUserConfirm(m, msg)
	case state.HelpMode:
		m.UiState.SetMode(state.NormalMode)
		return nil
	}
	return HandleNormalMode(m, msg)
}

// HandleWindowResize records the terminal size and keeps the focused card
// on screen. An open form is told about the new size too.
func HandleWindowResize(m *tui.Model, msg tea.WindowSizeMsg) tea.Cmd {
	m.UiState.SetWidth(msg.Width)
	m.UiState.SetHeight(msg.Height)
	ensureSelectionVisible(m)

	switch m.UiState.Mode() {
	case state.TaskFormMode:
		return UpdateTaskForm(m, msg)
	case state.UserFormMode:
		return UpdateUserForm(m, msg)
	}
	return nil
}
