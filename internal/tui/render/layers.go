package render

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"github.com/flke/flke/internal/tui"
	"github.com/flke/flke/internal/tui/components"
	"github.com/flke/flke/internal/tui/layers"
	"github.com/flke/flke/internal/tui/notifications"
	"github.com/flke/flke/internal/tui/state"
)

// RenderModalLayer renders the overlay of the current mode, nil in normal mode
func RenderModalLayer(m *tui.Model) *lipgloss.Layer {
	var content string
	switch m.UiState.Mode() {
	case state.TaskFormMode:
		content = renderTaskForm(m)
	case state.UserFormMode:
		content = renderUserForm(m)
	case state.TaskDetailMode:
		content = renderTaskDetail(m)
	case state.DeleteTaskConfirmMode, state.DeleteUserConfirmMode:
		content = renderDeleteConfirm()
	case state.HelpMode:
		content = renderHelp(m)
	default:
		return nil
	}
	return layers.CreateCenteredLayer(content, m.UiState.Width(), m.UiState.Height())
}

func renderTaskForm(m *tui.Model) string {
	if m.FormState.TaskForm == nil {
		return ""
	}
	title := "New Task"
	if m.App.Session.ModalData.Editing {
		title = "Edit Task"
	}
	return components.FormBoxStyle.Render(components.TitleStyle.Render(title) + "\n\n" + m.FormState.TaskForm.View())
}

func renderUserForm(m *tui.Model) string {
	if m.FormState.UserForm == nil {
		return ""
	}
	title := "Add User"
	if _, editing := m.App.Users.Editing(); editing {
		title = "Edit User"
	}
	return components.FormBoxStyle.Render(components.TitleStyle.Render(title) + "\n\n" + m.FormState.UserForm.View())
}

func renderTaskDetail(m *tui.Model) string {
	task := m.FormState.TaskRecord
	if task == nil {
		return ""
	}
	width := min(max(m.UiState.Width()*3/5, 40), 100)
	return components.DetailBoxStyle.Render(components.RenderTaskDetail(task, m.AssigneeName(task.AssigneeID), width))
}

func renderDeleteConfirm() string {
	return components.DeleteConfirmBoxStyle.Render(
		components.TitleStyle.Render("Are you sure for delete?") + "\n\n" +
			components.SubtleStyle.Render("[y]es  [n]o"),
	)
}

func renderHelp(m *tui.Model) string {
	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("Keyboard Shortcuts"))
	sections := []struct {
		title    string
		bindings []key.Binding
	}{
		{"Board", m.Keys.BoardHelp()},
		{"Dragging", m.Keys.DragHelp()},
		{"Users", m.Keys.UsersHelp()},
		{"Settings", m.Keys.SettingsHelp()},
	}
	for _, s := range sections {
		b.WriteString("\n\n")
		b.WriteString(components.SubtleStyle.Render(s.title))
		for _, kb := range s.bindings {
			h := kb.Help()
			b.WriteString("\n  " + lipgloss.NewStyle().Width(12).Render(h.Key) + h.Desc)
		}
	}
	b.WriteString("\n\n")
	b.WriteString(components.SubtleStyle.Render("Mouse: drag a card onto another column"))
	return components.HelpBoxStyle.Render(b.String())
}

// RenderNotificationLayer shows the latest notification in the top-right corner
func RenderNotificationLayer(m *tui.Model) *lipgloss.Layer {
	n, ok := m.NotificationState.Latest()
	if !ok {
		return nil
	}
	return layers.CreateTopRightLayer(notifications.RenderFromState(n), m.UiState.Width(), tui.HeaderHeight)
}

// RenderDragGhostLayer draws the dragged card under the mouse pointer
func RenderDragGhostLayer(m *tui.Model) *lipgloss.Layer {
	drag := m.Board.Drag()
	if drag == nil || m.UiState.KeyboardDrag() {
		return nil
	}
	task, ok := m.Board.Task(drag.TaskID)
	if !ok {
		return nil
	}
	card := components.RenderTask(task, m.AssigneeName(task.AssigneeID), m.Layout().ColumnWidth()-2, components.CardDragging)
	return layers.CreatePointerLayer(card, m.DragPointer.X, m.DragPointer.Y, m.UiState.Width(), m.UiState.Height())
}
