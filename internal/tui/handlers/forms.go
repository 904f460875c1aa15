package handlers

import (
	"log/slog"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/permissions"
	taskservice "github.com/flke/flke/internal/services/task"
	userservice "github.com/flke/flke/internal/services/user"
	"github.com/flke/flke/internal/tui"
	"github.com/flke/flke/internal/tui/huhforms"
	"github.com/flke/flke/internal/tui/modelops"
	"github.com/flke/flke/internal/tui/state"
)

// formWidth is the width of the modal forms, bounded by the terminal
func formWidth(m *tui.Model) int {
	w := m.UiState.Width() * 3 / 5
	return min(max(w, 40), 90)
}

// prepareForm applies the shared theme and size to a new form and starts it
func prepareForm(m *tui.Model, f *huh.Form) (*huh.Form, tea.Cmd) {
	f = f.WithTheme(huhforms.CreateFlkeTheme(m.Config.ColorScheme)).WithWidth(formWidth(m))
	return f, f.Init()
}

func handleAddTask(m *tui.Model) tea.Cmd {
	if !requireAction(m, permissions.AddTask, "You don't have permission to add tasks") {
		return nil
	}
	m.FormState.ResetTaskForm()
	m.FormState.Task.Status = m.UiState.SelectedStatus()

	form, cmd := prepareForm(m, huhforms.CreateTaskForm(&m.FormState.Task, huhforms.TaskFormOptions{
		Members: m.App.Users.Members(userservice.SortAscending),
	}))
	m.FormState.TaskForm = form
	m.App.Session.OpenModal(0)
	m.UiState.SetMode(state.TaskFormMode)
	return cmd
}

func handleEditTask(m *tui.Model) tea.Cmd {
	task := m.CurrentTask()
	if task == nil {
		m.Notify(state.LevelInfo, "No task selected")
		return nil
	}
	return openEditTaskForm(m, task)
}

func openEditTaskForm(m *tui.Model, task *models.Task) tea.Cmd {
	if !requireAction(m, permissions.EditTask, "You don't have permission to edit tasks") || busyTask(m, task) {
		return nil
	}
	m.FormState.ResetTaskForm()
	m.FormState.TaskRecord = task
	m.FormState.Task = state.TaskFormValues{
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		AssigneeID:  task.AssigneeID,
	}

	form, cmd := prepareForm(m, huhforms.CreateTaskForm(&m.FormState.Task, huhforms.TaskFormOptions{
		Editing: true,
		Members: m.App.Users.Members(userservice.SortAscending),
	}))
	m.FormState.TaskForm = form
	m.App.Session.OpenModal(task.ID)
	m.UiState.SetMode(state.TaskFormMode)
	return cmd
}

func closeTaskForm(m *tui.Model) {
	m.FormState.ResetTaskForm()
	m.App.Session.CloseModal()
	m.UiState.SetMode(state.NormalMode)
}

// UpdateTaskForm forwards msg to the task modal. Esc closes it without
// saving; the save key submits from any field.
func UpdateTaskForm(m *tui.Model, msg tea.Msg) tea.Cmd {
	if m.FormState.TaskForm == nil {
		closeTaskForm(m)
		return nil
	}
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case key.Matches(keyMsg, m.Keys.Cancel):
			closeTaskForm(m)
			return nil
		case key.Matches(keyMsg, m.Keys.Save):
			if validateTaskValues(m.FormState.Task) != nil {
				m.Notify(state.LevelWarning, "Title is required")
				return nil
			}
			m.FormState.Task.Confirm = true
			return submitTaskForm(m)
		}
	}

	model, cmd := m.FormState.TaskForm.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.FormState.TaskForm = f
	}

	switch m.FormState.TaskForm.State {
	case huh.StateCompleted:
		return tea.Batch(cmd, submitTaskForm(m))
	case huh.StateAborted:
		closeTaskForm(m)
	}
	return cmd
}

func validateTaskValues(v state.TaskFormValues) error {
	if strings.TrimSpace(v.Title) == "" {
		return taskservice.ErrEmptyTitle
	}
	return nil
}

// submitTaskForm closes the modal and sends its values. A declined confirm
// discards them.
func submitTaskForm(m *tui.Model) tea.Cmd {
	values := m.FormState.Task
	record := m.FormState.TaskRecord
	closeTaskForm(m)

	if !values.Confirm {
		return nil
	}
	title := strings.TrimSpace(values.Title)

	if record == nil {
		return modelops.CreateTask(m, taskservice.CreateTaskRequest{
			Title:       title,
			Description: values.Description,
			Status:      values.Status,
			AssigneeID:  values.AssigneeID,
		})
	}

	// the board copy carries the status, the form never changes it
	status := record.Status
	if current, ok := m.Board.Task(record.ID); ok {
		status = current.Status
	}
	return modelops.UpdateTask(m, taskservice.UpdateTaskRequest{
		TaskID:      record.ID,
		Title:       title,
		Description: values.Description,
		Status:      status,
		AssigneeID:  values.AssigneeID,
	})
}

func openUserForm(m *tui.Model, values state.UserFormValues, editing bool) tea.Cmd {
	m.FormState.ResetUserForm()
	m.FormState.User = values
	form, cmd := prepareForm(m, huhforms.CreateUserForm(&m.FormState.User, editing))
	m.FormState.UserForm = form
	m.UiState.SetMode(state.UserFormMode)
	return cmd
}

func closeUserForm(m *tui.Model) {
	m.FormState.ResetUserForm()
	m.UiState.SetMode(state.NormalMode)
}

// UpdateUserForm forwards msg to the user form. Esc abandons the edit.
func UpdateUserForm(m *tui.Model, msg tea.Msg) tea.Cmd {
	if m.FormState.UserForm == nil {
		closeUserForm(m)
		return nil
	}
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(keyMsg, m.Keys.Cancel) {
		m.App.Users.CancelEdit()
		closeUserForm(m)
		return nil
	}

	model, cmd := m.FormState.UserForm.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.FormState.UserForm = f
	}

	switch m.FormState.UserForm.State {
	case huh.StateCompleted:
		return tea.Batch(cmd, submitUserForm(m))
	case huh.StateAborted:
		m.App.Users.CancelEdit()
		closeUserForm(m)
	}
	return cmd
}

// submitUserForm resolves the submit against the cached record set. A
// rejected plan never reaches the store.
func submitUserForm(m *tui.Model) tea.Cmd {
	values := m.FormState.User
	closeUserForm(m)

	users := m.App.Users
	if !values.Confirm {
		users.CancelEdit()
		return nil
	}

	form := values.Form()
	users.SetForm(form)
	plan, err := users.Plan(m.App.Session, form)
	if err != nil {
		slog.Warn("user form refused", "error", err)
		users.CancelEdit()
		m.Notify(state.LevelError, err.Error())
		return nil
	}
	if plan.Kind == userservice.PlanReject {
		notice, _ := users.Complete(plan, nil, nil)
		// a rejected edit also drops its target; the form closes with it
		users.CancelEdit()
		notifyNotice(m, notice)
		return nil
	}
	return modelops.ExecuteUserPlan(m, plan)
}

// notifyNotice raises a user-screen notice as a banner
func notifyNotice(m *tui.Model, n userservice.Notice) {
	level := state.LevelInfo
	switch n.Level {
	case userservice.LevelWarning:
		level = state.LevelWarning
	case userservice.LevelError:
		level = state.LevelError
	}
	m.Notify(level, n.String())
}
