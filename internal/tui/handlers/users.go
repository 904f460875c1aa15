package handlers

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/flke/flke/internal/menu"
	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/permissions"
	"github.com/flke/flke/internal/tui"
	"github.com/flke/flke/internal/tui/modelops"
	"github.com/flke/flke/internal/tui/state"
)

// members returns the rows of the users table in display order
func members(m *tui.Model) []*models.Company {
	return m.App.Users.Members(m.UsersState.Sort)
}

func selectedMember(m *tui.Model) *models.Company {
	rows := members(m)
	i := m.UsersState.SelectedRow()
	if i < 0 || i >= len(rows) {
		return nil
	}
	return rows[i]
}

// HandleUsersKey handles keys on the Users screen. The screen is only
// reachable with manageUsers; losing it sends the menu back to Tasks.
func HandleUsersKey(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	if !permissions.CanPerform(m.Role(), permissions.ManageUsers) {
		m.Menu.Reconcile(m.Role())
		m.Notify(state.LevelWarning, "You don't have permission to manage users")
		return nil
	}

	k := m.Keys
	switch {
	case key.Matches(msg, k.PrevTask):
		m.UsersState.MoveSelection(-1, len(members(m)))
	case key.Matches(msg, k.NextTask):
		m.UsersState.MoveSelection(1, len(members(m)))
	case key.Matches(msg, k.AddTask):
		m.App.Users.CancelEdit()
		return openUserForm(m, state.UserFormValues{}, false)
	case key.Matches(msg, k.EditTask):
		return handleEditUser(m)
	case key.Matches(msg, k.DeleteTask):
		return handleDeleteUser(m)
	case key.Matches(msg, k.SortUsers):
		m.UsersState.Sort = m.UsersState.Sort.Toggle()
	case key.Matches(msg, k.Refresh):
		return modelops.RefreshUsers(m)
	}
	return nil
}

func handleEditUser(m *tui.Model) tea.Cmd {
	member := selectedMember(m)
	if member == nil {
		m.Notify(state.LevelInfo, "No user selected")
		return nil
	}
	form, err := m.App.Users.BeginEdit(member.ID)
	if err != nil {
		m.Notify(state.LevelError, err.Error())
		return nil
	}
	return openUserForm(m, state.UserValuesFrom(form), true)
}

func handleDeleteUser(m *tui.Model) tea.Cmd {
	member := selectedMember(m)
	if member == nil {
		m.Notify(state.LevelInfo, "No user selected")
		return nil
	}
	m.UsersState.PendingDelete = member.ID
	m.UiState.SetMode(state.DeleteUserConfirmMode)
	return nil
}

// usersScreenOpen reports whether the Users screen is showing
func usersScreenOpen(m *tui.Model) bool {
	return m.Menu.Selected() == menu.RouteUsers
}
