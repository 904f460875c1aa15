package handlers

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/flke/flke/internal/menu"
	"github.com/flke/flke/internal/tui"
	"github.com/flke/flke/internal/tui/modelops"
	"github.com/flke/flke/internal/tui/state"
)

// HandleNormalMode handles keys shared by every screen, then hands the rest
// to the selected screen.
func HandleNormalMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	k := m.Keys

	if m.UiState.KeyboardDrag() {
		return HandleKeyboardDrag(m, msg)
	}

	switch {
	case key.Matches(msg, k.Quit):
		return tea.Quit
	case key.Matches(msg, k.Help):
		m.UiState.SetMode(state.HelpMode)
		return nil
	case key.Matches(msg, k.NextScreen):
		return switchScreen(m, 1)
	case key.Matches(msg, k.PrevScreen):
		return switchScreen(m, -1)
	}

	switch m.Menu.Selected() {
	case menu.RouteUsers:
		return HandleUsersKey(m, msg)
	case menu.RouteSettings:
		return HandleSettingsKey(m, msg)
	default:
		return HandleBoardKey(m, msg)
	}
}

// switchScreen moves the sidebar selection. Entering Users fetches a fresh
// record set.
func switchScreen(m *tui.Model, delta int) tea.Cmd {
	return openRoute(m, m.Menu.Move(m.Role(), delta))
}

func openRoute(m *tui.Model, route menu.Route) tea.Cmd {
	if m.Board.Drag() != nil {
		m.Board.CancelDrag()
		m.UiState.SetKeyboardDrag(false)
	}
	if !m.Menu.Select(m.Role(), route) {
		m.Notify(state.LevelWarning, "You don't have access to this screen")
		return nil
	}
	if route == menu.RouteUsers {
		return modelops.RefreshUsers(m)
	}
	return nil
}
