package render

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/flke/flke/internal/app"
	"github.com/flke/flke/internal/menu"
	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/session"
	"github.com/flke/flke/internal/testutil"
	"github.com/flke/flke/internal/tui"
	"github.com/flke/flke/internal/tui/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T) *tui.Model {
	t.Helper()
	store := testutil.NewFakeStore(1, "Acme")
	a := app.New(store, app.WithSession(session.New(store.Companies[0])))
	m := tui.InitialModel(context.Background(), a)
	m.UiState.SetWidth(120)
	m.UiState.SetHeight(40)
	m.Loaded = true
	require.NoError(t, m.Board.SetTasks([]*models.Task{
		{ID: 1, Title: "Draft the roadmap", Status: models.StatusTodo, CompanyID: 1},
		{ID: 2, Title: "Set up CI", Status: models.StatusDoing, CompanyID: 1},
	}))
	return m
}

func TestView_WaitsForSize(t *testing.T) {
	m := newModel(t)
	m.UiState.SetWidth(0)
	assert.Equal(t, "Loading...", View(m).Content)
}

func TestView_Board(t *testing.T) {
	m := newModel(t)
	v := View(m)

	assert.True(t, v.AltScreen)
	assert.Equal(t, tea.MouseModeCellMotion, v.MouseMode)
	assert.Contains(t, v.Content, "Acme")
	assert.Contains(t, v.Content, "Todo (1)")
	assert.Contains(t, v.Content, "Doing (1)")
	assert.Contains(t, v.Content, "Done (0)")
	assert.Contains(t, v.Content, "Draft the roadmap")
}

func TestViewScreen_FillsTerminal(t *testing.T) {
	m := newModel(t)
	screen := ViewScreen(m)
	assert.Equal(t, 40, lipgloss.Height(screen))
}

func TestView_Overlays(t *testing.T) {
	m := newModel(t)

	m.UiState.SetMode(state.DeleteTaskConfirmMode)
	assert.Contains(t, View(m).Content, "Are you sure for delete?")

	m.UiState.SetMode(state.HelpMode)
	assert.Contains(t, View(m).Content, "Keyboard Shortcuts")

	m.UiState.SetMode(state.NormalMode)
	m.Notify(state.LevelError, "Failed to move task")
	assert.Contains(t, View(m).Content, "Failed to move task")
}

func TestView_DragGhost(t *testing.T) {
	m := newModel(t)
	require.NoError(t, m.Board.BeginDrag(1, models.StatusTodo, 0))
	m.DragPointer.X, m.DragPointer.Y = 70, 20

	assert.NotNil(t, RenderDragGhostLayer(m))

	m.UiState.SetKeyboardDrag(true)
	assert.Nil(t, RenderDragGhostLayer(m), "keyboard drags highlight the column instead")
}

func TestView_Screens(t *testing.T) {
	m := newModel(t)

	require.True(t, m.Menu.Select(m.Role(), menu.RouteUsers))
	assert.Contains(t, View(m).Content, "No users yet")

	require.True(t, m.Menu.Select(m.Role(), menu.RouteSettings))
	content := View(m).Content
	assert.Contains(t, content, "Theme")
	assert.Contains(t, content, "monochrome")
}
