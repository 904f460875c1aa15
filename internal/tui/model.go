package tui

import (
	"context"
	"time"

	"github.com/flke/flke/internal/app"
	"github.com/flke/flke/internal/board"
	"github.com/flke/flke/internal/config"
	"github.com/flke/flke/internal/menu"
	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/tui/state"
	"github.com/flke/flke/internal/types"
)

// Model represents the application state for the TUI. The update loop is
// its only writer; remote calls run as commands and report back through
// messages.
type Model struct {
	Ctx    context.Context
	App    *app.App
	Config *config.Config
	Keys   KeyMap

	Board *board.Board
	Menu  *menu.State

	UiState           *state.UIState
	NotificationState *state.NotificationState
	FormState         *state.FormState
	UsersState        *state.UsersState

	// Loaded is set once the first snapshot arrived
	Loaded bool
	// PendingRefresh is set when a task snapshot was refused during a commit
	PendingRefresh bool
	// DragPointer is the last pointer position of a mouse drag
	DragPointer struct{ X, Y int }
}

// InitialModel creates the TUI model over a started App
func InitialModel(ctx context.Context, a *app.App) *Model {
	return &Model{
		Ctx:               ctx,
		App:               a,
		Config:            a.Config,
		Keys:              NewKeyMap(a.Config.KeyMappings),
		Board:             board.New(nil),
		Menu:              menu.NewState(),
		UiState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
		FormState:         state.NewFormState(),
		UsersState:        state.NewUsersState(),
	}
}

// OpContext creates a child context bounded by the configured API timeout
func (m *Model) OpContext() (context.Context, context.CancelFunc) {
	timeout := m.Config.API.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(m.Ctx, timeout)
}

// Role returns the signed-in role
func (m *Model) Role() *models.Role {
	return m.App.Session.Role()
}

// Layout returns the screen geometry for the current terminal size
func (m *Model) Layout() Layout {
	return NewLayout(m.UiState.Width(), m.UiState.Height())
}

// CurrentColumn returns the tasks of the focused column
func (m *Model) CurrentColumn() []*models.Task {
	return m.Board.Column(m.UiState.SelectedStatus())
}

// CurrentTask returns the focused task, nil when the column is empty
func (m *Model) CurrentTask() *models.Task {
	tasks := m.CurrentColumn()
	idx := m.UiState.SelectedTask()
	if idx < 0 || idx >= len(tasks) {
		return nil
	}
	return tasks[idx]
}

// AssigneeName resolves a user id through the cached record set
func (m *Model) AssigneeName(id types.CompanyID) string {
	if !id.Valid() {
		return ""
	}
	for _, r := range m.App.Users.Records() {
		if r.ID == id {
			return r.Username
		}
	}
	return "#" + id.String()
}

// Notify adds a banner shown until the next key press
func (m *Model) Notify(level state.NotificationLevel, message string) {
	m.NotificationState.Add(level, message)
}
