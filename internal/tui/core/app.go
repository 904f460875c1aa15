package core

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/flke/flke/internal/app"
	"github.com/flke/flke/internal/tui"
	"github.com/flke/flke/internal/tui/components"
	"github.com/flke/flke/internal/tui/handlers"
	"github.com/flke/flke/internal/tui/modelops"
	"github.com/flke/flke/internal/tui/render"
)

// App wraps the TUI Model and implements the tea.Model interface.
// This is the single entry point for the Bubble Tea application.
type App struct {
	model *tui.Model
}

// New creates a new App over a started application. Styles follow the
// configured color scheme.
func New(ctx context.Context, a *app.App) *App {
	components.InitStyles(a.Config.ColorScheme)
	return &App{model: tui.InitialModel(ctx, a)}
}

// Init loads the board and the company records
func (a *App) Init() tea.Cmd {
	return modelops.InitialLoad(a.model)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, handlers.Update(a.model, msg)
}

func (a *App) View() tea.View {
	return render.View(a.model)
}

// GetModel returns the underlying Model.
// This is primarily useful for testing purposes.
func (a *App) GetModel() *tui.Model {
	return a.model
}
