package modelops

import (
	tea "charm.land/bubbletea/v2"
	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/tui"
	"golang.org/x/sync/errgroup"
)

// InitialLoad fetches the task snapshot and the company record set in
// parallel. Both are needed before the board can show assignees.
func InitialLoad(m *tui.Model) tea.Cmd {
	ctx, cancel := m.OpContext()
	a := m.App
	return func() tea.Msg {
		defer cancel()

		var tasks []*models.Task
		var records []*models.Company
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			tasks, err = a.TaskService.List(gctx, a.Session)
			return err
		})
		g.Go(func() error {
			var err error
			records, err = a.Users.Fetch(gctx, a.Session)
			return err
		})
		if err := g.Wait(); err != nil {
			return tui.LoadedMsg{Err: err}
		}
		return tui.LoadedMsg{Tasks: tasks, Records: records}
	}
}

// RefreshTasks fetches a fresh task snapshot
func RefreshTasks(m *tui.Model) tea.Cmd {
	ctx, cancel := m.OpContext()
	a := m.App
	return func() tea.Msg {
		defer cancel()
		tasks, err := a.TaskService.List(ctx, a.Session)
		return tui.TasksLoadedMsg{Tasks: tasks, Err: err}
	}
}

// RefreshUsers fetches the company record set
func RefreshUsers(m *tui.Model) tea.Cmd {
	ctx, cancel := m.OpContext()
	a := m.App
	return func() tea.Msg {
		defer cancel()
		records, err := a.Users.Fetch(ctx, a.Session)
		return tui.UsersLoadedMsg{Records: records, Err: err}
	}
}
