package render

import (
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"github.com/flke/flke/internal/board"
	"github.com/flke/flke/internal/menu"
	"github.com/flke/flke/internal/tui"
	"github.com/flke/flke/internal/tui/components"
	"github.com/flke/flke/internal/types"
)

// ViewBoard renders the three status columns side by side
func ViewBoard(m *tui.Model) string {
	layout := m.Layout()
	if !m.Loaded {
		return components.SubtleStyle.Render("  Loading tasks...")
	}

	drag := m.Board.Drag()
	var dragging types.TaskID
	if drag != nil {
		dragging = drag.TaskID
	}

	var cols []string
	for i, view := range m.Board.Columns(m.Role()) {
		focused := i == m.UiState.SelectedColumn()
		selected := -1
		if focused {
			selected = m.UiState.SelectedTask()
		}
		cols = append(cols, components.RenderColumn(components.ColumnProps{
			View:         view,
			Width:        layout.ColumnWidth(),
			Height:       layout.BodyHeight(),
			Focused:      focused,
			SelectedTask: selected,
			ScrollOffset: m.UiState.TaskScrollOffset(view.Status),
			VisibleCards: layout.VisibleCards(),
			DropTarget:   isDropTarget(drag, view),
			Dragging:     dragging,
			Assignee:     m.AssigneeName,
		}))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// isDropTarget reports whether the drag hovers view and may land there
func isDropTarget(drag *board.Drag, view board.ColumnView) bool {
	return drag != nil && drag.Target != nil && *drag.Target == view.Status &&
		view.Status != drag.Source && view.AcceptsDrop
}

func footerBindings(m *tui.Model) []key.Binding {
	if m.Board.Drag() != nil && m.UiState.KeyboardDrag() {
		return m.Keys.DragHelp()
	}
	switch m.Menu.Selected() {
	case menu.RouteUsers:
		return m.Keys.UsersHelp()
	case menu.RouteSettings:
		return m.Keys.SettingsHelp()
	default:
		return m.Keys.BoardHelp()
	}
}
