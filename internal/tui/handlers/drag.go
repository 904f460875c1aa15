package handlers

import (
	"errors"
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/flke/flke/internal/board"
	"github.com/flke/flke/internal/menu"
	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/permissions"
	"github.com/flke/flke/internal/tui"
	"github.com/flke/flke/internal/tui/modelops"
	"github.com/flke/flke/internal/tui/state"
	"github.com/flke/flke/internal/types"
)

// handleGrab picks up the focused task. The hover target then follows the
// column keys until drop or cancel.
func handleGrab(m *tui.Model) tea.Cmd {
	task := m.CurrentTask()
	if task == nil {
		return nil
	}
	if err := m.Board.BeginDrag(task.ID, task.Status, m.UiState.SelectedTask()); err != nil {
		notifyDragError(m, err)
		return nil
	}
	m.UiState.SetKeyboardDrag(true)
	return nil
}

// HandleKeyboardDrag handles keys while a task is grabbed
func HandleKeyboardDrag(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	k := m.Keys
	drag := m.Board.Drag()
	if drag == nil {
		m.UiState.SetKeyboardDrag(false)
		return nil
	}

	switch {
	case key.Matches(msg, k.PrevColumn):
		hoverBy(m, drag, -1)
	case key.Matches(msg, k.NextColumn):
		hoverBy(m, drag, 1)
	case key.Matches(msg, k.Drop):
		m.UiState.SetKeyboardDrag(false)
		return drop(m, drag.TaskID, drag.Target)
	case key.Matches(msg, k.Cancel), key.Matches(msg, k.Grab):
		m.Board.CancelDrag()
		m.UiState.SetKeyboardDrag(false)
		if t, ok := m.Board.Task(drag.TaskID); ok {
			focusTask(m, t)
		}
	case key.Matches(msg, k.Quit):
		return tea.Quit
	}
	return nil
}

// hoverBy moves the drop target delta columns, staying on the board
func hoverBy(m *tui.Model, drag *board.Drag, delta int) {
	statuses := models.Statuses()
	idx := drag.Source.Index()
	if drag.Target != nil {
		idx = drag.Target.Index()
	}
	idx = min(max(idx+delta, 0), len(statuses)-1)
	target := statuses[idx]
	if err := m.Board.Hover(&target); err != nil {
		notifyDragError(m, err)
		return
	}
	m.UiState.SetSelectedColumn(idx)
}

// handleMoveTask moves the focused task one column over in a single step
func handleMoveTask(m *tui.Model, delta int) tea.Cmd {
	task := m.CurrentTask()
	if task == nil {
		return nil
	}
	statuses := models.Statuses()
	idx := task.Status.Index() + delta
	if idx < 0 {
		m.Notify(state.LevelInfo, "Already at the first column")
		return nil
	}
	if idx >= len(statuses) {
		m.Notify(state.LevelInfo, "Already at the last column")
		return nil
	}
	if err := m.Board.BeginDrag(task.ID, task.Status, m.UiState.SelectedTask()); err != nil {
		notifyDragError(m, err)
		return nil
	}
	target := statuses[idx]
	return drop(m, task.ID, &target)
}

// drop ends the drag on target and starts the remote commit when the
// board accepted the move
func drop(m *tui.Model, id types.TaskID, target *models.Status) tea.Cmd {
	current, ok := m.Board.Task(id)
	if !ok {
		m.Board.CancelDrag()
		return nil
	}

	outcome, commit, err := m.Board.EndDrag(target, permissions.CanPerform(m.Role(), permissions.ChangeStatus))
	if err != nil {
		notifyDragError(m, err)
		focusTask(m, current)
		return nil
	}

	switch outcome {
	case board.OutcomeRejected:
		m.Notify(state.LevelWarning, "You don't have permission to change task status")
		focusTask(m, current)
		return nil
	case board.OutcomeCommitting:
		if moved, ok := m.Board.Task(id); ok {
			focusTask(m, moved)
		}
		return modelops.CommitStatus(m, *commit, current)
	default:
		focusTask(m, current)
		return nil
	}
}

func notifyDragError(m *tui.Model, err error) {
	switch {
	case errors.Is(err, board.ErrCommitInFlight):
		m.Notify(state.LevelInfo, "A task is being moved, try again in a moment")
	default:
		slog.Error("drag failed", "error", err)
		m.Notify(state.LevelError, "Could not move task")
	}
}

// HandleMouseClick selects sidebar entries or picks up the card under the
// pointer
func HandleMouseClick(m *tui.Model, msg tea.MouseClickMsg) tea.Cmd {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft || m.UiState.Mode() != state.NormalMode || m.UiState.KeyboardDrag() {
		return nil
	}
	layout := m.Layout()

	items := menu.Items(m.Role())
	if i, ok := layout.MenuItemAt(mouse.X, mouse.Y, len(items)); ok {
		return openRoute(m, items[i].Route)
	}
	if m.Menu.Selected() != menu.RouteTasks {
		return nil
	}

	status, idx, ok := layout.CardAt(mouse.X, mouse.Y, m.UiState.TaskScrollOffset)
	if !ok {
		return nil
	}
	m.UiState.SetSelectedColumn(status.Index())
	tasks := m.Board.Column(status)
	if idx >= len(tasks) {
		ensureSelectionVisible(m)
		return nil
	}
	m.UiState.SetSelectedTask(idx)

	if err := m.Board.BeginDrag(tasks[idx].ID, status, idx); err != nil {
		notifyDragError(m, err)
		return nil
	}
	m.DragPointer.X, m.DragPointer.Y = mouse.X, mouse.Y
	return nil
}

// HandleMouseMotion moves the drag ghost and the hovered column
func HandleMouseMotion(m *tui.Model, msg tea.MouseMotionMsg) tea.Cmd {
	if m.Board.Phase() != board.PhaseDragging || m.UiState.KeyboardDrag() {
		return nil
	}
	mouse := msg.Mouse()
	m.DragPointer.X, m.DragPointer.Y = mouse.X, mouse.Y

	var target *models.Status
	if s, ok := m.Layout().ColumnAt(mouse.X, mouse.Y); ok {
		target = &s
	}
	if err := m.Board.Hover(target); err != nil {
		notifyDragError(m, err)
	}
	return nil
}

// HandleMouseRelease drops the dragged card on the column under the
// pointer. Released outside every column the card stays where it was.
func HandleMouseRelease(m *tui.Model, msg tea.MouseReleaseMsg) tea.Cmd {
	drag := m.Board.Drag()
	if drag == nil || m.UiState.KeyboardDrag() {
		return nil
	}
	mouse := msg.Mouse()

	var target *models.Status
	if s, ok := m.Layout().ColumnAt(mouse.X, mouse.Y); ok {
		target = &s
	}
	return drop(m, drag.TaskID, target)
}
