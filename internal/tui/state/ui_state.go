package state

import "github.com/flke/flke/internal/models"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode            Mode = iota // Default navigation mode
	TaskFormMode                      // Add/edit task modal with huh
	TaskDetailMode                    // Read-only task view with rendered description
	DeleteTaskConfirmMode             // Confirming task deletion
	UserFormMode                      // Create/edit user form with huh
	DeleteUserConfirmMode             // Confirming user deletion
	HelpMode                          // Displaying help screen
)

// UIState manages the user interface state.
// This includes board navigation, per-column scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	width  int
	height int
	mode   Mode

	// selectedColumn is the index of the focused status column
	selectedColumn int

	// selectedTask is the index of the focused task within that column
	selectedTask int

	// taskScrollOffsets holds the index of the first visible card per column
	taskScrollOffsets map[models.Status]int

	// keyboardDrag is set while a drag started with the grab key is active
	keyboardDrag bool
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:              NormalMode,
		taskScrollOffsets: make(map[models.Status]int),
	}
}

func (s *UIState) Width() int  { return s.width }
func (s *UIState) Height() int { return s.height }

func (s *UIState) SetWidth(w int)  { s.width = max(w, 0) }
func (s *UIState) SetHeight(h int) { s.height = max(h, 0) }

func (s *UIState) Mode() Mode { return s.mode }

func (s *UIState) SetMode(mode Mode) { s.mode = mode }

func (s *UIState) SelectedColumn() int { return s.selectedColumn }

// SetSelectedColumn focuses column idx, clamped to the status set, and
// resets the task selection
func (s *UIState) SetSelectedColumn(idx int) {
	idx = min(max(idx, 0), len(models.Statuses())-1)
	if idx != s.selectedColumn {
		s.selectedTask = 0
	}
	s.selectedColumn = idx
}

// SelectedStatus returns the status of the focused column
func (s *UIState) SelectedStatus() models.Status {
	return models.Statuses()[s.selectedColumn]
}

func (s *UIState) SelectedTask() int { return s.selectedTask }

// SetSelectedTask focuses task idx of the column, never below zero
func (s *UIState) SetSelectedTask(idx int) {
	s.selectedTask = max(idx, 0)
}

// ClampSelectedTask keeps the task selection within a column of n tasks
func (s *UIState) ClampSelectedTask(n int) {
	if n == 0 {
		s.selectedTask = 0
		return
	}
	s.selectedTask = min(max(s.selectedTask, 0), n-1)
}

func (s *UIState) TaskScrollOffset(status models.Status) int {
	return s.taskScrollOffsets[status]
}

func (s *UIState) SetTaskScrollOffset(status models.Status, offset int) {
	s.taskScrollOffsets[status] = max(offset, 0)
}

// EnsureTaskVisible scrolls column status so that task idx is among the
// visible cards
func (s *UIState) EnsureTaskVisible(status models.Status, idx, visible int) {
	if visible <= 0 {
		return
	}
	offset := s.taskScrollOffsets[status]
	switch {
	case idx < offset:
		offset = idx
	case idx >= offset+visible:
		offset = idx - visible + 1
	}
	s.SetTaskScrollOffset(status, offset)
}

func (s *UIState) KeyboardDrag() bool { return s.keyboardDrag }

func (s *UIState) SetKeyboardDrag(v bool) { s.keyboardDrag = v }
