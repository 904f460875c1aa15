// Package board holds the canonical task collection behind the kanban view
// and the drag controller that moves tasks between status columns.
//
// Columns are filtered views over the collection. A task is in exactly one
// column because it has exactly one status.
package board

import (
	"fmt"

	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/permissions"
	"github.com/flke/flke/internal/types"
)

// Phase is the drag controller state
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseCommitting
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseCommitting:
		return "committing"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Drag is the gesture in progress
type Drag struct {
	TaskID types.TaskID
	Source models.Status
	Index  int
	// Target is the column currently hovered, nil when outside every column
	Target *models.Status
}

// Commit is an optimistic status change awaiting the remote result
type Commit struct {
	TaskID types.TaskID
	From   models.Status
	To     models.Status
}

// Outcome tells the caller what EndDrag did
type Outcome int

const (
	// OutcomeNoTarget means the task was dropped outside every column
	OutcomeNoTarget Outcome = iota
	// OutcomeSameColumn means the task was dropped back on its own column
	OutcomeSameColumn
	// OutcomeRejected means the role lacks changeStatus
	OutcomeRejected
	// OutcomeCommitting means the status was applied locally and must be sent
	OutcomeCommitting
)

// ColumnView is one status column as rendered
type ColumnView struct {
	Status      models.Status
	Tasks       []*models.Task
	AcceptsDrop bool
}

// Board is not safe for concurrent use; the TUI drives it from its update loop.
type Board struct {
	tasks   []*models.Task
	phase   Phase
	drag    *Drag
	pending *Commit
}

func New(tasks []*models.Task) *Board {
	b := &Board{}
	b.tasks = cloneAll(tasks)
	return b
}

func (b *Board) Phase() Phase { return b.phase }

// Drag returns a copy of the gesture in progress, nil when not dragging
func (b *Board) Drag() *Drag {
	if b.drag == nil {
		return nil
	}
	d := *b.drag
	return &d
}

// Pending returns the commit awaiting acknowledgement, nil when none
func (b *Board) Pending() *Commit {
	if b.pending == nil {
		return nil
	}
	c := *b.pending
	return &c
}

// Len returns the number of tasks on the board
func (b *Board) Len() int { return len(b.tasks) }

// Task returns a copy of the task with id
func (b *Board) Task(id types.TaskID) (*models.Task, bool) {
	i := b.indexOf(id)
	if i < 0 {
		return nil, false
	}
	return b.tasks[i].Clone(), true
}

// Tasks returns copies of every task in canonical order
func (b *Board) Tasks() []*models.Task {
	return cloneAll(b.tasks)
}

// Column returns the tasks whose status is s, in canonical order
func (b *Board) Column(s models.Status) []*models.Task {
	var out []*models.Task
	for _, t := range b.tasks {
		if t.Status == s {
			out = append(out, t.Clone())
		}
	}
	return out
}

// Columns returns one view per status, in board order
func (b *Board) Columns(role *models.Role) []ColumnView {
	accepts := permissions.CanPerform(role, permissions.ChangeStatus)
	statuses := models.Statuses()
	views := make([]ColumnView, 0, len(statuses))
	for _, s := range statuses {
		views = append(views, ColumnView{Status: s, Tasks: b.Column(s), AcceptsDrop: accepts})
	}
	return views
}

// SetTasks replaces the collection with a fresh snapshot from the store.
// It is refused while a commit is in flight so the snapshot cannot
// overwrite the optimistic status. A drag in progress is cancelled when its
// task disappears.
func (b *Board) SetTasks(tasks []*models.Task) error {
	if b.phase == PhaseCommitting {
		return ErrCommitInFlight
	}
	for _, t := range tasks {
		if t == nil || !t.Status.Valid() {
			return ErrInvalidSnapshot
		}
	}
	b.tasks = cloneAll(tasks)
	if b.drag != nil && b.indexOf(b.drag.TaskID) < 0 {
		b.CancelDrag()
	}
	return nil
}

// Upsert adds t or replaces the task with the same id
func (b *Board) Upsert(t *models.Task) {
	if t == nil {
		return
	}
	if i := b.indexOf(t.ID); i >= 0 {
		b.tasks[i] = t.Clone()
		return
	}
	b.tasks = append(b.tasks, t.Clone())
}

// Remove drops the task with id. A drag on that task is cancelled.
func (b *Board) Remove(id types.TaskID) bool {
	i := b.indexOf(id)
	if i < 0 {
		return false
	}
	b.tasks = append(b.tasks[:i], b.tasks[i+1:]...)
	if b.drag != nil && b.drag.TaskID == id {
		b.CancelDrag()
	}
	return true
}

func (b *Board) indexOf(id types.TaskID) int {
	for i, t := range b.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func cloneAll(tasks []*models.Task) []*models.Task {
	out := make([]*models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t != nil {
			out = append(out, t.Clone())
		}
	}
	return out
}
