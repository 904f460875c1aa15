package board

import (
	"fmt"

	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/types"
)

// BeginDrag picks up a task: Idle -> Dragging. The hover target starts on
// the source column.
func (b *Board) BeginDrag(id types.TaskID, source models.Status, index int) error {
	switch b.phase {
	case PhaseCommitting:
		return ErrCommitInFlight
	case PhaseDragging:
		return ErrNotIdle
	}

	i := b.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %d", ErrTaskNotFound, id)
	}
	if b.tasks[i].Status != source {
		return fmt.Errorf("%w: task %d is %s, not %s", ErrSourceMismatch, id, b.tasks[i].Status, source)
	}

	target := source
	b.drag = &Drag{TaskID: id, Source: source, Index: index, Target: &target}
	b.phase = PhaseDragging
	return nil
}

// Hover moves the drag target. A nil status means outside every column.
func (b *Board) Hover(s *models.Status) error {
	if b.phase != PhaseDragging {
		return ErrNotDragging
	}
	if s == nil {
		b.drag.Target = nil
		return nil
	}
	target := *s
	b.drag.Target = &target
	return nil
}

// CancelDrag abandons the gesture: Dragging -> Idle, no mutation
func (b *Board) CancelDrag() {
	if b.phase != PhaseDragging {
		return
	}
	b.drag = nil
	b.phase = PhaseIdle
}

// EndDrag drops the task on target. Only OutcomeCommitting mutates the
// board; the returned Commit must later be passed to Acknowledge.
func (b *Board) EndDrag(target *models.Status, canChangeStatus bool) (Outcome, *Commit, error) {
	if b.phase != PhaseDragging {
		return OutcomeNoTarget, nil, ErrNotDragging
	}
	drag := b.drag
	b.drag = nil
	b.phase = PhaseIdle

	if target == nil {
		return OutcomeNoTarget, nil, nil
	}
	if *target == drag.Source {
		return OutcomeSameColumn, nil, nil
	}
	if !canChangeStatus {
		return OutcomeRejected, nil, nil
	}

	i := b.indexOf(drag.TaskID)
	if i < 0 {
		return OutcomeNoTarget, nil, fmt.Errorf("%w: %d", ErrTaskNotFound, drag.TaskID)
	}
	if !target.Valid() {
		return OutcomeNoTarget, nil, fmt.Errorf("drop target: %w", models.ErrUnknownStatus)
	}

	commit := &Commit{TaskID: drag.TaskID, From: drag.Source, To: *target}
	b.tasks[i].Status = commit.To
	b.pending = commit
	b.phase = PhaseCommitting

	c := *commit
	return OutcomeCommitting, &c, nil
}

// Acknowledge completes a commit: Committing -> Idle. On error the task
// reverts to its pre-drag status; on success the returned record wins.
func (b *Board) Acknowledge(commit Commit, record *models.Task, err error) error {
	if b.phase != PhaseCommitting || b.pending == nil || *b.pending != commit {
		return ErrNoCommit
	}
	b.pending = nil
	b.phase = PhaseIdle

	i := b.indexOf(commit.TaskID)
	if i < 0 {
		return nil
	}
	if err != nil {
		b.tasks[i].Status = commit.From
		return nil
	}
	if record != nil && record.ID == commit.TaskID && record.Status.Valid() {
		b.tasks[i] = record.Clone()
	}
	return nil
}
