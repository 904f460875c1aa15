package board

import (
	"errors"
	"testing"

	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTasks() []*models.Task {
	return []*models.Task{
		{ID: 1, Title: "Write plan", Status: models.StatusTodo, CompanyID: 1},
		{ID: 2, Title: "Review", Status: models.StatusDoing, CompanyID: 1},
		{ID: 3, Title: "Ship", Status: models.StatusDone, CompanyID: 1},
		{ID: 4, Title: "Fix bug", Status: models.StatusTodo, CompanyID: 1},
	}
}

func statusPtr(s models.Status) *models.Status { return &s }

func statusOf(t *testing.T, b *Board, id types.TaskID) models.Status {
	t.Helper()
	task, ok := b.Task(id)
	require.True(t, ok)
	return task.Status
}

// Every task shows up in exactly one column, the one matching its status.
func TestColumnsMatchStatus(t *testing.T) {
	b := New(sampleTasks())
	role := &models.Role{ChangeStatus: true}

	seen := map[types.TaskID]int{}
	for _, col := range b.Columns(role) {
		for _, task := range col.Tasks {
			assert.Equal(t, col.Status, task.Status)
			seen[task.ID]++
		}
	}
	assert.Len(t, seen, b.Len())
	for id, n := range seen {
		assert.Equal(t, 1, n, "task %d rendered %d times", id, n)
	}
}

func TestColumnKeepsCanonicalOrder(t *testing.T) {
	b := New(sampleTasks())
	todo := b.Column(models.StatusTodo)
	require.Len(t, todo, 2)
	assert.Equal(t, types.TaskID(1), todo[0].ID)
	assert.Equal(t, types.TaskID(4), todo[1].ID)
}

func TestColumnsAcceptDropOnlyWithChangeStatus(t *testing.T) {
	b := New(sampleTasks())
	for _, role := range []*models.Role{nil, {}, {Admin: true, AddTask: true}} {
		for _, col := range b.Columns(role) {
			assert.False(t, col.AcceptsDrop)
		}
	}
	for _, col := range b.Columns(&models.Role{ChangeStatus: true}) {
		assert.True(t, col.AcceptsDrop)
	}
}

func TestDropWithoutChangeStatusLeavesStatus(t *testing.T) {
	b := New(sampleTasks())
	require.NoError(t, b.BeginDrag(1, models.StatusTodo, 0))

	outcome, commit, err := b.EndDrag(statusPtr(models.StatusDone), false)
	require.NoError(t, err)
	assert.Equal(t, OutcomeRejected, outcome)
	assert.Nil(t, commit)
	assert.Equal(t, models.StatusTodo, statusOf(t, b, 1))
	assert.Equal(t, PhaseIdle, b.Phase())
}

func TestDropCommitsAndAcknowledges(t *testing.T) {
	b := New(sampleTasks())
	require.NoError(t, b.BeginDrag(1, models.StatusTodo, 0))
	assert.Equal(t, PhaseDragging, b.Phase())

	outcome, commit, err := b.EndDrag(statusPtr(models.StatusDoing), true)
	require.NoError(t, err)
	require.Equal(t, OutcomeCommitting, outcome)
	require.NotNil(t, commit)
	assert.Equal(t, Commit{TaskID: 1, From: models.StatusTodo, To: models.StatusDoing}, *commit)

	// optimistic status is visible before the store answers
	assert.Equal(t, PhaseCommitting, b.Phase())
	assert.Equal(t, models.StatusDoing, statusOf(t, b, 1))

	record := &models.Task{ID: 1, Title: "Write plan v2", Status: models.StatusDoing, CompanyID: 1}
	require.NoError(t, b.Acknowledge(*commit, record, nil))
	assert.Equal(t, PhaseIdle, b.Phase())
	got, _ := b.Task(1)
	assert.Equal(t, "Write plan v2", got.Title)
	assert.Nil(t, b.Pending())
}

func TestFailedCommitRevertsStatus(t *testing.T) {
	for _, from := range models.Statuses() {
		for _, to := range models.Statuses() {
			if from == to {
				continue
			}
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				b := New([]*models.Task{{ID: 9, Title: "x", Status: from}})
				require.NoError(t, b.BeginDrag(9, from, 0))

				outcome, commit, err := b.EndDrag(&to, true)
				require.NoError(t, err)
				require.Equal(t, OutcomeCommitting, outcome)

				require.NoError(t, b.Acknowledge(*commit, nil, errors.New("500")))
				assert.Equal(t, from, statusOf(t, b, 9))
				assert.Equal(t, PhaseIdle, b.Phase())
			})
		}
	}
}

func TestSameColumnDropIsNoop(t *testing.T) {
	b := New(sampleTasks())
	require.NoError(t, b.BeginDrag(4, models.StatusTodo, 1))

	outcome, commit, err := b.EndDrag(statusPtr(models.StatusTodo), true)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSameColumn, outcome)
	assert.Nil(t, commit)

	todo := b.Column(models.StatusTodo)
	assert.Equal(t, types.TaskID(1), todo[0].ID)
	assert.Equal(t, PhaseIdle, b.Phase())
}

func TestDropOutsideAndCancel(t *testing.T) {
	b := New(sampleTasks())
	require.NoError(t, b.BeginDrag(2, models.StatusDoing, 0))
	outcome, _, err := b.EndDrag(nil, true)
	require.NoError(t, err)
	assert.Equal(t, OutcomeNoTarget, outcome)

	require.NoError(t, b.BeginDrag(2, models.StatusDoing, 0))
	b.CancelDrag()
	assert.Equal(t, PhaseIdle, b.Phase())
	assert.Equal(t, models.StatusDoing, statusOf(t, b, 2))
}

func TestBeginDragGuards(t *testing.T) {
	b := New(sampleTasks())
	assert.ErrorIs(t, b.BeginDrag(42, models.StatusTodo, 0), ErrTaskNotFound)
	assert.ErrorIs(t, b.BeginDrag(1, models.StatusDone, 0), ErrSourceMismatch)

	require.NoError(t, b.BeginDrag(1, models.StatusTodo, 0))
	assert.ErrorIs(t, b.BeginDrag(2, models.StatusDoing, 0), ErrNotIdle)

	_, _, err := b.EndDrag(statusPtr(models.StatusDone), true)
	require.NoError(t, err)
	assert.ErrorIs(t, b.BeginDrag(2, models.StatusDoing, 0), ErrCommitInFlight)
}

func TestEndDragWithoutDrag(t *testing.T) {
	b := New(sampleTasks())
	_, _, err := b.EndDrag(statusPtr(models.StatusDone), true)
	assert.ErrorIs(t, err, ErrNotDragging)
	assert.ErrorIs(t, b.Hover(nil), ErrNotDragging)
}

func TestHoverTracksTarget(t *testing.T) {
	b := New(sampleTasks())
	require.NoError(t, b.BeginDrag(1, models.StatusTodo, 0))
	require.Equal(t, models.StatusTodo, *b.Drag().Target)

	require.NoError(t, b.Hover(statusPtr(models.StatusDone)))
	assert.Equal(t, models.StatusDone, *b.Drag().Target)

	require.NoError(t, b.Hover(nil))
	assert.Nil(t, b.Drag().Target)
}

func TestSetTasksRefusedWhileCommitting(t *testing.T) {
	b := New(sampleTasks())
	require.NoError(t, b.BeginDrag(1, models.StatusTodo, 0))
	_, commit, err := b.EndDrag(statusPtr(models.StatusDone), true)
	require.NoError(t, err)

	stale := sampleTasks()
	assert.ErrorIs(t, b.SetTasks(stale), ErrCommitInFlight)
	assert.Equal(t, models.StatusDone, statusOf(t, b, 1))

	require.NoError(t, b.Acknowledge(*commit, nil, nil))
	require.NoError(t, b.SetTasks(stale))
	assert.Equal(t, models.StatusTodo, statusOf(t, b, 1))
}

func TestAcknowledgeRejectsUnknownCommit(t *testing.T) {
	b := New(sampleTasks())
	assert.ErrorIs(t, b.Acknowledge(Commit{TaskID: 1}, nil, nil), ErrNoCommit)
}

func TestSetTasksCancelsDragOnVanishedTask(t *testing.T) {
	b := New(sampleTasks())
	require.NoError(t, b.BeginDrag(3, models.StatusDone, 0))
	require.NoError(t, b.SetTasks(sampleTasks()[:2]))
	assert.Equal(t, PhaseIdle, b.Phase())
	assert.Nil(t, b.Drag())
}

func TestSetTasksRejectsInvalidStatus(t *testing.T) {
	b := New(nil)
	err := b.SetTasks([]*models.Task{{ID: 1, Status: "archived"}})
	assert.ErrorIs(t, err, ErrInvalidSnapshot)
}

func TestUpsertAndRemove(t *testing.T) {
	b := New(nil)
	b.Upsert(&models.Task{ID: 1, Title: "a", Status: models.StatusTodo})
	b.Upsert(&models.Task{ID: 1, Title: "b", Status: models.StatusDone})
	require.Equal(t, 1, b.Len())
	got, _ := b.Task(1)
	assert.Equal(t, "b", got.Title)

	assert.True(t, b.Remove(1))
	assert.False(t, b.Remove(1))
	assert.Zero(t, b.Len())
}

func TestBoardReturnsCopies(t *testing.T) {
	b := New(sampleTasks())
	col := b.Column(models.StatusTodo)
	col[0].Status = models.StatusDone
	assert.Equal(t, models.StatusTodo, statusOf(t, b, 1))
}
