package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/types"
)

// TaskRepository stores the tasks of every company
type TaskRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db, now: time.Now}
}

const taskColumns = `id, company_id, title, description, status, user_id, created_at, updated_at`

func scanTask(row scanner) (*models.Task, error) {
	var (
		t                    models.Task
		assignee             sql.NullInt64
		createdAt, updatedAt string
	)
	if err := row.Scan(&t.ID, &t.CompanyID, &t.Title, &t.Description, &t.Status, &assignee, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if assignee.Valid {
		t.AssigneeID = types.CompanyID(assignee.Int64)
	}
	t.CreatedAt = parseTime(createdAt)
	t.UpdatedAt = parseTime(updatedAt)
	return &t, nil
}

// ListByCompany returns the tasks of companyID in creation order
func (r *TaskRepository) ListByCompany(ctx context.Context, companyID types.CompanyID) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE company_id = ? ORDER BY id`,
		companyID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []*models.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Get returns the task with id
func (r *TaskRepository) Get(ctx context.Context, id types.TaskID) (*models.Task, error) {
	t, err := scanTask(r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: task %d", ErrNotFound, id)
	}
	return t, err
}

// Create inserts t and returns it with its id and timestamps
func (r *TaskRepository) Create(ctx context.Context, t *models.Task) (*models.Task, error) {
	now := formatTime(r.now())
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (company_id, title, description, status, user_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.CompanyID, t.Title, t.Description, t.Status, nullableID(t.AssigneeID), now, now,
	)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, types.TaskID(id))
}

// Update replaces every editable field of the task with id
func (r *TaskRepository) Update(ctx context.Context, id types.TaskID, t *models.Task) (*models.Task, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET company_id = ?, title = ?, description = ?, status = ?, user_id = ?, updated_at = ?
		 WHERE id = ?`,
		t.CompanyID, t.Title, t.Description, t.Status, nullableID(t.AssigneeID), formatTime(r.now()), id,
	)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: task %d", ErrNotFound, id)
	}
	return r.Get(ctx, id)
}

// Delete removes the task with id
func (r *TaskRepository) Delete(ctx context.Context, id types.TaskID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: task %d", ErrNotFound, id)
	}
	return nil
}

func nullableID(id types.CompanyID) any {
	if !id.Valid() {
		return nil
	}
	return int64(id)
}
