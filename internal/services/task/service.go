package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/flke/flke/internal/api"
	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/permissions"
	"github.com/flke/flke/internal/session"
	"github.com/flke/flke/internal/types"
)

// MaxTitleLength is the longest title the store accepts
const MaxTitleLength = 255

// Service defines all task-related business operations. Every write checks
// the session role before touching the store.
type Service interface {
	// Read operations
	List(ctx context.Context, sess *session.Session) ([]*models.Task, error)
	Get(ctx context.Context, sess *session.Session, id types.TaskID) (*models.Task, error)

	// Write operations
	Create(ctx context.Context, sess *session.Session, req CreateTaskRequest) (*models.Task, error)
	Update(ctx context.Context, sess *session.Session, req UpdateTaskRequest) (*models.Task, error)
	Delete(ctx context.Context, sess *session.Session, id types.TaskID) error

	// Status changes
	ChangeStatus(ctx context.Context, sess *session.Session, current *models.Task, to models.Status) (*models.Task, error)
	Move(ctx context.Context, sess *session.Session, id types.TaskID, to models.Status) (*models.Task, error)
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	Title       string
	Description string
	Status      models.Status // Optional: empty means todo
	AssigneeID  types.CompanyID
}

// UpdateTaskRequest carries the full set of editable fields. The store
// replaces the record, so every field is sent.
type UpdateTaskRequest struct {
	TaskID      types.TaskID
	Title       string
	Description string
	Status      models.Status
	AssigneeID  types.CompanyID
}

// service implements Service interface
type service struct {
	store api.TaskStore
}

// NewService creates a new task service
func NewService(store api.TaskStore) Service {
	return &service{store: store}
}

// List returns the tasks of the session company. Without a company id it
// logs a warning and returns nothing, without an error.
func (s *service) List(ctx context.Context, sess *session.Session) ([]*models.Task, error) {
	companyID := sess.CompanyID()
	if !companyID.Valid() {
		slog.Warn("skipping task list: invalid company id")
		return []*models.Task{}, nil
	}

	tasks, err := s.store.ListTasks(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	out := make([]*models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t == nil {
			continue
		}
		if !t.Status.Valid() {
			slog.Warn("dropping task with unknown status", "task_id", t.ID, "status", t.Status)
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, sess *session.Session, id types.TaskID) (*models.Task, error) {
	if !id.Valid() {
		return nil, ErrInvalidTaskID
	}
	tasks, err := s.List(ctx, sess)
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrTaskNotFound, id)
}

// Create handles task creation with validation and the addTask guard
func (s *service) Create(ctx context.Context, sess *session.Session, req CreateTaskRequest) (*models.Task, error) {
	if !sess.Active() {
		return nil, ErrNoSession
	}
	if err := permissions.Require(sess.Role(), permissions.AddTask); err != nil {
		return nil, err
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Status == "" {
		req.Status = models.StatusTodo
	}
	if err := validate(req.Title, req.Status, req.AssigneeID); err != nil {
		return nil, err
	}

	t, err := s.store.CreateTask(ctx, api.CreateTaskRequest{
		CompanyID:   sess.CompanyID(),
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		AssigneeID:  req.AssigneeID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return t, nil
}

// Update handles edits from the task modal, guarded by editTask
func (s *service) Update(ctx context.Context, sess *session.Session, req UpdateTaskRequest) (*models.Task, error) {
	if !sess.Active() {
		return nil, ErrNoSession
	}
	if err := permissions.Require(sess.Role(), permissions.EditTask); err != nil {
		return nil, err
	}
	if !req.TaskID.Valid() {
		return nil, ErrInvalidTaskID
	}

	req.Title = strings.TrimSpace(req.Title)
	if err := validate(req.Title, req.Status, req.AssigneeID); err != nil {
		return nil, err
	}

	t, err := s.store.UpdateTask(ctx, req.TaskID, api.UpdateTaskRequest{
		CompanyID:   sess.CompanyID(),
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		AssigneeID:  req.AssigneeID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update task %d: %w", req.TaskID, err)
	}
	return t, nil
}

// Delete removes a task, guarded by deleteTask
func (s *service) Delete(ctx context.Context, sess *session.Session, id types.TaskID) error {
	if !sess.Active() {
		return ErrNoSession
	}
	if err := permissions.Require(sess.Role(), permissions.DeleteTask); err != nil {
		return err
	}
	if !id.Valid() {
		return ErrInvalidTaskID
	}

	if err := s.store.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	return nil
}

// ChangeStatus sends current with its status replaced by to. It issues
// exactly one request; the caller already holds the record.
func (s *service) ChangeStatus(ctx context.Context, sess *session.Session, current *models.Task, to models.Status) (*models.Task, error) {
	if !sess.Active() {
		return nil, ErrNoSession
	}
	if err := permissions.Require(sess.Role(), permissions.ChangeStatus); err != nil {
		return nil, err
	}
	if current == nil || !current.ID.Valid() {
		return nil, ErrInvalidTaskID
	}
	if !to.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, to)
	}

	next := current.Clone()
	next.Status = to
	t, err := s.store.UpdateTask(ctx, next.ID, api.UpdateFromTask(next))
	if err != nil {
		return nil, fmt.Errorf("failed to move task %d to %s: %w", next.ID, to, err)
	}
	return t, nil
}

// Move looks the task up by id and changes its status
func (s *service) Move(ctx context.Context, sess *session.Session, id types.TaskID, to models.Status) (*models.Task, error) {
	if err := permissions.Require(sess.Role(), permissions.ChangeStatus); err != nil {
		return nil, err
	}
	current, err := s.Get(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	if current.Status == to {
		return nil, ErrAlreadyInTargetState
	}
	return s.ChangeStatus(ctx, sess, current, to)
}

func validate(title string, status models.Status, assignee types.CompanyID) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if assignee < 0 {
		return ErrInvalidAssignee
	}
	return nil
}
