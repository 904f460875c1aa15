package models

import (
	"time"

	"github.com/flke/flke/internal/types"
)

// Task is a single card on the board. Status is the only field a drag
// gesture mutates; the content fields change through the edit form.
type Task struct {
	ID          types.TaskID    `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      Status          `json:"status"`
	AssigneeID  types.CompanyID `json:"userId,omitempty"`
	CompanyID   types.CompanyID `json:"companyId"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Clone returns a shallow copy, enough since Task has no reference fields
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// GetID lets output formatters print the bare id in quiet mode
func (t *Task) GetID() int {
	return t.ID.ToInt()
}
