package api

import (
	"context"

	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/types"
)

// CompanyStore covers the company/user collection of the remote store
type CompanyStore interface {
	// ListCompanies returns every record, root account included, of a company
	ListCompanies(ctx context.Context, companyID types.CompanyID) ([]*models.Company, error)

	// CreateUser adds a member record and returns it as stored
	CreateUser(ctx context.Context, req CreateUserRequest) (*models.Company, error)

	// UpdateCompany replaces a record and returns it as stored
	UpdateCompany(ctx context.Context, id types.CompanyID, req UpdateCompanyRequest) (*models.Company, error)

	// DeleteCompany removes a record
	DeleteCompany(ctx context.Context, id types.CompanyID) error
}

// TaskStore covers the task collection of the remote store
type TaskStore interface {
	ListTasks(ctx context.Context, companyID types.CompanyID) ([]*models.Task, error)
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, id types.TaskID, req UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, id types.TaskID) error
}

// Store is the full remote store the client talks to
type Store interface {
	CompanyStore
	TaskStore
}

// Compile-time verification that *Client implements Store
var _ Store = (*Client)(nil)
