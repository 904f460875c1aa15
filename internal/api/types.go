package api

import (
	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/types"
)

// CreateUserRequest is the body of POST /companies. It mirrors the create
// form plus the tenant the new member joins.
type CreateUserRequest struct {
	CompanyID   types.CompanyID `json:"companyId"`
	CompanyName string          `json:"companyName"`
	Name        string          `json:"name"`
	Surname     string          `json:"surname"`
	Username    string          `json:"username"`
	Email       string          `json:"email"`
	Password    string          `json:"password"`
	IsCompany   bool            `json:"isCompany"`
	Role        models.Role     `json:"role"`
}

// UpdateCompanyRequest is the body of PUT /companies/{id}. The store
// replaces the whole record.
type UpdateCompanyRequest struct {
	CompanyID   types.CompanyID `json:"companyId"`
	CompanyName string          `json:"companyname"`
	Name        string          `json:"name"`
	Surname     string          `json:"surname"`
	Username    string          `json:"username"`
	Email       string          `json:"email"`
	Password    string          `json:"password"`
	IsCompany   bool            `json:"isCompany"`
	Role        models.Role     `json:"role"`
}

// CreateTaskRequest is the body of POST /tasks
type CreateTaskRequest struct {
	CompanyID   types.CompanyID `json:"companyId"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      models.Status   `json:"status"`
	AssigneeID  types.CompanyID `json:"userId,omitempty"`
}

// UpdateTaskRequest is the body of PUT /tasks/{id}; a full replacement
type UpdateTaskRequest struct {
	CompanyID   types.CompanyID `json:"companyId"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      models.Status   `json:"status"`
	AssigneeID  types.CompanyID `json:"userId,omitempty"`
}

// UpdateFromTask builds a replacement body carrying every field of t
func UpdateFromTask(t *models.Task) UpdateTaskRequest {
	return UpdateTaskRequest{
		CompanyID:   t.CompanyID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		AssigneeID:  t.AssigneeID,
	}
}

// ErrorBody is the JSON shape of a non-2xx response
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes shared by the client and the development store
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "ALREADY_REGISTERED"
	CodeInternal       = "INTERNAL"
)
