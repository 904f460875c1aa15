package state

import (
	"slices"

	"charm.land/huh/v2"
	"github.com/flke/flke/internal/models"
	userservice "github.com/flke/flke/internal/services/user"
	"github.com/flke/flke/internal/types"
)

// Capability keys bound to the role multi-select of the user form
const (
	RoleAddTask        = "addTask"
	RoleEditTask       = "editTask"
	RoleDeleteTask     = "deleteTask"
	RoleChangeStatus   = "changeStatus"
	RoleChangeSettings = "changeSettings"
)

// TaskFormValues are the fields the task modal binds to
type TaskFormValues struct {
	Title       string
	Description string
	Status      models.Status
	AssigneeID  types.CompanyID
	Confirm     bool
}

// UserFormValues are the fields the user form binds to. Roles holds the
// capability keys that are switched on.
type UserFormValues struct {
	Name     string
	Surname  string
	Username string
	Email    string
	Password string
	Roles    []string
	Confirm  bool
}

// FormState holds the open huh forms and the values they write into
type FormState struct {
	TaskForm *huh.Form
	Task     TaskFormValues
	// TaskRecord is the task being edited, nil in add mode
	TaskRecord *models.Task

	UserForm *huh.Form
	User     UserFormValues
}

func NewFormState() *FormState {
	return &FormState{}
}

// ResetTaskForm closes the task modal form
func (s *FormState) ResetTaskForm() {
	s.TaskForm = nil
	s.Task = TaskFormValues{}
	s.TaskRecord = nil
}

// ResetUserForm closes the user form
func (s *FormState) ResetUserForm() {
	s.UserForm = nil
	s.User = UserFormValues{}
}

// UserValuesFrom copies a manager form into bindable values
func UserValuesFrom(f userservice.Form) UserFormValues {
	v := UserFormValues{
		Name:     f.Name,
		Surname:  f.Surname,
		Username: f.Username,
		Email:    f.Email,
		Password: f.Password,
	}
	for key, on := range map[string]bool{
		RoleAddTask:        f.AddTask,
		RoleEditTask:       f.EditTask,
		RoleDeleteTask:     f.DeleteTask,
		RoleChangeStatus:   f.ChangeStatus,
		RoleChangeSettings: f.ChangeSettings,
	} {
		if on {
			v.Roles = append(v.Roles, key)
		}
	}
	slices.Sort(v.Roles)
	return v
}

// Form converts the bound values back into a manager form
func (v UserFormValues) Form() userservice.Form {
	has := func(key string) bool { return slices.Contains(v.Roles, key) }
	return userservice.Form{
		Name:           v.Name,
		Surname:        v.Surname,
		Username:       v.Username,
		Email:          v.Email,
		Password:       v.Password,
		AddTask:        has(RoleAddTask),
		EditTask:       has(RoleEditTask),
		DeleteTask:     has(RoleDeleteTask),
		ChangeStatus:   has(RoleChangeStatus),
		ChangeSettings: has(RoleChangeSettings),
	}
}
