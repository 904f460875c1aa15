package huhforms

import (
	"strings"
	"testing"

	"github.com/flke/flke/internal/config/colors"
	"github.com/flke/flke/internal/models"
	taskservice "github.com/flke/flke/internal/services/task"
	userservice "github.com/flke/flke/internal/services/user"
	"github.com/flke/flke/internal/tui/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTitle(t *testing.T) {
	assert.ErrorIs(t, validateTitle("   "), taskservice.ErrEmptyTitle)
	assert.ErrorIs(t, validateTitle(strings.Repeat("x", taskservice.MaxTitleLength+1)), taskservice.ErrTitleTooLong)
	assert.NoError(t, validateTitle("Draft the roadmap"))
}

func TestUserValidators(t *testing.T) {
	assert.ErrorIs(t, minLength(userservice.ErrNameTooShort)(" A "), userservice.ErrNameTooShort)
	assert.NoError(t, minLength(userservice.ErrNameTooShort)("Al"))
	assert.ErrorIs(t, validateEmail("ann@"), userservice.ErrInvalidEmail)
	assert.NoError(t, validateEmail("ann@acme.test"))
	assert.ErrorIs(t, validatePassword(""), userservice.ErrEmptyPassword)
}

func TestCreateTaskForm(t *testing.T) {
	v := &state.TaskFormValues{Title: "Draft", Status: models.StatusDoing}
	form := CreateTaskForm(v, TaskFormOptions{Members: []*models.Company{{ID: 2, Username: "ann"}}})
	require.NotNil(t, form)
	form.Init()
	assert.Contains(t, form.View(), "Title")

	edit := CreateTaskForm(v, TaskFormOptions{Editing: true})
	edit.Init()
	assert.NotContains(t, edit.View(), "Column", "status is not editable from the modal")
}

func TestCreateUserForm(t *testing.T) {
	v := &state.UserFormValues{}
	form := CreateUserForm(v, false).WithTheme(CreateFlkeTheme(*colors.Default()))
	require.NotNil(t, form)
	form.Init()
	assert.Contains(t, form.View(), "Name")
}
