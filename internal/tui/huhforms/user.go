package huhforms

import (
	"strings"
	"unicode/utf8"

	"charm.land/huh/v2"
	userservice "github.com/flke/flke/internal/services/user"
	"github.com/flke/flke/internal/tui/state"
)

func minLength(err error) func(string) error {
	return func(s string) error {
		if utf8.RuneCountInString(strings.TrimSpace(s)) < userservice.MinFieldLength {
			return err
		}
		return nil
	}
}

func validateEmail(s string) error {
	if !userservice.ValidEmail(s) {
		return userservice.ErrInvalidEmail
	}
	return nil
}

func validatePassword(s string) error {
	if s == "" {
		return userservice.ErrEmptyPassword
	}
	return nil
}

// CreateUserForm creates the create/edit member form. Role switches start
// off; the admin flag is never offered.
func CreateUserForm(v *state.UserFormValues, editing bool) *huh.Form {
	confirmTitle := "Add this user?"
	if editing {
		confirmTitle = "Save changes?"
	}

	profile := huh.NewGroup(
		huh.NewInput().Key("name").Title("Name").Validate(minLength(userservice.ErrNameTooShort)).Value(&v.Name),
		huh.NewInput().Key("surname").Title("Surname").Validate(minLength(userservice.ErrSurnameTooShort)).Value(&v.Surname),
		huh.NewInput().Key("username").Title("Username").Validate(minLength(userservice.ErrUsernameTooShort)).Value(&v.Username),
		huh.NewInput().Key("email").Title("Email").Placeholder("name@company.com").Validate(validateEmail).Value(&v.Email),
		huh.NewInput().Key("password").Title("Password").EchoMode(huh.EchoModePassword).Validate(validatePassword).Value(&v.Password),
	)

	role := huh.NewGroup(
		huh.NewMultiSelect[string]().
			Key("role").
			Title("Role").
			Description("Space to toggle").
			Options(
				huh.NewOption("Add task", state.RoleAddTask),
				huh.NewOption("Edit task", state.RoleEditTask),
				huh.NewOption("Delete task", state.RoleDeleteTask),
				huh.NewOption("Change status", state.RoleChangeStatus),
				huh.NewOption("Change settings", state.RoleChangeSettings),
			).
			Value(&v.Roles),
		huh.NewConfirm().
			Key("confirm").
			Title(confirmTitle).
			Affirmative("Yes").
			Negative("No").
			Value(&v.Confirm),
	)

	return huh.NewForm(profile, role).WithKeyMap(formKeyMap()).WithShowHelp(false)
}
