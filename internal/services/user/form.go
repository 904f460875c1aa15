package user

import (
	"errors"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/flke/flke/internal/models"
)

// MinFieldLength applies to name, surname and username
const MinFieldLength = 2

// Form is the create/edit user form. Role switches default to false.
type Form struct {
	Name     string
	Surname  string
	Username string
	Email    string
	Password string

	AddTask        bool
	EditTask       bool
	DeleteTask     bool
	ChangeStatus   bool
	ChangeSettings bool
}

// Validate returns every field error joined, nil when the form can be sent
func (f Form) Validate() error {
	var errs []error
	if utf8.RuneCountInString(strings.TrimSpace(f.Name)) < MinFieldLength {
		errs = append(errs, ErrNameTooShort)
	}
	if utf8.RuneCountInString(strings.TrimSpace(f.Surname)) < MinFieldLength {
		errs = append(errs, ErrSurnameTooShort)
	}
	if utf8.RuneCountInString(strings.TrimSpace(f.Username)) < MinFieldLength {
		errs = append(errs, ErrUsernameTooShort)
	}
	if !ValidEmail(f.Email) {
		errs = append(errs, ErrInvalidEmail)
	}
	if f.Password == "" {
		errs = append(errs, ErrEmptyPassword)
	}
	return errors.Join(errs...)
}

// Role returns the member role the form describes. Members are never admins.
func (f Form) Role() models.Role {
	return models.Role{
		Admin:          false,
		AddTask:        f.AddTask,
		EditTask:       f.EditTask,
		DeleteTask:     f.DeleteTask,
		ChangeStatus:   f.ChangeStatus,
		ChangeSettings: f.ChangeSettings,
	}
}

// FormFrom prefills a form from an existing record
func FormFrom(c *models.Company) Form {
	f := Form{
		Name:     c.Name,
		Surname:  c.Surname,
		Username: c.Username,
		Email:    c.Email,
		Password: c.Password,
	}
	if c.Role != nil {
		f.AddTask = c.Role.AddTask
		f.EditTask = c.Role.EditTask
		f.DeleteTask = c.Role.DeleteTask
		f.ChangeStatus = c.Role.ChangeStatus
		f.ChangeSettings = c.Role.ChangeSettings
	}
	return f
}

// ValidEmail reports whether raw is a bare address with a dotted domain
func ValidEmail(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	addr, err := mail.ParseAddress(raw)
	if err != nil || addr.Address != raw {
		return false
	}
	at := strings.LastIndex(raw, "@")
	return at > 0 && strings.Contains(raw[at:], ".")
}
