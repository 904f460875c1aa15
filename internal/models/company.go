package models

import (
	"strings"

	"github.com/flke/flke/internal/types"
)

// Role is the capability record attached to every company and member account
type Role struct {
	Admin          bool `json:"admin"`
	AddTask        bool `json:"addTask"`
	EditTask       bool `json:"editTask"`
	DeleteTask     bool `json:"deleteTask"`
	ChangeStatus   bool `json:"changeStatus"`
	ChangeSettings bool `json:"changeSettings"`
}

// Company is either a tenant root account (IsCompany) or one of its members.
// Both live in the same collection on the remote store, keyed by CompanyID.
type Company struct {
	ID          types.CompanyID `json:"id"`
	CompanyID   types.CompanyID `json:"companyId"`
	CompanyName string          `json:"companyname"`
	Name        string          `json:"name"`
	Surname     string          `json:"surname"`
	Username    string          `json:"username"`
	Email       string          `json:"email"`
	Password    string          `json:"password"`
	IsCompany   bool            `json:"isCompany"`
	Role        *Role           `json:"role,omitempty"`
}

// DisplayName returns "Name Surname", falling back to the username
func (c *Company) DisplayName() string {
	if c == nil {
		return ""
	}
	full := strings.TrimSpace(c.Name + " " + c.Surname)
	if full == "" {
		return c.Username
	}
	return full
}

// HasRole reports whether the record carries a role sub-record
func (c *Company) HasRole() bool {
	return c != nil && c.Role != nil
}

func (c *Company) GetID() int {
	return c.ID.ToInt()
}
