package state

import (
	userservice "github.com/flke/flke/internal/services/user"
	"github.com/flke/flke/internal/types"
)

// UsersState holds the Users screen table state
type UsersState struct {
	Sort userservice.SortOrder

	selectedRow int

	// PendingDelete is the member awaiting delete confirmation
	PendingDelete types.CompanyID
}

func NewUsersState() *UsersState {
	return &UsersState{Sort: userservice.SortAscending}
}

func (s *UsersState) SelectedRow() int { return s.selectedRow }

// MoveSelection shifts the selected row by delta within n rows
func (s *UsersState) MoveSelection(delta, n int) {
	if n == 0 {
		s.selectedRow = 0
		return
	}
	s.selectedRow = min(max(s.selectedRow+delta, 0), n-1)
}

// ClampSelection keeps the selected row within n rows
func (s *UsersState) ClampSelection(n int) {
	s.MoveSelection(0, n)
}
