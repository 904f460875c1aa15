package state

import "testing"

func TestUsersState_MoveSelection(t *testing.T) {
	s := NewUsersState()

	s.MoveSelection(1, 3)
	s.MoveSelection(1, 3)
	s.MoveSelection(1, 3)
	if s.SelectedRow() != 2 {
		t.Errorf("SelectedRow() = %d, want 2", s.SelectedRow())
	}

	s.ClampSelection(1)
	if s.SelectedRow() != 0 {
		t.Errorf("SelectedRow() after shrink = %d, want 0", s.SelectedRow())
	}

	s.MoveSelection(-1, 0)
	if s.SelectedRow() != 0 {
		t.Errorf("SelectedRow() on empty table = %d, want 0", s.SelectedRow())
	}
}
