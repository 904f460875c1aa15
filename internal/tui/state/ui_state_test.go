package state

import (
	"testing"

	"github.com/flke/flke/internal/models"
)

// TestSetSelectedColumn_Clamps ensures the column focus stays on the status set.
func TestSetSelectedColumn_Clamps(t *testing.T) {
	s := NewUIState()

	s.SetSelectedColumn(-1)
	if s.SelectedColumn() != 0 {
		t.Errorf("SelectedColumn() after -1 = %d, want 0", s.SelectedColumn())
	}

	s.SetSelectedColumn(10)
	if s.SelectedColumn() != 2 {
		t.Errorf("SelectedColumn() after 10 = %d, want 2", s.SelectedColumn())
	}
	if s.SelectedStatus() != models.StatusDone {
		t.Errorf("SelectedStatus() = %s, want done", s.SelectedStatus())
	}
}

// TestSetSelectedColumn_ResetsTask ensures switching columns starts at the first card.
func TestSetSelectedColumn_ResetsTask(t *testing.T) {
	s := NewUIState()
	s.SetSelectedTask(3)

	s.SetSelectedColumn(0)
	if s.SelectedTask() != 3 {
		t.Errorf("SelectedTask() after same column = %d, want 3", s.SelectedTask())
	}

	s.SetSelectedColumn(1)
	if s.SelectedTask() != 0 {
		t.Errorf("SelectedTask() after column change = %d, want 0", s.SelectedTask())
	}
}

func TestClampSelectedTask(t *testing.T) {
	tests := []struct {
		name     string
		selected int
		n        int
		want     int
	}{
		{"empty column", 2, 0, 0},
		{"past the end", 5, 3, 2},
		{"in range", 1, 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewUIState()
			s.SetSelectedTask(tt.selected)
			s.ClampSelectedTask(tt.n)
			if s.SelectedTask() != tt.want {
				t.Errorf("SelectedTask() = %d, want %d", s.SelectedTask(), tt.want)
			}
		})
	}
}

func TestEnsureTaskVisible(t *testing.T) {
	s := NewUIState()

	s.EnsureTaskVisible(models.StatusTodo, 4, 3)
	if got := s.TaskScrollOffset(models.StatusTodo); got != 2 {
		t.Errorf("offset after scrolling down = %d, want 2", got)
	}

	s.EnsureTaskVisible(models.StatusTodo, 1, 3)
	if got := s.TaskScrollOffset(models.StatusTodo); got != 1 {
		t.Errorf("offset after scrolling up = %d, want 1", got)
	}

	if got := s.TaskScrollOffset(models.StatusDone); got != 0 {
		t.Errorf("untouched column offset = %d, want 0", got)
	}
}
