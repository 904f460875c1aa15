package state

import "testing"

func TestNotificationState(t *testing.T) {
	s := NewNotificationState()
	if s.HasAny() {
		t.Fatal("new state has notifications")
	}
	if _, ok := s.Latest(); ok {
		t.Error("Latest() on empty state reported a notification")
	}

	s.Add(LevelInfo, "Successfully added")
	s.Add(LevelError, "Some error occurred")

	latest, ok := s.Latest()
	if !ok || latest.Level != LevelError || latest.Message != "Some error occurred" {
		t.Errorf("Latest() = %+v, %v", latest, ok)
	}
	if len(s.All()) != 2 {
		t.Errorf("All() has %d notifications, want 2", len(s.All()))
	}

	s.Clear()
	if s.HasAny() {
		t.Error("notifications survive Clear()")
	}
}
