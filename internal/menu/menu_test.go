package menu

import (
	"testing"

	"github.com/flke/flke/internal/models"
	"github.com/stretchr/testify/assert"
)

func routesOf(items []Item) []Route {
	var out []Route
	for _, it := range items {
		out = append(out, it.Route)
	}
	return out
}

func TestItemsUsersOnlyForAdmin(t *testing.T) {
	tests := []struct {
		name string
		role *models.Role
		want []Route
	}{
		{"nil role", nil, []Route{RouteTasks, RouteSettings}},
		{"no admin", &models.Role{AddTask: true, ChangeSettings: true}, []Route{RouteTasks, RouteSettings}},
		{"admin", &models.Role{Admin: true}, []Route{RouteTasks, RouteUsers, RouteSettings}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, routesOf(Items(tt.role)))
		})
	}
}

func TestItemLabels(t *testing.T) {
	items := Items(&models.Role{Admin: true})
	assert.Equal(t, "Tasks", items[0].Label)
	assert.Equal(t, "Users", items[1].Label)
	assert.Equal(t, "User Settings", items[2].Label)
}

func TestStateSelectAndMove(t *testing.T) {
	admin := &models.Role{Admin: true}
	member := &models.Role{}

	s := NewState()
	assert.Equal(t, RouteTasks, s.Selected())
	assert.False(t, s.Select(member, RouteUsers))
	assert.True(t, s.Select(admin, RouteUsers))

	assert.Equal(t, RouteSettings, s.Move(admin, 1))
	assert.Equal(t, RouteTasks, s.Move(admin, 1))
	assert.Equal(t, RouteSettings, s.Move(admin, -1))
	assert.Equal(t, RouteTasks, s.Move(member, 1))
}

func TestStateReconcile(t *testing.T) {
	s := NewState()
	s.Select(&models.Role{Admin: true}, RouteUsers)
	s.Reconcile(nil)
	assert.Equal(t, RouteTasks, s.Selected())
}

func TestStateOpenKeysCopied(t *testing.T) {
	s := NewState()
	keys := []string{"main"}
	s.OnOpenChange(keys)
	keys[0] = "changed"
	assert.Equal(t, []string{"main"}, s.OpenKeys())
}
