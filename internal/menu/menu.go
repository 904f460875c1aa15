// Package menu is the navigation sidebar: a fixed route list filtered by
// the session role.
package menu

import (
	"slices"

	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/permissions"
)

// Route identifies a screen
type Route string

const (
	RouteTasks    Route = "/tasks"
	RouteUsers    Route = "/users"
	RouteSettings Route = "/usersettings"
)

// Item is one entry of the sidebar
type Item struct {
	Key   string
	Label string
	Route Route
	// Requires is the capability the entry needs, nil for everyone
	Requires *permissions.Action
}

var manageUsers = permissions.ManageUsers

var routes = []Item{
	{Key: "tasks", Label: "Tasks", Route: RouteTasks},
	{Key: "users", Label: "Users", Route: RouteUsers, Requires: &manageUsers},
	{Key: "usersettings", Label: "User Settings", Route: RouteSettings},
}

// Items returns the entries role may see, in menu order
func Items(role *models.Role) []Item {
	out := make([]Item, 0, len(routes))
	for _, it := range routes {
		if it.Requires != nil && !permissions.CanPerform(role, *it.Requires) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Allowed reports whether role may open route
func Allowed(role *models.Role, route Route) bool {
	return slices.ContainsFunc(Items(role), func(it Item) bool { return it.Route == route })
}

// State tracks the expanded group keys and the selected entry
type State struct {
	openKeys []string
	selected Route
}

func NewState() *State {
	return &State{selected: RouteTasks}
}

// OnOpenChange replaces the expanded keys
func (s *State) OnOpenChange(keys []string) {
	s.openKeys = slices.Clone(keys)
}

func (s *State) OpenKeys() []string {
	return slices.Clone(s.openKeys)
}

func (s *State) Selected() Route { return s.selected }

// Select moves the selection to route when role can open it
func (s *State) Select(role *models.Role, route Route) bool {
	if !Allowed(role, route) {
		return false
	}
	s.selected = route
	return true
}

// Move shifts the selection by delta within the visible items, wrapping
func (s *State) Move(role *models.Role, delta int) Route {
	items := Items(role)
	if len(items) == 0 {
		return s.selected
	}
	idx := slices.IndexFunc(items, func(it Item) bool { return it.Route == s.selected })
	if idx < 0 {
		idx = 0
	} else {
		idx = ((idx+delta)%len(items) + len(items)) % len(items)
	}
	s.selected = items[idx].Route
	return s.selected
}

// Reconcile falls back to Tasks when the selected route is no longer allowed
func (s *State) Reconcile(role *models.Role) {
	if !Allowed(role, s.selected) {
		s.selected = RouteTasks
	}
}
