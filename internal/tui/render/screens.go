package render

import (
	"fmt"
	"strings"

	"github.com/flke/flke/internal/config/colors"
	"github.com/flke/flke/internal/permissions"
	userservice "github.com/flke/flke/internal/services/user"
	"github.com/flke/flke/internal/tui"
	"github.com/flke/flke/internal/tui/components"
)

// panel fills the content area right of the sidebar
func panel(m *tui.Model, body string) string {
	layout := m.Layout()
	return components.PanelStyle.
		Width(max(layout.ContentWidth()-2, 1)).
		Height(max(layout.BodyHeight()-2, 1)).
		Render(body)
}

// ViewUsers renders the member table of the company
func ViewUsers(m *tui.Model) string {
	width := max(m.Layout().ContentWidth()-4, 20)
	order := "ascending"
	if m.UsersState.Sort == userservice.SortDescending {
		order = "descending"
	}

	members := m.App.Users.Members(m.UsersState.Sort)
	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("Users"))
	b.WriteString(components.SubtleStyle.Render(fmt.Sprintf("  %d members · id %s", len(members), order)))
	b.WriteString("\n\n")
	b.WriteString(components.RenderUsersTable(members, m.UsersState.SelectedRow(), width))
	return panel(m, b.String())
}

// ViewSettings renders the theme presets and the permission note
func ViewSettings(m *tui.Model) string {
	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("User Settings"))
	b.WriteString("\n\n")
	b.WriteString("Theme\n")
	for _, name := range colors.PresetNames() {
		if name == m.Config.ColorScheme.Preset {
			b.WriteString(components.SidebarActiveStyle.Render("› " + name))
		} else {
			b.WriteString(components.SidebarItemStyle.Render("  " + name))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	k := m.Keys
	if permissions.CanPerform(m.Role(), permissions.ChangeSettings) {
		b.WriteString(components.SubtleStyle.Render(fmt.Sprintf("%s to preview the next theme, %s to save",
			k.CycleTheme.Help().Key, k.Save.Help().Key)))
	} else {
		b.WriteString(components.DisabledStyle.Render("Your role cannot change settings"))
	}
	return panel(m, b.String())
}
