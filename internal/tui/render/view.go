package render

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/flke/flke/internal/menu"
	"github.com/flke/flke/internal/tui"
	"github.com/flke/flke/internal/tui/components"
	"github.com/flke/flke/internal/tui/theme"
)

// View is the main view dispatcher that renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func View(m *tui.Model) tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	view.BackgroundColor = lipgloss.Color(theme.Background)

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	layers := []*lipgloss.Layer{lipgloss.NewLayer(ViewScreen(m))}
	for _, l := range []*lipgloss.Layer{
		RenderModalLayer(m),
		RenderNotificationLayer(m),
		RenderDragGhostLayer(m),
	} {
		if l != nil {
			layers = append(layers, l)
		}
	}

	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}

// ViewScreen renders header, sidebar, the selected screen and the footer
func ViewScreen(m *tui.Model) string {
	layout := m.Layout()
	sess := m.App.Session

	left := "flke"
	if name := sess.CompanyName(); name != "" {
		left += " · " + name
	}
	header := components.RenderHeader(left, screenTitle(m.Menu.Selected()), layout.Width)

	sidebar := components.RenderSidebar(components.SidebarProps{
		Items:    menu.Items(m.Role()),
		Selected: m.Menu.Selected(),
		Company:  sess.CompanyName(),
		Username: username(m),
		Width:    tui.SidebarWidth,
		Height:   layout.BodyHeight(),
	})

	var content string
	switch m.Menu.Selected() {
	case menu.RouteUsers:
		content = ViewUsers(m)
	case menu.RouteSettings:
		content = ViewSettings(m)
	default:
		content = ViewBoard(m)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
	footer := components.RenderFooter(footerBindings(m), layout.Width)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func screenTitle(route menu.Route) string {
	switch route {
	case menu.RouteUsers:
		return "Users"
	case menu.RouteSettings:
		return "User Settings"
	default:
		return "Tasks"
	}
}

func username(m *tui.Model) string {
	if rec := m.App.Session.CompanyData; rec != nil {
		return rec.Username
	}
	return ""
}
