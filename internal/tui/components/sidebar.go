package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/flke/flke/internal/menu"
)

// SidebarProps describes the navigation menu
type SidebarProps struct {
	Items    []menu.Item
	Selected menu.Route
	Company  string
	Username string
	// Width and Height are outer dimensions, borders included
	Width  int
	Height int
}

// RenderSidebar renders the menu box. The first item sits on the row right
// below the "Menu" title so clicks map to items by row.
func RenderSidebar(p SidebarProps) string {
	inner := max(p.Width-2, 1)
	innerHeight := max(p.Height-2, 1)

	lines := []string{TitleStyle.Render("Menu")}
	for _, it := range p.Items {
		style := SidebarItemStyle
		if it.Route == p.Selected {
			style = SidebarActiveStyle
		}
		lines = append(lines, style.Width(inner).Render(it.Label))
	}

	account := []string{SubtleStyle.Render(p.Company), SubtleStyle.Render("@" + p.Username)}
	if fill := innerHeight - len(lines) - len(account); fill > 0 {
		lines = append(lines, strings.Repeat("\n", fill-1))
	}
	lines = append(lines, account...)

	body := lipgloss.NewStyle().
		Width(inner).
		MaxWidth(inner).
		Height(innerHeight).
		MaxHeight(innerHeight).
		Render(strings.Join(lines, "\n"))

	return SidebarStyle.Render(body)
}
