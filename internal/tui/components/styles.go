// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/flke/flke/internal/config/colors"
	"github.com/flke/flke/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// ColumnStyle draws the border of a status column
	ColumnStyle lipgloss.Style

	// DropTargetColumnStyle highlights the column under a drag
	DropTargetColumnStyle lipgloss.Style

	// TaskStyle draws the border of a task card
	TaskStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (column names, app header)
	TitleStyle lipgloss.Style

	SubtleStyle   lipgloss.Style
	DisabledStyle lipgloss.Style

	// SidebarStyle draws the navigation menu box
	SidebarStyle       lipgloss.Style
	SidebarItemStyle   lipgloss.Style
	SidebarActiveStyle lipgloss.Style

	// HeaderStyle and FooterStyle fill the top and bottom rows
	HeaderStyle lipgloss.Style
	FooterStyle lipgloss.Style

	// FormBoxStyle frames the task and user forms
	FormBoxStyle lipgloss.Style

	// DetailBoxStyle frames the read-only task view
	DetailBoxStyle lipgloss.Style

	// DeleteConfirmBoxStyle defines the base style for deletion confirmations (red border)
	DeleteConfirmBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for help screen (blue border)
	HelpBoxStyle lipgloss.Style

	// PanelStyle frames the Users and Settings screens
	PanelStyle lipgloss.Style

	// IndicatorStyle defines the appearance of scroll indicators
	IndicatorStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(scheme colors.ColorScheme) {
	theme.Init(scheme)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.ColumnBorder))

	DropTargetColumnStyle = ColumnStyle.
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(scheme.DropTarget))

	TaskStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(scheme.TaskBorder)).
		BorderBackground(lipgloss.Color(scheme.TaskBackground)).
		Background(lipgloss.Color(scheme.TaskBackground))

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	DisabledStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Disabled)).
		Strikethrough(true)

	SidebarStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent))

	SidebarItemStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal)).
		PaddingLeft(1)

	SidebarActiveStyle = SidebarItemStyle.
		Foreground(lipgloss.Color(scheme.StatusBarText)).
		Background(lipgloss.Color(scheme.Accent)).
		Bold(true)

	HeaderStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(scheme.StatusBarBg)).
		Foreground(lipgloss.Color(scheme.StatusBarText)).
		Bold(true)

	FooterStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	FormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(1, 2)

	DetailBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Edit)).
		Padding(1, 2)

	DeleteConfirmBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Delete)).
		Padding(1)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Edit)).
		Padding(1, 2)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.ColumnBorder)).
		Padding(0, 1)

	IndicatorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))
}

func init() {
	InitStyles(*colors.Default())
}
