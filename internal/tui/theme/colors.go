package theme

import "github.com/flke/flke/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Background     string
	Subtle         string
	Normal         string
	Disabled       string
	Create         string
	Delete         string
	ColumnBorder   string
	DropTarget     string
	SelectedBorder string
	SelectedBg     string
	TaskBorder     string
	TaskBg         string
	Dragging       string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
)

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	Highlight = scheme.Accent
	Background = scheme.Background
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	Disabled = scheme.Disabled
	Create = scheme.Create
	Delete = scheme.Delete
	ColumnBorder = scheme.ColumnBorder
	DropTarget = scheme.DropTarget
	SelectedBorder = scheme.SelectedBorder
	SelectedBg = scheme.SelectedBg
	TaskBorder = scheme.TaskBorder
	TaskBg = scheme.TaskBackground
	Dragging = scheme.Dragging
	InfoFg = scheme.InfoFg
	InfoBg = scheme.InfoBg
	WarningFg = scheme.WarningFg
	WarningBg = scheme.WarningBg
	ErrorFg = scheme.ErrorFg
	ErrorBg = scheme.ErrorBg
}
