package huhforms

import (
	"image/color"

	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/flke/flke/internal/config/colors"
)

type formPalette struct {
	accent, create, subtle, normal, danger, title, onAccent color.Color
}

func paletteOf(cs colors.ColorScheme) formPalette {
	return formPalette{
		accent:   lipgloss.Color(cs.Accent),
		create:   lipgloss.Color(cs.Create),
		subtle:   lipgloss.Color(cs.Subtle),
		normal:   lipgloss.Color(cs.Normal),
		danger:   lipgloss.Color(cs.Delete),
		title:    lipgloss.Color(cs.Title),
		onAccent: lipgloss.Color(cs.StatusBarText),
	}
}

// CreateFlkeTheme builds the modal form theme from a color scheme.
// Confirm buttons use the create color so "Yes" reads like the Add Task action.
func CreateFlkeTheme(colorScheme colors.ColorScheme) huh.Theme {
	p := paletteOf(colorScheme)

	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		s := huh.ThemeBase(isDark)
		f := &s.Focused

		f.Base = f.Base.BorderForeground(p.accent)
		f.Title = f.Title.Foreground(p.title).Bold(true)
		f.Description = f.Description.Foreground(p.subtle)
		f.ErrorIndicator = f.ErrorIndicator.Foreground(p.danger)
		f.ErrorMessage = f.ErrorMessage.Foreground(p.danger)

		f.SelectSelector = f.SelectSelector.Foreground(p.accent)
		f.SelectedOption = f.SelectedOption.Foreground(p.create)
		f.UnselectedOption = f.UnselectedOption.Foreground(p.normal)

		f.FocusedButton = f.FocusedButton.Foreground(p.onAccent).Background(p.create).Bold(true)
		f.BlurredButton = f.BlurredButton.Foreground(p.normal).Background(p.subtle)

		f.TextInput.Cursor = f.TextInput.Cursor.Foreground(p.accent)
		f.TextInput.Placeholder = f.TextInput.Placeholder.Foreground(p.subtle)
		f.TextInput.Prompt = f.TextInput.Prompt.Foreground(p.accent)

		s.Blurred = s.Focused
		s.Blurred.Base = s.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		s.Blurred.Title = s.Blurred.Title.Foreground(p.subtle).Bold(false)

		return s
	})
}
