package handlers

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/flke/flke/internal/config/colors"
	"github.com/flke/flke/internal/permissions"
	"github.com/flke/flke/internal/tui"
	"github.com/flke/flke/internal/tui/components"
	"github.com/flke/flke/internal/tui/modelops"
	"github.com/flke/flke/internal/tui/state"
)

// HandleSettingsKey handles keys on the User Settings screen. Every change
// needs changeSettings.
func HandleSettingsKey(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	k := m.Keys
	switch {
	case key.Matches(msg, k.CycleTheme):
		if !requireAction(m, permissions.ChangeSettings, "You don't have permission to change settings") {
			return nil
		}
		name := colors.NextPreset(m.Config.ColorScheme.Preset)
		ApplyTheme(m, name)
		m.Notify(state.LevelInfo, "Theme: "+name)
	case key.Matches(msg, k.Save):
		if !requireAction(m, permissions.ChangeSettings, "You don't have permission to change settings") {
			return nil
		}
		return modelops.SaveSettings(m)
	}
	return nil
}

// ApplyTheme switches the color scheme and rebuilds the styles
func ApplyTheme(m *tui.Model, preset string) {
	m.Config.ColorScheme = *colors.GetPreset(preset)
	components.InitStyles(m.Config.ColorScheme)
}
