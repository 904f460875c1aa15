package huhforms

import (
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
)

// formKeyMap is the keymap shared by the task and user modals.
// Enter moves between fields; a description takes newlines on shift+enter.
// The assignee list is short, so select filtering stays off.
func formKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()

	km.Text.NewLine = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
		key.WithHelp("shift+enter", "new line"),
	)
	km.Select.Filter.SetEnabled(false)

	return km
}
