package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/flke/flke/internal/config"
)

// KeyMap holds the bindings built from the configured key mappings
type KeyMap struct {
	AddTask    key.Binding
	EditTask   key.Binding
	DeleteTask key.Binding
	ViewTask   key.Binding
	MoveLeft   key.Binding
	MoveRight  key.Binding

	Grab   key.Binding
	Drop   key.Binding
	Cancel key.Binding

	Save key.Binding

	SortUsers  key.Binding
	CycleTheme key.Binding

	PrevColumn key.Binding
	NextColumn key.Binding
	PrevTask   key.Binding
	NextTask   key.Binding
	NextScreen key.Binding
	PrevScreen key.Binding

	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func binding(keys string, help string, extra ...string) key.Binding {
	return key.NewBinding(
		key.WithKeys(append([]string{keys}, extra...)...),
		key.WithHelp(keys, help),
	)
}

// NewKeyMap builds bindings from km. Arrow keys are always accepted for
// navigation and ctrl+c always quits.
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		AddTask:    binding(km.AddTask, "add task"),
		EditTask:   binding(km.EditTask, "edit"),
		DeleteTask: binding(km.DeleteTask, "delete"),
		ViewTask:   binding(km.ViewTask, "view"),
		MoveLeft:   binding(km.MoveTaskLeft, "move left"),
		MoveRight:  binding(km.MoveTaskRight, "move right"),

		Grab:   binding(km.GrabTask, "grab"),
		Drop:   binding(km.DropTask, "drop"),
		Cancel: binding(km.CancelDrag, "cancel"),

		Save: binding(km.SaveForm, "save"),

		SortUsers:  binding(km.SortUsers, "sort by id"),
		CycleTheme: binding(km.CycleTheme, "next theme"),

		PrevColumn: binding(km.PrevColumn, "prev column", "left"),
		NextColumn: binding(km.NextColumn, "next column", "right"),
		PrevTask:   binding(km.PrevTask, "up", "up"),
		NextTask:   binding(km.NextTask, "down", "down"),
		NextScreen: binding(km.NextScreen, "next screen"),
		PrevScreen: binding(km.PrevScreen, "prev screen"),

		Refresh: binding(km.Refresh, "refresh"),
		Help:    binding(km.ShowHelp, "help"),
		Quit:    binding(km.Quit, "quit", "ctrl+c"),
	}
}

// BoardHelp lists the bindings shown in the board footer
func (k KeyMap) BoardHelp() []key.Binding {
	return []key.Binding{k.AddTask, k.EditTask, k.DeleteTask, k.ViewTask, k.Grab, k.MoveLeft, k.MoveRight, k.NextScreen, k.Help, k.Quit}
}

// DragHelp lists the bindings active while a task is grabbed
func (k KeyMap) DragHelp() []key.Binding {
	return []key.Binding{k.PrevColumn, k.NextColumn, k.Drop, k.Cancel}
}

// UsersHelp lists the bindings shown on the Users screen
func (k KeyMap) UsersHelp() []key.Binding {
	return []key.Binding{k.AddTask, k.EditTask, k.DeleteTask, k.SortUsers, k.Refresh, k.NextScreen, k.Quit}
}

// SettingsHelp lists the bindings shown on the Settings screen
func (k KeyMap) SettingsHelp() []key.Binding {
	return []key.Binding{k.CycleTheme, k.Save, k.NextScreen, k.Quit}
}
