package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask       string `yaml:"add_task"`
	EditTask      string `yaml:"edit_task"`
	DeleteTask    string `yaml:"delete_task"`
	ViewTask      string `yaml:"view_task"`
	MoveTaskLeft  string `yaml:"move_task_left"`
	MoveTaskRight string `yaml:"move_task_right"`

	// Drag and drop
	GrabTask   string `yaml:"grab_task"`
	DropTask   string `yaml:"drop_task"`
	CancelDrag string `yaml:"cancel_drag"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Users
	SortUsers string `yaml:"sort_users"`

	// Settings
	CycleTheme string `yaml:"cycle_theme"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`
	NextScreen string `yaml:"next_screen"`
	PrevScreen string `yaml:"prev_screen"`

	// Other
	Refresh  string `yaml:"refresh"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddTask:       "a",
		EditTask:      "e",
		DeleteTask:    "d",
		ViewTask:      "v",
		MoveTaskLeft:  "H",
		MoveTaskRight: "L",

		GrabTask:   "space",
		DropTask:   "enter",
		CancelDrag: "esc",

		SaveForm: "ctrl+s",

		SortUsers: "s",

		CycleTheme: "t",

		PrevColumn: "h",
		NextColumn: "l",
		PrevTask:   "k",
		NextTask:   "j",
		NextScreen: "tab",
		PrevScreen: "shift+tab",

		Refresh:  "r",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	d := DefaultKeyMappings()
	for _, p := range []struct {
		dst *string
		src string
	}{
		{&k.AddTask, d.AddTask},
		{&k.EditTask, d.EditTask},
		{&k.DeleteTask, d.DeleteTask},
		{&k.ViewTask, d.ViewTask},
		{&k.MoveTaskLeft, d.MoveTaskLeft},
		{&k.MoveTaskRight, d.MoveTaskRight},
		{&k.GrabTask, d.GrabTask},
		{&k.DropTask, d.DropTask},
		{&k.CancelDrag, d.CancelDrag},
		{&k.SaveForm, d.SaveForm},
		{&k.SortUsers, d.SortUsers},
		{&k.CycleTheme, d.CycleTheme},
		{&k.PrevColumn, d.PrevColumn},
		{&k.NextColumn, d.NextColumn},
		{&k.PrevTask, d.PrevTask},
		{&k.NextTask, d.NextTask},
		{&k.NextScreen, d.NextScreen},
		{&k.PrevScreen, d.PrevScreen},
		{&k.Refresh, d.Refresh},
		{&k.ShowHelp, d.ShowHelp},
		{&k.Quit, d.Quit},
	} {
		if *p.dst == "" {
			*p.dst = p.src
		}
	}
}
