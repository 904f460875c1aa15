package colors

import "slices"

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Backgrounds
	Background       string `yaml:"background"`
	ColumnBackground string `yaml:"column_background"`

	// Semantic colors
	Create string `yaml:"create"` // creation dialogs
	Edit   string `yaml:"edit"`   // edit dialogs
	Delete string `yaml:"delete"` // delete confirmations

	// Board colors
	ColumnBorder   string `yaml:"column_border"`
	DropTarget     string `yaml:"drop_target"` // border of the hovered column while dragging
	TaskBorder     string `yaml:"task_border"`
	TaskBackground string `yaml:"task_background"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`
	Dragging       string `yaml:"dragging"` // border of the card being dragged

	// Text colors
	Title    string `yaml:"title"`
	Subtle   string `yaml:"subtle"`
	Normal   string `yaml:"normal"`
	Disabled string `yaml:"disabled"` // actions the role cannot perform

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`

	// Status bar
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

var presets = []string{"default", "wave", "lotus", "monochrome"}

// PresetNames lists the built-in presets in cycling order
func PresetNames() []string {
	return slices.Clone(presets)
}

// NextPreset returns the preset after name, wrapping around
func NextPreset(name string) string {
	i := slices.Index(presets, name)
	return presets[(i+1)%len(presets)]
}

// GetPreset returns a preset color scheme by name, the default when unknown
func GetPreset(name string) *ColorScheme {
	switch name {
	case "wave":
		return Wave()
	case "lotus":
		return Lotus()
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values from the preset
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	c.fill(preset)
}

// MergeFrom overrides values with the non-empty values of other. A
// different preset in other replaces the base colors first.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	base := *c
	if other.Preset != "" && other.Preset != c.Preset {
		base = *GetPreset(other.Preset)
	}
	other.fill(&base)
	if other.Preset == "" {
		other.Preset = base.Preset
	}
	*c = other
}

// fill copies every field of base into c where c is empty
func (c *ColorScheme) fill(base *ColorScheme) {
	pairs := []struct {
		dst *string
		src string
	}{
		{&c.Accent, base.Accent},
		{&c.Background, base.Background},
		{&c.ColumnBackground, base.ColumnBackground},
		{&c.Create, base.Create},
		{&c.Edit, base.Edit},
		{&c.Delete, base.Delete},
		{&c.ColumnBorder, base.ColumnBorder},
		{&c.DropTarget, base.DropTarget},
		{&c.TaskBorder, base.TaskBorder},
		{&c.TaskBackground, base.TaskBackground},
		{&c.SelectedBorder, base.SelectedBorder},
		{&c.SelectedBg, base.SelectedBg},
		{&c.Dragging, base.Dragging},
		{&c.Title, base.Title},
		{&c.Subtle, base.Subtle},
		{&c.Normal, base.Normal},
		{&c.Disabled, base.Disabled},
		{&c.InfoFg, base.InfoFg},
		{&c.InfoBg, base.InfoBg},
		{&c.WarningFg, base.WarningFg},
		{&c.WarningBg, base.WarningBg},
		{&c.ErrorFg, base.ErrorFg},
		{&c.ErrorBg, base.ErrorBg},
		{&c.StatusBarBg, base.StatusBarBg},
		{&c.StatusBarText, base.StatusBarText},
	}
	for _, p := range pairs {
		if *p.dst == "" {
			*p.dst = p.src
		}
	}
}
