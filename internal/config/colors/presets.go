package colors

// Default returns the purple default scheme
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent:           "#635FC7",
		Background:       "#1C1C1C",
		ColumnBackground: "#262626",

		Create: "#5FD75F",
		Edit:   "#5F87D7",
		Delete: "#FF5F5F",

		ColumnBorder:   "#4E4A8C",
		DropTarget:     "#A8A4FF",
		TaskBorder:     "#585858",
		TaskBackground: "#262626",
		SelectedBorder: "#A8A4FF",
		SelectedBg:     "#3A3A3A",
		Dragging:       "#FFD700",

		Title:    "#A8A4FF",
		Subtle:   "#6C6C6C",
		Normal:   "#D0D0D0",
		Disabled: "#4E4E4E",

		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF5F5F",
		ErrorBg:   "#5F0000",

		StatusBarBg:   "#635FC7",
		StatusBarText: "#D0D0D0",
	}
}

// Wave returns the Kanagawa Wave scheme
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		Accent:           "#957FB8",
		Background:       "#181820",
		ColumnBackground: "#1A1A22",

		Create: "#98BB6C",
		Edit:   "#7E9CD8",
		Delete: "#FF5D62",

		ColumnBorder:   "#54546D",
		DropTarget:     "#7AA89F",
		TaskBorder:     "#2A2A37",
		TaskBackground: "#1F1F28",
		SelectedBorder: "#7AA89F",
		SelectedBg:     "#223249",
		Dragging:       "#FF9E3B",

		Title:    "#7E9CD8",
		Subtle:   "#727169",
		Normal:   "#DCD7BA",
		Disabled: "#54546D",

		InfoFg:    "#658594",
		InfoBg:    "#252535",
		WarningFg: "#FF9E3B",
		WarningBg: "#49443C",
		ErrorFg:   "#E82424",
		ErrorBg:   "#43242B",

		StatusBarBg:   "#957FB8",
		StatusBarText: "#DCD7BA",
	}
}

// Lotus returns the Kanagawa Lotus light scheme
func Lotus() *ColorScheme {
	return &ColorScheme{
		Preset: "lotus",

		Accent:           "#624C83",
		Background:       "#D5CEA3",
		ColumnBackground: "#E5DDB0",

		Create: "#6F894E",
		Edit:   "#4D699B",
		Delete: "#C84053",

		ColumnBorder:   "#A09CAC",
		DropTarget:     "#597B75",
		TaskBorder:     "#E7DBA0",
		TaskBackground: "#F2ECBC",
		SelectedBorder: "#597B75",
		SelectedBg:     "#C7D7E0",
		Dragging:       "#E98A00",

		Title:    "#4D699B",
		Subtle:   "#8A8980",
		Normal:   "#545464",
		Disabled: "#A09CAC",

		InfoFg:    "#5A7785",
		InfoBg:    "#B5CBD2",
		WarningFg: "#E98A00",
		WarningBg: "#F9D791",
		ErrorFg:   "#E82424",
		ErrorBg:   "#D9A594",

		StatusBarBg:   "#624C83",
		StatusBarText: "#F2ECBC",
	}
}

// Monochrome returns a black and white scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent:           "#FFFFFF",
		Background:       "#121212",
		ColumnBackground: "#1C1C1C",

		Create: "#FFFFFF",
		Edit:   "#FFFFFF",
		Delete: "#FFFFFF",

		ColumnBorder:   "#808080",
		DropTarget:     "#FFFFFF",
		TaskBorder:     "#585858",
		TaskBackground: "#1C1C1C",
		SelectedBorder: "#FFFFFF",
		SelectedBg:     "#3A3A3A",
		Dragging:       "#FFFFFF",

		Title:    "#FFFFFF",
		Subtle:   "#585858",
		Normal:   "#D0D0D0",
		Disabled: "#3A3A3A",

		InfoFg:    "#FFFFFF",
		InfoBg:    "#1C1C1C",
		WarningFg: "#FFFFFF",
		WarningBg: "#3A3A3A",
		ErrorFg:   "#FFFFFF",
		ErrorBg:   "#585858",

		StatusBarBg:   "#3A3A3A",
		StatusBarText: "#FFFFFF",
	}
}
