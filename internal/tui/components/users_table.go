package components

import (
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/tui/theme"
)

// RenderUsersTable renders the member rows with an ID, Username, Surname
// and Actions column. selected is the highlighted row, -1 for none.
func RenderUsersTable(members []*models.Company, selected int, width int) string {
	if len(members) == 0 {
		return SubtleStyle.Italic(true).Render("No users yet. Press the add key to create one.")
	}

	rows := make([][]string, 0, len(members))
	for _, m := range members {
		rows = append(rows, []string{strconv.Itoa(m.ID.ToInt()), m.Username, m.Surname, "edit · delete"})
	}

	cell := lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color(theme.Normal))
	header := TitleStyle.Padding(0, 1)
	active := cell.Background(lipgloss.Color(theme.SelectedBg)).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColumnBorder))).
		Headers("ID", "Username", "Surname", "Actions").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case row == selected:
				return active
			case col == 3:
				return cell.Foreground(lipgloss.Color(theme.Subtle))
			default:
				return cell
			}
		})
	if width > 0 {
		t = t.Width(width)
	}
	return t.Render()
}
