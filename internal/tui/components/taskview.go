package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/flke/flke/internal/markdown"
	"github.com/flke/flke/internal/models"
)

// RenderTaskDetail renders a task with its markdown description, for the
// read-only task modal
func RenderTaskDetail(task *models.Task, assignee string, width int) string {
	who := "unassigned"
	if assignee != "" {
		who = "@" + assignee
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("#%d %s", task.ID, task.Title)))
	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render(task.Status.DisplayName() + " · " + who))
	b.WriteString("\n\n")
	if desc := markdown.Render(task.Description, width); desc != "" {
		b.WriteString(strings.TrimRight(desc, "\n"))
	} else {
		b.WriteString(SubtleStyle.Italic(true).Render("No description"))
	}

	return lipgloss.NewStyle().MaxWidth(width).Render(b.String())
}
