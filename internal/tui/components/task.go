package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/tui/theme"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

// CardState selects how a task card is highlighted
type CardState int

const (
	CardNormal CardState = iota
	CardSelected
	CardDragging
)

// RenderTask renders a single task as a card of outer width width
//
//	┏━━━━━━━━━━━━━━━━━━━━━┓
//	┃ {Task Title}        ┃
//	┃ @assignee           ┃
//	┃ description summary ┃
//	┃ wrapped on words    ┃
//	┗━━━━━━━━━━━━━━━━━━━━━┛
//
// The height is always TaskCardHeight so mouse hit testing can map rows to cards.
func RenderTask(task *models.Task, assignee string, width int, cs CardState) string {
	inner := max(width-2, 1)
	text := max(inner-1, 1)

	bg := theme.TaskBg
	border := theme.TaskBorder
	switch cs {
	case CardSelected:
		bg = theme.SelectedBg
		border = theme.SelectedBorder
	case CardDragging:
		bg = theme.SelectedBg
		border = theme.Dragging
	}

	subtle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Background(lipgloss.Color(bg))

	lines := []string{
		" " + lipgloss.NewStyle().Bold(true).Background(lipgloss.Color(bg)).Render(truncate.StringWithTail(task.Title, uint(text), ellipsis)),
	}
	if assignee != "" {
		lines = append(lines, " "+subtle.Render(truncate.StringWithTail("@"+assignee, uint(text), ellipsis)))
	} else {
		lines = append(lines, " "+subtle.Italic(true).Render("unassigned"))
	}
	for _, l := range SummaryLines(task.Description, text, cardSummaryLines) {
		lines = append(lines, " "+subtle.Render(l))
	}

	body := lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Width(inner).
		MaxWidth(inner).
		Height(cardContentLines).
		MaxHeight(cardContentLines).
		Render(strings.Join(lines, "\n"))

	return TaskStyle.
		BorderForeground(lipgloss.Color(border)).
		BorderBackground(lipgloss.Color(bg)).
		Render(body)
}

// SummaryLines collapses description whitespace, wraps it at width and
// keeps the first n lines. The last kept line ends in an ellipsis when
// text was cut.
func SummaryLines(description string, width, n int) []string {
	flat := strings.Join(strings.Fields(description), " ")
	if flat == "" || n <= 0 {
		return nil
	}

	wrapped := strings.Split(wordwrap.String(flat, width), "\n")
	cut := len(wrapped) > n
	if cut {
		wrapped = wrapped[:n]
	}
	for i, l := range wrapped {
		wrapped[i] = truncate.StringWithTail(l, uint(width), ellipsis)
	}
	if cut {
		last := wrapped[n-1]
		wrapped[n-1] = truncate.StringWithTail(last+" "+ellipsis, uint(width), ellipsis)
	}
	return wrapped
}
