package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/flke/flke/internal/board"
	"github.com/flke/flke/internal/types"
	"github.com/flke/flke/internal/tui/theme"
)

// ColumnProps describes one status column as it should be drawn
type ColumnProps struct {
	View board.ColumnView

	// Width and Height are outer dimensions, borders included
	Width  int
	Height int

	Focused bool
	// SelectedTask is the focused card index, -1 for none
	SelectedTask int
	ScrollOffset int
	VisibleCards int

	// DropTarget is set while a dragged task hovers this column
	DropTarget bool
	Dragging   types.TaskID

	Assignee func(types.CompanyID) string
}

// RenderColumn renders a complete column with its title and tasks
//
// Layout:
//
//	{Status} ({count})
//	▲ n more (if scrolled down)
//	{Task 1}
//	{Task 2}
//	...
//	▼ n more (if more tasks below)
func RenderColumn(p ColumnProps) string {
	inner := max(p.Width-2, 1)
	innerHeight := max(p.Height-2, 1)
	tasks := p.View.Tasks

	header := fmt.Sprintf("%s (%d)", p.View.Status.DisplayName(), len(tasks))
	lines := []string{TitleStyle.Render(header)}
	if !p.View.AcceptsDrop {
		lines[0] += SubtleStyle.Render(" · locked")
	}

	offset := min(max(p.ScrollOffset, 0), max(len(tasks)-1, 0))
	if offset > 0 {
		lines = append(lines, IndicatorStyle.Render(fmt.Sprintf("▲ %d more", offset)))
	} else {
		lines = append(lines, "")
	}

	end := min(offset+max(p.VisibleCards, 1), len(tasks))
	for i := offset; i < end; i++ {
		t := tasks[i]
		cs := CardNormal
		switch {
		case t.ID == p.Dragging:
			cs = CardDragging
		case p.Focused && i == p.SelectedTask:
			cs = CardSelected
		}
		assignee := ""
		if p.Assignee != nil {
			assignee = p.Assignee(t.AssigneeID)
		}
		lines = append(lines, RenderTask(t, assignee, inner, cs))
	}

	used := 2 + (end-offset)*TaskCardHeight
	footer := ""
	switch {
	case len(tasks) == 0:
		footer = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Italic(true).Render("No tasks")
	case end < len(tasks):
		footer = IndicatorStyle.Render(fmt.Sprintf("▼ %d more", len(tasks)-end))
	}
	if fill := innerHeight - used - 1; fill > 0 {
		lines = append(lines, strings.Repeat("\n", fill-1))
	}
	lines = append(lines, footer)

	body := lipgloss.NewStyle().
		Width(inner).
		MaxWidth(inner).
		Height(innerHeight).
		MaxHeight(innerHeight).
		Render(strings.Join(lines, "\n"))

	style := ColumnStyle
	switch {
	case p.DropTarget:
		style = DropTargetColumnStyle
	case p.Focused:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	return style.Render(body)
}
