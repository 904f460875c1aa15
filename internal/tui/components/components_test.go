package components

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"github.com/flke/flke/internal/board"
	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTasks(n int) []*models.Task {
	var tasks []*models.Task
	for i := 1; i <= n; i++ {
		tasks = append(tasks, &models.Task{
			ID:          types.TaskID(i),
			Title:       "Task number " + types.TaskID(i).String(),
			Description: "Some **markdown** text that is long enough to wrap over more than two lines of a narrow card",
			Status:      models.StatusTodo,
		})
	}
	return tasks
}

func TestRenderTask_FixedSize(t *testing.T) {
	for _, cs := range []CardState{CardNormal, CardSelected, CardDragging} {
		card := RenderTask(sampleTasks(1)[0], "ann", 30, cs)
		assert.Equal(t, TaskCardHeight, lipgloss.Height(card))
		assert.Equal(t, 30, lipgloss.Width(card))
	}

	empty := RenderTask(&models.Task{ID: 9, Title: "x"}, "", 30, CardNormal)
	assert.Equal(t, TaskCardHeight, lipgloss.Height(empty), "cards without description keep their height")
	assert.Contains(t, empty, "unassigned")
}

func TestSummaryLines(t *testing.T) {
	lines := SummaryLines("one two three four five six seven eight nine ten", 12, 2)
	require.Len(t, lines, 2)
	for _, l := range lines {
		assert.LessOrEqual(t, lipgloss.Width(l), 12)
	}
	assert.True(t, strings.HasSuffix(lines[1], ellipsis))

	assert.Nil(t, SummaryLines("  \n ", 12, 2))
	assert.Equal(t, []string{"short"}, SummaryLines("short", 12, 2))
}

func TestRenderColumn_Size(t *testing.T) {
	props := ColumnProps{
		View:         board.ColumnView{Status: models.StatusTodo, Tasks: sampleTasks(5), AcceptsDrop: true},
		Width:        32,
		Height:       30,
		SelectedTask: -1,
		VisibleCards: 3,
	}

	out := RenderColumn(props)
	assert.Equal(t, 30, lipgloss.Height(out))
	assert.Equal(t, 32, lipgloss.Width(out))
	assert.Contains(t, out, "Todo (5)")
	assert.Contains(t, out, "▼ 2 more")

	props.ScrollOffset = 2
	out = RenderColumn(props)
	assert.Contains(t, out, "▲ 2 more")
	assert.NotContains(t, out, "▼")
}

func TestRenderColumn_EmptyAndLocked(t *testing.T) {
	out := RenderColumn(ColumnProps{
		View:   board.ColumnView{Status: models.StatusDone},
		Width:  30,
		Height: 12,
	})
	assert.Contains(t, out, "Done (0)")
	assert.Contains(t, out, "No tasks")
	assert.Contains(t, out, "locked")
}

func TestRenderUsersTable(t *testing.T) {
	assert.Contains(t, RenderUsersTable(nil, -1, 0), "No users yet")

	out := RenderUsersTable([]*models.Company{
		{ID: 2, Username: "ann", Surname: "Lee"},
		{ID: 3, Username: "bob", Surname: "Kim"},
	}, 0, 0)
	for _, want := range []string{"ID", "Username", "Surname", "Actions", "ann", "Kim", "edit · delete"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderTaskDetail(t *testing.T) {
	task := &models.Task{ID: 1, Title: "Draft the roadmap", Description: "Collect the **Q3** goals.", Status: models.StatusTodo}

	out := RenderTaskDetail(task, "", 60)
	assert.Contains(t, out, "#1 Draft the roadmap")
	assert.Contains(t, out, "unassigned")
	assert.Contains(t, out, "Q3")
	assert.NotContains(t, out, "**")
}

func TestRenderFooter_StaysOnOneLine(t *testing.T) {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"), key.WithDisabled()),
	}

	footer := RenderFooter(bindings, 20)
	assert.Equal(t, 1, lipgloss.Height(footer))
	assert.LessOrEqual(t, lipgloss.Width(footer), 20)
	assert.NotContains(t, RenderFooter(bindings, 200), "hidden")
}

func TestRenderHeader(t *testing.T) {
	header := RenderHeader("flke · Acme", "Tasks", 60)
	assert.Equal(t, 1, lipgloss.Height(header))
	assert.Equal(t, 60, lipgloss.Width(header))
	assert.Contains(t, header, "Tasks")
}
