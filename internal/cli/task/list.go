package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/flke/flke/internal/cli"
	"github.com/flke/flke/internal/cli/handler"
	"github.com/flke/flke/internal/cli/styles"
	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/types"
	"github.com/spf13/cobra"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List the tasks of the signed-in company, grouped by status.

Examples:
  flke task list
  flke task list --status doing
  flke task list --json
`,
		RunE: handler.Command(runList),
	}

	cmd.Flags().String("status", "", "Only list tasks with this status (todo, doing, done)")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runList(ctx context.Context, c *cli.CLI, p *handler.FlagParser) (any, error) {
	var filter models.Status
	if p.Changed("status") {
		status, err := p.ParseStatus("status")
		if err != nil {
			return nil, err
		}
		filter = status
	}

	tasks, err := c.App.TaskService.List(ctx, c.App.Session)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[models.Status][]*models.Task)
	var listed []*models.Task
	for _, t := range tasks {
		if filter != "" && t.Status != filter {
			continue
		}
		byStatus[t.Status] = append(byStatus[t.Status], t)
		listed = append(listed, t)
	}

	formatter := p.Formatter()
	switch {
	case formatter.Quiet:
		for _, t := range listed {
			fmt.Printf("%d\n", t.ID)
		}
		return nil, nil
	case formatter.JSON:
		if listed == nil {
			listed = []*models.Task{}
		}
		return nil, formatter.JSONList("tasks", listed)
	}

	if len(listed) == 0 {
		fmt.Println("No tasks found")
		return nil, nil
	}

	names := assigneeNames(ctx, c)
	fmt.Printf("Found %d tasks:\n", len(listed))
	for _, status := range models.Statuses() {
		column := byStatus[status]
		if filter != "" && status != filter {
			continue
		}
		fmt.Println(styles.RenderStatusHeader(status, len(column)))
		for _, t := range column {
			fmt.Println(styles.RenderTaskLine(t, names[t.AssigneeID]))
		}
	}
	return nil, nil
}

// assigneeNames maps member ids to usernames. A failed lookup only costs
// the names.
func assigneeNames(ctx context.Context, c *cli.CLI) map[types.CompanyID]string {
	names := make(map[types.CompanyID]string)
	records, err := c.App.Users.Fetch(ctx, c.App.Session)
	if err != nil {
		slog.Warn("failed to load assignees", "error", err)
		return names
	}
	for _, r := range records {
		names[r.ID] = r.Username
	}
	return names
}
