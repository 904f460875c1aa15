package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/flke/flke/internal/cli"
	"github.com/flke/flke/internal/cli/handler"
	taskservice "github.com/flke/flke/internal/services/task"
	"github.com/flke/flke/internal/types"
	"github.com/spf13/cobra"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a task's content",
		Long: `Update the title, description or assignee of a task. Only the flags
given are changed. Requires the editTask capability; use 'flke task move'
to change the status.

Examples:
  flke task update --id 3 --title "Fix login bug"
  flke task update --id 3 --assignee 0
`,
		RunE: handler.Command(runUpdate),
	}

	cmd.Flags().Int("id", 0, "Task ID (required)")
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (use - for stdin)")
	cmd.Flags().Int("assignee", 0, "New assignee member ID, 0 to unassign")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(ctx context.Context, c *cli.CLI, p *handler.FlagParser) (any, error) {
	taskID, err := p.ParseTaskID("id")
	if err != nil {
		return nil, err
	}
	if !p.Changed("title") && !p.Changed("description") && !p.Changed("assignee") {
		return nil, fmt.Errorf("%w: nothing to update, pass --title, --description or --assignee", cli.ErrUsage)
	}

	current, err := c.App.TaskService.Get(ctx, c.App.Session, taskID)
	if err != nil {
		return nil, err
	}

	req := taskservice.UpdateTaskRequest{
		TaskID:      current.ID,
		Title:       current.Title,
		Description: current.Description,
		Status:      current.Status,
		AssigneeID:  current.AssigneeID,
	}
	if p.Changed("title") {
		req.Title, _ = p.ParseStringOptional("title")
	}
	if p.Changed("description") {
		raw, _ := p.ParseStringOptional("description")
		if req.Description, err = cli.ReadDescription(raw, p.In()); err != nil {
			return nil, err
		}
	}
	if p.Changed("assignee") {
		assignee, _ := p.ParseIntOptional("assignee")
		req.AssigneeID = types.CompanyID(assignee)
	}

	updated, err := c.App.TaskService.Update(ctx, c.App.Session, req)
	if err != nil {
		if errors.Is(err, taskservice.ErrEmptyTitle) {
			return nil, fmt.Errorf("--title: %w", err)
		}
		return nil, err
	}

	formatter := p.Formatter()
	if formatter.JSON || formatter.Quiet {
		return updated, nil
	}
	fmt.Printf("✓ Task %d updated\n", updated.ID)
	return nil, nil
}
