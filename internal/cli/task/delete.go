package task

import (
	"context"
	"fmt"

	"github.com/flke/flke/internal/cli"
	"github.com/flke/flke/internal/cli/handler"
	"github.com/flke/flke/internal/permissions"
	"github.com/spf13/cobra"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a task",
		Long:  "Delete a task by ID (requires confirmation unless --force or --quiet). Requires the deleteTask capability.",
		RunE:  handler.Command(runDelete),
	}

	cmd.Flags().Int("id", 0, "Task ID (required)")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	handler.AddOutputFlags(cmd)

	return cmd
}

type deleteResult struct {
	TaskID  int  `json:"task_id"`
	Deleted bool `json:"deleted"`
}

func runDelete(ctx context.Context, c *cli.CLI, p *handler.FlagParser) (any, error) {
	taskID, err := p.ParseTaskID("id")
	if err != nil {
		return nil, err
	}
	// Refuse before asking for confirmation
	if err := permissions.Require(c.App.Session.Role(), permissions.DeleteTask); err != nil {
		return nil, err
	}

	task, err := c.App.TaskService.Get(ctx, c.App.Session, taskID)
	if err != nil {
		return nil, err
	}

	force, _ := p.ParseBool("force")
	formatter := p.Formatter()
	if !force && !formatter.Quiet && !formatter.JSON {
		if !cli.Confirm(p.In(), p.Out(), fmt.Sprintf("Delete task #%d: '%s'?", taskID, task.Title)) {
			fmt.Println("Cancelled")
			return nil, nil
		}
	}

	if err := c.App.TaskService.Delete(ctx, c.App.Session, taskID); err != nil {
		return nil, err
	}

	switch {
	case formatter.Quiet:
		return nil, nil
	case formatter.JSON:
		return deleteResult{TaskID: taskID.ToInt(), Deleted: true}, nil
	}
	fmt.Printf("✓ Task %d deleted successfully\n", taskID)
	return nil, nil
}
