package task

import (
	"context"
	"fmt"

	"github.com/flke/flke/internal/cli"
	"github.com/flke/flke/internal/cli/handler"
	"github.com/spf13/cobra"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <next|prev|status>",
		Short: "Move a task to another column",
		Long: `Move a task to another column by direction or status name.
Requires the changeStatus capability.

Examples:
  # Move to next column
  flke task move --id 1 next

  # Move to previous column
  flke task move --id 1 prev

  # Move to specific column by name (case-insensitive)
  flke task move --id 1 done
  flke task move --id 1 "In Progress"
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(runMove),
	}

	cmd.Flags().Int("id", 0, "Task ID (required)")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runMove(ctx context.Context, c *cli.CLI, p *handler.FlagParser) (any, error) {
	taskID, err := p.ParseTaskID("id")
	if err != nil {
		return nil, err
	}

	current, err := c.App.TaskService.Get(ctx, c.App.Session, taskID)
	if err != nil {
		return nil, err
	}
	target, err := cli.ResolveTarget(current.Status, p.Args()[0])
	if err != nil {
		return nil, err
	}

	moved, err := c.App.TaskService.Move(ctx, c.App.Session, taskID, target)
	if err != nil {
		return nil, err
	}

	formatter := p.Formatter()
	if formatter.JSON || formatter.Quiet {
		return moved, nil
	}
	fmt.Printf("✓ Task %d moved from %s to %s\n", moved.ID, current.Status.DisplayName(), moved.Status.DisplayName())
	return nil, nil
}
