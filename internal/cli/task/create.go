package task

import (
	"context"
	"fmt"

	"github.com/flke/flke/internal/cli"
	"github.com/flke/flke/internal/cli/handler"
	"github.com/flke/flke/internal/cli/styles"
	taskservice "github.com/flke/flke/internal/services/task"
	"github.com/flke/flke/internal/types"
	"github.com/spf13/cobra"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task in the signed-in company. Requires the addTask capability.

Examples:
  # Simple task (human-readable output)
  flke task create --title="Fix bug"

  # Quiet mode for bash capture
  TASK_ID=$(flke task create --title="Fix bug" --quiet)

  # Description from stdin, straight into the doing column
  cat notes.md | flke task create --title="Write notes" --description=- --status=doing
`,
		RunE: handler.Command(runCreate),
	}

	cmd.Flags().String("title", "", "Task title (required)")
	cmd.Flags().String("description", "", "Task description in markdown (use - for stdin)")
	cmd.Flags().String("status", "todo", "Initial status: todo, doing, done")
	cmd.Flags().Int("assignee", 0, "Member ID the task is assigned to")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runCreate(ctx context.Context, c *cli.CLI, p *handler.FlagParser) (any, error) {
	title, err := p.ParseString("title")
	if err != nil {
		return nil, err
	}
	status, err := p.ParseStatus("status")
	if err != nil {
		return nil, err
	}
	raw, _ := p.ParseStringOptional("description")
	description, err := cli.ReadDescription(raw, p.In())
	if err != nil {
		return nil, err
	}
	assignee, _ := p.ParseIntOptional("assignee")

	created, err := c.App.TaskService.Create(ctx, c.App.Session, taskservice.CreateTaskRequest{
		Title:       title,
		Description: description,
		Status:      status,
		AssigneeID:  types.CompanyID(assignee),
	})
	if err != nil {
		return nil, err
	}

	formatter := p.Formatter()
	if formatter.JSON || formatter.Quiet {
		return created, nil
	}
	fmt.Printf("✓ Task %d created in %s\n", created.ID, created.Status.DisplayName())
	fmt.Println(styles.RenderField("Title", created.Title))
	return nil, nil
}
