package task

import (
	"context"
	"fmt"
	"strings"

	"github.com/flke/flke/internal/cli"
	"github.com/flke/flke/internal/cli/handler"
	"github.com/flke/flke/internal/cli/styles"
	"github.com/flke/flke/internal/markdown"
	"github.com/spf13/cobra"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a task with its rendered description",
		RunE:  handler.Command(runShow),
	}

	cmd.Flags().Int("id", 0, "Task ID (required)")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runShow(ctx context.Context, c *cli.CLI, p *handler.FlagParser) (any, error) {
	taskID, err := p.ParseTaskID("id")
	if err != nil {
		return nil, err
	}

	task, err := c.App.TaskService.Get(ctx, c.App.Session, taskID)
	if err != nil {
		return nil, err
	}

	formatter := p.Formatter()
	if formatter.JSON || formatter.Quiet {
		return task, nil
	}

	assignee := "unassigned"
	if task.AssigneeID.Valid() {
		assignee = fmt.Sprintf("#%d", task.AssigneeID)
		if name, ok := assigneeNames(ctx, c)[task.AssigneeID]; ok {
			assignee = name
		}
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("#%d %s", task.ID, task.Title)))
	b.WriteString("\n\n")
	b.WriteString(styles.RenderField("Status", task.Status.DisplayName()))
	b.WriteString("\n")
	b.WriteString(styles.RenderField("Assignee", assignee))
	if desc := markdown.Render(task.Description, styles.CardWidth-6); desc != "" {
		b.WriteString("\n")
		b.WriteString(styles.SectionStyle.Render("Description"))
		b.WriteString("\n")
		b.WriteString(desc)
	}

	fmt.Println(styles.RenderCard(b.String()))
	return nil, nil
}
