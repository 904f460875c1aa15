package task

import (
	"github.com/spf13/cobra"
)

// TaskCmd returns the task command group
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks", "t"},
		Short:   "Manage tasks on the company board",
		Long: `Create, inspect, update, move and delete tasks.

Every subcommand runs as the configured user and is checked against that
user's role before anything is sent to the store.`,
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}
