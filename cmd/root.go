package cmd

import (
	"fmt"
	"os"

	"github.com/flke/flke/internal/cli"
	"github.com/flke/flke/internal/cli/store"
	"github.com/flke/flke/internal/cli/task"
	"github.com/flke/flke/internal/cli/tutorial"
	"github.com/flke/flke/internal/cli/use"
	"github.com/flke/flke/internal/cli/user"
	"github.com/flke/flke/internal/launcher"
	"github.com/flke/flke/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "flke",
	Short: "flke - a role-gated kanban board for your terminal",
	Long: `flke is a kanban board client for a company workspace.

Run it without arguments to open the board. The subcommands drive the same
services from scripts; see "flke tutorial" for a walkthrough.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// The board owns the terminal; without a log file keep warnings on stderr
		if err := logging.Init(); err != nil {
			logging.Quiet(os.Stderr)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch(cmd.Context())
	},
}

func init() {
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	})

	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(user.UserCmd())
	rootCmd.AddCommand(use.UseCmd())
	rootCmd.AddCommand(store.StoreCmd())
	rootCmd.AddCommand(tutorial.TutorialCmd())
}

// Execute runs the root command. Errors have already been reported to the
// user; the caller only maps them to an exit code.
func Execute() error {
	return rootCmd.Execute()
}
