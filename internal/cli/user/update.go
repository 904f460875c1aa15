package user

import (
	"context"

	"github.com/flke/flke/internal/cli"
	"github.com/flke/flke/internal/cli/handler"
	"github.com/spf13/cobra"
)

// UpdateCmd returns the user update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Edit a member",
		Long: `Edit a member. Fields not given keep their current value.

The duplicate check runs against every record of the company, the edited
one included, and an edit is only sent when the username or e-mail
matches an existing record. Changing both at once is rejected as
"Already registered".

Examples:
  flke user update --id 4 --surname Smith
  flke user update --id 4 --delete-task=false
`,
		RunE: handler.Command(runUpdate),
	}

	cmd.Flags().Int("id", 0, "Member ID (required)")
	addFormFlags(cmd)
	handler.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(ctx context.Context, c *cli.CLI, p *handler.FlagParser) (any, error) {
	id, err := p.ParseUserID("id")
	if err != nil {
		return nil, err
	}
	if err := loadUsers(ctx, c); err != nil {
		return nil, err
	}

	form, err := c.App.Users.BeginEdit(id)
	if err != nil {
		return nil, err
	}
	applyFormFlags(p, &form)

	rec, notice, err := submit(ctx, c, form)
	if err != nil {
		c.App.Users.CancelEdit()
		return nil, err
	}
	return printNotice(p, rec, notice)
}
