package user

import (
	"context"

	"github.com/flke/flke/internal/cli"
	"github.com/flke/flke/internal/cli/handler"
	userservice "github.com/flke/flke/internal/services/user"
	"github.com/spf13/cobra"
)

// CreateCmd returns the user create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a member to the company",
		Long: `Add a member to the signed-in company. Role switches default to off and
members are never administrators.

Examples:
  flke user create --name Ann --surname Lee --username ann \
    --email ann@acme.test --password s3cret --add-task --change-status
`,
		RunE: handler.Command(runCreate),
	}

	addFormFlags(cmd)
	handler.AddOutputFlags(cmd)

	return cmd
}

func runCreate(ctx context.Context, c *cli.CLI, p *handler.FlagParser) (any, error) {
	if err := loadUsers(ctx, c); err != nil {
		return nil, err
	}

	var form userservice.Form
	applyFormFlags(p, &form)

	rec, notice, err := submit(ctx, c, form)
	if err != nil {
		return nil, err
	}
	return printNotice(p, rec, notice)
}
