package user

import (
	"context"
	"fmt"

	"github.com/flke/flke/internal/cli"
	"github.com/flke/flke/internal/cli/handler"
	userservice "github.com/flke/flke/internal/services/user"
	"github.com/spf13/cobra"
)

// DeleteCmd returns the user delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a member",
		Long:  "Delete a member by ID (requires confirmation unless --force, --quiet or --json).",
		RunE:  handler.Command(runDelete),
	}

	cmd.Flags().Int("id", 0, "Member ID (required)")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	handler.AddOutputFlags(cmd)

	return cmd
}

type deleteResult struct {
	UserID  int  `json:"user_id"`
	Deleted bool `json:"deleted"`
}

func runDelete(ctx context.Context, c *cli.CLI, p *handler.FlagParser) (any, error) {
	id, err := p.ParseUserID("id")
	if err != nil {
		return nil, err
	}
	if err := loadUsers(ctx, c); err != nil {
		return nil, err
	}

	var username string
	for _, m := range c.App.Users.Members(userservice.SortAscending) {
		if m.ID == id {
			username = m.Username
		}
	}
	if username == "" {
		return nil, fmt.Errorf("%w: %d", userservice.ErrUserNotFound, id)
	}

	force, _ := p.ParseBool("force")
	formatter := p.Formatter()
	if !force && !formatter.Quiet && !formatter.JSON {
		if !cli.Confirm(p.In(), p.Out(), fmt.Sprintf("Are you sure for delete? (%s)", username)) {
			fmt.Println("Cancelled")
			return nil, nil
		}
	}

	notice, err := c.App.Users.Delete(ctx, c.App.Session, id)
	if err != nil {
		return nil, err
	}

	switch {
	case formatter.Quiet:
		return nil, nil
	case formatter.JSON:
		return deleteResult{UserID: id.ToInt(), Deleted: true}, nil
	}
	fmt.Printf("✓ %s\n", notice)
	return nil, nil
}
