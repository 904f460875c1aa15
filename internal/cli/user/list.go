package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/flke/flke/internal/cli"
	"github.com/flke/flke/internal/cli/handler"
	"github.com/flke/flke/internal/cli/styles"
	"github.com/flke/flke/internal/models"
	userservice "github.com/flke/flke/internal/services/user"
	"github.com/spf13/cobra"
)

// ListCmd returns the user list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the members of the company",
		RunE:  handler.Command(runList),
	}

	cmd.Flags().String("sort", "asc", "Sort by id: asc or desc")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runList(ctx context.Context, c *cli.CLI, p *handler.FlagParser) (any, error) {
	order := userservice.SortAscending
	sortFlag, _ := p.ParseStringOptional("sort")
	switch strings.ToLower(sortFlag) {
	case "asc", "":
	case "desc":
		order = userservice.SortDescending
	default:
		return nil, fmt.Errorf("%w: --sort must be asc or desc, got %q", cli.ErrUsage, sortFlag)
	}

	if err := loadUsers(ctx, c); err != nil {
		return nil, err
	}
	members := c.App.Users.Members(order)

	formatter := p.Formatter()
	switch {
	case formatter.Quiet:
		for _, m := range members {
			fmt.Printf("%d\n", m.ID)
		}
		return nil, nil
	case formatter.JSON:
		if members == nil {
			members = []*models.Company{}
		}
		return nil, formatter.JSONList("users", members)
	}

	if len(members) == 0 {
		fmt.Println("No users found")
		return nil, nil
	}
	fmt.Println(styles.RenderUsersTable(members))
	return nil, nil
}
