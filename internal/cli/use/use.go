// Package use holds all cli commands related to setting contextual information
// e.g., flke use ...
package use

import (
	"github.com/spf13/cobra"
)

// UseCmd returns the use parent command
func UseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use",
		Short: "Manage the signed-in account for the current shell",
		Long: `Set and manage the account the client signs in as for the current
shell session.

The 'use' commands print shell exports that override the session section
of the config file, eliminating the need to edit it when switching accounts.

Available contexts:
  - company: Set the company (FLKE_COMPANY_ID)
  - user: Set the member within the company (FLKE_USER_ID)

Examples:
  eval $(flke use company 3)       # Sign in to company 3 as its root account
  eval $(flke use user 7)          # Sign in as member 7
  eval $(flke use user --clear)    # Back to the root account
  flke use company --show          # Show the current company`,
	}

	cmd.AddCommand(CompanyCmd())
	cmd.AddCommand(UserCmd())

	return cmd
}
