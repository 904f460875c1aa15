// Package store holds the development store commands, e.g. flke store ...
package store

import (
	"github.com/spf13/cobra"
)

// StoreCmd returns the store parent command
func StoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Run the development remote store",
		Long: `The development store implements the remote HTTP store over a local
SQLite database. It seeds a demo company on first start.`,
	}

	cmd.AddCommand(ServeCmd())

	return cmd
}
