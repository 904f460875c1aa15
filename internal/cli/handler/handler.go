// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"log/slog"

	"github.com/flke/flke/internal/cli"
	"github.com/spf13/cobra"
)

// Func is the body of a command. A non-nil result is printed through the
// formatter; commands with their own output return nil.
type Func func(ctx context.Context, c *cli.CLI, p *FlagParser) (any, error)

// Command wraps common command execution logic
// Returns a cobra RunE compatible function
func Command(fn Func) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		parser := NewFlagParser(cmd, args)
		formatter := parser.Formatter()

		cliInstance, err := cli.GetCLIFromContext(ctx)
		if err != nil {
			return cli.Fail(formatter, err)
		}
		defer func() {
			if err := cliInstance.Close(); err != nil {
				slog.Error("failed to close CLI", "error", err)
			}
		}()

		result, err := fn(ctx, cliInstance, parser)
		if err != nil {
			return cli.Fail(formatter, err)
		}
		if result == nil {
			return nil
		}

		// Common output formatting
		return formatter.Success(result)
	}
}

// AddOutputFlags adds the --json and --quiet flags every command carries
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}
