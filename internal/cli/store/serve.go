package store

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/flke/flke/internal/cli"
	"github.com/flke/flke/internal/database"
	"github.com/flke/flke/internal/server"
	"github.com/spf13/cobra"
)

// DefaultAddr matches the default api.base_url of the client
const DefaultAddr = "localhost:3001"

// ServeCmd returns the store serve subcommand
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the development store",
		Long: `Serve the development store until interrupted.

Examples:
  flke store serve
  flke store serve --addr :8080 --db ./store.db
  flke store serve --memory
`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", DefaultAddr, "Listen address")
	cmd.Flags().String("db", "", "SQLite database path (default ~/.flke/store.db)")
	cmd.Flags().Bool("memory", false, "Use an in-memory database")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	formatter := &cli.OutputFormatter{}

	addr, _ := cmd.Flags().GetString("addr")
	path, _ := cmd.Flags().GetString("db")
	memory, _ := cmd.Flags().GetBool("memory")

	dsn, err := resolveDSN(path, memory)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db, err := database.InitDB(ctx, dsn)
	if err != nil {
		return cli.Fail(formatter, fmt.Errorf("failed to initialize database: %w", err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	e := server.New(database.NewStore(db), slog.Default())
	slog.Info("development store starting", "addr", addr, "database", dsn, "pid", os.Getpid())
	fmt.Fprintf(cmd.ErrOrStderr(), "Serving the development store on %s (database %s)\n", addr, dsn)

	if err := server.Serve(ctx, e, addr); err != nil {
		return cli.Fail(formatter, err)
	}

	slog.Info("development store shut down gracefully")
	return nil
}

func resolveDSN(path string, memory bool) (string, error) {
	switch {
	case memory && path != "":
		return "", fmt.Errorf("%w: --memory and --db are mutually exclusive", cli.ErrUsage)
	case memory:
		return database.MemoryDSN, nil
	case path != "":
		return path, nil
	}
	return database.DefaultPath()
}
