package use

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/flke/flke/internal/api"
	"github.com/flke/flke/internal/cli"
	"github.com/flke/flke/internal/config"
	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/types"
	"github.com/spf13/cobra"
)

var errNotFound = errors.New("no matching account")

// target describes one settable context
type target struct {
	name    string
	envVar  string
	resolve func(ctx context.Context, store api.Store, cfg *config.Config, id types.CompanyID) (*models.Company, error)
}

// CompanyCmd returns the use company subcommand
func CompanyCmd() *cobra.Command {
	return newCmd(target{
		name:   "company",
		envVar: config.EnvCompanyID,
		resolve: func(ctx context.Context, store api.Store, _ *config.Config, id types.CompanyID) (*models.Company, error) {
			return find(ctx, store, id, func(r *models.Company) bool { return r.IsCompany })
		},
	})
}

// UserCmd returns the use user subcommand
func UserCmd() *cobra.Command {
	return newCmd(target{
		name:   "user",
		envVar: config.EnvUserID,
		resolve: func(ctx context.Context, store api.Store, cfg *config.Config, id types.CompanyID) (*models.Company, error) {
			return find(ctx, store, cfg.Session.CompanyID, func(r *models.Company) bool { return r.ID == id })
		},
	})
}

func newCmd(t target) *cobra.Command {
	cmd := &cobra.Command{
		Use:   t.name + " [" + t.name + "-id]",
		Short: fmt.Sprintf("Set %s context for current shell session", t.name),
		Long: fmt.Sprintf(`Set the current %[1]s using the %[2]s environment variable.
This command outputs shell commands that should be evaluated:

  eval $(flke use %[1]s 3)           # Use %[1]s 3
  eval $(flke use %[1]s --clear)     # Clear %[1]s context
  flke use %[1]s --show              # Show current %[1]s

The variable is set in your current shell session only and takes
precedence over the config file.`, t.name, t.envVar),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, t)
		},
	}

	cmd.Flags().Bool("clear", false, fmt.Sprintf("Clear the current %s context", t.name))
	cmd.Flags().Bool("show", false, fmt.Sprintf("Show the current %s context", t.name))
	cmd.Flags().Bool("dry-run", false, "Show what would be exported without outputting shell commands")

	return cmd
}

func run(cmd *cobra.Command, args []string, t target) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := &cli.OutputFormatter{}

	clearFlag, _ := cmd.Flags().GetBool("clear")
	showFlag, _ := cmd.Flags().GetBool("show")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	store, cfg, err := cli.StoreFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if showFlag {
		return show(ctx, cmd, store, cfg, t)
	}

	if clearFlag {
		if dryRun {
			fmt.Fprintf(cmd.ErrOrStderr(), "Would clear %s\n", t.envVar)
			return nil
		}
		fmt.Printf("unset %s\n", t.envVar)
		fmt.Fprintf(cmd.ErrOrStderr(), "Cleared %s context\n", t.name)
		return nil
	}

	if len(args) == 0 {
		return cli.Usage(formatter, t.name+" ID required", fmt.Sprintf("eval $(flke use %s <%s-id>)", t.name, t.name))
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return cli.Usage(formatter, fmt.Sprintf("invalid %s ID: %s", t.name, args[0]), "IDs are positive integers")
	}
	id := types.CompanyID(n)

	rec, err := t.resolve(ctx, store, cfg, id)
	if err != nil && !errors.Is(err, errNotFound) {
		return cli.Fail(formatter, err)
	}
	if err != nil {
		if fmtErr := formatter.ErrorWithSuggestion("NOT_FOUND",
			fmt.Sprintf("%s %d not found", t.name, id),
			"Use 'flke user list' to see available accounts"); fmtErr != nil {
			fmt.Fprintf(os.Stderr, "Error formatting error message: %v\n", fmtErr)
		}
		return &cli.ExitError{Code: cli.ExitNotFound, Err: err}
	}

	if dryRun {
		fmt.Fprintf(cmd.ErrOrStderr(), "Would set %s=%d (%s)\n", t.envVar, id, label(rec))
		return nil
	}

	fmt.Printf("export %s=%d\n", t.envVar, id)
	fmt.Fprintf(cmd.ErrOrStderr(), "Now using %s %d: %s\n", t.name, id, label(rec))
	return nil
}

func show(ctx context.Context, cmd *cobra.Command, store api.Store, cfg *config.Config, t target) error {
	current := os.Getenv(t.envVar)
	if current == "" {
		fmt.Printf("No %s context set\n", t.name)
		fmt.Printf("Use 'eval $(flke use %s <%s-id>)' to set one\n", t.name, t.name)
		return nil
	}

	n, err := strconv.Atoi(current)
	if err != nil {
		fmt.Printf("Invalid %s context: %s\n", t.name, current)
		return nil
	}

	rec, err := t.resolve(ctx, store, cfg, types.CompanyID(n))
	if err != nil {
		fmt.Printf("Current %s: %s (not found)\n", t.name, current)
		return nil
	}
	fmt.Printf("Current %s: %d (%s)\n", t.name, n, label(rec))
	return nil
}

func find(ctx context.Context, store api.Store, companyID types.CompanyID, match func(*models.Company) bool) (*models.Company, error) {
	if !companyID.Valid() {
		return nil, fmt.Errorf("%w: set a company first with 'flke use company'", cli.ErrUsage)
	}
	records, err := store.ListCompanies(ctx, companyID)
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if match(r) {
			return r, nil
		}
	}
	return nil, errNotFound
}

func label(rec *models.Company) string {
	if rec.IsCompany {
		return rec.CompanyName
	}
	return rec.Username
}
