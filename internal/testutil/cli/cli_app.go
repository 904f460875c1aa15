package cli

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/flke/flke/internal/app"
	flkecli "github.com/flke/flke/internal/cli"
	"github.com/flke/flke/internal/config"
	"github.com/flke/flke/internal/database"
	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/testutil"
	"github.com/flke/flke/internal/types"
	"github.com/spf13/cobra"
)

// DemoCompanyID is the id of the seeded company in every test store
const DemoCompanyID types.CompanyID = 1

// SetupCLITest starts a seeded development store and an App signed in as
// the demo company root account
func SetupCLITest(t *testing.T) (*database.Store, *app.App) {
	t.Helper()
	client, store := testutil.StartStore(t)

	cfg := config.Default()
	cfg.Session.CompanyID = DemoCompanyID

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return store, app.New(client, app.WithConfig(cfg), app.WithLogger(logger))
}

// SetupCLITestAs is SetupCLITest signed in as a new member holding role
func SetupCLITestAs(t *testing.T, role models.Role) (*database.Store, *app.App) {
	t.Helper()
	store, testApp := SetupCLITest(t)

	member, err := store.Companies.Create(context.Background(), &models.Company{
		CompanyID:   DemoCompanyID,
		CompanyName: database.DemoCompanyName,
		Name:        "Limited",
		Surname:     "Member",
		Username:    "limited",
		Email:       "limited@acme.test",
		Password:    "secret",
		Role:        &role,
	})
	if err != nil {
		t.Fatalf("Failed to create member: %v", err)
	}
	testApp.Config.Session.UserID = member.ID
	return store, testApp
}

// ExecuteCLICommand executes a CLI command with a test app instance
// This properly injects the app context so commands can access the test store
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	cmd.SetArgs(args)

	ctxWithApp := flkecli.WithApp(context.Background(), testApp)
	cmd.SetContext(ctxWithApp)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctxWithApp)
	})

	return output, executeErr
}
