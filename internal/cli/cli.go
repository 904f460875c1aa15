package cli

import (
	"context"
	"fmt"

	"github.com/flke/flke/internal/app"
	"github.com/flke/flke/internal/cli/styles"
	"github.com/flke/flke/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App

	// owned is false when the App was injected and belongs to the caller
	owned bool
}

// NewCLI loads configuration, connects to the remote store and resolves the
// configured account
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	styles.Init(cfg.ColorScheme)

	application := app.NewFromConfig(cfg)
	if err := application.Start(ctx); err != nil {
		return nil, err
	}

	return &CLI{App: application, owned: true}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c == nil || c.App == nil || !c.owned {
		return nil
	}
	return c.App.Close()
}
