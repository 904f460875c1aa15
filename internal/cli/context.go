package cli

import (
	"context"
	"fmt"

	"github.com/flke/flke/internal/api"
	"github.com/flke/flke/internal/app"
	"github.com/flke/flke/internal/cli/styles"
	"github.com/flke/flke/internal/config"
)

type contextKey string

const appKey contextKey = "app"

// WithApp stores a in ctx. Commands executed with that context use it
// instead of building their own.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns the CLI for a command: the injected App when
// present, otherwise one built from configuration
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		if err := a.Start(ctx); err != nil {
			return nil, err
		}
		styles.Init(a.Config.ColorScheme)
		return &CLI{App: a}, nil
	}

	c, err := NewCLI(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	return c, nil
}

// StoreFromContext returns the remote store and configuration without
// starting a session
func StoreFromContext(ctx context.Context) (api.Store, *config.Config, error) {
	if ctx != nil {
		if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
			return a.Store(), a.Config, nil
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return api.NewClient(cfg.API.BaseURL, cfg.API.Timeout), cfg, nil
}
