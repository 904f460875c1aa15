package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/flke/flke/internal/app"
	"github.com/flke/flke/internal/config"
	"github.com/flke/flke/internal/tui/core"
)

// startTimeout bounds the session lookup before the TUI opens
const startTimeout = 15 * time.Second

// Launch starts the TUI application. Logging must already be initialized;
// the TUI owns the terminal.
func Launch(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	application := app.NewFromConfig(cfg, app.WithLogger(slog.Default()))
	startCtx, startCancel := context.WithTimeout(ctx, startTimeout)
	err = application.Start(startCtx)
	startCancel()
	if err != nil {
		return err
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing application", "error", err)
		}
	}()

	p := tea.NewProgram(core.New(ctx, application), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			slog.Info("shutdown signal received")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
