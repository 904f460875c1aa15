package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/flke/flke/internal/api"
	"github.com/flke/flke/internal/config"
	"github.com/flke/flke/internal/session"
	taskservice "github.com/flke/flke/internal/services/task"
	userservice "github.com/flke/flke/internal/services/user"
)

// App holds all application services and provides dependency injection.
// This is the main application container shared by the TUI and the CLI.
type App struct {
	// Remote store (HTTP client in production, fakes in tests)
	store api.Store

	Config  *config.Config
	Session *session.Session
	Logger  *slog.Logger

	// Service layer (business logic)
	TaskService taskservice.Service
	Users       *userservice.Manager
}

// New creates a new App with all services initialized over store
func New(store api.Store, opts ...Option) *App {
	cfg := appConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.config == nil {
		cfg.config = config.Default()
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	return &App{
		store:       store,
		Config:      cfg.config,
		Session:     cfg.session,
		Logger:      cfg.logger,
		TaskService: taskservice.NewService(store),
		Users:       userservice.NewManager(store),
	}
}

// NewFromConfig builds the HTTP store client from cfg
func NewFromConfig(cfg *config.Config, opts ...Option) *App {
	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout)
	return New(client, append([]Option{WithConfig(cfg)}, opts...)...)
}

// Store returns the remote store the services talk to
func (a *App) Store() api.Store {
	return a.store
}

// Start resolves the configured account unless a session was injected
func (a *App) Start(ctx context.Context) error {
	if a.Session.Active() {
		return nil
	}
	sess, err := session.Start(ctx, a.store, a.Config.Session.CompanyID, a.Config.Session.UserID)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	a.Session = sess
	a.Logger.Info("session started",
		"company_id", sess.CompanyID(),
		"user_id", sess.UserID(),
		"username", sess.CompanyData.Username)
	return nil
}

// Close ends the session. It never fails; the signature leaves room for
// resources that can.
func (a *App) Close() error {
	if a.Session != nil {
		a.Session.Clear()
	}
	return nil
}
