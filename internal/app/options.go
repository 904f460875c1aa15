package app

import (
	"log/slog"

	"github.com/flke/flke/internal/config"
	"github.com/flke/flke/internal/session"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	config  *config.Config
	session *session.Session
	logger  *slog.Logger
}

// WithConfig sets the loaded configuration
func WithConfig(cfg *config.Config) Option {
	return func(c *appConfig) {
		c.config = cfg
	}
}

// WithSession injects an already resolved session, skipping Start's lookup
func WithSession(sess *session.Session) Option {
	return func(c *appConfig) {
		c.session = sess
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(c *appConfig) {
		c.logger = logger
	}
}
