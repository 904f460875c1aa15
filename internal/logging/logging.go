package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Init initializes the logging system, writing logs to ~/.flke/logs/flke.log.
// Uses text format for human readability; the TUI owns stdout.
func Init() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return InitFile(filepath.Join(homeDir, ".flke", "logs", "flke.log"))
}

// InitFile points the default logger at path, creating its directory
func InitFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	setOutput(file, slog.LevelDebug)
	return nil
}

// Quiet discards everything below warnings, for CLI runs without a log file
func Quiet(w io.Writer) {
	setOutput(w, slog.LevelWarn)
}

func setOutput(w io.Writer, level slog.Level) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output (used by echo's startup banner) too
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags)
}
