package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitFileWritesToPath(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "logs", "flke.log")
	if err := InitFile(path); err != nil {
		t.Fatalf("InitFile() failed: %v", err)
	}

	slog.Warn("Invalid Id", "screen", "users")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	if !strings.Contains(string(data), "screen=users") {
		t.Errorf("Expected log line in file, got %q", data)
	}
}

func TestQuietDropsInfo(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Quiet(&buf)
	slog.Info("hidden")
	slog.Warn("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("Expected info to be dropped")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("Expected warning to be written")
	}
}
