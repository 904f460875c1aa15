package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/flke/flke/internal/types"
)

// isolate points the config lookup at an empty directory and clears the
// FLKE_* overrides for the duration of the test
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, name := range []string{EnvAPIURL, EnvCompanyID, EnvUserID, EnvThemeFile} {
		t.Setenv(name, "")
	}
	return dir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, "flke")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.GrabTask != "space" {
		t.Errorf("Default GrabTask key = %s, want space", defaults.GrabTask)
	}
	if defaults.MoveTaskLeft != "H" || defaults.MoveTaskRight != "L" {
		t.Errorf("Default move keys = %s/%s, want H/L", defaults.MoveTaskLeft, defaults.MoveTaskRight)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.API.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %s, want %s", cfg.API.BaseURL, DefaultBaseURL)
	}
	if cfg.API.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %s, want %s", cfg.API.Timeout, DefaultTimeout)
	}
	if cfg.ColorScheme.Preset != "default" {
		t.Errorf("Preset = %s, want default", cfg.ColorScheme.Preset)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `api:
  base_url: "http://store.internal:8080"
  timeout: 3s
session:
  company_id: 7
  user_id: 12
key_mappings:
  quit: "x"
  add_task: "n"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.API.BaseURL != "http://store.internal:8080" {
		t.Errorf("BaseURL = %s", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 3*time.Second {
		t.Errorf("Timeout = %s, want 3s", cfg.API.Timeout)
	}
	if cfg.Session.CompanyID != 7 || cfg.Session.UserID != 12 {
		t.Errorf("Session = %+v, want company 7 user 12", cfg.Session)
	}
	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.EditTask != "e" {
		t.Errorf("Loaded EditTask key = %s, want e (default)", cfg.KeyMappings.EditTask)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "api: [unclosed")

	if _, err := Load(); err == nil {
		t.Fatal("Expected parse error for malformed config")
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "session:\n  company_id: 7\n")
	t.Setenv(EnvAPIURL, "http://override:1")
	t.Setenv(EnvCompanyID, "9")
	t.Setenv(EnvUserID, "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.API.BaseURL != "http://override:1" {
		t.Errorf("BaseURL = %s, want override", cfg.API.BaseURL)
	}
	if cfg.Session.CompanyID != types.CompanyID(9) {
		t.Errorf("CompanyID = %d, want 9", cfg.Session.CompanyID)
	}
	if cfg.Session.UserID != 0 {
		t.Errorf("UserID = %d, want malformed value ignored", cfg.Session.UserID)
	}
}

func TestSaveConfig(t *testing.T) {
	dir := isolate(t)

	cfg := &Config{
		Session:     SessionConfig{CompanyID: 3},
		KeyMappings: KeyMappings{Quit: "x"},
	}
	cfg.ColorScheme.Preset = "wave"
	cfg.applyDefaults()

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	configPath := filepath.Join(dir, "flke", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file not created at %s", configPath)
	}

	cfg2, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}
	if cfg2.KeyMappings.Quit != "x" {
		t.Errorf("Reloaded Quit key = %s, want x", cfg2.KeyMappings.Quit)
	}
	if cfg2.Session.CompanyID != 3 {
		t.Errorf("Reloaded CompanyID = %d, want 3", cfg2.Session.CompanyID)
	}
	if cfg2.ColorScheme.Preset != "wave" {
		t.Errorf("Reloaded preset = %s, want wave", cfg2.ColorScheme.Preset)
	}
	if cfg2.API.Timeout != DefaultTimeout {
		t.Errorf("Reloaded timeout = %s, want %s", cfg2.API.Timeout, DefaultTimeout)
	}
}
