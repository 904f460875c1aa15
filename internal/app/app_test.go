package app

import (
	"context"
	"errors"
	"testing"

	"github.com/flke/flke/internal/config"
	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/session"
	"github.com/flke/flke/internal/testutil"
)

func TestNew(t *testing.T) {
	app := New(testutil.NewFakeStore(1, "Acme"))

	if app == nil {
		t.Fatal("Expected app to be created, got nil")
	}
	if app.TaskService == nil {
		t.Error("Expected TaskService to be initialized")
	}
	if app.Users == nil {
		t.Error("Expected Users manager to be initialized")
	}
	if app.Config == nil || app.Config.API.BaseURL != config.DefaultBaseURL {
		t.Error("Expected default config")
	}
}

func TestStartResolvesConfiguredUser(t *testing.T) {
	store := testutil.NewFakeStore(1, "Acme")
	member := store.AddMember(1, "ann", "ann@acme.io", &models.Role{AddTask: true})

	cfg := config.Default()
	cfg.Session.CompanyID = 1
	cfg.Session.UserID = member.ID

	app := New(store, WithConfig(cfg))
	if err := app.Start(context.Background()); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	if app.Session.UserID() != member.ID {
		t.Errorf("Expected user %d, got %d", member.ID, app.Session.UserID())
	}
}

func TestStartWithoutCompany(t *testing.T) {
	app := New(testutil.NewFakeStore(1, "Acme"))
	err := app.Start(context.Background())
	if !errors.Is(err, session.ErrNoCompany) {
		t.Fatalf("Expected ErrNoCompany, got %v", err)
	}
}

func TestStartKeepsInjectedSession(t *testing.T) {
	store := testutil.NewFakeStore(1, "Acme")
	sess := session.New(&models.Company{ID: 1, CompanyID: 1, IsCompany: true})

	app := New(store, WithSession(sess))
	if err := app.Start(context.Background()); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	if n := store.CallCount("ListCompanies"); n != 0 {
		t.Errorf("Expected no lookup with injected session, got %d", n)
	}
}

func TestClose(t *testing.T) {
	sess := session.New(&models.Company{ID: 1, CompanyID: 1})
	app := New(testutil.NewFakeStore(1, "Acme"), WithSession(sess))

	if err := app.Close(); err != nil {
		t.Errorf("Expected no error on Close, got %v", err)
	}
	if sess.Active() {
		t.Error("Expected session cleared on Close")
	}
}
