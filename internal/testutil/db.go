package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/flke/flke/internal/api"
	"github.com/flke/flke/internal/database"
	"github.com/flke/flke/internal/server"
)

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()

	_ = w.Close()
	os.Stdout = oldStdout
	return <-outC
}

// SetupTestDB creates an in-memory database with the full schema and the
// demo company seeded
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryDSN)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// StartStore serves a seeded development store over httptest and returns a
// client pointed at it. The demo company has id 1.
func StartStore(t *testing.T) (*api.Client, *database.Store) {
	t.Helper()
	store := database.NewStore(SetupTestDB(t))
	srv := httptest.NewServer(server.New(store, nil))
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL, 5*time.Second), store
}
