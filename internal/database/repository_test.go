package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/types"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database with the schema and no seed
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), MemoryDSN)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func createTestCompany(t *testing.T, db *sql.DB, name string) *models.Company {
	t.Helper()
	c, err := NewCompanyRepository(db).Create(context.Background(), &models.Company{
		CompanyName: name,
		Username:    name,
		Email:       name + "@example.com",
		IsCompany:   true,
		Role:        &models.Role{Admin: true},
	})
	if err != nil {
		t.Fatalf("Failed to create company: %v", err)
	}
	return c
}

func member(companyID types.CompanyID, username, email string) *models.Company {
	return &models.Company{
		CompanyID: companyID,
		Name:      "Ann",
		Surname:   "Lee",
		Username:  username,
		Email:     email,
		Password:  "secret",
		Role:      &models.Role{ChangeStatus: true},
	}
}

// ============================================================================
// COMPANIES
// ============================================================================

func TestCreateCompanyIsOwnTenant(t *testing.T) {
	db := setupTestDB(t)
	root := createTestCompany(t, db, "acme")

	if root.CompanyID != root.ID {
		t.Errorf("Expected root company_id %d, got %d", root.ID, root.CompanyID)
	}
	if !root.IsCompany || !root.Role.Admin {
		t.Errorf("Expected admin root account, got %+v", root)
	}
}

func TestCompanyUniquenessIgnoresCase(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCompanyRepository(db)
	ctx := context.Background()
	root := createTestCompany(t, db, "acme")

	if _, err := repo.Create(ctx, member(root.CompanyID, "ann", "ann@acme.io")); err != nil {
		t.Fatalf("Failed to create member: %v", err)
	}

	tests := []struct {
		name     string
		username string
		email    string
	}{
		{"same username other case", "ANN", "other@acme.io"},
		{"same email other case", "bob", "Ann@ACME.io"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.Create(ctx, member(root.CompanyID, tt.username, tt.email))
			if !errors.Is(err, ErrDuplicate) {
				t.Errorf("Expected ErrDuplicate, got %v", err)
			}
		})
	}

	// another tenant may reuse the name
	other := createTestCompany(t, db, "globex")
	if _, err := repo.Create(ctx, member(other.CompanyID, "ann", "ann@acme.io")); err != nil {
		t.Errorf("Expected other tenant to accept the username, got %v", err)
	}
}

func TestUpdateCompany(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCompanyRepository(db)
	ctx := context.Background()
	root := createTestCompany(t, db, "acme")

	ann, err := repo.Create(ctx, member(root.CompanyID, "ann", "ann@acme.io"))
	if err != nil {
		t.Fatalf("Failed to create member: %v", err)
	}
	if _, err := repo.Create(ctx, member(root.CompanyID, "bob", "bob@acme.io")); err != nil {
		t.Fatalf("Failed to create member: %v", err)
	}

	// keeping its own username is fine
	next := member(root.CompanyID, "Ann", "ann@acme.io")
	next.Surname = "Smith"
	next.Role = &models.Role{DeleteTask: true}
	updated, err := repo.Update(ctx, ann.ID, next)
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if updated.Surname != "Smith" || !updated.Role.DeleteTask || updated.Role.ChangeStatus {
		t.Errorf("Unexpected record after update: %+v %+v", updated, updated.Role)
	}

	// taking bob's email is not
	if _, err := repo.Update(ctx, ann.ID, member(root.CompanyID, "ann", "BOB@acme.io")); !errors.Is(err, ErrDuplicate) {
		t.Errorf("Expected ErrDuplicate, got %v", err)
	}

	if _, err := repo.Update(ctx, 999, next); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestListAndDeleteCompanies(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCompanyRepository(db)
	ctx := context.Background()
	root := createTestCompany(t, db, "acme")
	ann, _ := repo.Create(ctx, member(root.CompanyID, "ann", "ann@acme.io"))

	records, err := repo.ListByCompany(ctx, root.CompanyID)
	if err != nil {
		t.Fatalf("ListByCompany() failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	if err := repo.Delete(ctx, ann.ID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if err := repo.Delete(ctx, ann.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}
}

// ============================================================================
// TASKS
// ============================================================================

func TestTaskLifecycle(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	root := createTestCompany(t, db, "acme")
	ann, _ := NewCompanyRepository(db).Create(ctx, member(root.CompanyID, "ann", "ann@acme.io"))
	repo := NewTaskRepository(db)

	created, err := repo.Create(ctx, &models.Task{CompanyID: root.CompanyID, Title: "Ship", Status: models.StatusTodo, AssigneeID: ann.ID})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if created.ID == 0 || created.CreatedAt.IsZero() {
		t.Errorf("Expected id and timestamps, got %+v", created)
	}
	if created.AssigneeID != ann.ID {
		t.Errorf("Expected assignee %d, got %d", ann.ID, created.AssigneeID)
	}

	next := created.Clone()
	next.Status = models.StatusDone
	updated, err := repo.Update(ctx, created.ID, next)
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if updated.Status != models.StatusDone {
		t.Errorf("Expected done, got %s", updated.Status)
	}

	// removing the assignee clears the reference
	if err := NewCompanyRepository(db).Delete(ctx, ann.ID); err != nil {
		t.Fatalf("Failed to delete member: %v", err)
	}
	got, err := repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got.AssigneeID != 0 {
		t.Errorf("Expected assignee cleared, got %d", got.AssigneeID)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := repo.Get(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestTaskStatusConstraint(t *testing.T) {
	db := setupTestDB(t)
	root := createTestCompany(t, db, "acme")

	_, err := NewTaskRepository(db).Create(context.Background(), &models.Task{CompanyID: root.CompanyID, Title: "x", Status: "archived"})
	if err == nil {
		t.Fatal("Expected CHECK constraint to reject unknown status")
	}
}

func TestTaskListScopedToCompany(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	acme := createTestCompany(t, db, "acme")
	globex := createTestCompany(t, db, "globex")
	repo := NewTaskRepository(db)

	for _, c := range []*models.Company{acme, acme, globex} {
		if _, err := repo.Create(ctx, &models.Task{CompanyID: c.CompanyID, Title: "t", Status: models.StatusTodo}); err != nil {
			t.Fatalf("Create() failed: %v", err)
		}
	}

	tasks, err := repo.ListByCompany(ctx, acme.CompanyID)
	if err != nil {
		t.Fatalf("ListByCompany() failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Errorf("Expected 2 tasks, got %d", len(tasks))
	}
}

// ============================================================================
// SEED / PERSISTENCE
// ============================================================================

func TestInitDBSeedsOnce(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.db")

	db, err := InitDB(ctx, path)
	if err != nil {
		t.Fatalf("InitDB() failed: %v", err)
	}
	records, err := NewCompanyRepository(db).ListByCompany(ctx, 1)
	if err != nil {
		t.Fatalf("ListByCompany() failed: %v", err)
	}
	if len(records) != 1 || records[0].Username != DemoUsername {
		t.Fatalf("Expected demo root account, got %+v", records)
	}
	_ = db.Close()

	// reopening keeps the data and does not seed twice
	db, err = InitDB(ctx, path)
	if err != nil {
		t.Fatalf("InitDB() reopen failed: %v", err)
	}
	defer func() { _ = db.Close() }()

	tasks, err := NewTaskRepository(db).ListByCompany(ctx, 1)
	if err != nil {
		t.Fatalf("ListByCompany() failed: %v", err)
	}
	if len(tasks) != 3 {
		t.Errorf("Expected 3 seeded tasks, got %d", len(tasks))
	}
}
