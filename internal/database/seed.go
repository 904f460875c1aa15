package database

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/flke/flke/internal/models"
)

// Demo company created on first start
const (
	DemoCompanyName = "Acme"
	DemoUsername    = "acme"
	DemoEmail       = "admin@acme.test"
	DemoPassword    = "acme"
)

// SeedDemo creates the demo company with a few tasks when the store is empty
func SeedDemo(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM companies").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	companies := NewCompanyRepository(db)
	root, err := companies.Create(ctx, &models.Company{
		CompanyName: DemoCompanyName,
		Name:        DemoCompanyName,
		Username:    DemoUsername,
		Email:       DemoEmail,
		Password:    DemoPassword,
		IsCompany:   true,
		Role: &models.Role{
			Admin: true, AddTask: true, EditTask: true, DeleteTask: true, ChangeStatus: true, ChangeSettings: true,
		},
	})
	if err != nil {
		return err
	}

	tasks := NewTaskRepository(db)
	for _, t := range []models.Task{
		{Title: "Draft the roadmap", Description: "Collect the **Q3** goals from every team.", Status: models.StatusTodo},
		{Title: "Set up CI", Description: "- lint\n- test\n- release", Status: models.StatusDoing},
		{Title: "Kick-off meeting", Status: models.StatusDone},
	} {
		t.CompanyID = root.CompanyID
		if _, err := tasks.Create(ctx, &t); err != nil {
			return err
		}
	}

	slog.Info("seeded demo company", "company_id", root.CompanyID, "username", root.Username)
	return nil
}
