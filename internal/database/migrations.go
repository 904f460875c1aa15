package database

import (
	"context"
	"database/sql"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS companies (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		company_id INTEGER NOT NULL DEFAULT 0,
		company_name TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL DEFAULT '',
		surname TEXT NOT NULL DEFAULT '',
		username TEXT NOT NULL,
		email TEXT NOT NULL,
		password TEXT NOT NULL DEFAULT '',
		is_company BOOLEAN NOT NULL DEFAULT 0,
		role_admin BOOLEAN NOT NULL DEFAULT 0,
		role_add_task BOOLEAN NOT NULL DEFAULT 0,
		role_edit_task BOOLEAN NOT NULL DEFAULT 0,
		role_delete_task BOOLEAN NOT NULL DEFAULT 0,
		role_change_status BOOLEAN NOT NULL DEFAULT 0,
		role_change_settings BOOLEAN NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_companies_company ON companies(company_id, id)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_companies_username ON companies(company_id, lower(username))`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_companies_email ON companies(company_id, lower(email))`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		company_id INTEGER NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'todo' CHECK (status IN ('todo', 'doing', 'done')),
		user_id INTEGER REFERENCES companies(id) ON DELETE SET NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_company ON tasks(company_id, id)`,
}

// runMigrations creates the database schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
