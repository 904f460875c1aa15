package database

import "database/sql"

// Store bundles the repositories behind the development HTTP store
type Store struct {
	Companies *CompanyRepository
	Tasks     *TaskRepository
}

// NewStore wraps db
func NewStore(db *sql.DB) *Store {
	return &Store{
		Companies: NewCompanyRepository(db),
		Tasks:     NewTaskRepository(db),
	}
}
