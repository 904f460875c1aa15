package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/types"
)

// CompanyRepository stores company root accounts and their members
type CompanyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

const companyColumns = `id, company_id, company_name, name, surname, username, email, password, is_company,
	role_admin, role_add_task, role_edit_task, role_delete_task, role_change_status, role_change_settings`

type scanner interface {
	Scan(dest ...any) error
}

func scanCompany(row scanner) (*models.Company, error) {
	c := &models.Company{Role: &models.Role{}}
	err := row.Scan(
		&c.ID, &c.CompanyID, &c.CompanyName, &c.Name, &c.Surname, &c.Username, &c.Email, &c.Password, &c.IsCompany,
		&c.Role.Admin, &c.Role.AddTask, &c.Role.EditTask, &c.Role.DeleteTask, &c.Role.ChangeStatus, &c.Role.ChangeSettings,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListByCompany returns the root account and every member of companyID, by id
func (r *CompanyRepository) ListByCompany(ctx context.Context, companyID types.CompanyID) ([]*models.Company, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE company_id = ? ORDER BY id`,
		companyID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []*models.Company{}
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Get returns the record with id
func (r *CompanyRepository) Get(ctx context.Context, id types.CompanyID) (*models.Company, error) {
	return getCompany(ctx, r.db, id)
}

func getCompany(ctx context.Context, q queryer, id types.CompanyID) (*models.Company, error) {
	c, err := scanCompany(q.QueryRowContext(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: company %d", ErrNotFound, id)
	}
	return c, err
}

// Create inserts c. A root account (IsCompany) becomes its own tenant.
func (r *CompanyRepository) Create(ctx context.Context, c *models.Company) (*models.Company, error) {
	var created *models.Company
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if !c.IsCompany {
			if err := checkUnique(ctx, tx, c.CompanyID, 0, c.Username, c.Email); err != nil {
				return err
			}
		}

		role := roleOf(c)
		res, err := tx.ExecContext(ctx,
			`INSERT INTO companies (company_id, company_name, name, surname, username, email, password, is_company,
				role_admin, role_add_task, role_edit_task, role_delete_task, role_change_status, role_change_settings)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.CompanyID, c.CompanyName, c.Name, c.Surname, c.Username, c.Email, c.Password, c.IsCompany,
			role.Admin, role.AddTask, role.EditTask, role.DeleteTask, role.ChangeStatus, role.ChangeSettings,
		)
		if err != nil {
			return classify(err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}

		if c.IsCompany {
			if _, err := tx.ExecContext(ctx, `UPDATE companies SET company_id = id WHERE id = ?`, id); err != nil {
				return err
			}
		}

		created, err = getCompany(ctx, tx, types.CompanyID(id))
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update replaces every field of the record with id
func (r *CompanyRepository) Update(ctx context.Context, id types.CompanyID, c *models.Company) (*models.Company, error) {
	var updated *models.Company
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := getCompany(ctx, tx, id); err != nil {
			return err
		}
		if err := checkUnique(ctx, tx, c.CompanyID, id, c.Username, c.Email); err != nil {
			return err
		}

		role := roleOf(c)
		_, err := tx.ExecContext(ctx,
			`UPDATE companies SET company_id = ?, company_name = ?, name = ?, surname = ?, username = ?, email = ?,
				password = ?, is_company = ?, role_admin = ?, role_add_task = ?, role_edit_task = ?,
				role_delete_task = ?, role_change_status = ?, role_change_settings = ?
			 WHERE id = ?`,
			c.CompanyID, c.CompanyName, c.Name, c.Surname, c.Username, c.Email, c.Password, c.IsCompany,
			role.Admin, role.AddTask, role.EditTask, role.DeleteTask, role.ChangeStatus, role.ChangeSettings,
			id,
		)
		if err != nil {
			return classify(err)
		}

		updated, err = getCompany(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the record with id
func (r *CompanyRepository) Delete(ctx context.Context, id types.CompanyID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM companies WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: company %d", ErrNotFound, id)
	}
	return nil
}

// checkUnique fails with ErrDuplicate when another record of companyID
// uses username or email, ignoring case
func checkUnique(ctx context.Context, q queryer, companyID, except types.CompanyID, username, email string) error {
	var n int
	err := q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM companies
		 WHERE company_id = ? AND id != ? AND (lower(username) = lower(?) OR lower(email) = lower(?))`,
		companyID, except, username, email,
	).Scan(&n)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrDuplicate
	}
	return nil
}

func roleOf(c *models.Company) models.Role {
	if c.Role == nil {
		return models.Role{}
	}
	return *c.Role
}
