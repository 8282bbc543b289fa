package database

import (
	"fmt"

	"propdesk/model"

	"github.com/jmoiron/sqlx"
)

const tenantColumns = `id, unit_id, first_name, last_name, email, phone, lease_start, lease_end, status, created_at, updated_at`

const insertTenant = `
	INSERT INTO tenants (unit_id, first_name, last_name, email, phone, lease_start, lease_end, status)
	VALUES (:unit_id, :first_name, :last_name, :email, :phone, :lease_start, :lease_end, :status)`

func GetAllTenants(db *sqlx.DB) ([]model.Tenant, error) {
	tenants := []model.Tenant{}
	if err := db.Select(&tenants, "SELECT "+tenantColumns+" FROM tenants ORDER BY last_name, first_name"); err != nil {
		return nil, fmt.Errorf("failed to get all tenants: %w", err)
	}
	return tenants, nil
}

func GetTenantByID(db *sqlx.DB, id int64) (*model.Tenant, error) {
	t, err := getByID[model.Tenant](db, "SELECT "+tenantColumns+" FROM tenants WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant %d: %w", id, err)
	}
	return t, nil
}

func CreateTenant(db *sqlx.DB, t *model.Tenant) (int64, error) {
	res, err := db.NamedExec(insertTenant, t)
	if err != nil {
		return 0, fmt.Errorf("CreateTenant (%s) failed: %w", t.FullName(), constraintError(err))
	}
	return res.LastInsertId()
}

// CreateTenantInTx is used by the CSV import, which commits a file at once.
func CreateTenantInTx(tx *sqlx.Tx, t *model.Tenant) (int64, error) {
	res, err := tx.NamedExec(insertTenant, t)
	if err != nil {
		return 0, fmt.Errorf("CreateTenantInTx (%s) failed: %w", t.FullName(), constraintError(err))
	}
	return res.LastInsertId()
}

func UpdateTenant(db *sqlx.DB, t *model.Tenant) error {
	const q = `
		UPDATE tenants SET
			unit_id = :unit_id, first_name = :first_name, last_name = :last_name,
			email = :email, phone = :phone, lease_start = :lease_start, lease_end = :lease_end,
			status = :status, updated_at = CURRENT_TIMESTAMP
		WHERE id = :id`
	if err := expectOne(db.NamedExec(q, t)); err != nil {
		return fmt.Errorf("failed to update tenant %d: %w", t.ID, err)
	}
	return nil
}

func DeleteTenant(db *sqlx.DB, id int64) error {
	if err := expectOne(db.Exec(`DELETE FROM tenants WHERE id = ?`, id)); err != nil {
		return fmt.Errorf("failed to delete tenant %d: %w", id, err)
	}
	return nil
}
