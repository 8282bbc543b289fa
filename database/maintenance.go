package database

import (
	"fmt"

	"propdesk/model"

	"github.com/jmoiron/sqlx"
)

const maintenanceColumns = `id, property_id, unit_id, kind, title, description, priority, cost,
	scheduled_date, completed_date, status, created_at, updated_at`

func GetAllMaintenanceRecords(db *sqlx.DB) ([]model.MaintenanceRecord, error) {
	records := []model.MaintenanceRecord{}
	if err := db.Select(&records, "SELECT "+maintenanceColumns+" FROM maintenance_records ORDER BY id"); err != nil {
		return nil, fmt.Errorf("failed to get all maintenance records: %w", err)
	}
	return records, nil
}

func GetMaintenanceRecordByID(db *sqlx.DB, id int64) (*model.MaintenanceRecord, error) {
	m, err := getByID[model.MaintenanceRecord](db, "SELECT "+maintenanceColumns+" FROM maintenance_records WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get maintenance record %d: %w", id, err)
	}
	return m, nil
}

func CreateMaintenanceRecord(db *sqlx.DB, m *model.MaintenanceRecord) (int64, error) {
	const q = `
		INSERT INTO maintenance_records (property_id, unit_id, kind, title, description, priority,
			cost, scheduled_date, completed_date, status)
		VALUES (:property_id, :unit_id, :kind, :title, :description, :priority,
			:cost, :scheduled_date, :completed_date, :status)`
	res, err := db.NamedExec(q, m)
	if err != nil {
		return 0, fmt.Errorf("CreateMaintenanceRecord (%s) failed: %w", m.Title, constraintError(err))
	}
	return res.LastInsertId()
}

func UpdateMaintenanceRecord(db *sqlx.DB, m *model.MaintenanceRecord) error {
	const q = `
		UPDATE maintenance_records SET
			property_id = :property_id, unit_id = :unit_id, kind = :kind, title = :title,
			description = :description, priority = :priority, cost = :cost,
			scheduled_date = :scheduled_date, completed_date = :completed_date,
			status = :status, updated_at = CURRENT_TIMESTAMP
		WHERE id = :id`
	if err := expectOne(db.NamedExec(q, m)); err != nil {
		return fmt.Errorf("failed to update maintenance record %d: %w", m.ID, err)
	}
	return nil
}

func DeleteMaintenanceRecord(db *sqlx.DB, id int64) error {
	if err := expectOne(db.Exec(`DELETE FROM maintenance_records WHERE id = ?`, id)); err != nil {
		return fmt.Errorf("failed to delete maintenance record %d: %w", id, err)
	}
	return nil
}
