package database

import (
	"fmt"

	"propdesk/model"

	"github.com/jmoiron/sqlx"
)

const leadColumns = `id, property_id, name, email, phone, source, desired_move_in, notes, status, created_at, updated_at`

func GetAllLeads(db *sqlx.DB) ([]model.Lead, error) {
	leads := []model.Lead{}
	if err := db.Select(&leads, "SELECT "+leadColumns+" FROM leads ORDER BY id"); err != nil {
		return nil, fmt.Errorf("failed to get all leads: %w", err)
	}
	return leads, nil
}

func GetLeadByID(db *sqlx.DB, id int64) (*model.Lead, error) {
	l, err := getByID[model.Lead](db, "SELECT "+leadColumns+" FROM leads WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get lead %d: %w", id, err)
	}
	return l, nil
}

func CreateLead(db *sqlx.DB, l *model.Lead) (int64, error) {
	const q = `
		INSERT INTO leads (property_id, name, email, phone, source, desired_move_in, notes, status)
		VALUES (:property_id, :name, :email, :phone, :source, :desired_move_in, :notes, :status)`
	res, err := db.NamedExec(q, l)
	if err != nil {
		return 0, fmt.Errorf("CreateLead (%s) failed: %w", l.Name, constraintError(err))
	}
	return res.LastInsertId()
}

func UpdateLead(db *sqlx.DB, l *model.Lead) error {
	const q = `
		UPDATE leads SET
			property_id = :property_id, name = :name, email = :email, phone = :phone,
			source = :source, desired_move_in = :desired_move_in, notes = :notes,
			status = :status, updated_at = CURRENT_TIMESTAMP
		WHERE id = :id`
	if err := expectOne(db.NamedExec(q, l)); err != nil {
		return fmt.Errorf("failed to update lead %d: %w", l.ID, err)
	}
	return nil
}

func DeleteLead(db *sqlx.DB, id int64) error {
	if err := expectOne(db.Exec(`DELETE FROM leads WHERE id = ?`, id)); err != nil {
		return fmt.Errorf("failed to delete lead %d: %w", id, err)
	}
	return nil
}
