package database

import (
	"fmt"

	"propdesk/model"

	"github.com/jmoiron/sqlx"
)

const insuranceColumns = `id, property_id, carrier, policy_number, coverage_type, premium, effective_date,
	expiry_date, status, created_at, updated_at`

func GetAllInsurances(db *sqlx.DB) ([]model.Insurance, error) {
	policies := []model.Insurance{}
	if err := db.Select(&policies, "SELECT "+insuranceColumns+" FROM insurances ORDER BY id"); err != nil {
		return nil, fmt.Errorf("failed to get all insurances: %w", err)
	}
	return policies, nil
}

func GetInsurancesByProperty(db *sqlx.DB, propertyID int64) ([]model.Insurance, error) {
	policies := []model.Insurance{}
	err := db.Select(&policies, "SELECT "+insuranceColumns+" FROM insurances WHERE property_id = ? ORDER BY id", propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get insurances for property %d: %w", propertyID, err)
	}
	return policies, nil
}

func GetInsuranceByID(db *sqlx.DB, id int64) (*model.Insurance, error) {
	i, err := getByID[model.Insurance](db, "SELECT "+insuranceColumns+" FROM insurances WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get insurance %d: %w", id, err)
	}
	return i, nil
}

func CreateInsurance(db *sqlx.DB, i *model.Insurance) (int64, error) {
	const q = `
		INSERT INTO insurances (property_id, carrier, policy_number, coverage_type, premium,
			effective_date, expiry_date, status)
		VALUES (:property_id, :carrier, :policy_number, :coverage_type, :premium,
			:effective_date, :expiry_date, :status)`
	res, err := db.NamedExec(q, i)
	if err != nil {
		return 0, fmt.Errorf("CreateInsurance (Policy: %s) failed: %w", i.PolicyNumber, constraintError(err))
	}
	return res.LastInsertId()
}

func UpdateInsurance(db *sqlx.DB, i *model.Insurance) error {
	const q = `
		UPDATE insurances SET
			property_id = :property_id, carrier = :carrier, policy_number = :policy_number,
			coverage_type = :coverage_type, premium = :premium, effective_date = :effective_date,
			expiry_date = :expiry_date, status = :status, updated_at = CURRENT_TIMESTAMP
		WHERE id = :id`
	if err := expectOne(db.NamedExec(q, i)); err != nil {
		return fmt.Errorf("failed to update insurance %d: %w", i.ID, err)
	}
	return nil
}

func DeleteInsurance(db *sqlx.DB, id int64) error {
	if err := expectOne(db.Exec(`DELETE FROM insurances WHERE id = ?`, id)); err != nil {
		return fmt.Errorf("failed to delete insurance %d: %w", id, err)
	}
	return nil
}
