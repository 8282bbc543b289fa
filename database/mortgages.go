package database

import (
	"fmt"

	"propdesk/model"

	"github.com/jmoiron/sqlx"
)

const mortgageColumns = `id, property_id, lender, loan_number, principal, interest_rate, monthly_payment,
	start_date, maturity_date, status, created_at, updated_at`

func GetAllMortgages(db *sqlx.DB) ([]model.Mortgage, error) {
	mortgages := []model.Mortgage{}
	if err := db.Select(&mortgages, "SELECT "+mortgageColumns+" FROM mortgages ORDER BY id"); err != nil {
		return nil, fmt.Errorf("failed to get all mortgages: %w", err)
	}
	return mortgages, nil
}

func GetMortgageByID(db *sqlx.DB, id int64) (*model.Mortgage, error) {
	m, err := getByID[model.Mortgage](db, "SELECT "+mortgageColumns+" FROM mortgages WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get mortgage %d: %w", id, err)
	}
	return m, nil
}

func CreateMortgage(db *sqlx.DB, m *model.Mortgage) (int64, error) {
	const q = `
		INSERT INTO mortgages (property_id, lender, loan_number, principal, interest_rate,
			monthly_payment, start_date, maturity_date, status)
		VALUES (:property_id, :lender, :loan_number, :principal, :interest_rate,
			:monthly_payment, :start_date, :maturity_date, :status)`
	res, err := db.NamedExec(q, m)
	if err != nil {
		return 0, fmt.Errorf("CreateMortgage (Lender: %s) failed: %w", m.Lender, constraintError(err))
	}
	return res.LastInsertId()
}

func UpdateMortgage(db *sqlx.DB, m *model.Mortgage) error {
	const q = `
		UPDATE mortgages SET
			property_id = :property_id, lender = :lender, loan_number = :loan_number,
			principal = :principal, interest_rate = :interest_rate,
			monthly_payment = :monthly_payment, start_date = :start_date,
			maturity_date = :maturity_date, status = :status, updated_at = CURRENT_TIMESTAMP
		WHERE id = :id`
	if err := expectOne(db.NamedExec(q, m)); err != nil {
		return fmt.Errorf("failed to update mortgage %d: %w", m.ID, err)
	}
	return nil
}

func DeleteMortgage(db *sqlx.DB, id int64) error {
	if err := expectOne(db.Exec(`DELETE FROM mortgages WHERE id = ?`, id)); err != nil {
		return fmt.Errorf("failed to delete mortgage %d: %w", id, err)
	}
	return nil
}
