package database

import (
	"fmt"

	"propdesk/model"

	"github.com/jmoiron/sqlx"
)

const applicationColumns = `id, property_id, unit_id, lead_id, applicant_name, applicant_email, monthly_income,
	submitted_at, identity_verified, credit_checked, background_checked, income_verified,
	references_checked, status, created_at, updated_at`

func GetAllApplications(db *sqlx.DB) ([]model.RentalApplication, error) {
	apps := []model.RentalApplication{}
	if err := db.Select(&apps, "SELECT "+applicationColumns+" FROM rental_applications ORDER BY submitted_at DESC, id DESC"); err != nil {
		return nil, fmt.Errorf("failed to get all applications: %w", err)
	}
	return apps, nil
}

func GetApplicationByID(db *sqlx.DB, id int64) (*model.RentalApplication, error) {
	a, err := getByID[model.RentalApplication](db, "SELECT "+applicationColumns+" FROM rental_applications WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get application %d: %w", id, err)
	}
	return a, nil
}

func CreateApplication(db *sqlx.DB, a *model.RentalApplication) (int64, error) {
	const q = `
		INSERT INTO rental_applications (
			property_id, unit_id, lead_id, applicant_name, applicant_email, monthly_income,
			identity_verified, credit_checked, background_checked, income_verified,
			references_checked, status
		) VALUES (
			:property_id, :unit_id, :lead_id, :applicant_name, :applicant_email, :monthly_income,
			:identity_verified, :credit_checked, :background_checked, :income_verified,
			:references_checked, :status
		)`
	res, err := db.NamedExec(q, a)
	if err != nil {
		return 0, fmt.Errorf("CreateApplication (%s) failed: %w", a.ApplicantName, constraintError(err))
	}
	return res.LastInsertId()
}

func UpdateApplication(db *sqlx.DB, a *model.RentalApplication) error {
	const q = `
		UPDATE rental_applications SET
			property_id = :property_id, unit_id = :unit_id, lead_id = :lead_id,
			applicant_name = :applicant_name, applicant_email = :applicant_email,
			monthly_income = :monthly_income, identity_verified = :identity_verified,
			credit_checked = :credit_checked, background_checked = :background_checked,
			income_verified = :income_verified, references_checked = :references_checked,
			status = :status, updated_at = CURRENT_TIMESTAMP
		WHERE id = :id`
	if err := expectOne(db.NamedExec(q, a)); err != nil {
		return fmt.Errorf("failed to update application %d: %w", a.ID, err)
	}
	return nil
}

func DeleteApplication(db *sqlx.DB, id int64) error {
	if err := expectOne(db.Exec(`DELETE FROM rental_applications WHERE id = ?`, id)); err != nil {
		return fmt.Errorf("failed to delete application %d: %w", id, err)
	}
	return nil
}
