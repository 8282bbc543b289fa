package database

import (
	"fmt"

	"propdesk/model"

	"github.com/jmoiron/sqlx"
)

const lateFeeColumns = `id, name, grace_period_days, first_fee_amount, recurring_fee_amount,
	recurring_period_days, cap_percent_or_amount, cap_type, property_id, unit_id, created_at, updated_at`

func GetAllLateFeeRules(db *sqlx.DB) ([]model.LateFeeRule, error) {
	rules := []model.LateFeeRule{}
	if err := db.Select(&rules, "SELECT "+lateFeeColumns+" FROM late_fee_rules ORDER BY id"); err != nil {
		return nil, fmt.Errorf("failed to get all late fee rules: %w", err)
	}
	return rules, nil
}

func GetLateFeeRuleByID(db *sqlx.DB, id int64) (*model.LateFeeRule, error) {
	r, err := getByID[model.LateFeeRule](db, "SELECT "+lateFeeColumns+" FROM late_fee_rules WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get late fee rule %d: %w", id, err)
	}
	return r, nil
}

func CreateLateFeeRule(db *sqlx.DB, r *model.LateFeeRule) (int64, error) {
	const q = `
		INSERT INTO late_fee_rules (name, grace_period_days, first_fee_amount, recurring_fee_amount,
			recurring_period_days, cap_percent_or_amount, cap_type, property_id, unit_id)
		VALUES (:name, :grace_period_days, :first_fee_amount, :recurring_fee_amount,
			:recurring_period_days, :cap_percent_or_amount, :cap_type, :property_id, :unit_id)`
	res, err := db.NamedExec(q, r)
	if err != nil {
		return 0, fmt.Errorf("CreateLateFeeRule (%s) failed: %w", r.Name, constraintError(err))
	}
	return res.LastInsertId()
}

func UpdateLateFeeRule(db *sqlx.DB, r *model.LateFeeRule) error {
	const q = `
		UPDATE late_fee_rules SET
			name = :name, grace_period_days = :grace_period_days,
			first_fee_amount = :first_fee_amount, recurring_fee_amount = :recurring_fee_amount,
			recurring_period_days = :recurring_period_days,
			cap_percent_or_amount = :cap_percent_or_amount, cap_type = :cap_type,
			property_id = :property_id, unit_id = :unit_id, updated_at = CURRENT_TIMESTAMP
		WHERE id = :id`
	if err := expectOne(db.NamedExec(q, r)); err != nil {
		return fmt.Errorf("failed to update late fee rule %d: %w", r.ID, err)
	}
	return nil
}

func DeleteLateFeeRule(db *sqlx.DB, id int64) error {
	if err := expectOne(db.Exec(`DELETE FROM late_fee_rules WHERE id = ?`, id)); err != nil {
		return fmt.Errorf("failed to delete late fee rule %d: %w", id, err)
	}
	return nil
}
