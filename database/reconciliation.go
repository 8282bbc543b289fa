package database

import (
	"fmt"

	"propdesk/model"

	"github.com/jmoiron/sqlx"
)

const ruleColumns = `id, name, pattern, match_type, category, status, created_at, updated_at`

func GetAllReconciliationRules(db *sqlx.DB) ([]model.ReconciliationRule, error) {
	rules := []model.ReconciliationRule{}
	if err := db.Select(&rules, "SELECT "+ruleColumns+" FROM reconciliation_rules ORDER BY id"); err != nil {
		return nil, fmt.Errorf("failed to get all reconciliation rules: %w", err)
	}
	return rules, nil
}

func GetActiveReconciliationRulesInTx(tx *sqlx.Tx) ([]model.ReconciliationRule, error) {
	rules := []model.ReconciliationRule{}
	err := tx.Select(&rules, "SELECT "+ruleColumns+" FROM reconciliation_rules WHERE status = ? ORDER BY id", model.RuleStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to get active reconciliation rules: %w", err)
	}
	return rules, nil
}

func GetReconciliationRuleByID(db *sqlx.DB, id int64) (*model.ReconciliationRule, error) {
	r, err := getByID[model.ReconciliationRule](db, "SELECT "+ruleColumns+" FROM reconciliation_rules WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get reconciliation rule %d: %w", id, err)
	}
	return r, nil
}

func CreateReconciliationRule(db *sqlx.DB, r *model.ReconciliationRule) (int64, error) {
	const q = `
		INSERT INTO reconciliation_rules (name, pattern, match_type, category, status)
		VALUES (:name, :pattern, :match_type, :category, :status)`
	res, err := db.NamedExec(q, r)
	if err != nil {
		return 0, fmt.Errorf("CreateReconciliationRule (%s) failed: %w", r.Name, constraintError(err))
	}
	return res.LastInsertId()
}

func UpdateReconciliationRule(db *sqlx.DB, r *model.ReconciliationRule) error {
	const q = `
		UPDATE reconciliation_rules SET
			name = :name, pattern = :pattern, match_type = :match_type,
			category = :category, status = :status, updated_at = CURRENT_TIMESTAMP
		WHERE id = :id`
	if err := expectOne(db.NamedExec(q, r)); err != nil {
		return fmt.Errorf("failed to update reconciliation rule %d: %w", r.ID, err)
	}
	return nil
}

func DeleteReconciliationRule(db *sqlx.DB, id int64) error {
	if err := expectOne(db.Exec(`DELETE FROM reconciliation_rules WHERE id = ?`, id)); err != nil {
		return fmt.Errorf("failed to delete reconciliation rule %d: %w", id, err)
	}
	return nil
}
