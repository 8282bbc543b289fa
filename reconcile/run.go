package reconcile

import (
	"fmt"
	"log"

	"propdesk/database"

	"github.com/jmoiron/sqlx"
)

type RunResult struct {
	Examined int `json:"examined"`
	Matched  int `json:"matched"`
}

// Run applies the active rules to every unmatched transaction in one
// database transaction.
func Run(db *sqlx.DB) (RunResult, error) {
	var result RunResult
	err := database.WithTx(db, func(tx *sqlx.Tx) error {
		rules, err := database.GetActiveReconciliationRulesInTx(tx)
		if err != nil {
			return err
		}
		pending, err := database.GetUnmatchedBankTransactionsInTx(tx)
		if err != nil {
			return err
		}
		result.Examined = len(pending)
		if len(rules) == 0 {
			log.Println("WARN: reconciliation run with no active rules")
			return nil
		}

		for _, bt := range pending {
			m, ok := BestMatch(rules, bt.Description)
			if !ok {
				continue
			}
			if err := database.MarkBankTransactionMatchedInTx(tx, bt.ID, m.Rule.ID, m.Rule.Category, m.Confidence); err != nil {
				return fmt.Errorf("failed to match transaction %d: %w", bt.ID, err)
			}
			result.Matched++
		}
		return nil
	})
	if err != nil {
		return RunResult{}, err
	}
	log.Printf("INFO: reconciliation matched %d of %d transactions", result.Matched, result.Examined)
	return result, nil
}
