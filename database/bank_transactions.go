package database

import (
	"fmt"

	"propdesk/model"

	"github.com/jmoiron/sqlx"
)

const bankTxColumns = `id, batch_id, account, posted_date, amount, description, category,
	matched_rule_id, match_confidence, status, created_at`

func GetAllBankTransactions(db *sqlx.DB) ([]model.BankTransaction, error) {
	txs := []model.BankTransaction{}
	if err := db.Select(&txs, "SELECT "+bankTxColumns+" FROM bank_transactions ORDER BY posted_date DESC, id DESC"); err != nil {
		return nil, fmt.Errorf("failed to get all bank transactions: %w", err)
	}
	return txs, nil
}

func GetBankTransactionByID(db *sqlx.DB, id int64) (*model.BankTransaction, error) {
	t, err := getByID[model.BankTransaction](db, "SELECT "+bankTxColumns+" FROM bank_transactions WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get bank transaction %d: %w", id, err)
	}
	return t, nil
}

func GetUnmatchedBankTransactionsInTx(tx *sqlx.Tx) ([]model.BankTransaction, error) {
	txs := []model.BankTransaction{}
	err := tx.Select(&txs, "SELECT "+bankTxColumns+" FROM bank_transactions WHERE status = ? ORDER BY id", model.BankTxStatusUnmatched)
	if err != nil {
		return nil, fmt.Errorf("failed to get unmatched bank transactions: %w", err)
	}
	return txs, nil
}

func InsertBankTransactionsInTx(tx *sqlx.Tx, txs []model.BankTransaction) error {
	const q = `
		INSERT INTO bank_transactions (batch_id, account, posted_date, amount, description, status)
		VALUES (:batch_id, :account, :posted_date, :amount, :description, :status)`
	stmt, err := tx.PrepareNamed(q)
	if err != nil {
		return fmt.Errorf("failed to prepare bank transaction insert statement: %w", err)
	}
	defer stmt.Close()

	for i := range txs {
		if _, err := stmt.Exec(&txs[i]); err != nil {
			return fmt.Errorf("failed to insert bank transaction (%s %s): %w", txs[i].PostedDate, txs[i].Description, err)
		}
	}
	return nil
}

// MarkBankTransactionMatchedInTx records the winning rule and its confidence.
func MarkBankTransactionMatchedInTx(tx *sqlx.Tx, id, ruleID int64, category string, confidence float64) error {
	const q = `
		UPDATE bank_transactions SET
			status = ?, matched_rule_id = ?, category = ?, match_confidence = ?
		WHERE id = ?`
	if err := expectOne(tx.Exec(q, model.BankTxStatusMatched, ruleID, category, confidence, id)); err != nil {
		return fmt.Errorf("failed to mark bank transaction %d matched: %w", id, err)
	}
	return nil
}

// UpdateBankTransactionStatus handles manual ignore/unmatch from the screen;
// returning a row to unmatched clears its previous match.
func UpdateBankTransactionStatus(db *sqlx.DB, id int64, status string) error {
	q := `UPDATE bank_transactions SET status = ? WHERE id = ?`
	if status == model.BankTxStatusUnmatched {
		q = `UPDATE bank_transactions SET status = ?, matched_rule_id = NULL, category = NULL, match_confidence = NULL WHERE id = ?`
	}
	if err := expectOne(db.Exec(q, status, id)); err != nil {
		return fmt.Errorf("failed to update bank transaction %d status: %w", id, err)
	}
	return nil
}

func DeleteBankTransactionsByBatch(db *sqlx.DB, batchID string) (int64, error) {
	res, err := db.Exec(`DELETE FROM bank_transactions WHERE batch_id = ?`, batchID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete bank transaction batch %s: %w", batchID, err)
	}
	return res.RowsAffected()
}
