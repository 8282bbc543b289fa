// Package banktx serves the bank transaction screen and statement imports.
package banktx

import (
	"errors"
	"fmt"
	"io"
	"log"

	"propdesk/database"
	"propdesk/model"
	"propdesk/parsers"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ImportResult identifies the rows one statement produced; deleting the
// batch undoes the import.
type ImportResult struct {
	BatchID  string `json:"batchId"`
	Imported int    `json:"imported"`
}

// ErrInvalidStatement marks uploads rejected for their content rather than
// for a storage failure.
var ErrInvalidStatement = errors.New("invalid statement")

// ImportStatement parses a statement CSV and stores its rows as unmatched
// transactions under a fresh batch id. account fills rows whose file has no
// account column. Both the upload handler and the bank download use it.
func ImportStatement(db *sqlx.DB, r io.Reader, account, encoding string) (ImportResult, error) {
	records, err := parsers.ParseBankCSV(r, encoding)
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: %w", ErrInvalidStatement, err)
	}
	if len(records) == 0 {
		return ImportResult{}, fmt.Errorf("%w: no transactions found", ErrInvalidStatement)
	}

	batchID := uuid.NewString()
	txs := make([]model.BankTransaction, 0, len(records))
	for _, rec := range records {
		acct := rec.Account
		if acct == "" {
			acct = account
		}
		txs = append(txs, model.BankTransaction{
			BatchID:     batchID,
			Account:     acct,
			PostedDate:  rec.PostedDate,
			Amount:      rec.Amount,
			Description: rec.Description,
			Status:      model.BankTxStatusUnmatched,
		})
	}

	if err := database.WithTx(db, func(tx *sqlx.Tx) error {
		return database.InsertBankTransactionsInTx(tx, txs)
	}); err != nil {
		return ImportResult{}, fmt.Errorf("failed to store statement: %w", err)
	}
	log.Printf("INFO: imported %d bank transactions (batch %s)", len(txs), batchID)
	return ImportResult{BatchID: batchID, Imported: len(txs)}, nil
}
