package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
)

const (
	PropertyCodeSequence = "PR"
	propertyCodePadding  = 5
)

// NextSequenceInTx bumps the named counter and formats it as prefix + zero padded number.
func NextSequenceInTx(tx *sqlx.Tx, name, prefix string, padding int) (string, error) {
	var lastNo int
	err := tx.Get(&lastNo, "SELECT last_no FROM code_sequences WHERE name = ?", name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("sequence '%s' not found", name)
		}
		return "", fmt.Errorf("failed to get sequence '%s': %w", name, err)
	}

	newNo := lastNo + 1
	if _, err := tx.Exec(`UPDATE code_sequences SET last_no = ? WHERE name = ?`, newNo, name); err != nil {
		return "", fmt.Errorf("failed to update sequence '%s': %w", name, err)
	}

	return fmt.Sprintf("%s%0*d", prefix, padding, newNo), nil
}

// NextPropertyCodeInTx returns the next PR00001-style property code.
func NextPropertyCodeInTx(tx *sqlx.Tx) (string, error) {
	return NextSequenceInTx(tx, PropertyCodeSequence, PropertyCodeSequence, propertyCodePadding)
}

// InitializeSequenceFromMaxPropertyCode realigns the PR counter with the
// highest code already stored, so imported rows never collide with new ones.
func InitializeSequenceFromMaxPropertyCode(tx *sqlx.Tx) error {
	var maxCode sql.NullString
	err := tx.Get(&maxCode,
		`SELECT property_code FROM properties WHERE property_code LIKE 'PR%'
		 ORDER BY CAST(SUBSTR(property_code, 3) AS INTEGER) DESC LIMIT 1`)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to read max property code: %w", err)
	}

	maxNum := 0
	if maxCode.Valid && strings.HasPrefix(maxCode.String, PropertyCodeSequence) {
		maxNum, _ = strconv.Atoi(strings.TrimPrefix(maxCode.String, PropertyCodeSequence))
	}

	log.Printf("INFO: [Sequence] Setting '%s' last_no to %d", PropertyCodeSequence, maxNum)

	_, err = tx.Exec(`UPDATE code_sequences SET last_no = ? WHERE name = ?`, maxNum, PropertyCodeSequence)
	return err
}
