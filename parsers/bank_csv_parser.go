package parsers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"propdesk/model"

	"github.com/shopspring/decimal"
)

// ParsedBankRecord is one statement line.
type ParsedBankRecord struct {
	Account     string
	PostedDate  string
	Amount      decimal.Decimal
	Description string
}

var bankDateLayouts = []string{
	model.DateLayout,
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
	"02-Jan-2006",
}

// ParseBankCSV reads a statement export with date, amount and description
// columns (account is optional). Rows whose date or amount cannot be read
// are skipped with a warning.
func ParseBankCSV(r io.Reader, encoding string) ([]ParsedBankRecord, error) {
	decoded, err := Decode(r, encoding)
	if err != nil {
		return nil, err
	}
	reader := csv.NewReader(decoded)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("CSV file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIndex, err := getColIndex(header, []string{"date", "amount", "description"})
	if err != nil {
		return nil, err
	}

	var records []ParsedBankRecord
	line := 1
	for {
		line++
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Printf("WARN: bank CSV line %d unreadable (skipped): %v", line, err)
			continue
		}
		get := fieldGetter(colIndex, rec)

		posted, err := ParseStatementDate(get("date"))
		if err != nil {
			log.Printf("WARN: bank CSV line %d: %v (skipped)", line, err)
			continue
		}
		amount, err := ParseAmount(get("amount"))
		if err != nil {
			log.Printf("WARN: bank CSV line %d: %v (skipped)", line, err)
			continue
		}

		records = append(records, ParsedBankRecord{
			Account:     get("account"),
			PostedDate:  posted,
			Amount:      amount,
			Description: get("description"),
		})
	}
	return records, nil
}

// ParseStatementDate normalizes the date formats banks export to YYYY-MM-DD.
func ParseStatementDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range bankDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(model.DateLayout), nil
		}
	}
	return "", fmt.Errorf("unrecognized date %q", raw)
}

// ParseAmount accepts currency symbols, thousands separators and the
// accounting "(12.50)" form for negatives.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = strings.NewReplacer("$", "", "€", "", "£", "", ",", "", " ", "").Replace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", raw)
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}
