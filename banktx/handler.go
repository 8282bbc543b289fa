package banktx

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"slices"
	"strings"
	"time"

	"propdesk/config"
	"propdesk/database"
	"propdesk/httpjson"
	"propdesk/mappers"
	"propdesk/model"
	"propdesk/projection"
	"propdesk/render"
	"propdesk/screen"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var Schema = projection.Schema[model.BankTransaction]{
	Search: []func(model.BankTransaction) string{
		func(t model.BankTransaction) string { return t.Description },
		func(t model.BankTransaction) string { return t.Account },
		func(t model.BankTransaction) string {
			s, _ := projection.Deref(t.Category)
			return s
		},
	},
	Equal: map[string]func(model.BankTransaction) string{
		"status":  func(t model.BankTransaction) string { return t.Status },
		"account": func(t model.BankTransaction) string { return t.Account },
		"batchId": func(t model.BankTransaction) string { return t.BatchID },
		"category": func(t model.BankTransaction) string {
			s, _ := projection.Deref(t.Category)
			return s
		},
	},
	Sort: map[string]projection.Field[model.BankTransaction]{
		"postedDate": projection.Date(func(t model.BankTransaction) (time.Time, bool) {
			return projection.ParseDate(t.PostedDate)
		}),
		"amount":      projection.Number(func(t model.BankTransaction) (float64, bool) { return projection.DecimalValue(t.Amount) }),
		"description": projection.Text(func(t model.BankTransaction) (string, bool) { return projection.Present(t.Description) }),
		"category":    projection.Text(func(t model.BankTransaction) (string, bool) { return projection.Deref(t.Category) }),
		"confidence": projection.Number(func(t model.BankTransaction) (float64, bool) {
			if t.MatchConfidence == nil {
				return 0, false
			}
			return *t.MatchConfidence, true
		}),
	},
}

func columns(map[int64]string) []render.Column[model.BankTransaction] {
	return []render.Column[model.BankTransaction]{
		render.Center("Date", "col-date", func(t model.BankTransaction) string { return t.PostedDate }),
		render.Text("Account", "col-account", func(t model.BankTransaction) string { return t.Account }),
		render.Text("Description", "col-description", func(t model.BankTransaction) string { return t.Description }),
		render.Right("Amount", "col-amount", func(t model.BankTransaction) string { return mappers.FormatMoney(t.Amount) }),
		render.Text("Category", "col-category", func(t model.BankTransaction) string { return mappers.Optional(t.Category) }),
		render.Right("Confidence", "col-confidence", func(t model.BankTransaction) string { return mappers.FormatConfidence(t.MatchConfidence) }),
		render.Center("Status", "col-status", func(t model.BankTransaction) string { return mappers.Humanize(t.Status) }),
	}
}

// Screen is read-only; rows arrive through imports and change through the
// status endpoint and reconciliation runs.
func Screen() screen.Screen[model.BankTransaction] {
	return screen.Screen[model.BankTransaction]{
		Name: "transaction",
		Store: screen.Store[model.BankTransaction]{
			List: database.GetAllBankTransactions,
			Get:  database.GetBankTransactionByID,
		},
		Schema:  Schema,
		Columns: columns,
		RowID:   func(t model.BankTransaction) int64 { return t.ID },
	}
}

// UploadStatementHandler imports the CSV in the "file" form field. The
// optional "account" and "encoding" fields default to the file's own account
// column and the configured statement encoding.
func UploadStatementHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if err != nil {
			httpjson.WriteError(w, "Failed to read CSV file: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		encoding := r.FormValue("encoding")
		if encoding == "" {
			encoding = config.GetConfig().StatementEncoding
		}
		account := strings.TrimSpace(r.FormValue("account"))
		if account == "" {
			account = strings.TrimSuffix(header.Filename, ".csv")
		}

		result, err := ImportStatement(db, file, account, encoding)
		if errors.Is(err, ErrInvalidStatement) {
			log.Printf("WARN: statement upload %s rejected: %v", header.Filename, err)
			httpjson.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err != nil {
			log.Printf("ERROR: statement upload %s failed: %v", header.Filename, err)
			httpjson.WriteError(w, "Failed to save the statement.", http.StatusInternalServerError)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, map[string]any{
			"message":  fmt.Sprintf("Imported %d transactions.", result.Imported),
			"batchId":  result.BatchID,
			"imported": result.Imported,
		})
	}
}

type statusRequest struct {
	Status string `json:"status"`
}

// UpdateStatusHandler lets the user ignore a row or send it back to
// unmatched. Matching itself belongs to reconciliation.
func UpdateStatusHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.PathID(r)
		if err != nil {
			httpjson.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}
		var req statusRequest
		if err := httpjson.DecodeBody(r, &req); err != nil {
			httpjson.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}
		allowed := []string{model.BankTxStatusUnmatched, model.BankTxStatusIgnored}
		if !slices.Contains(allowed, req.Status) {
			httpjson.WriteError(w, "status must be one of "+strings.Join(allowed, ", "), http.StatusBadRequest)
			return
		}
		if err := database.UpdateBankTransactionStatus(db, id, req.Status); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				httpjson.WriteError(w, fmt.Sprintf("transaction %d not found", id), http.StatusNotFound)
				return
			}
			log.Printf("ERROR: %v", err)
			httpjson.WriteError(w, "Failed to update transaction.", http.StatusInternalServerError)
			return
		}
		httpjson.WriteMessage(w, "Updated.")
	}
}

func DeleteBatchHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		batchID := r.PathValue("batchId")
		if err := uuid.Validate(batchID); err != nil {
			httpjson.WriteError(w, "invalid batch id", http.StatusBadRequest)
			return
		}
		n, err := database.DeleteBankTransactionsByBatch(db, batchID)
		if err != nil {
			log.Printf("ERROR: %v", err)
			httpjson.WriteError(w, "Failed to delete batch.", http.StatusInternalServerError)
			return
		}
		httpjson.WriteMessage(w, fmt.Sprintf("Deleted %d transactions.", n))
	}
}
