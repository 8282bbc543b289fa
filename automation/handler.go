package automation

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"propdesk/banktx"
	"propdesk/config"
	"propdesk/httpjson"

	"github.com/jmoiron/sqlx"
)

// PortalFromConfig builds the portal description from saved settings.
func PortalFromConfig(cfg config.Config) Portal {
	return Portal{
		URL:      cfg.BankPortalURL,
		UserID:   cfg.BankUserID,
		Password: cfg.BankPassword,
		Headless: cfg.BankHeadless,
	}
}

// DownloadStatementHandler fetches the latest statement from the bank portal
// and imports it like an uploaded file.
func DownloadStatementHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := config.GetConfig()
		if cfg.BankPortalURL == "" || cfg.BankUserID == "" || cfg.BankPassword == "" {
			httpjson.WriteError(w, "Bank portal URL, user ID or password is not configured.", http.StatusBadRequest)
			return
		}

		saveDir := cfg.StatementFolderPath
		if saveDir == "" {
			saveDir = os.TempDir()
			log.Printf("WARN: no statement folder configured, using %s", saveDir)
		}

		log.Println("INFO: starting bank statement download...")
		path, err := DownloadStatement(PortalFromConfig(cfg), saveDir)
		if errors.Is(err, ErrNoStatement) {
			httpjson.WriteJSON(w, http.StatusOK, map[string]string{
				"status":  "no_data",
				"message": "The bank has no new transactions.",
			})
			return
		}
		if err != nil {
			log.Printf("ERROR: bank statement download failed: %v", err)
			httpjson.WriteError(w, "Statement download failed: "+err.Error(), http.StatusBadGateway)
			return
		}

		file, err := os.Open(path)
		if err != nil {
			httpjson.WriteError(w, "Failed to open downloaded statement: "+err.Error(), http.StatusInternalServerError)
			return
		}
		defer file.Close()

		result, err := banktx.ImportStatement(db, file, "bank portal", cfg.StatementEncoding)
		if err != nil {
			httpjson.WriteError(w, "Failed to import downloaded statement: "+err.Error(), http.StatusInternalServerError)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, map[string]any{
			"status":   "success",
			"message":  fmt.Sprintf("Downloaded and imported %d transactions.", result.Imported),
			"filePath": path,
			"batchId":  result.BatchID,
			"imported": result.Imported,
		})
	}
}
