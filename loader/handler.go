package loader

import (
	"log"
	"net/http"

	"propdesk/database"
	"propdesk/httpjson"

	"github.com/jmoiron/sqlx"
)

// StatusHandler reports the schema version of the database at path.
func StatusHandler(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version, dirty, err := database.MigrationVersion(path)
		if err != nil {
			log.Printf("ERROR: failed to read migration version: %v", err)
			httpjson.WriteError(w, "Failed to read database status.", http.StatusInternalServerError)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, map[string]any{
			"databasePath":  path,
			"schemaVersion": version,
			"dirty":         dirty,
		})
	}
}

// ResequenceHandler re-reads the highest property code so new properties
// continue after rows added outside the application.
func ResequenceHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := database.WithTx(db, database.InitializeSequenceFromMaxPropertyCode)
		if err != nil {
			log.Printf("ERROR: failed to re-initialize property code sequence: %v", err)
			httpjson.WriteError(w, "Failed to re-initialize code sequences.", http.StatusInternalServerError)
			return
		}
		log.Println("INFO: code sequences re-initialized.")
		httpjson.WriteMessage(w, "Code sequences re-initialized.")
	}
}
