// Package loader prepares the database at startup: schema migrations, code
// sequences and the starter template library.
package loader

import (
	"fmt"
	"log"

	"propdesk/database"
	"propdesk/model"

	"github.com/jmoiron/sqlx"
)

// starterTemplates are inserted once; existing templates with the same name
// are left alone.
var starterTemplates = []model.CommunicationTemplate{
	{
		Name:     "Rent reminder",
		Category: model.TemplateCategoryEmail,
		Subject:  "Rent due for {{unit}}",
		Body:     "Hello {{tenant_name}},\n\nThis is a reminder that rent of {{amount}} for {{unit}} is due on {{due_date}}.\n\nThank you,\n{{manager_name}}",
	},
	{
		Name:     "Late fee notice",
		Category: model.TemplateCategoryLetter,
		Subject:  "Late fee applied to {{unit}}",
		Body:     "Dear {{tenant_name}},\n\nRent for {{unit}} was not received within the grace period. A late fee of {{late_fee}} has been applied. The balance due is {{balance}}.\n\n{{manager_name}}",
	},
	{
		Name:     "Showing confirmation",
		Category: model.TemplateCategorySMS,
		Subject:  "",
		Body:     "Hi {{lead_name}}, your showing at {{property_name}} is confirmed for {{showing_time}}.",
	},
}

// InitDatabase migrates the database at path, opens it and brings the code
// sequences in line with existing rows.
func InitDatabase(path string) (*sqlx.DB, error) {
	log.Println("Applying database migrations...")
	if err := database.Migrate(path); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	db, err := database.Open(path)
	if err != nil {
		return nil, err
	}

	if err := database.WithTx(db, func(tx *sqlx.Tx) error {
		if err := database.InitializeSequenceFromMaxPropertyCode(tx); err != nil {
			log.Printf("WARN: Failed to initialize property code sequence: %v", err)
		}
		return seedTemplatesInTx(tx)
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	log.Println("Database initialization complete.")
	return db, nil
}

func seedTemplatesInTx(tx *sqlx.Tx) error {
	const q = `
		INSERT OR IGNORE INTO communication_templates (name, category, subject, body)
		VALUES (:name, :category, :subject, :body)`
	var added int64
	for i := range starterTemplates {
		res, err := tx.NamedExec(q, &starterTemplates[i])
		if err != nil {
			return fmt.Errorf("failed to seed template %s: %w", starterTemplates[i].Name, err)
		}
		n, _ := res.RowsAffected()
		added += n
	}
	if added > 0 {
		log.Printf("INFO: added %d starter communication templates", added)
	}
	return nil
}
