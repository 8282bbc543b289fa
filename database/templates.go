package database

import (
	"fmt"

	"propdesk/model"

	"github.com/jmoiron/sqlx"
)

const templateColumns = `id, name, category, subject, body, created_at, updated_at`

func GetAllTemplates(db *sqlx.DB) ([]model.CommunicationTemplate, error) {
	templates := []model.CommunicationTemplate{}
	if err := db.Select(&templates, "SELECT "+templateColumns+" FROM communication_templates ORDER BY name"); err != nil {
		return nil, fmt.Errorf("failed to get all templates: %w", err)
	}
	return templates, nil
}

func GetTemplateByID(db *sqlx.DB, id int64) (*model.CommunicationTemplate, error) {
	t, err := getByID[model.CommunicationTemplate](db, "SELECT "+templateColumns+" FROM communication_templates WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get template %d: %w", id, err)
	}
	return t, nil
}

func CreateTemplate(db *sqlx.DB, t *model.CommunicationTemplate) (int64, error) {
	const q = `
		INSERT INTO communication_templates (name, category, subject, body)
		VALUES (:name, :category, :subject, :body)`
	res, err := db.NamedExec(q, t)
	if err != nil {
		return 0, fmt.Errorf("CreateTemplate (%s) failed: %w", t.Name, constraintError(err))
	}
	return res.LastInsertId()
}

func UpdateTemplate(db *sqlx.DB, t *model.CommunicationTemplate) error {
	const q = `
		UPDATE communication_templates SET
			name = :name, category = :category, subject = :subject, body = :body,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = :id`
	if err := expectOne(db.NamedExec(q, t)); err != nil {
		return fmt.Errorf("failed to update template %d: %w", t.ID, err)
	}
	return nil
}

func DeleteTemplate(db *sqlx.DB, id int64) error {
	if err := expectOne(db.Exec(`DELETE FROM communication_templates WHERE id = ?`, id)); err != nil {
		return fmt.Errorf("failed to delete template %d: %w", id, err)
	}
	return nil
}
