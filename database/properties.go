package database

import (
	"fmt"

	"propdesk/model"

	"github.com/jmoiron/sqlx"
)

const propertyColumns = `id, property_code, name, address, city, property_type, status, created_at, updated_at`

func GetAllProperties(db *sqlx.DB) ([]model.Property, error) {
	properties := []model.Property{}
	err := db.Select(&properties, "SELECT "+propertyColumns+" FROM properties ORDER BY property_code")
	if err != nil {
		return nil, fmt.Errorf("failed to get all properties: %w", err)
	}
	return properties, nil
}

func GetPropertyByID(db *sqlx.DB, id int64) (*model.Property, error) {
	p, err := getByID[model.Property](db, "SELECT "+propertyColumns+" FROM properties WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get property %d: %w", id, err)
	}
	return p, nil
}

// GetPropertyNameMap maps property ids to names for list screens that show
// the parent property instead of its id.
func GetPropertyNameMap(db *sqlx.DB) (map[int64]string, error) {
	properties, err := GetAllProperties(db)
	if err != nil {
		return nil, fmt.Errorf("failed to get property list for map: %w", err)
	}
	names := make(map[int64]string, len(properties))
	for _, p := range properties {
		names[p.ID] = p.Name
	}
	return names, nil
}

// CreatePropertyInTx assigns the next property code when none was supplied.
func CreatePropertyInTx(tx *sqlx.Tx, p *model.Property) (int64, error) {
	if p.PropertyCode == "" {
		code, err := NextPropertyCodeInTx(tx)
		if err != nil {
			return 0, err
		}
		p.PropertyCode = code
	}
	const q = `
		INSERT INTO properties (property_code, name, address, city, property_type, status)
		VALUES (:property_code, :name, :address, :city, :property_type, :status)`
	res, err := tx.NamedExec(q, p)
	if err != nil {
		return 0, fmt.Errorf("CreatePropertyInTx (Code: %s) failed: %w", p.PropertyCode, constraintError(err))
	}
	return res.LastInsertId()
}

func UpdateProperty(db *sqlx.DB, p *model.Property) error {
	const q = `
		UPDATE properties SET
			name = :name, address = :address, city = :city,
			property_type = :property_type, status = :status,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = :id`
	if err := expectOne(db.NamedExec(q, p)); err != nil {
		return fmt.Errorf("failed to update property %d: %w", p.ID, err)
	}
	return nil
}

func DeleteProperty(db *sqlx.DB, id int64) error {
	if err := expectOne(db.Exec(`DELETE FROM properties WHERE id = ?`, id)); err != nil {
		return fmt.Errorf("failed to delete property %d: %w", id, err)
	}
	return nil
}

const unitColumns = `id, property_id, label, bedrooms, rent, status, created_at, updated_at`

func GetAllUnits(db *sqlx.DB) ([]model.Unit, error) {
	units := []model.Unit{}
	if err := db.Select(&units, "SELECT "+unitColumns+" FROM units ORDER BY property_id, label"); err != nil {
		return nil, fmt.Errorf("failed to get all units: %w", err)
	}
	return units, nil
}

func GetUnitsByProperty(db *sqlx.DB, propertyID int64) ([]model.Unit, error) {
	units := []model.Unit{}
	err := db.Select(&units, "SELECT "+unitColumns+" FROM units WHERE property_id = ? ORDER BY label", propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get units for property %d: %w", propertyID, err)
	}
	return units, nil
}

func GetUnitByID(db *sqlx.DB, id int64) (*model.Unit, error) {
	u, err := getByID[model.Unit](db, "SELECT "+unitColumns+" FROM units WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get unit %d: %w", id, err)
	}
	return u, nil
}

func CreateUnit(db *sqlx.DB, u *model.Unit) (int64, error) {
	const q = `
		INSERT INTO units (property_id, label, bedrooms, rent, status)
		VALUES (:property_id, :label, :bedrooms, :rent, :status)`
	res, err := db.NamedExec(q, u)
	if err != nil {
		return 0, fmt.Errorf("CreateUnit (Property: %d, Label: %s) failed: %w", u.PropertyID, u.Label, constraintError(err))
	}
	return res.LastInsertId()
}

func UpdateUnit(db *sqlx.DB, u *model.Unit) error {
	const q = `
		UPDATE units SET
			label = :label, bedrooms = :bedrooms, rent = :rent, status = :status,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = :id`
	if err := expectOne(db.NamedExec(q, u)); err != nil {
		return fmt.Errorf("failed to update unit %d: %w", u.ID, err)
	}
	return nil
}

func DeleteUnit(db *sqlx.DB, id int64) error {
	if err := expectOne(db.Exec(`DELETE FROM units WHERE id = ?`, id)); err != nil {
		return fmt.Errorf("failed to delete unit %d: %w", id, err)
	}
	return nil
}
