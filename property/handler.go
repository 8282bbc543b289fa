// Package property serves the property and unit screens.
package property

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"propdesk/database"
	"propdesk/httpjson"
	"propdesk/mappers"
	"propdesk/model"
	"propdesk/projection"
	"propdesk/render"
	"propdesk/screen"

	"github.com/jmoiron/sqlx"
)

var Schema = projection.Schema[model.Property]{
	Search: []func(model.Property) string{
		func(p model.Property) string { return p.PropertyCode },
		func(p model.Property) string { return p.Name },
		func(p model.Property) string { return p.Address },
		func(p model.Property) string { return p.City },
	},
	Equal: map[string]func(model.Property) string{
		"status":       func(p model.Property) string { return p.Status },
		"propertyType": func(p model.Property) string { return p.PropertyType },
		"city":         func(p model.Property) string { return p.City },
	},
	Sort: map[string]projection.Field[model.Property]{
		"code": projection.Text(func(p model.Property) (string, bool) { return projection.Present(p.PropertyCode) }),
		"name": projection.Text(func(p model.Property) (string, bool) { return projection.Present(p.Name) }),
		"city": projection.Text(func(p model.Property) (string, bool) { return projection.Present(p.City) }),
		"createdAt": projection.Date(func(p model.Property) (time.Time, bool) {
			return projection.ParseDate(p.CreatedAt)
		}),
	},
}

func columns(map[int64]string) []render.Column[model.Property] {
	return []render.Column[model.Property]{
		render.Center("Code", "col-code", func(p model.Property) string { return p.PropertyCode }),
		render.Text("Name", "col-name", func(p model.Property) string { return p.Name }),
		render.Text("Address", "col-address", func(p model.Property) string { return p.Address }),
		render.Text("City", "col-city", func(p model.Property) string { return p.City }),
		render.Text("Type", "col-type", func(p model.Property) string { return mappers.Humanize(p.PropertyType) }),
		render.Center("Status", "col-status", func(p model.Property) string { return mappers.Humanize(p.Status) }),
	}
}

// createProperty draws the property code from the sequence in the same
// transaction as the insert.
func createProperty(db *sqlx.DB, p *model.Property) (int64, error) {
	var id int64
	err := database.WithTx(db, func(tx *sqlx.Tx) error {
		var err error
		id, err = database.CreatePropertyInTx(tx, p)
		return err
	})
	return id, err
}

func Screen() screen.Screen[model.Property] {
	return screen.Screen[model.Property]{
		Name: "property",
		Store: screen.Store[model.Property]{
			List:   database.GetAllProperties,
			Get:    database.GetPropertyByID,
			Create: createProperty,
			Update: database.UpdateProperty,
			Delete: database.DeleteProperty,
		},
		Schema:   Schema,
		Columns:  columns,
		RowID:    func(p model.Property) int64 { return p.ID },
		Validate: model.Property.Validate,
		SetID:    func(p *model.Property, id int64) { p.ID = id },
		Defaults: func(p *model.Property) {
			if p.Status == "" {
				p.Status = model.PropertyStatusActive
			}
		},
	}
}

var UnitSchema = projection.Schema[model.Unit]{
	Search: []func(model.Unit) string{
		func(u model.Unit) string { return u.Label },
	},
	Equal: map[string]func(model.Unit) string{
		"status":     func(u model.Unit) string { return u.Status },
		"propertyId": func(u model.Unit) string { return strconv.FormatInt(u.PropertyID, 10) },
		"bedrooms":   func(u model.Unit) string { return strconv.Itoa(u.Bedrooms) },
	},
	Sort: map[string]projection.Field[model.Unit]{
		"label":    projection.Text(func(u model.Unit) (string, bool) { return projection.Present(u.Label) }),
		"bedrooms": projection.Number(func(u model.Unit) (float64, bool) { return float64(u.Bedrooms), true }),
		"rent":     projection.Number(func(u model.Unit) (float64, bool) { return projection.DecimalValue(u.Rent) }),
	},
}

func unitColumns(names map[int64]string) []render.Column[model.Unit] {
	return []render.Column[model.Unit]{
		render.Text("Property", "col-property", func(u model.Unit) string { return mappers.NameFor(names, &u.PropertyID) }),
		render.Text("Unit", "col-label", func(u model.Unit) string { return u.Label }),
		render.Right("Bedrooms", "col-bedrooms", func(u model.Unit) string { return strconv.Itoa(u.Bedrooms) }),
		render.Right("Rent", "col-rent", func(u model.Unit) string { return mappers.FormatMoney(u.Rent) }),
		render.Center("Status", "col-status", func(u model.Unit) string { return mappers.Humanize(u.Status) }),
	}
}

func UnitScreen() screen.Screen[model.Unit] {
	return screen.Screen[model.Unit]{
		Name: "unit",
		Store: screen.Store[model.Unit]{
			List:   database.GetAllUnits,
			Get:    database.GetUnitByID,
			Create: database.CreateUnit,
			Update: database.UpdateUnit,
			Delete: database.DeleteUnit,
		},
		Schema:   UnitSchema,
		Columns:  unitColumns,
		RowID:    func(u model.Unit) int64 { return u.ID },
		Validate: model.Unit.Validate,
		SetID:    func(u *model.Unit, id int64) { u.ID = id },
		Parents:  func(u model.Unit) []screen.Parent { return []screen.Parent{{Name: "property", ID: &u.PropertyID}} },
		Defaults: func(u *model.Unit) {
			if u.Status == "" {
				u.Status = model.UnitStatusVacant
			}
		},
	}
}

// GetUnitsByPropertyHandler lists one property's units with the usual query
// parameters applied.
func GetUnitsByPropertyHandler(db *sqlx.DB) http.HandlerFunc {
	s := UnitScreen()
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.PathID(r)
		if err != nil {
			httpjson.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}
		p, err := database.GetPropertyByID(db, id)
		if err != nil {
			log.Printf("ERROR: failed to get property %d: %v", id, err)
			httpjson.WriteError(w, "Failed to load property.", http.StatusInternalServerError)
			return
		}
		if p == nil {
			httpjson.WriteError(w, fmt.Sprintf("property %d not found", id), http.StatusNotFound)
			return
		}
		units, err := database.GetUnitsByProperty(db, id)
		if err != nil {
			log.Printf("ERROR: failed to list units of property %d: %v", id, err)
			httpjson.WriteError(w, "Failed to load units.", http.StatusInternalServerError)
			return
		}
		names := map[int64]string{p.ID: p.Name}
		httpjson.WriteJSON(w, http.StatusOK, s.Project(units, projection.ParseQuery(r.URL.Query()), names))
	}
}
