// Package tenant serves the tenant roster screen and its CSV import.
package tenant

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"propdesk/database"
	"propdesk/httpjson"
	"propdesk/mappers"
	"propdesk/model"
	"propdesk/parsers"
	"propdesk/projection"
	"propdesk/render"
	"propdesk/screen"

	"github.com/jmoiron/sqlx"
)

var Schema = projection.Schema[model.Tenant]{
	Search: []func(model.Tenant) string{
		model.Tenant.FullName,
		func(t model.Tenant) string { return t.Email },
		func(t model.Tenant) string { return t.Phone },
	},
	Equal: map[string]func(model.Tenant) string{
		"status": func(t model.Tenant) string { return t.Status },
		"unitId": func(t model.Tenant) string { return projection.IDString(t.UnitID) },
	},
	Sort: map[string]projection.Field[model.Tenant]{
		"lastName":  projection.Text(func(t model.Tenant) (string, bool) { return projection.Present(t.LastName) }),
		"firstName": projection.Text(func(t model.Tenant) (string, bool) { return projection.Present(t.FirstName) }),
		"email":     projection.Text(func(t model.Tenant) (string, bool) { return projection.Present(t.Email) }),
		"leaseStart": projection.Date(func(t model.Tenant) (time.Time, bool) {
			return projection.ParseDatePtr(t.LeaseStart)
		}),
		"leaseEnd": projection.Date(func(t model.Tenant) (time.Time, bool) {
			return projection.ParseDatePtr(t.LeaseEnd)
		}),
	},
}

func columns(map[int64]string) []render.Column[model.Tenant] {
	return []render.Column[model.Tenant]{
		render.Text("Name", "col-name", model.Tenant.FullName),
		render.Text("Email", "col-email", func(t model.Tenant) string { return t.Email }),
		render.Text("Phone", "col-phone", func(t model.Tenant) string { return t.Phone }),
		render.Center("Unit", "col-unit", func(t model.Tenant) string { return mappers.NameFor(nil, t.UnitID) }),
		render.Center("Lease start", "col-date", func(t model.Tenant) string { return mappers.FormatDate(t.LeaseStart) }),
		render.Center("Lease end", "col-date", func(t model.Tenant) string { return mappers.FormatDate(t.LeaseEnd) }),
		render.Center("Status", "col-status", func(t model.Tenant) string { return mappers.Humanize(t.Status) }),
	}
}

func defaults(t *model.Tenant) {
	if t.Status == "" {
		t.Status = model.TenantStatusCurrent
	}
}

func Screen() screen.Screen[model.Tenant] {
	return screen.Screen[model.Tenant]{
		Name: "tenant",
		Store: screen.Store[model.Tenant]{
			List:   database.GetAllTenants,
			Get:    database.GetTenantByID,
			Create: database.CreateTenant,
			Update: database.UpdateTenant,
			Delete: database.DeleteTenant,
		},
		Schema:   Schema,
		Columns:  columns,
		RowID:    func(t model.Tenant) int64 { return t.ID },
		Validate: model.Tenant.Validate,
		SetID:    func(t *model.Tenant, id int64) { t.ID = id },
		Parents:  func(t model.Tenant) []screen.Parent { return []screen.Parent{{Name: "unit", ID: t.UnitID}} },
		Defaults: defaults,
	}
}

// ImportTenantsHandler loads a roster CSV from the "file" form field. Rows
// that fail validation or insertion are reported and skipped; the rest are
// committed together.
func ImportTenantsHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, _, err := r.FormFile("file")
		if err != nil {
			httpjson.WriteError(w, "Failed to read CSV file: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		tenants, err := parsers.ParseTenantCSV(file)
		if err != nil {
			httpjson.WriteError(w, "Failed to parse CSV file: "+err.Error(), http.StatusBadRequest)
			return
		}
		if len(tenants) == 0 {
			httpjson.WriteError(w, "The CSV file has no tenant rows.", http.StatusBadRequest)
			return
		}

		tx, err := db.Beginx()
		if err != nil {
			httpjson.WriteError(w, "Failed to begin transaction: "+err.Error(), http.StatusInternalServerError)
			return
		}
		defer tx.Rollback()

		var imported int
		var problems []string
		for i := range tenants {
			t := &tenants[i]
			defaults(t)
			if err := t.Validate(); err != nil {
				problems = append(problems, fmt.Sprintf("%s: %s", t.FullName(), strings.ReplaceAll(err.Error(), "\n", "; ")))
				continue
			}
			if _, err := database.CreateTenantInTx(tx, t); err != nil {
				log.Printf("ERROR: failed to import tenant %s: %v", t.FullName(), err)
				problems = append(problems, fmt.Sprintf("%s: %v", t.FullName(), err))
				continue
			}
			imported++
		}

		if err := tx.Commit(); err != nil {
			httpjson.WriteError(w, "Failed to commit import: "+err.Error(), http.StatusInternalServerError)
			return
		}

		message := fmt.Sprintf("Imported %d tenants.", imported)
		if len(problems) > 0 {
			message += fmt.Sprintf(" %d rows skipped.", len(problems))
		}
		httpjson.WriteJSON(w, http.StatusOK, map[string]any{
			"message":  message,
			"imported": imported,
			"skipped":  problems,
		})
	}
}
