// Package application serves the rental application screen.
package application

import (
	"strconv"
	"time"

	"propdesk/database"
	"propdesk/mappers"
	"propdesk/model"
	"propdesk/projection"
	"propdesk/render"
	"propdesk/screen"

	"github.com/jmoiron/sqlx"
)

var Schema = projection.Schema[View]{
	Search: []func(View) string{
		func(v View) string { return v.ApplicantName },
		func(v View) string { return v.ApplicantEmail },
	},
	Equal: map[string]func(View) string{
		"status":     func(v View) string { return v.Status },
		"propertyId": func(v View) string { return strconv.FormatInt(v.PropertyID, 10) },
		"unitId":     func(v View) string { return projection.IDString(v.UnitID) },
	},
	Sort: map[string]projection.Field[View]{
		"applicantName": projection.Text(func(v View) (string, bool) { return projection.Present(v.ApplicantName) }),
		"monthlyIncome": projection.Number(func(v View) (float64, bool) {
			return projection.NullDecimalValue(v.MonthlyIncome)
		}),
		"screeningProgress": projection.Number(func(v View) (float64, bool) {
			return float64(v.ScreeningProgress), true
		}),
		"submittedAt": projection.Date(func(v View) (time.Time, bool) { return projection.ParseDate(v.SubmittedAt) }),
		"status":      projection.Text(func(v View) (string, bool) { return projection.Present(v.Status) }),
	},
}

func columns(names map[int64]string) []render.Column[View] {
	return []render.Column[View]{
		render.Text("Applicant", "col-name", func(v View) string { return v.ApplicantName }),
		render.Text("Email", "col-email", func(v View) string { return v.ApplicantEmail }),
		render.Text("Property", "col-property", func(v View) string { return mappers.NameFor(names, &v.PropertyID) }),
		render.Right("Income", "col-amount", func(v View) string { return mappers.FormatNullMoney(v.MonthlyIncome) }),
		render.Right("Screening", "col-progress", func(v View) string { return strconv.Itoa(v.ScreeningProgress) + "%" }),
		render.Center("Submitted", "col-date", func(v View) string { return v.SubmittedAt }),
		render.Center("Status", "col-status", func(v View) string { return mappers.Humanize(v.Status) }),
	}
}

func listViews(db *sqlx.DB) ([]View, error) {
	apps, err := database.GetAllApplications(db)
	if err != nil {
		return nil, err
	}
	views := make([]View, len(apps))
	for i, a := range apps {
		views[i] = toView(a)
	}
	return views, nil
}

func getView(db *sqlx.DB, id int64) (*View, error) {
	a, err := database.GetApplicationByID(db, id)
	if err != nil || a == nil {
		return nil, err
	}
	v := toView(*a)
	return &v, nil
}

func Screen() screen.Screen[View] {
	return screen.Screen[View]{
		Name: "application",
		Store: screen.Store[View]{
			List: listViews,
			Get:  getView,
			Create: func(db *sqlx.DB, v *View) (int64, error) {
				return database.CreateApplication(db, &v.RentalApplication)
			},
			Update: func(db *sqlx.DB, v *View) error {
				return database.UpdateApplication(db, &v.RentalApplication)
			},
			Delete: database.DeleteApplication,
		},
		Schema:   Schema,
		Columns:  columns,
		RowID:    func(v View) int64 { return v.ID },
		Validate: func(v View) error { return v.RentalApplication.Validate() },
		SetID:    func(v *View, id int64) { v.ID = id },
		Parents: func(v View) []screen.Parent {
			return []screen.Parent{{Name: "property", ID: &v.PropertyID}, {Name: "unit", ID: v.UnitID}, {Name: "lead", ID: v.LeadID}}
		},
		Defaults: func(v *View) {
			if v.Status == "" {
				v.Status = model.ApplicationStatusSubmitted
			}
		},
	}
}
