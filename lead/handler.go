// Package lead serves the prospect pipeline screen.
package lead

import (
	"time"

	"propdesk/database"
	"propdesk/mappers"
	"propdesk/model"
	"propdesk/projection"
	"propdesk/render"
	"propdesk/screen"
)

var Schema = projection.Schema[model.Lead]{
	Search: []func(model.Lead) string{
		func(l model.Lead) string { return l.Name },
		func(l model.Lead) string { return l.Email },
		func(l model.Lead) string { return l.Phone },
		func(l model.Lead) string { return l.Notes },
	},
	Equal: map[string]func(model.Lead) string{
		"status":     func(l model.Lead) string { return l.Status },
		"source":     func(l model.Lead) string { return l.Source },
		"propertyId": func(l model.Lead) string { return projection.IDString(l.PropertyID) },
	},
	Sort: map[string]projection.Field[model.Lead]{
		"name":   projection.Text(func(l model.Lead) (string, bool) { return projection.Present(l.Name) }),
		"source": projection.Text(func(l model.Lead) (string, bool) { return projection.Present(l.Source) }),
		"status": projection.Text(func(l model.Lead) (string, bool) { return projection.Present(l.Status) }),
		"desiredMoveIn": projection.Date(func(l model.Lead) (time.Time, bool) {
			return projection.ParseDatePtr(l.DesiredMoveIn)
		}),
		"createdAt": projection.Date(func(l model.Lead) (time.Time, bool) { return projection.ParseDate(l.CreatedAt) }),
	},
}

func columns(names map[int64]string) []render.Column[model.Lead] {
	return []render.Column[model.Lead]{
		render.Text("Name", "col-name", func(l model.Lead) string { return l.Name }),
		render.Text("Email", "col-email", func(l model.Lead) string { return l.Email }),
		render.Text("Phone", "col-phone", func(l model.Lead) string { return l.Phone }),
		render.Text("Property", "col-property", func(l model.Lead) string { return mappers.NameFor(names, l.PropertyID) }),
		render.Text("Source", "col-source", func(l model.Lead) string { return l.Source }),
		render.Center("Move-in", "col-date", func(l model.Lead) string { return mappers.FormatDate(l.DesiredMoveIn) }),
		render.Center("Status", "col-status", func(l model.Lead) string { return mappers.Humanize(l.Status) }),
	}
}

func Screen() screen.Screen[model.Lead] {
	return screen.Screen[model.Lead]{
		Name: "lead",
		Store: screen.Store[model.Lead]{
			List:   database.GetAllLeads,
			Get:    database.GetLeadByID,
			Create: database.CreateLead,
			Update: database.UpdateLead,
			Delete: database.DeleteLead,
		},
		Schema:   Schema,
		Columns:  columns,
		RowID:    func(l model.Lead) int64 { return l.ID },
		Validate: model.Lead.Validate,
		SetID:    func(l *model.Lead, id int64) { l.ID = id },
		Parents:  func(l model.Lead) []screen.Parent { return []screen.Parent{{Name: "property", ID: l.PropertyID}} },
		Defaults: func(l *model.Lead) {
			if l.Status == "" {
				l.Status = model.LeadStatusNew
			}
		},
	}
}
