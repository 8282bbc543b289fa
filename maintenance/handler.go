// Package maintenance serves the repair and inspection screen.
package maintenance

import (
	"strconv"
	"time"

	"propdesk/database"
	"propdesk/mappers"
	"propdesk/model"
	"propdesk/projection"
	"propdesk/render"
	"propdesk/screen"
)

var priorityRank = map[string]float64{
	model.PriorityLow:    0,
	model.PriorityNormal: 1,
	model.PriorityUrgent: 2,
}

var Schema = projection.Schema[model.MaintenanceRecord]{
	Search: []func(model.MaintenanceRecord) string{
		func(m model.MaintenanceRecord) string { return m.Title },
		func(m model.MaintenanceRecord) string { return m.Description },
	},
	Equal: map[string]func(model.MaintenanceRecord) string{
		"status":     func(m model.MaintenanceRecord) string { return m.Status },
		"kind":       func(m model.MaintenanceRecord) string { return m.Kind },
		"priority":   func(m model.MaintenanceRecord) string { return m.Priority },
		"propertyId": func(m model.MaintenanceRecord) string { return strconv.FormatInt(m.PropertyID, 10) },
		"unitId":     func(m model.MaintenanceRecord) string { return projection.IDString(m.UnitID) },
	},
	Sort: map[string]projection.Field[model.MaintenanceRecord]{
		"title": projection.Text(func(m model.MaintenanceRecord) (string, bool) { return projection.Present(m.Title) }),
		"priority": projection.Number(func(m model.MaintenanceRecord) (float64, bool) {
			rank, ok := priorityRank[m.Priority]
			return rank, ok
		}),
		"cost": projection.Number(func(m model.MaintenanceRecord) (float64, bool) {
			return projection.NullDecimalValue(m.Cost)
		}),
		"scheduledDate": projection.Date(func(m model.MaintenanceRecord) (time.Time, bool) {
			return projection.ParseDatePtr(m.ScheduledDate)
		}),
		"completedDate": projection.Date(func(m model.MaintenanceRecord) (time.Time, bool) {
			return projection.ParseDatePtr(m.CompletedDate)
		}),
	},
}

func columns(names map[int64]string) []render.Column[model.MaintenanceRecord] {
	return []render.Column[model.MaintenanceRecord]{
		render.Text("Property", "col-property", func(m model.MaintenanceRecord) string { return mappers.NameFor(names, &m.PropertyID) }),
		render.Center("Kind", "col-kind", func(m model.MaintenanceRecord) string { return mappers.Humanize(m.Kind) }),
		render.Text("Title", "col-title", func(m model.MaintenanceRecord) string { return m.Title }),
		render.Center("Priority", "col-priority", func(m model.MaintenanceRecord) string { return mappers.Humanize(m.Priority) }),
		render.Right("Cost", "col-amount", func(m model.MaintenanceRecord) string { return mappers.FormatNullMoney(m.Cost) }),
		render.Center("Scheduled", "col-date", func(m model.MaintenanceRecord) string { return mappers.FormatDate(m.ScheduledDate) }),
		render.Center("Completed", "col-date", func(m model.MaintenanceRecord) string { return mappers.FormatDate(m.CompletedDate) }),
		render.Center("Status", "col-status", func(m model.MaintenanceRecord) string { return mappers.Humanize(m.Status) }),
	}
}

func Screen() screen.Screen[model.MaintenanceRecord] {
	return screen.Screen[model.MaintenanceRecord]{
		Name: "maintenance",
		Store: screen.Store[model.MaintenanceRecord]{
			List:   database.GetAllMaintenanceRecords,
			Get:    database.GetMaintenanceRecordByID,
			Create: database.CreateMaintenanceRecord,
			Update: database.UpdateMaintenanceRecord,
			Delete: database.DeleteMaintenanceRecord,
		},
		Schema:   Schema,
		Columns:  columns,
		RowID:    func(m model.MaintenanceRecord) int64 { return m.ID },
		Validate: model.MaintenanceRecord.Validate,
		SetID:    func(m *model.MaintenanceRecord, id int64) { m.ID = id },
		Parents: func(m model.MaintenanceRecord) []screen.Parent {
			return []screen.Parent{{Name: "property", ID: &m.PropertyID}, {Name: "unit", ID: m.UnitID}}
		},
		Defaults: func(m *model.MaintenanceRecord) {
			if m.Status == "" {
				m.Status = model.MaintenanceStatusOpen
			}
			if m.Kind == "" {
				m.Kind = model.MaintenanceKindRepair
			}
			if m.Priority == "" {
				m.Priority = model.PriorityNormal
			}
		},
	}
}
