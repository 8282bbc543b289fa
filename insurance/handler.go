// Package insurance serves the insurance policy screen.
package insurance

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

// Schema sorts policies without an expiry date after every dated one, in
// both directions.
var Schema = projection.Schema[model.Insurance]{
	Search: []func(model.Insurance) string{
		func(i model.Insurance) string { return i.Carrier },
		func(i model.Insurance) string { return i.PolicyNumber },
		func(i model.Insurance) string { return i.CoverageType },
	},
	Equal: map[string]func(model.Insurance) string{
		"status":       func(i model.Insurance) string { return i.Status },
		"coverageType": func(i model.Insurance) string { return i.CoverageType },
		"propertyId":   func(i model.Insurance) string { return strconv.FormatInt(i.PropertyID, 10) },
	},
	Sort: map[string]projection.Field[model.Insurance]{
		"carrier": projection.Text(func(i model.Insurance) (string, bool) { return projection.Present(i.Carrier) }),
		"premium": projection.Number(func(i model.Insurance) (float64, bool) { return projection.DecimalValue(i.Premium) }),
		"effectiveDate": projection.Date(func(i model.Insurance) (time.Time, bool) {
			return projection.ParseDatePtr(i.EffectiveDate)
		}),
		"expiryDate": projection.Date(func(i model.Insurance) (time.Time, bool) {
			return projection.ParseDatePtr(i.ExpiryDate)
		}),
	},
}

func columns(names map[int64]string) []render.Column[model.Insurance] {
	return []render.Column[model.Insurance]{
		render.Text("Property", "col-property", func(i model.Insurance) string { return mappers.NameFor(names, &i.PropertyID) }),
		render.Text("Carrier", "col-carrier", func(i model.Insurance) string { return i.Carrier }),
		render.Text("Policy", "col-policy", func(i model.Insurance) string { return i.PolicyNumber }),
		render.Text("Coverage", "col-coverage", func(i model.Insurance) string { return i.CoverageType }),
		render.Right("Premium", "col-amount", func(i model.Insurance) string { return mappers.FormatMoney(i.Premium) }),
		render.Center("Effective", "col-date", func(i model.Insurance) string { return mappers.FormatDate(i.EffectiveDate) }),
		render.Center("Expires", "col-date", func(i model.Insurance) string { return mappers.FormatDate(i.ExpiryDate) }),
		render.Center("Status", "col-status", func(i model.Insurance) string { return mappers.Humanize(i.Status) }),
	}
}

func Screen() screen.Screen[model.Insurance] {
	return screen.Screen[model.Insurance]{
		Name: "insurance",
		Store: screen.Store[model.Insurance]{
			List:   database.GetAllInsurances,
			Get:    database.GetInsuranceByID,
			Create: database.CreateInsurance,
			Update: database.UpdateInsurance,
			Delete: database.DeleteInsurance,
		},
		Schema:   Schema,
		Columns:  columns,
		RowID:    func(i model.Insurance) int64 { return i.ID },
		Validate: model.Insurance.Validate,
		SetID:    func(i *model.Insurance, id int64) { i.ID = id },
		Parents:  func(i model.Insurance) []screen.Parent { return []screen.Parent{{Name: "property", ID: &i.PropertyID}} },
		Defaults: func(i *model.Insurance) {
			if i.Status == "" {
				i.Status = model.InsuranceStatusActive
			}
		},
	}
}
