// Package mortgage serves the mortgage screen.
package mortgage

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

var Schema = projection.Schema[model.Mortgage]{
	Search: []func(model.Mortgage) string{
		func(m model.Mortgage) string { return m.Lender },
		func(m model.Mortgage) string { return m.LoanNumber },
	},
	Equal: map[string]func(model.Mortgage) string{
		"status":     func(m model.Mortgage) string { return m.Status },
		"lender":     func(m model.Mortgage) string { return m.Lender },
		"propertyId": func(m model.Mortgage) string { return strconv.FormatInt(m.PropertyID, 10) },
	},
	Sort: map[string]projection.Field[model.Mortgage]{
		"lender":    projection.Text(func(m model.Mortgage) (string, bool) { return projection.Present(m.Lender) }),
		"principal": projection.Number(func(m model.Mortgage) (float64, bool) { return projection.DecimalValue(m.Principal) }),
		"interestRate": projection.Number(func(m model.Mortgage) (float64, bool) {
			return projection.DecimalValue(m.InterestRate)
		}),
		"monthlyPayment": projection.Number(func(m model.Mortgage) (float64, bool) {
			return projection.NullDecimalValue(m.MonthlyPayment)
		}),
		"maturityDate": projection.Date(func(m model.Mortgage) (time.Time, bool) {
			return projection.ParseDatePtr(m.MaturityDate)
		}),
	},
}

func columns(names map[int64]string) []render.Column[model.Mortgage] {
	return []render.Column[model.Mortgage]{
		render.Text("Property", "col-property", func(m model.Mortgage) string { return mappers.NameFor(names, &m.PropertyID) }),
		render.Text("Lender", "col-lender", func(m model.Mortgage) string { return m.Lender }),
		render.Text("Loan", "col-loan", func(m model.Mortgage) string { return m.LoanNumber }),
		render.Right("Principal", "col-amount", func(m model.Mortgage) string { return mappers.FormatMoney(m.Principal) }),
		render.Right("Rate", "col-rate", func(m model.Mortgage) string { return mappers.FormatPercent(m.InterestRate) }),
		render.Right("Payment", "col-amount", func(m model.Mortgage) string { return mappers.FormatNullMoney(m.MonthlyPayment) }),
		render.Center("Matures", "col-date", func(m model.Mortgage) string { return mappers.FormatDate(m.MaturityDate) }),
		render.Center("Status", "col-status", func(m model.Mortgage) string { return mappers.Humanize(m.Status) }),
	}
}

func Screen() screen.Screen[model.Mortgage] {
	return screen.Screen[model.Mortgage]{
		Name: "mortgage",
		Store: screen.Store[model.Mortgage]{
			List:   database.GetAllMortgages,
			Get:    database.GetMortgageByID,
			Create: database.CreateMortgage,
			Update: database.UpdateMortgage,
			Delete: database.DeleteMortgage,
		},
		Schema:   Schema,
		Columns:  columns,
		RowID:    func(m model.Mortgage) int64 { return m.ID },
		Validate: model.Mortgage.Validate,
		SetID:    func(m *model.Mortgage, id int64) { m.ID = id },
		Parents:  func(m model.Mortgage) []screen.Parent { return []screen.Parent{{Name: "property", ID: &m.PropertyID}} },
		Defaults: func(m *model.Mortgage) {
			if m.Status == "" {
				m.Status = model.MortgageStatusActive
			}
		},
	}
}
