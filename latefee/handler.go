package latefee

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"propdesk/config"
	"propdesk/database"
	"propdesk/httpjson"
	"propdesk/mappers"
	"propdesk/model"
	"propdesk/projection"
	"propdesk/render"
	"propdesk/screen"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// MaxHorizonDays bounds the preview table a request may ask for.
const MaxHorizonDays = 366

var Schema = projection.Schema[model.LateFeeRule]{
	Search: []func(model.LateFeeRule) string{
		func(r model.LateFeeRule) string { return r.Name },
	},
	Equal: map[string]func(model.LateFeeRule) string{
		"capType":    func(r model.LateFeeRule) string { return r.CapType },
		"propertyId": func(r model.LateFeeRule) string { return projection.IDString(r.PropertyID) },
		"unitId":     func(r model.LateFeeRule) string { return projection.IDString(r.UnitID) },
	},
	Sort: map[string]projection.Field[model.LateFeeRule]{
		"name": projection.Text(func(r model.LateFeeRule) (string, bool) { return projection.Present(r.Name) }),
		"gracePeriodDays": projection.Number(func(r model.LateFeeRule) (float64, bool) {
			return float64(r.GracePeriodDays), true
		}),
		"firstFeeAmount": projection.Number(func(r model.LateFeeRule) (float64, bool) {
			return projection.DecimalValue(r.FirstFeeAmount)
		}),
	},
}

func columns(names map[int64]string) []render.Column[model.LateFeeRule] {
	return []render.Column[model.LateFeeRule]{
		render.Text("Name", "col-name", func(r model.LateFeeRule) string { return r.Name }),
		render.Text("Property", "col-property", func(r model.LateFeeRule) string {
			if r.PropertyID == nil {
				return "All properties"
			}
			return mappers.NameFor(names, r.PropertyID)
		}),
		render.Right("Grace", "col-days", func(r model.LateFeeRule) string { return strconv.Itoa(r.GracePeriodDays) }),
		render.Right("First fee", "col-amount", func(r model.LateFeeRule) string { return mappers.FormatMoney(r.FirstFeeAmount) }),
		render.Right("Recurring", "col-amount", func(r model.LateFeeRule) string {
			return fmt.Sprintf("%s / %dd", mappers.FormatMoney(r.RecurringFeeAmount), r.RecurringPeriodDays)
		}),
		render.Right("Cap", "col-cap", func(r model.LateFeeRule) string {
			if r.CapType == model.CapTypePercent {
				return mappers.FormatPercent(r.CapPercentOrAmount)
			}
			return mappers.FormatMoney(r.CapPercentOrAmount)
		}),
	}
}

func Screen() screen.Screen[model.LateFeeRule] {
	return screen.Screen[model.LateFeeRule]{
		Name: "late fee rule",
		Store: screen.Store[model.LateFeeRule]{
			List:   database.GetAllLateFeeRules,
			Get:    database.GetLateFeeRuleByID,
			Create: database.CreateLateFeeRule,
			Update: database.UpdateLateFeeRule,
			Delete: database.DeleteLateFeeRule,
		},
		Schema:   Schema,
		Columns:  columns,
		RowID:    func(r model.LateFeeRule) int64 { return r.ID },
		Validate: model.LateFeeRule.Validate,
		SetID:    func(r *model.LateFeeRule, id int64) { r.ID = id },
		Parents: func(r model.LateFeeRule) []screen.Parent {
			return []screen.Parent{{Name: "property", ID: r.PropertyID}, {Name: "unit", ID: r.UnitID}}
		},
		Defaults: func(r *model.LateFeeRule) {
			if r.CapType == "" {
				r.CapType = model.CapTypeFlat
			}
			if r.RecurringPeriodDays == 0 {
				r.RecurringPeriodDays = 1
			}
		},
	}
}

var rowColumns = []render.Column[AccrualRow]{
	render.Center("Day", "col-day", func(r AccrualRow) string { return strconv.Itoa(r.DayIndex) }),
	render.Right("Fee", "col-amount", func(r AccrualRow) string { return mappers.FormatNullMoney(r.FeeApplied) }),
	render.Right("Total", "col-amount", func(r AccrualRow) string { return mappers.FormatNullMoney(r.TotalToDate) }),
}

// RenderPreviewHTML prints the accrual rows as a table fragment.
func RenderPreviewHTML(p Preview) string {
	return render.RenderTableHTML(rowColumns, p.Rows, nil, "No days to preview.")
}

type previewResponse struct {
	Preview
	TableHTML string `json:"tableHTML"`
}

// PreviewOptions reads sampleCharge and horizon from the query, falling back
// to the configured defaults.
func PreviewOptions(values url.Values, cfg config.Config) (decimal.Decimal, int, error) {
	rawCharge := values.Get("sampleCharge")
	if rawCharge == "" {
		rawCharge = cfg.DefaultSampleCharge
	}
	sample, err := decimal.NewFromString(rawCharge)
	if err != nil || sample.IsNegative() {
		return decimal.Zero, 0, fmt.Errorf("sampleCharge must be a non-negative amount")
	}

	horizon := cfg.PreviewHorizonDays
	if horizon <= 0 {
		horizon = DefaultHorizonDays
	}
	if raw := values.Get("horizon"); raw != "" {
		horizon, err = strconv.Atoi(raw)
		if err != nil || horizon < 0 || horizon > MaxHorizonDays {
			return decimal.Zero, 0, fmt.Errorf("horizon must be between 0 and %d", MaxHorizonDays)
		}
	}
	return sample, horizon, nil
}

func writePreview(w http.ResponseWriter, r *http.Request, rule model.LateFeeRule) {
	sample, horizon, err := PreviewOptions(r.URL.Query(), config.GetConfig())
	if err != nil {
		httpjson.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	p := BuildPreview(rule, sample, horizon)
	httpjson.WriteJSON(w, http.StatusOK, previewResponse{Preview: p, TableHTML: RenderPreviewHTML(p)})
}

// PreviewRuleHandler previews a saved rule.
func PreviewRuleHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.PathID(r)
		if err != nil {
			httpjson.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}
		rule, err := database.GetLateFeeRuleByID(db, id)
		if err != nil {
			log.Printf("ERROR: failed to get late fee rule %d: %v", id, err)
			httpjson.WriteError(w, "Failed to load late fee rule.", http.StatusInternalServerError)
			return
		}
		if rule == nil {
			httpjson.WriteError(w, fmt.Sprintf("late fee rule %d not found", id), http.StatusNotFound)
			return
		}
		writePreview(w, r, *rule)
	}
}

// PreviewDraftHandler previews the rule form before it is saved.
func PreviewDraftHandler() http.HandlerFunc {
	s := Screen()
	return func(w http.ResponseWriter, r *http.Request) {
		var rule model.LateFeeRule
		if err := httpjson.DecodeBody(r, &rule); err != nil {
			httpjson.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.Defaults(&rule)
		if rule.Name == "" {
			rule.Name = "draft"
		}
		if err := rule.Validate(); err != nil {
			httpjson.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}
		writePreview(w, r, rule)
	}
}
