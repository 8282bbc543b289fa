package reconcile

import (
	"fmt"
	"log"
	"net/http"

	"propdesk/database"
	"propdesk/httpjson"
	"propdesk/mappers"
	"propdesk/model"
	"propdesk/projection"
	"propdesk/render"
	"propdesk/screen"

	"github.com/jmoiron/sqlx"
)

var RuleSchema = projection.Schema[model.ReconciliationRule]{
	Search: []func(model.ReconciliationRule) string{
		func(r model.ReconciliationRule) string { return r.Name },
		func(r model.ReconciliationRule) string { return r.Pattern },
		func(r model.ReconciliationRule) string { return r.Category },
	},
	Equal: map[string]func(model.ReconciliationRule) string{
		"status":    func(r model.ReconciliationRule) string { return r.Status },
		"matchType": func(r model.ReconciliationRule) string { return r.MatchType },
		"category":  func(r model.ReconciliationRule) string { return r.Category },
	},
	Sort: map[string]projection.Field[model.ReconciliationRule]{
		"name":     projection.Text(func(r model.ReconciliationRule) (string, bool) { return projection.Present(r.Name) }),
		"category": projection.Text(func(r model.ReconciliationRule) (string, bool) { return projection.Present(r.Category) }),
		"id":       projection.Number(func(r model.ReconciliationRule) (float64, bool) { return float64(r.ID), true }),
	},
}

func ruleColumns(map[int64]string) []render.Column[model.ReconciliationRule] {
	return []render.Column[model.ReconciliationRule]{
		render.Text("Name", "col-name", func(r model.ReconciliationRule) string { return r.Name }),
		render.Text("Pattern", "col-pattern", func(r model.ReconciliationRule) string { return r.Pattern }),
		render.Center("Match", "col-match", func(r model.ReconciliationRule) string { return mappers.Humanize(r.MatchType) }),
		render.Text("Category", "col-category", func(r model.ReconciliationRule) string { return r.Category }),
		render.Center("Status", "col-status", func(r model.ReconciliationRule) string { return mappers.Humanize(r.Status) }),
	}
}

func RuleScreen() screen.Screen[model.ReconciliationRule] {
	return screen.Screen[model.ReconciliationRule]{
		Name: "reconciliation rule",
		Store: screen.Store[model.ReconciliationRule]{
			List:   database.GetAllReconciliationRules,
			Get:    database.GetReconciliationRuleByID,
			Create: database.CreateReconciliationRule,
			Update: database.UpdateReconciliationRule,
			Delete: database.DeleteReconciliationRule,
		},
		Schema:   RuleSchema,
		Columns:  ruleColumns,
		RowID:    func(r model.ReconciliationRule) int64 { return r.ID },
		Validate: model.ReconciliationRule.Validate,
		SetID:    func(r *model.ReconciliationRule, id int64) { r.ID = id },
		Defaults: func(r *model.ReconciliationRule) {
			if r.Status == "" {
				r.Status = model.RuleStatusActive
			}
			if r.MatchType == "" {
				r.MatchType = model.MatchTypeContains
			}
		},
	}
}

func RunReconciliationHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := Run(db)
		if err != nil {
			log.Printf("ERROR: reconciliation run failed: %v", err)
			httpjson.WriteError(w, "Reconciliation failed: "+err.Error(), http.StatusInternalServerError)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, map[string]any{
			"message":  fmt.Sprintf("Matched %d of %d transactions.", result.Matched, result.Examined),
			"examined": result.Examined,
			"matched":  result.Matched,
		})
	}
}
