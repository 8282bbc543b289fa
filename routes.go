package main

import (
	"net/http"

	"propdesk/application"
	"propdesk/automation"
	"propdesk/banktx"
	"propdesk/commtemplate"
	"propdesk/database"
	"propdesk/insurance"
	"propdesk/latefee"
	"propdesk/lead"
	"propdesk/loader"
	"propdesk/maintenance"
	"propdesk/mortgage"
	"propdesk/property"
	"propdesk/reconcile"
	"propdesk/tenant"

	"github.com/jmoiron/sqlx"
)

// screenLink is one entry of the index page navigation.
type screenLink struct {
	Title string
	Path  string
}

var screenLinks = []screenLink{
	{"Properties", "/api/properties"},
	{"Units", "/api/units"},
	{"Tenants", "/api/tenants"},
	{"Leads", "/api/leads"},
	{"Applications", "/api/applications"},
	{"Insurance", "/api/insurances"},
	{"Mortgages", "/api/mortgages"},
	{"Maintenance", "/api/maintenance"},
	{"Templates", "/api/templates"},
	{"Reconciliation rules", "/api/reconcile/rules"},
	{"Bank transactions", "/api/transactions"},
	{"Late fee rules", "/api/latefees"},
}

func SetupRoutes(mux *http.ServeMux, dbConn *sqlx.DB, dbPath string) {
	property.Screen().Register(mux, "/api/properties", dbConn)
	mux.HandleFunc("GET /api/properties/{id}/units", property.GetUnitsByPropertyHandler(dbConn))
	property.UnitScreen().Register(mux, "/api/units", dbConn)

	tenant.Screen().Register(mux, "/api/tenants", dbConn)
	mux.HandleFunc("POST /api/tenants/import", tenant.ImportTenantsHandler(dbConn))

	lead.Screen().Register(mux, "/api/leads", dbConn)
	application.Screen().Register(mux, "/api/applications", dbConn)

	insuranceScreen := insurance.Screen()
	insuranceScreen.Register(mux, "/api/insurances", dbConn)
	mux.HandleFunc("GET /api/properties/{id}/insurances", insuranceScreen.ChildListHandler(dbConn, database.GetInsurancesByProperty))

	mortgage.Screen().Register(mux, "/api/mortgages", dbConn)
	maintenance.Screen().Register(mux, "/api/maintenance", dbConn)

	commtemplate.Screen().Register(mux, "/api/templates", dbConn)
	mux.HandleFunc("POST /api/templates/{id}/render", commtemplate.RenderTemplateHandler(dbConn))

	reconcile.RuleScreen().Register(mux, "/api/reconcile/rules", dbConn)
	mux.HandleFunc("POST /api/reconcile/run", reconcile.RunReconciliationHandler(dbConn))

	banktx.Screen().Register(mux, "/api/transactions", dbConn)
	mux.HandleFunc("POST /api/transactions/upload", banktx.UploadStatementHandler(dbConn))
	mux.HandleFunc("POST /api/transactions/download", automation.DownloadStatementHandler(dbConn))
	mux.HandleFunc("PUT /api/transactions/{id}/status", banktx.UpdateStatusHandler(dbConn))
	mux.HandleFunc("DELETE /api/transactions/batch/{batchId}", banktx.DeleteBatchHandler(dbConn))

	latefee.Screen().Register(mux, "/api/latefees", dbConn)
	mux.HandleFunc("GET /api/latefees/{id}/preview", latefee.PreviewRuleHandler(dbConn))
	mux.HandleFunc("POST /api/latefees/preview", latefee.PreviewDraftHandler())

	mux.HandleFunc("GET /api/config", GetConfigHandler())
	mux.HandleFunc("POST /api/config", SaveConfigHandler())

	mux.HandleFunc("GET /api/system/status", loader.StatusHandler(dbPath))
	mux.HandleFunc("POST /api/system/resequence", loader.ResequenceHandler(dbConn))
}
