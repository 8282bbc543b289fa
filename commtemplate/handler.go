package commtemplate

import (
	"fmt"
	"log"
	"net/http"
	"slices"
	"strings"
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

var Schema = projection.Schema[model.CommunicationTemplate]{
	Search: []func(model.CommunicationTemplate) string{
		func(c model.CommunicationTemplate) string { return c.Name },
		func(c model.CommunicationTemplate) string { return c.Subject },
		func(c model.CommunicationTemplate) string { return c.Body },
	},
	Equal: map[string]func(model.CommunicationTemplate) string{
		"category": func(c model.CommunicationTemplate) string { return c.Category },
	},
	Sort: map[string]projection.Field[model.CommunicationTemplate]{
		"name":     projection.Text(func(c model.CommunicationTemplate) (string, bool) { return projection.Present(c.Name) }),
		"category": projection.Text(func(c model.CommunicationTemplate) (string, bool) { return projection.Present(c.Category) }),
		"updatedAt": projection.Date(func(c model.CommunicationTemplate) (time.Time, bool) {
			return projection.ParseDate(c.UpdatedAt)
		}),
	},
}

func columns(map[int64]string) []render.Column[model.CommunicationTemplate] {
	return []render.Column[model.CommunicationTemplate]{
		render.Text("Name", "col-name", func(c model.CommunicationTemplate) string { return c.Name }),
		render.Center("Category", "col-category", func(c model.CommunicationTemplate) string { return mappers.Humanize(c.Category) }),
		render.Text("Subject", "col-subject", func(c model.CommunicationTemplate) string { return c.Subject }),
		render.Text("Placeholders", "col-placeholders", func(c model.CommunicationTemplate) string {
			return strings.Join(Placeholders(c.Subject+"\n"+c.Body), ", ")
		}),
	}
}

func Screen() screen.Screen[model.CommunicationTemplate] {
	return screen.Screen[model.CommunicationTemplate]{
		Name: "template",
		Store: screen.Store[model.CommunicationTemplate]{
			List:   database.GetAllTemplates,
			Get:    database.GetTemplateByID,
			Create: database.CreateTemplate,
			Update: database.UpdateTemplate,
			Delete: database.DeleteTemplate,
		},
		Schema:   Schema,
		Columns:  columns,
		RowID:    func(c model.CommunicationTemplate) int64 { return c.ID },
		Validate: model.CommunicationTemplate.Validate,
		SetID:    func(c *model.CommunicationTemplate, id int64) { c.ID = id },
		Defaults: func(c *model.CommunicationTemplate) {
			if c.Category == "" {
				c.Category = model.TemplateCategoryEmail
			}
		},
	}
}

type renderRequest struct {
	Values map[string]string `json:"values"`
}

type renderResponse struct {
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
	Missing []string `json:"missing"`
}

// RenderTemplateHandler fills a stored template with the posted values.
func RenderTemplateHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.PathID(r)
		if err != nil {
			httpjson.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}
		var req renderRequest
		if err := httpjson.DecodeBody(r, &req); err != nil {
			httpjson.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}

		tmpl, err := database.GetTemplateByID(db, id)
		if err != nil {
			log.Printf("ERROR: failed to get template %d: %v", id, err)
			httpjson.WriteError(w, "Failed to load template.", http.StatusInternalServerError)
			return
		}
		if tmpl == nil {
			httpjson.WriteError(w, fmt.Sprintf("template %d not found", id), http.StatusNotFound)
			return
		}

		subject, missingSubject := Render(tmpl.Subject, req.Values)
		body, missingBody := Render(tmpl.Body, req.Values)
		missing := missingSubject
		for _, k := range missingBody {
			if !slices.Contains(missing, k) {
				missing = append(missing, k)
			}
		}
		if missing == nil {
			missing = []string{}
		}
		httpjson.WriteJSON(w, http.StatusOK, renderResponse{Subject: subject, Body: body, Missing: missing})
	}
}
