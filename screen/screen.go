// Package screen implements the lifecycle every record screen shares: list
// (fetch all, project, render), detail, create, update and delete.
package screen

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"propdesk/config"
	"propdesk/database"
	"propdesk/httpjson"
	"propdesk/projection"
	"propdesk/render"

	"github.com/jmoiron/sqlx"
	"golang.org/x/text/language"
)

// Store is the persistence a screen needs.
type Store[T any] struct {
	List   func(db *sqlx.DB) ([]T, error)
	Get    func(db *sqlx.DB, id int64) (*T, error)
	Create func(db *sqlx.DB, v *T) (int64, error)
	Update func(db *sqlx.DB, v *T) error
	Delete func(db *sqlx.DB, id int64) error
}

// Screen wires one record type to its store, projection schema and table.
type Screen[T any] struct {
	// Name is used in messages, e.g. "lead".
	Name   string
	Store  Store[T]
	Schema projection.Schema[T]
	// Columns builds the table columns; names resolves property ids.
	Columns func(names map[int64]string) []render.Column[T]
	// RowID tags rendered rows; optional.
	RowID func(T) int64
	// Validate runs before create and update.
	Validate func(T) error
	// SetID writes the path id into a decoded body before update.
	SetID func(*T, int64)
	// Defaults fills unset fields of a decoded body; optional.
	Defaults func(*T)
	// Parents lists the rows a record points at, named in the 400 answer
	// when one of them does not exist; optional.
	Parents func(T) []Parent
}

// Parent is one foreign key of a record, e.g. {"property", &m.PropertyID}.
// A nil ID is an unset optional reference.
type Parent struct {
	Name string
	ID   *int64
}

// Project applies the request's query parameters to records and renders the
// result.
func (s Screen[T]) Project(records []T, q projection.QueryParams, names map[int64]string) httpjson.ListResponse[T] {
	schema := s.Schema
	if schema.Language == language.Und {
		schema.Language = configuredLanguage()
	}
	items := projection.Project(records, schema, q)
	return httpjson.ListResponse[T]{
		Items:     items,
		Total:     len(records),
		TableHTML: render.RenderTableHTML(s.Columns(names), items, s.RowID, fmt.Sprintf("No %s records.", s.Name)),
	}
}

// configuredLanguage is the collation locale from the settings, English when
// it does not parse.
func configuredLanguage() language.Tag {
	tag, err := language.Parse(config.GetConfig().Locale)
	if err != nil {
		return language.English
	}
	return tag
}

func (s Screen[T]) ListHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := s.Store.List(db)
		if err != nil {
			log.Printf("ERROR: failed to list %s records: %v", s.Name, err)
			httpjson.WriteError(w, "Failed to load "+s.Name+" records.", http.StatusInternalServerError)
			return
		}
		names, err := database.GetPropertyNameMap(db)
		if err != nil {
			log.Printf("WARN: property names unavailable for %s table: %v", s.Name, err)
		}
		httpjson.WriteJSON(w, http.StatusOK, s.Project(records, projection.ParseQuery(r.URL.Query()), names))
	}
}

func (s Screen[T]) GetHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.PathID(r)
		if err != nil {
			httpjson.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}
		rec, err := s.Store.Get(db, id)
		if err != nil {
			log.Printf("ERROR: failed to get %s %d: %v", s.Name, id, err)
			httpjson.WriteError(w, "Failed to load "+s.Name+".", http.StatusInternalServerError)
			return
		}
		if rec == nil {
			httpjson.WriteError(w, fmt.Sprintf("%s %d not found", s.Name, id), http.StatusNotFound)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, rec)
	}
}

func (s Screen[T]) CreateHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rec T
		if !s.decodeAndValidate(w, r, &rec) {
			return
		}
		id, err := s.Store.Create(db, &rec)
		if errors.Is(err, database.ErrConstraint) {
			httpjson.WriteError(w, s.constraintMessage(&rec, err), http.StatusBadRequest)
			return
		}
		if err != nil {
			log.Printf("ERROR: failed to create %s: %v", s.Name, err)
			httpjson.WriteError(w, "Failed to save "+s.Name+".", http.StatusInternalServerError)
			return
		}
		httpjson.WriteCreated(w, id)
	}
}

func (s Screen[T]) UpdateHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.PathID(r)
		if err != nil {
			httpjson.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}
		var rec T
		if !s.decodeAndValidate(w, r, &rec) {
			return
		}
		s.SetID(&rec, id)
		if err := s.Store.Update(db, &rec); err != nil {
			s.writeStoreError(w, id, "update", &rec, err)
			return
		}
		httpjson.WriteMessage(w, "Updated.")
	}
}

func (s Screen[T]) DeleteHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.PathID(r)
		if err != nil {
			httpjson.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := s.Store.Delete(db, id); err != nil {
			s.writeStoreError(w, id, "delete", nil, err)
			return
		}
		httpjson.WriteMessage(w, "Deleted.")
	}
}

// ChildListHandler lists the records fetch returns for the parent id in the
// route, e.g. one property's insurance policies.
func (s Screen[T]) ChildListHandler(db *sqlx.DB, fetch func(db *sqlx.DB, parentID int64) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parentID, err := httpjson.PathID(r)
		if err != nil {
			httpjson.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}
		records, err := fetch(db, parentID)
		if err != nil {
			log.Printf("ERROR: failed to list %s records of %d: %v", s.Name, parentID, err)
			httpjson.WriteError(w, "Failed to load "+s.Name+" records.", http.StatusInternalServerError)
			return
		}
		names, err := database.GetPropertyNameMap(db)
		if err != nil {
			log.Printf("WARN: property names unavailable for %s table: %v", s.Name, err)
		}
		httpjson.WriteJSON(w, http.StatusOK, s.Project(records, projection.ParseQuery(r.URL.Query()), names))
	}
}

// Register mounts the five lifecycle routes under base, e.g. "/api/leads".
// Screens without a Create/Update/Delete store func skip that route.
func (s Screen[T]) Register(mux *http.ServeMux, base string, db *sqlx.DB) {
	mux.HandleFunc("GET "+base, s.ListHandler(db))
	mux.HandleFunc("GET "+base+"/{id}", s.GetHandler(db))
	if s.Store.Create != nil {
		mux.HandleFunc("POST "+base, s.CreateHandler(db))
	}
	if s.Store.Update != nil {
		mux.HandleFunc("PUT "+base+"/{id}", s.UpdateHandler(db))
	}
	if s.Store.Delete != nil {
		mux.HandleFunc("DELETE "+base+"/{id}", s.DeleteHandler(db))
	}
}

func (s Screen[T]) decodeAndValidate(w http.ResponseWriter, r *http.Request, rec *T) bool {
	if err := httpjson.DecodeBody(r, rec); err != nil {
		httpjson.WriteError(w, err.Error(), http.StatusBadRequest)
		return false
	}
	if s.Defaults != nil {
		s.Defaults(rec)
	}
	if s.Validate != nil {
		if err := s.Validate(*rec); err != nil {
			httpjson.WriteError(w, err.Error(), http.StatusBadRequest)
			return false
		}
	}
	return true
}

// writeStoreError answers an update or delete failure. rec is the decoded
// body, nil for deletes.
func (s Screen[T]) writeStoreError(w http.ResponseWriter, id int64, action string, rec *T, err error) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		httpjson.WriteError(w, fmt.Sprintf("%s %d not found", s.Name, id), http.StatusNotFound)
	case errors.Is(err, database.ErrConstraint):
		httpjson.WriteError(w, s.constraintMessage(rec, err), http.StatusBadRequest)
	default:
		log.Printf("ERROR: failed to %s %s %d: %v", action, s.Name, id, err)
		httpjson.WriteError(w, fmt.Sprintf("Failed to %s %s.", action, s.Name), http.StatusInternalServerError)
	}
}

// constraintMessage explains a write the schema rejected in terms of the
// record's own fields.
func (s Screen[T]) constraintMessage(rec *T, err error) string {
	var ce *database.ConstraintError
	if !errors.As(err, &ce) || !ce.ForeignKey {
		col := "value"
		if ce != nil && ce.Column != "" {
			col = ce.Column
		}
		return fmt.Sprintf("a %s with this %s already exists", s.Name, col)
	}
	if rec == nil {
		return fmt.Sprintf("%s is still referenced by other records", s.Name)
	}

	var refs []string
	if s.Parents != nil {
		for _, p := range s.Parents(*rec) {
			if p.ID != nil {
				refs = append(refs, fmt.Sprintf("%s %d", p.Name, *p.ID))
			}
		}
	}
	if len(refs) == 0 {
		return fmt.Sprintf("%s refers to a record that does not exist", s.Name)
	}
	return strings.Join(refs, " or ") + " does not exist"
}
