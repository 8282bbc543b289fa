// Package httpjson holds the request and response plumbing shared by the
// record screens.
package httpjson

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"
)

// ListResponse is what every list endpoint returns: the projected records
// and the same rows rendered as a table fragment.
type ListResponse[T any] struct {
	Items     []T    `json:"items"`
	Total     int    `json:"total"`
	TableHTML string `json:"tableHTML"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: failed to encode JSON response: %v", err)
	}
}

// WriteError answers with {"message": ...}.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	WriteJSON(w, statusCode, map[string]string{"message": message})
}

func WriteMessage(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, map[string]string{"message": message})
}

// WriteCreated answers 201 with the new row id.
func WriteCreated(w http.ResponseWriter, id int64) {
	WriteJSON(w, http.StatusCreated, map[string]any{"id": id, "message": "Created."})
}

func DecodeBody(r *http.Request, v any) error {
	if r.Body == nil {
		return errors.New("request body is empty")
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// PathID parses the {id} wildcard of the matched route.
func PathID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
