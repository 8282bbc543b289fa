package maintenance

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"propdesk/database/dbtest"
	"propdesk/httpjson"
	"propdesk/model"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaintenanceDefaultsAndFilters(t *testing.T) {
	db := dbtest.Open(t)
	pid := strconv.FormatInt(dbtest.CreateProperty(t, db, "Oak Court"), 10)
	mux := http.NewServeMux()
	Screen().Register(mux, "/api/maintenance", db)

	for _, body := range []string{
		`{"propertyId":` + pid + `,"title":"Leaking tap"}`,
		`{"propertyId":` + pid + `,"title":"Annual inspection","kind":"inspection","scheduledDate":"2024-09-01"}`,
		`{"propertyId":` + pid + `,"title":"Broken heater","priority":"urgent","cost":"350.00"}`,
	} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/maintenance", bytes.NewBufferString(body)))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	list := func(target string) httpjson.ListResponse[model.MaintenanceRecord] {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusOK, rec.Code)
		var out httpjson.ListResponse[model.MaintenanceRecord]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		return out
	}

	repairs := list("/api/maintenance?kind=repair&sort=priority&dir=desc")
	require.Len(t, repairs.Items, 2)
	assert.Equal(t, "Broken heater", repairs.Items[0].Title)
	assert.Equal(t, model.PriorityNormal, repairs.Items[1].Priority)
	assert.Equal(t, model.MaintenanceStatusOpen, repairs.Items[1].Status)

	inspections := list("/api/maintenance?kind=inspection")
	require.Len(t, inspections.Items, 1)
	assert.Contains(t, inspections.TableHTML, "2024-09-01")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/maintenance", bytes.NewBufferString(`{"propertyId":`+pid+`,"title":"x","priority":"whenever"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
