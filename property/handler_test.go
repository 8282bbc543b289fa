package property

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

func setup(t *testing.T) *http.ServeMux {
	t.Helper()
	db := dbtest.Open(t)
	mux := http.NewServeMux()
	Screen().Register(mux, "/api/properties", db)
	UnitScreen().Register(mux, "/api/units", db)
	mux.HandleFunc("GET /api/properties/{id}/units", GetUnitsByPropertyHandler(db))
	return mux
}

func send(mux *http.ServeMux, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(method, target, bytes.NewBufferString(body)))
	return rec
}

func createdID(t *testing.T, rec *httptest.ResponseRecorder) int64 {
	t.Helper()
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var body struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.ID
}

func TestCreatePropertyAssignsCode(t *testing.T) {
	mux := setup(t)

	createdID(t, send(mux, http.MethodPost, "/api/properties", `{"name":"Oak Court","address":"1 Oak St","city":"Springfield"}`))
	createdID(t, send(mux, http.MethodPost, "/api/properties", `{"name":"Elm Plaza","address":"9 Elm Ave","city":"Shelbyville"}`))

	rec := send(mux, http.MethodGet, "/api/properties?sort=name", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list httpjson.ListResponse[model.Property]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Items, 2)
	assert.Equal(t, "Elm Plaza", list.Items[0].Name)
	assert.Equal(t, "PR00002", list.Items[0].PropertyCode)
	assert.Equal(t, "PR00001", list.Items[1].PropertyCode)
	assert.Equal(t, model.PropertyStatusActive, list.Items[1].Status)
}

func TestUnitsByProperty(t *testing.T) {
	mux := setup(t)
	oak := createdID(t, send(mux, http.MethodPost, "/api/properties", `{"name":"Oak Court","address":"1 Oak St"}`))
	elm := createdID(t, send(mux, http.MethodPost, "/api/properties", `{"name":"Elm Plaza","address":"9 Elm Ave"}`))

	for _, body := range []string{
		`{"propertyId":` + strconv.FormatInt(oak, 10) + `,"label":"1A","bedrooms":2,"rent":"1450.00"}`,
		`{"propertyId":` + strconv.FormatInt(oak, 10) + `,"label":"1B","bedrooms":1,"rent":"1100.00","status":"occupied"}`,
		`{"propertyId":` + strconv.FormatInt(elm, 10) + `,"label":"101","bedrooms":3,"rent":"2000"}`,
	} {
		createdID(t, send(mux, http.MethodPost, "/api/units", body))
	}

	rec := send(mux, http.MethodGet, "/api/properties/"+strconv.FormatInt(oak, 10)+"/units?sort=rent&dir=desc", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list httpjson.ListResponse[model.Unit]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Items, 2)
	assert.Equal(t, "1A", list.Items[0].Label)
	assert.Contains(t, list.TableHTML, "1,450.00")
	assert.Contains(t, list.TableHTML, "Oak Court")

	rec = send(mux, http.MethodGet, "/api/units?status=occupied", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, "1B", list.Items[0].Label)

	rec = send(mux, http.MethodGet, "/api/properties/999/units", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnitValidation(t *testing.T) {
	mux := setup(t)
	rec := send(mux, http.MethodPost, "/api/units", `{"label":"","bedrooms":-1,"rent":"-5"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "propertyId is required")
}
