package tenant

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"propdesk/database"
	"propdesk/database/dbtest"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadRequest(t *testing.T, csv string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "tenants.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(csv))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/tenants/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestImportTenants(t *testing.T) {
	db := dbtest.Open(t)

	csv := "first_name,last_name,email,lease_start\n" +
		"Ada,Lovelace,ada@example.com,2024-01-01\n" +
		"Alan,Turing,not-an-email,\n" +
		"Grace,Hopper,,2024-13-45\n" +
		"Edsger,Dijkstra,ed@example.com,\n"

	rec := httptest.NewRecorder()
	ImportTenantsHandler(db)(rec, uploadRequest(t, csv))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Imported int      `json:"imported"`
		Skipped  []string `json:"skipped"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Imported)
	assert.Len(t, body.Skipped, 2)

	tenants, err := database.GetAllTenants(db)
	require.NoError(t, err)
	require.Len(t, tenants, 2)
	assert.Equal(t, "Dijkstra", tenants[0].LastName)
	assert.Equal(t, "current", tenants[1].Status)
}

func TestImportTenantsRejectsMissingFile(t *testing.T) {
	db := dbtest.Open(t)
	rec := httptest.NewRecorder()
	ImportTenantsHandler(db)(rec, httptest.NewRequest(http.MethodPost, "/api/tenants/import", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImportTenantsRejectsHeaderOnlyFile(t *testing.T) {
	db := dbtest.Open(t)
	rec := httptest.NewRecorder()
	ImportTenantsHandler(db)(rec, uploadRequest(t, "first_name,last_name\n"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
