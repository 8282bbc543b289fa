package lead

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

func newMux(t *testing.T) *http.ServeMux {
	t.Helper()
	db := dbtest.Open(t)
	mux := http.NewServeMux()
	Screen().Register(mux, "/api/leads", db)
	return mux
}

func do(t *testing.T, mux *http.ServeMux, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestLeadLifecycle(t *testing.T) {
	mux := newMux(t)

	rec := do(t, mux, http.MethodPost, "/api/leads", `{"name":"Beta","email":"beta@example.com","desiredMoveIn":"2024-03-01"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = do(t, mux, http.MethodPost, "/api/leads", `{"name":"Gamma","status":"contacted"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = do(t, mux, http.MethodPost, "/api/leads", `{"name":"Alpha","desiredMoveIn":"2024-01-01"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, mux, http.MethodGet, "/api/leads?sort=desiredMoveIn&dir=desc", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list httpjson.ListResponse[model.Lead]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Items, 3)
	assert.Equal(t, []string{"Beta", "Alpha", "Gamma"}, []string{list.Items[0].Name, list.Items[1].Name, list.Items[2].Name})
	assert.Contains(t, list.TableHTML, "<td class=\"col-name\">Beta</td>")

	rec = do(t, mux, http.MethodGet, "/api/leads?status=contacted", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Gamma", list.Items[0].Name)
	assert.Equal(t, 3, list.Total)

	id := list.Items[0].ID
	rec = do(t, mux, http.MethodPut, "/api/leads/"+itoa(id), `{"name":"Gamma","status":"touring"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, mux, http.MethodGet, "/api/leads/"+itoa(id), "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got model.Lead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "touring", got.Status)

	rec = do(t, mux, http.MethodDelete, "/api/leads/"+itoa(id), "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, mux, http.MethodGet, "/api/leads/"+itoa(id), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLeadValidation(t *testing.T) {
	mux := newMux(t)

	rec := do(t, mux, http.MethodPost, "/api/leads", `{"name":"","status":"bogus"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["message"], "name is required")
	assert.Contains(t, body["message"], "status must be one of")

	rec = do(t, mux, http.MethodPost, "/api/leads", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, mux, http.MethodPut, "/api/leads/99", `{"name":"Nobody"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, mux, http.MethodDelete, "/api/leads/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
