package banktx

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"propdesk/database/dbtest"
	"propdesk/httpjson"
	"propdesk/model"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statement = "date,amount,description\n" +
	"2024-03-01,-80.00,CITY WATER 0042\n" +
	"2024-03-02,1200.00,RENT UNIT 4\n" +
	"bad,1.00,SKIPPED\n"

func newMux(t *testing.T) *http.ServeMux {
	t.Helper()
	db := dbtest.Open(t)
	mux := http.NewServeMux()
	Screen().Register(mux, "/api/transactions", db)
	mux.HandleFunc("POST /api/transactions/upload", UploadStatementHandler(db))
	mux.HandleFunc("PUT /api/transactions/{id}/status", UpdateStatusHandler(db))
	mux.HandleFunc("DELETE /api/transactions/batch/{batchId}", DeleteBatchHandler(db))
	return mux
}

func upload(t *testing.T, mux *http.ServeMux, csv, account string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "statement.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(csv))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("account", account))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/transactions/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func list(t *testing.T, mux *http.ServeMux, target string) httpjson.ListResponse[model.BankTransaction] {
	t.Helper()
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var out httpjson.ListResponse[model.BankTransaction]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestUploadStatusAndBatchDelete(t *testing.T) {
	mux := newMux(t)

	rec := upload(t, mux, statement, "Operating")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var result struct {
		BatchID  string `json:"batchId"`
		Imported int    `json:"imported"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 2, result.Imported)
	assert.Len(t, result.BatchID, 36)

	all := list(t, mux, "/api/transactions?sort=amount&dir=desc&batchId="+result.BatchID)
	require.Len(t, all.Items, 2)
	assert.Equal(t, "RENT UNIT 4", all.Items[0].Description)
	assert.Equal(t, "Operating", all.Items[0].Account)
	assert.Contains(t, all.TableHTML, "1,200.00")

	id := strconv.FormatInt(all.Items[1].ID, 10)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/transactions/"+id+"/status", strings.NewReader(`{"status":"ignored"}`)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Len(t, list(t, mux, "/api/transactions?status=ignored").Items, 1)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/transactions/"+id+"/status", strings.NewReader(`{"status":"matched"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/transactions/batch/"+result.BatchID, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, list(t, mux, "/api/transactions").Items)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/transactions/batch/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadRejectsEmptyStatement(t *testing.T) {
	mux := newMux(t)
	rec := upload(t, mux, "date,amount,description\n", "Operating")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadStoreFailureIsServerError(t *testing.T) {
	db := dbtest.Open(t)
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/transactions/upload", UploadStatementHandler(db))
	require.NoError(t, db.Close())

	rec := upload(t, mux, statement, "Operating")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to save the statement.")

	rec = upload(t, mux, "date,amount\n2024-03-01,1.00\n", "Operating")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScreenIsReadOnly(t *testing.T) {
	mux := newMux(t)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
