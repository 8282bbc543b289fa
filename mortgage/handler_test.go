package mortgage

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"propdesk/database/dbtest"
	"propdesk/model"
	"propdesk/projection"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMortgageProjection(t *testing.T) {
	payment := func(s string) decimal.NullDecimal {
		return decimal.NewNullDecimal(decimal.RequireFromString(s))
	}
	records := []model.Mortgage{
		{ID: 1, PropertyID: 1, Lender: "First Bank", Principal: decimal.RequireFromString("250000"), MonthlyPayment: payment("1500"), Status: "active"},
		{ID: 2, PropertyID: 2, Lender: "Credit Union", Principal: decimal.RequireFromString("90000"), Status: "paid_off"},
		{ID: 3, PropertyID: 1, Lender: "first bank", Principal: decimal.RequireFromString("410000.50"), MonthlyPayment: payment("2400"), Status: "active"},
	}

	got := projection.Project(records, Schema, projection.NewQuery("", "monthlyPayment", projection.Descending))
	assert.Equal(t, []int64{3, 1, 2}, ids(got))

	got = projection.Project(records, Schema, projection.NewQuery("FIRST", "principal", projection.Ascending))
	assert.Equal(t, []int64{1, 3}, ids(got))

	got = projection.Project(records, Schema, projection.NewQuery("", "", projection.Ascending).WithEqual("status", "paid_off"))
	assert.Equal(t, []int64{2}, ids(got))

	html := Screen().Project(records, projection.NewQuery("", "", projection.Ascending), map[int64]string{1: "Oak Court"}).TableHTML
	assert.Contains(t, html, "410,000.50")
	assert.Contains(t, html, "Paid off")
	assert.Contains(t, html, "#2")
}

func ids(ms []model.Mortgage) []int64 {
	out := make([]int64, len(ms))
	for i, m := range ms {
		out[i] = m.ID
	}
	return out
}

func TestMortgageUnknownPropertyIsBadRequest(t *testing.T) {
	db := dbtest.Open(t)
	mux := http.NewServeMux()
	Screen().Register(mux, "/api/mortgages", db)

	do := func(method, target, body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
		return rec
	}
	message := func(rec *httptest.ResponseRecorder) string {
		var body struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return body.Message
	}

	rec := do(http.MethodPost, "/api/mortgages", `{"propertyId":999,"lender":"X","principal":"100","interestRate":"1","status":"active"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "property 999 does not exist", message(rec))

	propertyID := dbtest.CreateProperty(t, db, "Maple Court")
	rec = do(http.MethodPost, "/api/mortgages", `{"propertyId":`+strconv.FormatInt(propertyID, 10)+`,"lender":"X","principal":"100","interestRate":"1"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = do(http.MethodPut, "/api/mortgages/"+strconv.FormatInt(created.ID, 10), `{"propertyId":4242,"lender":"X","principal":"100","interestRate":"1","status":"active"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "property 4242 does not exist", message(rec))
}
