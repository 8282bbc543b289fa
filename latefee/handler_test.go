package latefee

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"propdesk/config"
	"propdesk/database"
	"propdesk/database/dbtest"
	"propdesk/model"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type previewBody struct {
	SampleCharge decimal.Decimal `json:"sampleCharge"`
	CapLimit     decimal.Decimal `json:"capLimit"`
	Rows         []AccrualRow    `json:"rows"`
	TableHTML    string          `json:"tableHTML"`
}

func TestPreviewRuleHandler(t *testing.T) {
	db := dbtest.Open(t)
	id, err := database.CreateLateFeeRule(db, &model.LateFeeRule{
		Name:                "Standard",
		GracePeriodDays:     5,
		FirstFeeAmount:      decimal.NewFromInt(10),
		RecurringFeeAmount:  decimal.NewFromInt(5),
		RecurringPeriodDays: 1,
		CapPercentOrAmount:  decimal.NewFromInt(10),
		CapType:             model.CapTypePercent,
	})
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/latefees/{id}/preview", PreviewRuleHandler(db))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/latefees/"+strconv.FormatInt(id, 10)+"/preview?sampleCharge=1500", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body previewBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Rows, DefaultHorizonDays+1)
	assert.False(t, body.Rows[4].FeeApplied.Valid)
	assert.True(t, body.Rows[7].TotalToDate.Decimal.Equal(decimal.NewFromInt(20)))
	assert.True(t, body.CapLimit.Equal(decimal.NewFromInt(150)))
	assert.Contains(t, body.TableHTML, "20.00")

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/latefees/999/preview", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPreviewDraftHandler(t *testing.T) {
	draft := `{"gracePeriodDays":0,"firstFeeAmount":"25","recurringFeeAmount":"0","capPercentOrAmount":"50"}`
	rec := httptest.NewRecorder()
	PreviewDraftHandler()(rec, httptest.NewRequest(http.MethodPost, "/api/latefees/preview?horizon=2", strings.NewReader(draft)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body previewBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Rows, 3)
	assert.True(t, body.Rows[0].FeeApplied.Decimal.Equal(decimal.NewFromInt(25)))
	assert.True(t, body.Rows[2].TotalToDate.Decimal.Equal(decimal.NewFromInt(25)))
	assert.True(t, body.CapLimit.Equal(decimal.NewFromInt(50)))

	rec = httptest.NewRecorder()
	PreviewDraftHandler()(rec, httptest.NewRequest(http.MethodPost, "/api/latefees/preview", strings.NewReader(`{"gracePeriodDays":-1,"firstFeeAmount":"1"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPreviewOptions(t *testing.T) {
	cfg := config.Config{DefaultSampleCharge: "1200", PreviewHorizonDays: 10}

	sample, horizon, err := PreviewOptions(url.Values{}, cfg)
	require.NoError(t, err)
	assert.True(t, sample.Equal(decimal.NewFromInt(1200)))
	assert.Equal(t, 10, horizon)

	sample, horizon, err = PreviewOptions(url.Values{"sampleCharge": {"99.50"}, "horizon": {"0"}}, cfg)
	require.NoError(t, err)
	assert.Equal(t, "99.5", sample.String())
	assert.Equal(t, 0, horizon)

	_, horizon, err = PreviewOptions(url.Values{}, config.Config{DefaultSampleCharge: "1"})
	require.NoError(t, err)
	assert.Equal(t, DefaultHorizonDays, horizon)

	_, _, err = PreviewOptions(url.Values{"horizon": {"9999"}}, cfg)
	assert.Error(t, err)
	_, _, err = PreviewOptions(url.Values{"sampleCharge": {"-5"}}, cfg)
	assert.Error(t, err)
}
