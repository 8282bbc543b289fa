package latefee

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propdesk/model"
)

func standardRule() model.LateFeeRule {
	return model.LateFeeRule{
		Name:                "Standard",
		GracePeriodDays:     5,
		FirstFeeAmount:      decimal.NewFromInt(10),
		RecurringFeeAmount:  decimal.NewFromInt(5),
		RecurringPeriodDays: 1,
		CapPercentOrAmount:  decimal.NewFromInt(10),
		CapType:             model.CapTypePercent,
	}
}

func requireAmount(t *testing.T, want int64, got decimal.NullDecimal) {
	t.Helper()
	require.True(t, got.Valid, "expected an amount, got null")
	assert.True(t, got.Decimal.Equal(decimal.NewFromInt(want)), "want %d, got %s", want, got.Decimal)
}

func TestAccrualTableScenario(t *testing.T) {
	rows := AccrualTable(standardRule(), DefaultHorizonDays)
	require.Len(t, rows, 8)

	assert.Equal(t, 4, rows[4].DayIndex)
	assert.False(t, rows[4].FeeApplied.Valid)
	assert.False(t, rows[4].TotalToDate.Valid)

	requireAmount(t, 10, rows[5].FeeApplied)
	requireAmount(t, 10, rows[5].TotalToDate)
	requireAmount(t, 5, rows[6].FeeApplied)
	requireAmount(t, 15, rows[6].TotalToDate)
	requireAmount(t, 5, rows[7].FeeApplied)
	requireAmount(t, 20, rows[7].TotalToDate)
}

func TestAccrualTableProperties(t *testing.T) {
	rule := standardRule()
	rule.GracePeriodDays = 3
	rule.FirstFeeAmount = decimal.RequireFromString("25.50")
	rule.RecurringFeeAmount = decimal.RequireFromString("2.25")

	rows := AccrualTable(rule, 30)
	for i, row := range rows {
		assert.Equal(t, i, row.DayIndex)
		switch {
		case i < rule.GracePeriodDays:
			assert.False(t, row.FeeApplied.Valid)
			assert.False(t, row.TotalToDate.Valid)
		case i == rule.GracePeriodDays:
			assert.True(t, row.TotalToDate.Decimal.Equal(rule.FirstFeeAmount))
		default:
			want := rows[i-1].TotalToDate.Decimal.Add(rule.RecurringFeeAmount)
			assert.True(t, row.TotalToDate.Decimal.Equal(want), "day %d", i)
		}
	}
}

func TestAccrualTableIgnoresCap(t *testing.T) {
	rule := standardRule()
	rule.CapType = model.CapTypeFlat
	rule.CapPercentOrAmount = decimal.NewFromInt(12)

	rows := AccrualTable(rule, DefaultHorizonDays)
	requireAmount(t, 20, rows[7].TotalToDate)
}

func TestAccrualTableZeroGrace(t *testing.T) {
	rule := standardRule()
	rule.GracePeriodDays = 0

	rows := AccrualTable(rule, 2)
	requireAmount(t, 10, rows[0].TotalToDate)
	requireAmount(t, 20, rows[2].TotalToDate)
}

func TestAccrualTableGraceBeyondHorizon(t *testing.T) {
	rule := standardRule()
	rule.GracePeriodDays = 10

	for _, row := range AccrualTable(rule, DefaultHorizonDays) {
		assert.False(t, row.TotalToDate.Valid)
	}
}

func TestAccrualTableNegativeHorizon(t *testing.T) {
	assert.Empty(t, AccrualTable(standardRule(), -1))
}

func TestCapLimit(t *testing.T) {
	rule := standardRule()
	sample := decimal.NewFromInt(1200)
	assert.True(t, CapLimit(rule, sample).Equal(decimal.NewFromInt(120)))

	rule.CapType = model.CapTypeFlat
	rule.CapPercentOrAmount = decimal.NewFromInt(75)
	assert.True(t, CapLimit(rule, sample).Equal(decimal.NewFromInt(75)))
}

func TestBuildPreview(t *testing.T) {
	p := BuildPreview(standardRule(), decimal.NewFromInt(1200), DefaultHorizonDays)
	assert.True(t, p.SampleCharge.Equal(decimal.NewFromInt(1200)))
	assert.True(t, p.CapLimit.Equal(decimal.NewFromInt(120)))
	assert.Len(t, p.Rows, DefaultHorizonDays+1)
}
