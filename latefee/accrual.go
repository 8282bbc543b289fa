// Package latefee builds the day-by-day accrual preview shown next to a
// late-fee rule form, and serves the rule screens.
package latefee

import (
	"propdesk/model"

	"github.com/shopspring/decimal"
)

// DefaultHorizonDays is the last day index of the preview table (days 0..7).
const DefaultHorizonDays = 7

var hundred = decimal.NewFromInt(100)

// AccrualRow is one day of the preview. Both amounts are null while the
// charge is still inside the grace period.
type AccrualRow struct {
	DayIndex    int                 `json:"dayIndex"`
	FeeApplied  decimal.NullDecimal `json:"feeAppliedThisDay"`
	TotalToDate decimal.NullDecimal `json:"totalFeeToDate"`
}

// Preview is the accrual table plus the cap the rule declares for the sample charge.
type Preview struct {
	SampleCharge decimal.Decimal `json:"sampleCharge"`
	CapLimit     decimal.Decimal `json:"capLimit"`
	Rows         []AccrualRow    `json:"rows"`
}

// AccrualTable returns rows for days 0..horizonDays. The first fee lands on
// the day the grace period ends and the recurring fee on every later day.
// The rule's cap is not applied to the running total.
func AccrualTable(rule model.LateFeeRule, horizonDays int) []AccrualRow {
	if horizonDays < 0 {
		return []AccrualRow{}
	}
	rows := make([]AccrualRow, 0, horizonDays+1)
	for day := 0; day <= horizonDays; day++ {
		row := AccrualRow{DayIndex: day}
		switch {
		case day < rule.GracePeriodDays:
		case day == rule.GracePeriodDays:
			row.FeeApplied = valid(rule.FirstFeeAmount)
			row.TotalToDate = valid(rule.FirstFeeAmount)
		default:
			elapsed := decimal.NewFromInt(int64(day - rule.GracePeriodDays))
			row.FeeApplied = valid(rule.RecurringFeeAmount)
			row.TotalToDate = valid(rule.FirstFeeAmount.Add(rule.RecurringFeeAmount.Mul(elapsed)))
		}
		rows = append(rows, row)
	}
	return rows
}

// CapLimit is the most the rule allows on sampleCharge: a percentage of the
// charge for percent caps, the amount itself for flat caps.
func CapLimit(rule model.LateFeeRule, sampleCharge decimal.Decimal) decimal.Decimal {
	if rule.CapType == model.CapTypePercent {
		return sampleCharge.Mul(rule.CapPercentOrAmount).Div(hundred)
	}
	return rule.CapPercentOrAmount
}

func BuildPreview(rule model.LateFeeRule, sampleCharge decimal.Decimal, horizonDays int) Preview {
	return Preview{
		SampleCharge: sampleCharge,
		CapLimit:     CapLimit(rule, sampleCharge),
		Rows:         AccrualTable(rule, horizonDays),
	}
}

func valid(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
