package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestTenantValidate(t *testing.T) {
	ok := Tenant{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", LeaseStart: strPtr("2026-01-01"), Status: TenantStatusCurrent}
	assert.NoError(t, ok.Validate())

	bad := ok
	bad.Email = "not-an-email"
	bad.LeaseEnd = strPtr("01/02/2026")
	bad.Status = "evicted"
	err := bad.Validate()
	assert.ErrorContains(t, err, "email is not a valid email address")
	assert.ErrorContains(t, err, "leaseEnd must be a date")
	assert.ErrorContains(t, err, "status must be one of current, past, prospect")
}

func TestUnitValidateReportsEveryProblem(t *testing.T) {
	err := Unit{Bedrooms: -1, Rent: decimal.NewFromInt(-5), Status: UnitStatusVacant}.Validate()
	assert.ErrorContains(t, err, "propertyId is required")
	assert.ErrorContains(t, err, "bedrooms must not be negative")
	assert.ErrorContains(t, err, "label is required")
	assert.ErrorContains(t, err, "rent must not be negative")
}

func TestMaintenanceValidateOptionalCost(t *testing.T) {
	rec := MaintenanceRecord{PropertyID: 1, Title: "Leak", Kind: MaintenanceKindRepair, Priority: PriorityNormal, Status: MaintenanceStatusOpen}
	assert.NoError(t, rec.Validate())

	rec.Cost = decimal.NullDecimal{Decimal: decimal.NewFromInt(-1), Valid: true}
	assert.ErrorContains(t, rec.Validate(), "cost must not be negative")
}

func TestLateFeeRuleValidate(t *testing.T) {
	rule := LateFeeRule{Name: "Standard", GracePeriodDays: 3, RecurringPeriodDays: 1, CapType: CapTypeFlat}
	assert.NoError(t, rule.Validate())

	rule.GracePeriodDays = -1
	rule.RecurringPeriodDays = 0
	rule.CapType = "ratio"
	err := rule.Validate()
	assert.ErrorContains(t, err, "gracePeriodDays must not be negative")
	assert.ErrorContains(t, err, "recurringPeriodDays must be at least 1")
	assert.ErrorContains(t, err, "capType must be one of")
}

func TestReconciliationRuleValidate(t *testing.T) {
	rule := ReconciliationRule{Name: "Water", Pattern: "CITY WATER", Category: "utilities", MatchType: MatchTypeFuzzy, Status: RuleStatusActive}
	assert.NoError(t, rule.Validate())

	rule.MatchType = "regex"
	assert.ErrorContains(t, rule.Validate(), "matchType must be one of")
}
