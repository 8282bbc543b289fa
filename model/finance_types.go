package model

import "github.com/shopspring/decimal"

const (
	InsuranceStatusActive    = "active"
	InsuranceStatusExpired   = "expired"
	InsuranceStatusCancelled = "cancelled"

	MortgageStatusActive     = "active"
	MortgageStatusPaidOff    = "paid_off"
	MortgageStatusRefinanced = "refinanced"

	BankTxStatusUnmatched = "unmatched"
	BankTxStatusMatched   = "matched"
	BankTxStatusIgnored   = "ignored"

	RuleStatusActive   = "active"
	RuleStatusDisabled = "disabled"

	MatchTypeExact    = "exact"
	MatchTypeContains = "contains"
	MatchTypeFuzzy    = "fuzzy"

	CapTypePercent = "percent"
	CapTypeFlat    = "flat"
)

var InsuranceStatuses = []string{InsuranceStatusActive, InsuranceStatusExpired, InsuranceStatusCancelled}

var MortgageStatuses = []string{MortgageStatusActive, MortgageStatusPaidOff, MortgageStatusRefinanced}

var BankTxStatuses = []string{BankTxStatusUnmatched, BankTxStatusMatched, BankTxStatusIgnored}

var RuleStatuses = []string{RuleStatusActive, RuleStatusDisabled}

var MatchTypes = []string{MatchTypeExact, MatchTypeContains, MatchTypeFuzzy}

var CapTypes = []string{CapTypePercent, CapTypeFlat}

type Insurance struct {
	ID            int64           `db:"id" json:"id"`
	PropertyID    int64           `db:"property_id" json:"propertyId"`
	Carrier       string          `db:"carrier" json:"carrier"`
	PolicyNumber  string          `db:"policy_number" json:"policyNumber"`
	CoverageType  string          `db:"coverage_type" json:"coverageType"`
	Premium       decimal.Decimal `db:"premium" json:"premium"`
	EffectiveDate *string         `db:"effective_date" json:"effectiveDate"`
	ExpiryDate    *string         `db:"expiry_date" json:"expiryDate"`
	Status        string          `db:"status" json:"status"`
	CreatedAt     string          `db:"created_at" json:"createdAt"`
	UpdatedAt     string          `db:"updated_at" json:"updatedAt"`
}

type Mortgage struct {
	ID             int64               `db:"id" json:"id"`
	PropertyID     int64               `db:"property_id" json:"propertyId"`
	Lender         string              `db:"lender" json:"lender"`
	LoanNumber     string              `db:"loan_number" json:"loanNumber"`
	Principal      decimal.Decimal     `db:"principal" json:"principal"`
	InterestRate   decimal.Decimal     `db:"interest_rate" json:"interestRate"`
	MonthlyPayment decimal.NullDecimal `db:"monthly_payment" json:"monthlyPayment"`
	StartDate      *string             `db:"start_date" json:"startDate"`
	MaturityDate   *string             `db:"maturity_date" json:"maturityDate"`
	Status         string              `db:"status" json:"status"`
	CreatedAt      string              `db:"created_at" json:"createdAt"`
	UpdatedAt      string              `db:"updated_at" json:"updatedAt"`
}

type BankTransaction struct {
	ID              int64           `db:"id" json:"id"`
	BatchID         string          `db:"batch_id" json:"batchId"`
	Account         string          `db:"account" json:"account"`
	PostedDate      string          `db:"posted_date" json:"postedDate"`
	Amount          decimal.Decimal `db:"amount" json:"amount"`
	Description     string          `db:"description" json:"description"`
	Category        *string         `db:"category" json:"category"`
	MatchedRuleID   *int64          `db:"matched_rule_id" json:"matchedRuleId"`
	MatchConfidence *float64        `db:"match_confidence" json:"matchConfidence"`
	Status          string          `db:"status" json:"status"`
	CreatedAt       string          `db:"created_at" json:"createdAt"`
}

type ReconciliationRule struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Pattern   string `db:"pattern" json:"pattern"`
	MatchType string `db:"match_type" json:"matchType"`
	Category  string `db:"category" json:"category"`
	Status    string `db:"status" json:"status"`
	CreatedAt string `db:"created_at" json:"createdAt"`
	UpdatedAt string `db:"updated_at" json:"updatedAt"`
}

// LateFeeRule is a static configuration record; the accrual preview reads it
// at render time and nothing on it is computed.
type LateFeeRule struct {
	ID                  int64           `db:"id" json:"id"`
	Name                string          `db:"name" json:"name"`
	GracePeriodDays     int             `db:"grace_period_days" json:"gracePeriodDays"`
	FirstFeeAmount      decimal.Decimal `db:"first_fee_amount" json:"firstFeeAmount"`
	RecurringFeeAmount  decimal.Decimal `db:"recurring_fee_amount" json:"recurringFeeAmount"`
	RecurringPeriodDays int             `db:"recurring_period_days" json:"recurringPeriodDays"`
	CapPercentOrAmount  decimal.Decimal `db:"cap_percent_or_amount" json:"capPercentOrAmount"`
	CapType             string          `db:"cap_type" json:"capType"`
	PropertyID          *int64          `db:"property_id" json:"propertyId"`
	UnitID              *int64          `db:"unit_id" json:"unitId"`
	CreatedAt           string          `db:"created_at" json:"createdAt"`
	UpdatedAt           string          `db:"updated_at" json:"updatedAt"`
}
