package model

import "github.com/shopspring/decimal"

const (
	TenantStatusCurrent  = "current"
	TenantStatusPast     = "past"
	TenantStatusProspect = "prospect"

	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusTouring   = "touring"
	LeadStatusApplied   = "applied"
	LeadStatusLost      = "lost"

	ApplicationStatusSubmitted = "submitted"
	ApplicationStatusScreening = "screening"
	ApplicationStatusApproved  = "approved"
	ApplicationStatusDenied    = "denied"
)

var TenantStatuses = []string{TenantStatusCurrent, TenantStatusPast, TenantStatusProspect}

var LeadStatuses = []string{LeadStatusNew, LeadStatusContacted, LeadStatusTouring, LeadStatusApplied, LeadStatusLost}

var ApplicationStatuses = []string{ApplicationStatusSubmitted, ApplicationStatusScreening, ApplicationStatusApproved, ApplicationStatusDenied}

type Tenant struct {
	ID         int64   `db:"id" json:"id"`
	UnitID     *int64  `db:"unit_id" json:"unitId"`
	FirstName  string  `db:"first_name" json:"firstName"`
	LastName   string  `db:"last_name" json:"lastName"`
	Email      string  `db:"email" json:"email"`
	Phone      string  `db:"phone" json:"phone"`
	LeaseStart *string `db:"lease_start" json:"leaseStart"`
	LeaseEnd   *string `db:"lease_end" json:"leaseEnd"`
	Status     string  `db:"status" json:"status"`
	CreatedAt  string  `db:"created_at" json:"createdAt"`
	UpdatedAt  string  `db:"updated_at" json:"updatedAt"`
}

// FullName joins first and last name for list display.
func (t Tenant) FullName() string {
	if t.LastName == "" {
		return t.FirstName
	}
	if t.FirstName == "" {
		return t.LastName
	}
	return t.FirstName + " " + t.LastName
}

type Lead struct {
	ID            int64   `db:"id" json:"id"`
	PropertyID    *int64  `db:"property_id" json:"propertyId"`
	Name          string  `db:"name" json:"name"`
	Email         string  `db:"email" json:"email"`
	Phone         string  `db:"phone" json:"phone"`
	Source        string  `db:"source" json:"source"`
	DesiredMoveIn *string `db:"desired_move_in" json:"desiredMoveIn"`
	Notes         string  `db:"notes" json:"notes"`
	Status        string  `db:"status" json:"status"`
	CreatedAt     string  `db:"created_at" json:"createdAt"`
	UpdatedAt     string  `db:"updated_at" json:"updatedAt"`
}

// RentalApplication carries the screening checklist as one flag per step.
type RentalApplication struct {
	ID                int64               `db:"id" json:"id"`
	PropertyID        int64               `db:"property_id" json:"propertyId"`
	UnitID            *int64              `db:"unit_id" json:"unitId"`
	LeadID            *int64              `db:"lead_id" json:"leadId"`
	ApplicantName     string              `db:"applicant_name" json:"applicantName"`
	ApplicantEmail    string              `db:"applicant_email" json:"applicantEmail"`
	MonthlyIncome     decimal.NullDecimal `db:"monthly_income" json:"monthlyIncome"`
	SubmittedAt       string              `db:"submitted_at" json:"submittedAt"`
	IdentityVerified  bool                `db:"identity_verified" json:"identityVerified"`
	CreditChecked     bool                `db:"credit_checked" json:"creditChecked"`
	BackgroundChecked bool                `db:"background_checked" json:"backgroundChecked"`
	IncomeVerified    bool                `db:"income_verified" json:"incomeVerified"`
	ReferencesChecked bool                `db:"references_checked" json:"referencesChecked"`
	Status            string              `db:"status" json:"status"`
	CreatedAt         string              `db:"created_at" json:"createdAt"`
	UpdatedAt         string              `db:"updated_at" json:"updatedAt"`
}
