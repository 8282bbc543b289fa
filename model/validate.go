package model

import (
	"errors"
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the storage format of every date column.
const DateLayout = "2006-01-02"

func required(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

func oneOf(value, field string, allowed []string) error {
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("%s must be one of %s", field, strings.Join(allowed, ", "))
	}
	return nil
}

func nonNegative(d decimal.Decimal, field string) error {
	if d.IsNegative() {
		return fmt.Errorf("%s must not be negative", field)
	}
	return nil
}

func optionalDate(value *string, field string) error {
	if value == nil || *value == "" {
		return nil
	}
	if _, err := time.Parse(DateLayout, *value); err != nil {
		return fmt.Errorf("%s must be a date (YYYY-MM-DD)", field)
	}
	return nil
}

func optionalEmail(value, field string) error {
	if value == "" {
		return nil
	}
	if _, err := mail.ParseAddress(value); err != nil {
		return fmt.Errorf("%s is not a valid email address", field)
	}
	return nil
}

func (p Property) Validate() error {
	return errors.Join(
		required(p.Name, "name"),
		required(p.Address, "address"),
		oneOf(p.Status, "status", PropertyStatuses),
	)
}

func (u Unit) Validate() error {
	var errs []error
	if u.PropertyID <= 0 {
		errs = append(errs, errors.New("propertyId is required"))
	}
	if u.Bedrooms < 0 {
		errs = append(errs, errors.New("bedrooms must not be negative"))
	}
	errs = append(errs,
		required(u.Label, "label"),
		nonNegative(u.Rent, "rent"),
		oneOf(u.Status, "status", UnitStatuses),
	)
	return errors.Join(errs...)
}

func (t Tenant) Validate() error {
	return errors.Join(
		required(t.FirstName, "firstName"),
		required(t.LastName, "lastName"),
		optionalEmail(t.Email, "email"),
		optionalDate(t.LeaseStart, "leaseStart"),
		optionalDate(t.LeaseEnd, "leaseEnd"),
		oneOf(t.Status, "status", TenantStatuses),
	)
}

func (l Lead) Validate() error {
	return errors.Join(
		required(l.Name, "name"),
		optionalEmail(l.Email, "email"),
		optionalDate(l.DesiredMoveIn, "desiredMoveIn"),
		oneOf(l.Status, "status", LeadStatuses),
	)
}

func (a RentalApplication) Validate() error {
	var errs []error
	if a.PropertyID <= 0 {
		errs = append(errs, errors.New("propertyId is required"))
	}
	if a.MonthlyIncome.Valid {
		errs = append(errs, nonNegative(a.MonthlyIncome.Decimal, "monthlyIncome"))
	}
	errs = append(errs,
		required(a.ApplicantName, "applicantName"),
		optionalEmail(a.ApplicantEmail, "applicantEmail"),
		oneOf(a.Status, "status", ApplicationStatuses),
	)
	return errors.Join(errs...)
}

func (i Insurance) Validate() error {
	var errs []error
	if i.PropertyID <= 0 {
		errs = append(errs, errors.New("propertyId is required"))
	}
	errs = append(errs,
		required(i.Carrier, "carrier"),
		required(i.PolicyNumber, "policyNumber"),
		nonNegative(i.Premium, "premium"),
		optionalDate(i.EffectiveDate, "effectiveDate"),
		optionalDate(i.ExpiryDate, "expiryDate"),
		oneOf(i.Status, "status", InsuranceStatuses),
	)
	return errors.Join(errs...)
}

func (m Mortgage) Validate() error {
	var errs []error
	if m.PropertyID <= 0 {
		errs = append(errs, errors.New("propertyId is required"))
	}
	if m.MonthlyPayment.Valid {
		errs = append(errs, nonNegative(m.MonthlyPayment.Decimal, "monthlyPayment"))
	}
	errs = append(errs,
		required(m.Lender, "lender"),
		nonNegative(m.Principal, "principal"),
		nonNegative(m.InterestRate, "interestRate"),
		optionalDate(m.StartDate, "startDate"),
		optionalDate(m.MaturityDate, "maturityDate"),
		oneOf(m.Status, "status", MortgageStatuses),
	)
	return errors.Join(errs...)
}

func (m MaintenanceRecord) Validate() error {
	var errs []error
	if m.PropertyID <= 0 {
		errs = append(errs, errors.New("propertyId is required"))
	}
	if m.Cost.Valid {
		errs = append(errs, nonNegative(m.Cost.Decimal, "cost"))
	}
	errs = append(errs,
		required(m.Title, "title"),
		oneOf(m.Kind, "kind", MaintenanceKinds),
		oneOf(m.Priority, "priority", Priorities),
		optionalDate(m.ScheduledDate, "scheduledDate"),
		optionalDate(m.CompletedDate, "completedDate"),
		oneOf(m.Status, "status", MaintenanceStatuses),
	)
	return errors.Join(errs...)
}

func (c CommunicationTemplate) Validate() error {
	return errors.Join(
		required(c.Name, "name"),
		required(c.Body, "body"),
		oneOf(c.Category, "category", TemplateCategories),
	)
}

func (r ReconciliationRule) Validate() error {
	return errors.Join(
		required(r.Name, "name"),
		required(r.Pattern, "pattern"),
		required(r.Category, "category"),
		oneOf(r.MatchType, "matchType", MatchTypes),
		oneOf(r.Status, "status", RuleStatuses),
	)
}

func (r LateFeeRule) Validate() error {
	var errs []error
	if r.GracePeriodDays < 0 {
		errs = append(errs, errors.New("gracePeriodDays must not be negative"))
	}
	if r.RecurringPeriodDays < 1 {
		errs = append(errs, errors.New("recurringPeriodDays must be at least 1"))
	}
	errs = append(errs,
		required(r.Name, "name"),
		nonNegative(r.FirstFeeAmount, "firstFeeAmount"),
		nonNegative(r.RecurringFeeAmount, "recurringFeeAmount"),
		nonNegative(r.CapPercentOrAmount, "capPercentOrAmount"),
		oneOf(r.CapType, "capType", CapTypes),
	)
	return errors.Join(errs...)
}
