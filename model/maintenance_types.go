package model

import "github.com/shopspring/decimal"

const (
	MaintenanceStatusOpen       = "open"
	MaintenanceStatusInProgress = "in_progress"
	MaintenanceStatusCompleted  = "completed"

	MaintenanceKindRepair     = "repair"
	MaintenanceKindInspection = "inspection"

	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityUrgent = "urgent"

	TemplateCategoryEmail  = "email"
	TemplateCategorySMS    = "sms"
	TemplateCategoryLetter = "letter"
)

var MaintenanceStatuses = []string{MaintenanceStatusOpen, MaintenanceStatusInProgress, MaintenanceStatusCompleted}

var MaintenanceKinds = []string{MaintenanceKindRepair, MaintenanceKindInspection}

var Priorities = []string{PriorityLow, PriorityNormal, PriorityUrgent}

var TemplateCategories = []string{TemplateCategoryEmail, TemplateCategorySMS, TemplateCategoryLetter}

// MaintenanceRecord covers both repair work orders and inspections; Kind
// tells them apart.
type MaintenanceRecord struct {
	ID            int64               `db:"id" json:"id"`
	PropertyID    int64               `db:"property_id" json:"propertyId"`
	UnitID        *int64              `db:"unit_id" json:"unitId"`
	Kind          string              `db:"kind" json:"kind"`
	Title         string              `db:"title" json:"title"`
	Description   string              `db:"description" json:"description"`
	Priority      string              `db:"priority" json:"priority"`
	Cost          decimal.NullDecimal `db:"cost" json:"cost"`
	ScheduledDate *string             `db:"scheduled_date" json:"scheduledDate"`
	CompletedDate *string             `db:"completed_date" json:"completedDate"`
	Status        string              `db:"status" json:"status"`
	CreatedAt     string              `db:"created_at" json:"createdAt"`
	UpdatedAt     string              `db:"updated_at" json:"updatedAt"`
}

type CommunicationTemplate struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Category  string `db:"category" json:"category"`
	Subject   string `db:"subject" json:"subject"`
	Body      string `db:"body" json:"body"`
	CreatedAt string `db:"created_at" json:"createdAt"`
	UpdatedAt string `db:"updated_at" json:"updatedAt"`
}
